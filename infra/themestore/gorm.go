package themestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/fxconv/pkg/theme"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Setting is one persisted key/value pair.
type Setting struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"size:32;not null"`
	UpdatedAt time.Time
}

// TableName pins the table name.
func (Setting) TableName() string { return "settings" }

// SQL stores settings in a relational database through gorm.
type SQL struct {
	db *gorm.DB
}

// NewSQL wraps db. Call Migrate before first use on a fresh database.
func NewSQL(db *gorm.DB) *SQL {
	return &SQL{db: db}
}

// OpenSQLite opens (or creates) a SQLite database and migrates it.
func OpenSQLite(dsn, appEnv string) (*SQL, error) {
	return open(sqlite.Open(dsn), appEnv)
}

// OpenPostgres connects to Postgres and migrates it.
func OpenPostgres(dsn, appEnv string) (*SQL, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	return open(postgres.Open(dsn), appEnv)
}

func open(dialector gorm.Dialector, appEnv string) (*SQL, error) {
	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Warn
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := NewSQL(db)
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Migrate creates the settings table.
func (s *SQL) Migrate() error {
	if err := s.db.AutoMigrate(&Setting{}); err != nil {
		return fmt.Errorf("migrate settings: %w", err)
	}
	return nil
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	var row Setting
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", theme.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	row := Setting{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

// Close closes the underlying connection pool.
func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ theme.Store = (*SQL)(nil)
