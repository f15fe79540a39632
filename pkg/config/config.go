package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type Redis struct {
	URL       string `envconfig:"URL" default:"redis://localhost:6379/0"`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"fxconv:"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Provider configures the exchange rate chain. A zero HTTPTimeout leaves
// requests bounded only by the transport and the caller's context.
type Provider struct {
	PrimaryURL   string        `envconfig:"PRIMARY_URL" default:"https://api.exchangerate.host"`
	AccessKey    string        `envconfig:"PRIMARY_ACCESS_KEY"`
	SecondaryURL string        `envconfig:"SECONDARY_URL" default:"https://api.frankfurter.app"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"0"`
}

type Theme struct {
	Store string `envconfig:"STORE" default:"file"`
	File  string `envconfig:"FILE"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fxconv]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Locale    string     `envconfig:"LOCALE"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Provider  *Provider  `envconfig:"PROVIDER"`
	Theme     *Theme     `envconfig:"THEME"`
}
