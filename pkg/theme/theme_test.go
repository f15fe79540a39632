package theme

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newMapStore() *mapStore { return &mapStore{data: map[string]string{}} }

func (m *mapStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *mapStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	return nil
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{in: "light", want: Light},
		{in: " DARK ", want: Dark},
		{in: "blue", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
	assert.True(t, Light.Toggle().IsDark())
}

func TestScopedKey(t *testing.T) {
	assert.Equal(t, "theme", ScopedKey(""))
	assert.Equal(t, "theme:abc", ScopedKey("abc"))
}

func TestPreference_LoadDefaults(t *testing.T) {
	tests := []struct {
		name    string
		stored  map[string]string
		want    Theme
		wantErr bool
	}{
		{name: "missing", stored: map[string]string{}, want: Light},
		{name: "invalid", stored: map[string]string{"theme": "purple"}, want: Light},
		{name: "dark", stored: map[string]string{"theme": "dark"}, want: Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMapStore()
			s.data = tt.stored
			p := NewPreference(s, "", nil)
			got, err := p.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, p.Current())
		})
	}
}

func TestPreference_LoadError(t *testing.T) {
	s := newMapStore()
	s.err = errors.New("boom")
	p := NewPreference(s, "", nil)
	got, err := p.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Light, got)
}

func TestPreference_TogglePersists(t *testing.T) {
	s := newMapStore()
	ctx := context.Background()

	p := NewPreference(s, ScopedKey("client-1"), nil)
	_, err := p.Load(ctx)
	require.NoError(t, err)

	got, err := p.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
	assert.Equal(t, "dark", s.data["theme:client-1"])

	fresh := NewPreference(s, ScopedKey("client-1"), nil)
	loaded, err := fresh.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Dark, loaded)

	other := NewPreference(s, ScopedKey("client-2"), nil)
	loaded, err = other.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Light, loaded)
}

func TestPreference_Set(t *testing.T) {
	s := newMapStore()
	p := NewPreference(s, "", nil)
	require.NoError(t, p.Set(context.Background(), Dark))
	assert.Equal(t, "dark", s.data["theme"])
	assert.ErrorIs(t, p.Set(context.Background(), "neon"), ErrInvalidTheme)
}

func TestPreference_ToggleSaveError(t *testing.T) {
	s := newMapStore()
	s.err = errors.New("read-only")
	p := NewPreference(s, "", nil)
	got, err := p.Toggle(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Dark, got)
}
