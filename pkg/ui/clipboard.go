package ui

import (
	"sync"
	"time"
)

// CopyDuration is how long a copy acknowledgment stays visible.
const CopyDuration = 1500 * time.Millisecond

// Field names a copyable output.
type Field string

const (
	FieldResult Field = "result"
	FieldRate   Field = "rate"
)

// ParseField validates a field name.
func ParseField(s string) (Field, bool) {
	switch f := Field(s); f {
	case FieldResult, FieldRate:
		return f, true
	}
	return "", false
}

// Clipboard is write-only system clipboard access.
type Clipboard interface {
	WriteAll(text string) error
}

// ClipboardFunc adapts a function such as clipboard.WriteAll.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) WriteAll(text string) error { return f(text) }

// CopyFeedback tracks one acknowledgment deadline per field. Fields are
// independent: copying the rate does not touch the result indicator.
type CopyFeedback struct {
	mu    sync.Mutex
	clip  Clipboard
	now   func() time.Time
	until map[Field]time.Time
}

// NewCopyFeedback creates feedback state writing through clip. A nil now
// uses time.Now.
func NewCopyFeedback(clip Clipboard, now func() time.Time) *CopyFeedback {
	if now == nil {
		now = time.Now
	}
	return &CopyFeedback{
		clip:  clip,
		now:   now,
		until: make(map[Field]time.Time, 2),
	}
}

// Copy writes text to the clipboard and starts the acknowledgment for field.
// Clipboard errors are swallowed; the indicator only starts on success.
func (c *CopyFeedback) Copy(field Field, text string) bool {
	if c.clip == nil {
		return false
	}
	if err := c.clip.WriteAll(text); err != nil {
		return false
	}
	c.mu.Lock()
	c.until[field] = c.now().Add(CopyDuration)
	c.mu.Unlock()
	return true
}

// Active reports whether the acknowledgment for field is showing.
func (c *CopyFeedback) Active(field Field) bool {
	return c.Remaining(field) > 0
}

// Remaining returns how long the acknowledgment for field still shows.
func (c *CopyFeedback) Remaining(field Field) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	until, ok := c.until[field]
	if !ok {
		return 0
	}
	d := until.Sub(c.now())
	if d <= 0 {
		delete(c.until, field)
		return 0
	}
	return d
}
