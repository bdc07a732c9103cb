// Package clip defines clipboard history domain types and interfaces.
package clip

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/klippy-app/klippy/pkg/randid"
)

// ErrCorrupt is returned when persisted history cannot be parsed.
var ErrCorrupt = errors.New("history file corrupted")

// Preview truncation bounds, in runes.
const (
	previewMax = 50
	previewCut = 47
)

// Entry represents a single retained clipboard snapshot.
type Entry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Pinned    bool      `json:"pinned"`
}

// New creates an entry for the given content with the current timestamp.
func New(content string) Entry {
	return Entry{
		ID:        NewID(),
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewID generates a new entry identifier.
func NewID() string {
	return randid.Generate(8)
}

// Preview returns the content truncated for list display. Content longer
// than 50 runes is cut at 47 runes plus an ellipsis; truncation counts
// runes so it never splits a multi-byte character.
func (e *Entry) Preview() string {
	runes := []rune(e.Content)
	if len(runes) > previewMax {
		return string(runes[:previewCut]) + "..."
	}
	return e.Content
}

// FormattedTime returns the creation time as HH:MM:SS local time.
func (e *Entry) FormattedTime() string {
	return e.CreatedAt.Local().Format("15:04:05")
}

// Matches reports whether the entry content contains query,
// case-insensitively. An empty query matches everything.
func (e *Entry) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Content), strings.ToLower(query))
}

// Snapshot is the full persisted history state.
type Snapshot struct {
	Entries    []Entry `json:"entries"`
	MaxEntries int     `json:"max_entries"`
}

// Store defines persistence for clipboard history snapshots.
type Store interface {
	// Load reads the persisted snapshot. A missing file yields a zero
	// snapshot and no error. A corrupt file yields a zero snapshot and
	// an error wrapping ErrCorrupt.
	Load(ctx context.Context) (Snapshot, error)
	// Save writes the snapshot, replacing any previous state.
	Save(ctx context.Context, snap Snapshot) error
}
