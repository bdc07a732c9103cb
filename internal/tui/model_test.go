package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klippy-app/klippy/internal/core/config"
	"github.com/klippy-app/klippy/internal/klippy"
	"github.com/klippy-app/klippy/internal/store/jsonfile"
)

// stubClipboard is an always-available in-memory clipboard.
type stubClipboard struct {
	content string
}

func (c *stubClipboard) Read() (string, error)   { return c.content, nil }
func (c *stubClipboard) Write(text string) error { c.content = text; return nil }
func (c *stubClipboard) Available() bool         { return true }

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg, err := config.Load("", t.TempDir())
	require.NoError(t, err)

	svc := klippy.New(jsonfile.New(cfg.HistoryFile()), zerolog.Nop(), cfg.MaxEntries)
	cb := &stubClipboard{}
	w := klippy.NewWatcher(cb, svc, zerolog.Nop())

	return New(svc, w, cb, cfg)
}

func TestSearchCursorKeepsBlinking(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = updated.(Model)
	require.Equal(t, stateSearching, m.state)

	// Blink messages must reach the focused input; routed anywhere else
	// no follow-up command is produced and the cursor freezes.
	_, cmd := m.Update(textinput.Blink())
	assert.NotNil(t, cmd)
}

func TestCopySelectedStaleSelection(t *testing.T) {
	ctx := context.Background()
	m := newTestModel(t)

	m.service.Add(ctx, "hello")
	m.refreshItems()

	sel, ok := m.selectedEntry()
	require.True(t, ok)

	// The entry disappears between render and keypress.
	require.True(t, m.service.Remove(ctx, sel.ID))

	updated, _ := m.copySelected()
	got := updated.(Model)

	assert.Equal(t, "Entry no longer exists", got.statusMsg)
	assert.True(t, got.statusErr)
}

func TestCopySelectedMarksClipboardSeen(t *testing.T) {
	ctx := context.Background()
	m := newTestModel(t)

	m.service.Add(ctx, "hello")
	m.refreshItems()

	updated, _ := m.copySelected()
	got := updated.(Model)

	require.Equal(t, "Copied to clipboard", got.statusMsg)

	// The watcher must not re-capture the app's own write.
	assert.False(t, got.watcher.Poll(ctx))
	assert.Equal(t, 1, got.service.Len())
}
