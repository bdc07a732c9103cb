package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/klippy-app/klippy/internal/core/clip"
)

// entryItem wraps a history entry for the list component.
type entryItem struct {
	entry clip.Entry
}

// FilterValue satisfies list.Item. The list's built-in filtering is
// disabled; search goes through the history service instead.
func (i entryItem) FilterValue() string {
	return i.entry.Content
}

// entryDelegate renders history entries as single-line rows:
// timestamp, preview, pin marker.
type entryDelegate struct{}

func (d entryDelegate) Height() int  { return 1 }
func (d entryDelegate) Spacing() int { return 0 }

func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ei, ok := item.(entryItem)
	if !ok {
		return
	}

	cursor := "  "
	style := normalStyle
	if index == m.Index() {
		cursor = "> "
		style = selectedStyle
	}

	row := fmt.Sprintf("%s%s  %s",
		cursor,
		timeStyle.Render(ei.entry.FormattedTime()),
		style.Render(ei.entry.Preview()),
	)

	if ei.entry.Pinned {
		row += "  " + pinnedStyle.Render(iconPin)
	}

	fmt.Fprint(w, row)
}
