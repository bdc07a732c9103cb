package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/klippy-app/klippy/internal/clipboard"
	"github.com/klippy-app/klippy/internal/core/clip"
	"github.com/klippy-app/klippy/internal/core/config"
	"github.com/klippy-app/klippy/internal/klippy"
	"github.com/klippy-app/klippy/pkg/sysopen"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateSearching
	stateSettings
)

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg       *config.Config
	service   *klippy.Service
	watcher   *klippy.Watcher
	clipboard clipboard.Clipboard

	list   list.Model
	search textinput.Model
	help   help.Model
	keys   KeyMap

	state    UIState
	settings *SettingsForm
	query    string

	// Transient status line. The generation counter ties each message
	// to its own expiry tick so a stale tick never clears a newer
	// message; timing state lives here, not in a process-wide variable.
	statusMsg string
	statusErr bool
	statusGen int

	width    int
	height   int
	quitting bool
}

// pollTickMsg triggers the next clipboard poll.
type pollTickMsg struct{}

// clipboardPolledMsg reports the outcome of a clipboard poll.
type clipboardPolledMsg struct {
	added bool
}

// statusExpiredMsg clears the status line for a given generation.
type statusExpiredMsg struct {
	gen int
}

// New creates a new TUI model.
func New(service *klippy.Service, watcher *klippy.Watcher, cb clipboard.Clipboard, cfg *config.Config) Model {
	l := list.New([]list.Item{}, entryDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("entry", "entries")
	l.DisableQuitKeybindings()

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "type to filter entries"
	search.CharLimit = 256

	m := Model{
		cfg:       cfg,
		service:   service,
		watcher:   watcher,
		clipboard: cb,
		list:      l,
		search:    search,
		help:      help.New(),
		keys:      DefaultKeyMap(),
		state:     stateNormal,
	}
	m.refreshItems()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.schedulePoll()
}

// schedulePoll returns a command that schedules the next clipboard poll.
func (m Model) schedulePoll() tea.Cmd {
	return tea.Tick(m.cfg.PollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

// pollClipboard returns a command that polls the clipboard once.
func (m Model) pollClipboard() tea.Cmd {
	return func() tea.Msg {
		added := m.watcher.Poll(context.Background())
		return clipboardPolledMsg{added: added}
	}
}

// setStatus shows a transient status message and returns the command
// that expires it.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusGen++

	gen := m.statusGen
	return tea.Tick(m.cfg.StatusDuration, func(time.Time) tea.Msg {
		return statusExpiredMsg{gen: gen}
	})
}

// refreshItems rebuilds the list from the filtered history view.
func (m *Model) refreshItems() {
	entries := m.service.Filtered(m.query)
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}
	m.list.SetItems(items)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Banner (5 lines) + header (1) + search (1) + status (1) + help (1)
		contentHeight := msg.Height - 9
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.list.SetSize(msg.Width, contentHeight)
		m.help.Width = msg.Width
		return m, nil

	case pollTickMsg:
		return m, tea.Batch(m.pollClipboard(), m.schedulePoll())

	case clipboardPolledMsg:
		if msg.added {
			m.refreshItems()
		}
		return m, nil

	case statusExpiredMsg:
		if msg.gen == m.statusGen {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Route everything else to whichever component is active.
	if m.state == stateSettings && m.settings != nil {
		return m.updateSettings(msg)
	}

	if m.state == stateSearching {
		// The search cursor's blink messages must reach the input.
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateSettings {
		return m.handleSettingsKey(msg)
	}
	if m.state == stateSearching {
		return m.handleSearchKey(msg)
	}
	return m.handleNormalKey(msg)
}

// handleSettingsKey handles keys while the settings form is open.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.state = stateNormal
		m.settings = nil
		return m, nil
	}
	return m.updateSettings(msg)
}

// updateSettings routes a message to the settings form and applies the
// result when it completes.
func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.settings.Form().Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.settings.form = f

		switch f.State {
		case huh.StateCompleted:
			n, err := m.settings.Result()
			m.state = stateNormal
			m.settings = nil
			if err != nil {
				return m, m.setStatus("Invalid capacity: "+err.Error(), true)
			}
			m.service.SetMaxEntries(context.Background(), n)
			return m, m.setStatus(fmt.Sprintf("Capacity set to %d", n), false)
		case huh.StateAborted:
			m.state = stateNormal
			m.settings = nil
			return m, nil
		}
	}
	return m, cmd
}

// handleSearchKey handles keys while the search input is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		// Cancel: drop the query entirely.
		m.state = stateNormal
		m.query = ""
		m.search.SetValue("")
		m.search.Blur()
		m.refreshItems()
		return m, nil
	case "enter":
		// Confirm: keep the query applied.
		m.state = stateNormal
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.query {
		m.query = m.search.Value()
		m.refreshItems()
	}
	return m, cmd
}

// handleNormalKey handles keys in normal state.
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Search):
		m.state = stateSearching
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Settings):
		m.settings = NewSettingsForm(m.service.MaxEntries())
		m.state = stateSettings
		return m, m.settings.Form().Init()

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()

	case key.Matches(msg, m.keys.Delete):
		if e, ok := m.selectedEntry(); ok {
			m.service.Remove(context.Background(), e.ID)
			m.refreshItems()
			return m, m.setStatus("Entry removed", false)
		}
		return m, nil

	case key.Matches(msg, m.keys.Pin):
		if e, ok := m.selectedEntry(); ok {
			pinned, ok := m.service.TogglePin(context.Background(), e.ID)
			if !ok {
				return m, nil
			}
			m.refreshItems()
			if pinned {
				return m, m.setStatus("Entry pinned", false)
			}
			return m, m.setStatus("Entry unpinned", false)
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearUnpinned):
		removed := m.service.ClearUnpinned(context.Background())
		m.refreshItems()
		return m, m.setStatus(fmt.Sprintf("Cleared %d unpinned", removed), false)

	case key.Matches(msg, m.keys.OpenDir):
		if err := sysopen.Open(m.cfg.DataDir); err != nil {
			return m, m.setStatus("Failed to open directory: "+err.Error(), true)
		}
		return m, m.setStatus("Opened data directory", false)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// copySelected writes the selected entry back to the OS clipboard.
func (m Model) copySelected() (tea.Model, tea.Cmd) {
	sel, ok := m.selectedEntry()
	if !ok {
		return m, nil
	}

	// The rendered row can lag the service by a tick; look the entry up
	// again so a stale selection is caught instead of copied.
	e, ok := m.service.Get(sel.ID)
	if !ok {
		m.refreshItems()
		return m, m.setStatus("Entry no longer exists", true)
	}

	if err := m.clipboard.Write(e.Content); err != nil {
		return m, m.setStatus("Failed to copy to clipboard", true)
	}

	// The next poll should not re-capture our own write.
	m.watcher.MarkSeen(e.Content)
	return m, m.setStatus("Copied to clipboard", false)
}

// selectedEntry returns the currently selected entry, if any.
func (m Model) selectedEntry() (clip.Entry, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return clip.Entry{}, false
	}
	ei, ok := item.(entryItem)
	if !ok {
		return clip.Entry{}, false
	}
	return ei.entry, true
}

// quit flushes the history and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	_ = m.service.Flush(context.Background())
	m.quitting = true
	return m, tea.Quit
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render("Clipboard History") +
		countStyle.Render(fmt.Sprintf("%s %d entries %s cap %d",
			iconDot, m.service.Len(), iconDot, m.service.MaxEntries()))

	var searchLine string
	if m.state == stateSearching {
		searchLine = " " + searchPromptStyle.Render("Search: ") + m.search.View()
	} else if m.query != "" {
		searchLine = " " + searchPromptStyle.Render("Search: ") + m.query
	}

	var content string
	if m.state == stateSettings && m.settings != nil {
		content = m.settings.Form().View()
	} else if len(m.list.Items()) == 0 {
		if m.query != "" {
			content = emptyStyle.Render("No matching entries found.")
		} else {
			content = emptyStyle.Render("No clipboard entries yet. Copy something to add it here.")
		}
	} else {
		content = m.list.View()
	}

	var status string
	switch {
	case m.statusMsg != "" && m.statusErr:
		status = statusErrStyle.Render(m.statusMsg)
	case m.statusMsg != "":
		status = statusStyle.Render(m.statusMsg)
	case !m.clipboard.Available():
		status = statusErrStyle.Render("Clipboard unavailable; watching disabled")
	default:
		status = statusIdleStyle.Render("Ready")
	}

	helpLine := helpStyle.Render(m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left,
		bannerStyle.Render(banner),
		header,
		searchLine,
		content,
		status,
		helpLine,
	)
}
