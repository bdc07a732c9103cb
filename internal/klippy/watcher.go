package klippy

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/klippy-app/klippy/internal/clipboard"
)

// Watcher bridges the OS clipboard into the history service. It tracks
// the last value it saw so a clipboard that hasn't changed between
// polls is never re-added, independent of the history's own content
// dedup. Poll runs on command goroutines while MarkSeen runs on the
// event loop, so lastSeen is mutex-guarded.
type Watcher struct {
	clipboard clipboard.Clipboard
	history   *Service
	log       zerolog.Logger

	mu       sync.Mutex
	lastSeen string
}

// NewWatcher creates a watcher feeding the given history service.
func NewWatcher(cb clipboard.Clipboard, history *Service, log zerolog.Logger) *Watcher {
	return &Watcher{
		clipboard: cb,
		history:   history,
		log:       log,
	}
}

// Poll reads the clipboard once and captures new content into the
// history. Read failures and empty clipboards are no-ops; clipboard
// access is best-effort and never fatal. Returns true when a new entry
// was added.
func (w *Watcher) Poll(ctx context.Context) bool {
	if !w.clipboard.Available() {
		return false
	}

	content, err := w.clipboard.Read()
	if err != nil {
		w.log.Debug().Err(err).Msg("clipboard read failed")
		return false
	}

	w.mu.Lock()
	if content == "" || content == w.lastSeen {
		w.mu.Unlock()
		return false
	}
	w.lastSeen = content
	w.mu.Unlock()

	return w.history.Add(ctx, content)
}

// MarkSeen records content the application itself just wrote to the
// clipboard, so the next poll does not treat it as a new copy event.
func (w *Watcher) MarkSeen(content string) {
	w.mu.Lock()
	w.lastSeen = content
	w.mu.Unlock()
}
