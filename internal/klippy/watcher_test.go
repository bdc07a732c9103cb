package klippy

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// fakeClipboard is a scriptable clipboard for watcher tests.
type fakeClipboard struct {
	content     string
	readErr     error
	unavailable bool
	reads       int
}

func (f *fakeClipboard) Read() (string, error) {
	f.reads++
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.content, nil
}

func (f *fakeClipboard) Write(text string) error {
	f.content = text
	return nil
}

func (f *fakeClipboard) Available() bool {
	return !f.unavailable
}

func TestWatcherPoll(t *testing.T) {
	ctx := context.Background()

	t.Run("captures new content once", func(t *testing.T) {
		svc := newTestService(t, 50)
		cb := &fakeClipboard{content: "copied text"}
		w := NewWatcher(cb, svc, zerolog.Nop())

		assert.True(t, w.Poll(ctx))

		// Unchanged clipboard never re-adds, however often we poll.
		for range 5 {
			assert.False(t, w.Poll(ctx))
		}
		assert.Equal(t, 1, svc.Len())
	})

	t.Run("captures successive values", func(t *testing.T) {
		svc := newTestService(t, 50)
		cb := &fakeClipboard{content: "one"}
		w := NewWatcher(cb, svc, zerolog.Nop())

		assert.True(t, w.Poll(ctx))
		cb.content = "two"
		assert.True(t, w.Poll(ctx))

		assert.Equal(t, []string{"two", "one"}, contents(svc.Entries()))
	})

	t.Run("read failure is a no-op", func(t *testing.T) {
		svc := newTestService(t, 50)
		cb := &fakeClipboard{readErr: errors.New("no display")}
		w := NewWatcher(cb, svc, zerolog.Nop())

		assert.False(t, w.Poll(ctx))
		assert.Equal(t, 0, svc.Len())
	})

	t.Run("empty clipboard is a no-op", func(t *testing.T) {
		svc := newTestService(t, 50)
		cb := &fakeClipboard{content: ""}
		w := NewWatcher(cb, svc, zerolog.Nop())

		assert.False(t, w.Poll(ctx))
		assert.Equal(t, 0, svc.Len())
	})

	t.Run("unavailable clipboard never reads", func(t *testing.T) {
		svc := newTestService(t, 50)
		cb := &fakeClipboard{content: "something", unavailable: true}
		w := NewWatcher(cb, svc, zerolog.Nop())

		assert.False(t, w.Poll(ctx))
		assert.Zero(t, cb.reads)
	})

	t.Run("mark seen suppresses own writes", func(t *testing.T) {
		svc := newTestService(t, 50)
		svc.Add(ctx, "from history")
		cb := &fakeClipboard{}
		w := NewWatcher(cb, svc, zerolog.Nop())

		// Simulate the UI copying an entry back to the clipboard.
		assert.NoError(t, cb.Write("from history"))
		w.MarkSeen("from history")

		assert.False(t, w.Poll(ctx))
		assert.Equal(t, 1, svc.Len())
	})

	t.Run("concurrent poll and mark seen", func(t *testing.T) {
		// Poll runs on command goroutines while MarkSeen runs on the
		// event loop; both touch lastSeen. Exercised under -race.
		svc := newTestService(t, 50)
		cb := &fakeClipboard{content: "shared"}
		w := NewWatcher(cb, svc, zerolog.Nop())

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				w.Poll(ctx)
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				w.MarkSeen("shared")
			}
		}()
		wg.Wait()

		// The history dedup keeps at most one copy regardless of
		// interleaving.
		assert.LessOrEqual(t, svc.Len(), 1)
	})

	t.Run("duplicate of older entry suppressed by history", func(t *testing.T) {
		svc := newTestService(t, 50)
		cb := &fakeClipboard{content: "repeat"}
		w := NewWatcher(cb, svc, zerolog.Nop())

		assert.True(t, w.Poll(ctx))
		cb.content = "other"
		assert.True(t, w.Poll(ctx))

		// Clipboard changed back to an already-retained value: the
		// watcher forwards it, the history's dedup rejects it.
		cb.content = "repeat"
		assert.False(t, w.Poll(ctx))
		assert.Equal(t, 2, svc.Len())
	})
}
