// Package klippy orchestrates clipboard history operations.
package klippy

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/klippy-app/klippy/internal/core/clip"
)

// Service owns the in-memory clipboard history: a deduplicated,
// capacity-bounded, pin-aware entry list, newest first. Every mutation
// is persisted through the store; persistence failures are logged and
// otherwise ignored so the in-memory state stays authoritative for the
// session.
type Service struct {
	store clip.Store
	log   zerolog.Logger

	mu         sync.Mutex
	entries    []clip.Entry
	maxEntries int
}

// New creates a new Service. defaultMax is the capacity used until a
// saved snapshot provides its own.
func New(store clip.Store, log zerolog.Logger, defaultMax int) *Service {
	return &Service{
		store:      store,
		log:        log,
		maxEntries: defaultMax,
	}
}

// Load restores the persisted snapshot. Corrupt state is logged and the
// history starts empty; the store has already moved the bad file aside.
func (s *Service) Load(ctx context.Context) error {
	snap, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, clip.ErrCorrupt) {
			s.log.Warn().Err(err).Msg("history file corrupted, starting empty")
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = snap.Entries
	if snap.MaxEntries > 0 {
		s.maxEntries = snap.MaxEntries
	}

	// Snapshots written by older versions may predate entry IDs.
	for i := range s.entries {
		if s.entries[i].ID == "" {
			s.entries[i].ID = clip.NewID()
		}
	}

	s.log.Debug().Int("entries", len(s.entries)).Int("max_entries", s.maxEntries).Msg("history loaded")
	return nil
}

// Add inserts new clipboard content at the front of the history and
// reports whether anything changed. Empty or whitespace-only content
// and exact duplicates of any retained entry are no-ops. After
// insertion, the oldest non-pinned entries are evicted while the
// history exceeds capacity; if every remaining entry is pinned,
// eviction stops and the history may stay over capacity.
func (s *Service) Add(ctx context.Context, content string) bool {
	s.mu.Lock()

	if strings.TrimSpace(content) == "" {
		s.mu.Unlock()
		return false
	}

	for _, e := range s.entries {
		if e.Content == content {
			s.mu.Unlock()
			return false
		}
	}

	s.entries = append([]clip.Entry{clip.New(content)}, s.entries...)
	s.evictLocked()
	s.mu.Unlock()

	s.persist(ctx)
	return true
}

// evictLocked removes the least-recently-inserted non-pinned entries
// while over capacity. Callers must hold s.mu.
func (s *Service) evictLocked() {
	for len(s.entries) > s.maxEntries {
		idx := -1
		for i := len(s.entries) - 1; i >= 0; i-- {
			if !s.entries[i].Pinned {
				idx = i
				break
			}
		}
		if idx < 0 {
			// All entries pinned; capacity is advisory.
			return
		}
		s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	}
}

// Remove deletes the entry with the given ID. Unknown IDs are a silent
// no-op so a stale selection can never delete the wrong entry.
func (s *Service) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	removed := false
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.persist(ctx)
	}
	return removed
}

// TogglePin flips the pinned flag of the entry with the given ID.
// Returns the new pinned state and whether the entry was found.
func (s *Service) TogglePin(ctx context.Context, id string) (pinned, ok bool) {
	s.mu.Lock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Pinned = !s.entries[i].Pinned
			pinned = s.entries[i].Pinned
			ok = true
			break
		}
	}
	s.mu.Unlock()

	if ok {
		s.persist(ctx)
	}
	return pinned, ok
}

// ClearUnpinned removes all unpinned entries, preserving the relative
// order of pinned ones, and returns the number removed.
func (s *Service) ClearUnpinned(ctx context.Context) int {
	s.mu.Lock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Pinned {
			kept = append(kept, e)
		}
	}
	removed := len(s.entries) - len(kept)
	s.entries = kept
	s.mu.Unlock()

	if removed > 0 {
		s.persist(ctx)
	}
	return removed
}

// SetMaxEntries updates the history capacity. Existing entries are not
// retroactively evicted.
func (s *Service) SetMaxEntries(ctx context.Context, n int) {
	s.mu.Lock()
	s.maxEntries = n
	s.mu.Unlock()

	s.persist(ctx)
}

// MaxEntries returns the current capacity.
func (s *Service) MaxEntries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxEntries
}

// Len returns the number of retained entries.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Entries returns a copy of all entries, newest first.
func (s *Service) Entries() []clip.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]clip.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Filtered returns copies of the entries whose content matches query
// (case-insensitive substring), preserving order. An empty query
// matches everything.
func (s *Service) Filtered(query string) []clip.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]clip.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Matches(query) {
			out = append(out, e)
		}
	}
	return out
}

// Get returns the entry with the given ID.
func (s *Service) Get(id string) (clip.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return clip.Entry{}, false
}

// Flush persists the current state, returning any error. Used for the
// final save at process exit.
func (s *Service) Flush(ctx context.Context) error {
	return s.store.Save(ctx, s.snapshot())
}

// persist saves the current state, logging failures instead of
// propagating them.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.snapshot()); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist history")
	}
}

func (s *Service) snapshot() clip.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]clip.Entry, len(s.entries))
	copy(entries, s.entries)
	return clip.Snapshot{Entries: entries, MaxEntries: s.maxEntries}
}
