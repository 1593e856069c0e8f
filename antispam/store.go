package antispam

import (
	"context"
	"sync"
	"time"
)

// Store keeps the per-sender state the heuristics need: the last-seen
// timestamp and a bounded history of recent messages. Implementations are
// injected into the service; there is no process-wide state.
type Store interface {
	// Touch records now as the sender's last-seen time and returns the
	// previous one. ok is false on first contact.
	Touch(ctx context.Context, senderID string, now time.Time) (last time.Time, ok bool, err error)

	// History returns the sender's recent messages, newest last.
	History(ctx context.Context, senderID string) ([]string, error)

	// Remember appends text to the sender's history, evicting the oldest
	// entries beyond the store's bound.
	Remember(ctx context.Context, senderID string, text string) error
}

// MemoryStore is the in-process Store: a mutex-guarded map with a bounded
// history per sender.
type MemoryStore struct {
	mu         sync.Mutex
	maxHistory int
	entries    map[string]*memoryEntry
}

type memoryEntry struct {
	last    time.Time
	history []string
}

func NewMemoryStore(maxHistory int) *MemoryStore {
	if maxHistory <= 0 {
		maxHistory = 10
	}
	return &MemoryStore{
		maxHistory: maxHistory,
		entries:    make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) Touch(_ context.Context, senderID string, now time.Time) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(senderID)
	last := entry.last
	entry.last = now
	return last, !last.IsZero(), nil
}

func (s *MemoryStore) History(_ context.Context, senderID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[senderID]
	if !ok {
		return nil, nil
	}
	history := make([]string, len(entry.history))
	copy(history, entry.history)
	return history, nil
}

func (s *MemoryStore) Remember(_ context.Context, senderID string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(senderID)
	entry.history = append(entry.history, text)
	if len(entry.history) > s.maxHistory {
		entry.history = entry.history[len(entry.history)-s.maxHistory:]
	}
	return nil
}

func (s *MemoryStore) entry(senderID string) *memoryEntry {
	entry, ok := s.entries[senderID]
	if !ok {
		entry = &memoryEntry{}
		s.entries[senderID] = entry
	}
	return entry
}
