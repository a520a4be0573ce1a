package eventlog

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps the journal in process memory. When maxEntries is
// positive the oldest entries are dropped as new ones arrive.
type MemoryRepository struct {
	mu         sync.RWMutex
	entries    []Entry
	nextID     int64
	maxEntries int
	now        func() time.Time
}

// NewMemoryRepository creates an empty journal store holding at most
// maxEntries entries; maxEntries <= 0 means unbounded.
func NewMemoryRepository(maxEntries int) *MemoryRepository {
	return &MemoryRepository{nextID: 1, maxEntries: maxEntries, now: time.Now}
}

func (r *MemoryRepository) LogEvent(_ context.Context, eventType, sessionID string, payload map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, Entry{
		ID:        r.nextID,
		EventType: eventType,
		SessionID: sessionID,
		Payload:   payload,
		CreatedAt: r.now().UTC(),
	})
	r.nextID++

	if r.maxEntries > 0 && len(r.entries) > r.maxEntries {
		r.entries = append([]Entry(nil), r.entries[len(r.entries)-r.maxEntries:]...)
	}
	return nil
}

func (r *MemoryRepository) GetEvents(_ context.Context, filter Filter) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		if filter.SessionID != "" && e.SessionID != filter.SessionID {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *MemoryRepository) Prune(_ context.Context, keep int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	drop := len(r.entries) - keep
	if drop <= 0 {
		return 0, nil
	}
	r.entries = append([]Entry(nil), r.entries[drop:]...)
	return int64(drop), nil
}
