package auditlog

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is the in-memory append-only log. Entry ids are sequential and
// assigned on append; the log is unbounded for the process lifetime.
type MemoryRepo struct {
	mu      sync.Mutex
	entries []Entry
	nextID  int64
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{nextID: 1} }

func (r *MemoryRepo) Append(ctx context.Context, e Entry) (Entry, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *MemoryRepo) All(ctx context.Context) ([]Entry, error) {
	_ = ctx
	return r.filter(func(Entry) bool { return true }), nil
}

func (r *MemoryRepo) ByEntity(ctx context.Context, entityType string, entityID int64) ([]Entry, error) {
	_ = ctx
	return r.filter(func(e Entry) bool {
		return e.EntityType == entityType && e.EntityID == entityID
	}), nil
}

func (r *MemoryRepo) ByUser(ctx context.Context, userID string) ([]Entry, error) {
	_ = ctx
	return r.filter(func(e Entry) bool { return e.UserID == userID }), nil
}

func (r *MemoryRepo) ByTimeRange(ctx context.Context, start, end time.Time) ([]Entry, error) {
	_ = ctx
	return r.filter(func(e Entry) bool {
		return !e.Timestamp.Before(start) && !e.Timestamp.After(end)
	}), nil
}

// filter returns matching entries newest first. Ids are monotonic, so sorting
// by id descending is equivalent to timestamp order with a stable tiebreak.
func (r *MemoryRepo) filter(keep func(Entry) bool) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, 0)
	for _, e := range r.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}
