package downloads

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo keeps records in memory, newest last, up to a cap. It is safe
// for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []Record
	byID    map[string]Record
	cap     int
}

// NewMemoryRepo constructs a MemoryRepo holding at most capacity records;
// zero or less means no cap.
func NewMemoryRepo(capacity int) *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Record), cap: capacity}
}

// Create stores the record, evicting the oldest when full.
func (r *MemoryRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	r.byID[rec.ID] = rec
	if r.cap > 0 && len(r.records) > r.cap {
		evicted := r.records[0]
		r.records = r.records[1:]
		delete(r.byID, evicted.ID)
	}
	return nil
}

// GetByID returns a record by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// ListRecent returns records newest first.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit, offset int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	r.mu.RLock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	r.mu.RUnlock()

	if offset >= len(out) {
		return []Record{}, nil
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	end := min(offset+limit, len(out))
	return out[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
