package profiler

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Storage persists the history of generations.
// History returns at most limit records, newest first; ties on CreatedAt
// are broken by descending ID.
type Storage interface {
	CreateRequest(ctx context.Context, targetName string, wordCount int) (Record, error)
	History(ctx context.Context, limit int) ([]Record, error)
}

// MemoryStorage keeps the history in process memory.
type MemoryStorage struct {
	mu      sync.RWMutex
	records []Record
	nextID  int64
	now     func() time.Time
}

// MemoryStorageOption configures a MemoryStorage.
type MemoryStorageOption func(*MemoryStorage)

// WithStorageClock sets the clock used for CreatedAt.
func WithStorageClock(now func() time.Time) MemoryStorageOption {
	return func(s *MemoryStorage) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStorage returns an empty in-memory history.
func NewMemoryStorage(opts ...MemoryStorageOption) *MemoryStorage {
	s := &MemoryStorage{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRequest appends a record with the next id.
func (s *MemoryStorage) CreateRequest(ctx context.Context, targetName string, wordCount int) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	rec := Record{
		ID:         s.nextID,
		TargetName: targetName,
		WordCount:  wordCount,
		CreatedAt:  s.now().UTC(),
	}
	s.records = append(s.records, rec)
	return rec, nil
}

// History returns a copy of the newest records.
func (s *MemoryStorage) History(ctx context.Context, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := slices.Clone(s.records)
	s.mu.RUnlock()

	slices.SortFunc(out, compareRecords)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []Record{}
	}
	return out, nil
}

func compareRecords(a, b Record) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}
