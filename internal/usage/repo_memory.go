package usage

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores usage events in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	events []Event
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Record appends the event.
func (r *MemoryRepo) Record(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// CountSince counts events for the user and action at or after since.
func (r *MemoryRepo) CountSince(ctx context.Context, userID, action string, since time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, e := range r.events {
		if e.UserID == userID && e.Action == action && !e.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}
