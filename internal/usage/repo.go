package usage

import (
	"context"
	"time"
)

// Repo defines persistence operations for usage events.
type Repo interface {
	Record(ctx context.Context, event Event) error
	CountSince(ctx context.Context, userID, action string, since time.Time) (int, error)
}
