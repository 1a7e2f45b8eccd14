package analyses

import "context"

// Repo defines persistence operations for analyses. Records are write-once:
// there is no update or delete path.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error)
	LatestByUser(ctx context.Context, userID string) (Analysis, error)
}
