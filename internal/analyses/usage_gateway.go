package analyses

import (
	"context"
	"errors"

	"atsmatch-backend/internal/usage"
)

// UsageGateway adapts the analyses repo to the usage endpoint's read-only
// view of a user's latest analysis.
type UsageGateway struct {
	Repo Repo
}

// LatestByUser implements usage.AnalysisSource.
func (g UsageGateway) LatestByUser(ctx context.Context, userID string) (usage.AnalysisSummary, error) {
	analysis, err := g.Repo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return usage.AnalysisSummary{}, usage.ErrNoAnalyses
		}
		return usage.AnalysisSummary{}, err
	}
	return usage.AnalysisSummary{
		ID:        analysis.ID,
		ATSScore:  analysis.ATSScore,
		CreatedAt: analysis.CreatedAt,
	}, nil
}
