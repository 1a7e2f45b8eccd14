package analyses

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"atsmatch-backend/internal/extract"
	"atsmatch-backend/internal/plans"
	"atsmatch-backend/internal/shared/metrics"
	"atsmatch-backend/internal/shared/telemetry"
	"atsmatch-backend/internal/usage"
	"atsmatch-backend/internal/users"
)

// Service ties the limiter, extractor, engine and stores into the two core
// operations: run an analysis and read one back.
type Service struct {
	Repo   Repo
	Users  users.Repo
	Usage  *usage.Service
	Engine *Engine
}

// RunResult is the immediate response to a successful analysis request.
// MissingKeywords is capped for tiers without the full-keyword-list feature;
// premium fields are already gated by the engine.
type RunResult struct {
	AnalysisID      string   `json:"analysisId"`
	ATSScore        int      `json:"atsScore"`
	MissingKeywords []string `json:"missingKeywords"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
	TailoredResume  string   `json:"tailoredResume,omitempty"`
	CoverLetter     string   `json:"coverLetter,omitempty"`
	InterviewQA     []string `json:"interviewQA,omitempty"`
}

// Run executes one analysis request end to end: quota check, text
// extraction, model comparison, persistence, usage event. Quota and
// validation failures happen before any side effects.
func (s *Service) Run(ctx context.Context, userID string, tier plans.Tier, resume []byte, jobDescription string) (RunResult, error) {
	if userID == "" {
		return RunResult{}, errors.New("userID is required")
	}
	if len(resume) == 0 {
		return RunResult{}, ValidationError{Msg: "resume file is required"}
	}
	if strings.TrimSpace(jobDescription) == "" {
		return RunResult{}, ValidationError{Msg: "job description is required"}
	}

	if s.Usage != nil && !s.Usage.MayProceed(ctx, userID, tier) {
		metrics.IncUsageDenied()
		return RunResult{}, usage.ErrLimitReached
	}

	// Empty extracted text is a low-quality input, not a failure: the
	// comparison still runs and degrades gracefully.
	resumeText := extract.Text(resume)

	metrics.IncAnalysisStarted()
	startedAt := time.Now().UTC()

	result, outcome := s.Engine.Analyze(ctx, resumeText, jobDescription, tier)

	analysis := Analysis{
		ID:              uuid.NewString(),
		UserID:          userID,
		ResumeText:      resumeText,
		JobDescription:  jobDescription,
		ATSScore:        result.ATSScore,
		MissingKeywords: result.MissingKeywords,
		Improvements:    result.Improvements,
		Recommendations: result.Recommendations,
		TailoredResume:  result.TailoredResume,
		CoverLetter:     result.CoverLetter,
		InterviewQA:     result.InterviewQA,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		return RunResult{}, err
	}

	s.ensureUser(ctx, userID, tier)

	// The usage event follows the analysis write. If it fails the analysis
	// is not rolled back: one unmetered run beats losing a paid-for result.
	if s.Usage != nil {
		if err := s.Usage.RecordAnalyze(ctx, userID); err != nil {
			telemetry.Warn("usage.record_failed", map[string]any{
				"user_id":     userID,
				"analysis_id": analysis.ID,
				"error":       err.Error(),
			})
		}
	}

	completedAt := time.Now().UTC()
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0)
	telemetry.Info("analysis.completed", map[string]any{
		"user_id":     userID,
		"analysis_id": analysis.ID,
		"plan":        tier,
		"outcome":     outcome,
		"ats_score":   result.ATSScore,
		"duration_ms": float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0,
	})

	return buildRunResult(analysis, plans.Resolve(tier)), nil
}

// Get returns a plan-filtered view of an analysis. Ownership is checked
// first; the projection then follows the owner's *current* plan, re-read at
// fetch time, so a downgraded user loses premium fields on existing records.
func (s *Service) Get(ctx context.Context, analysisID, requesterID string) (Projection, error) {
	if analysisID == "" {
		return Projection{}, ValidationError{Msg: "analysis id is required"}
	}

	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		return Projection{}, err
	}
	if analysis.UserID != requesterID {
		return Projection{}, ErrForbidden
	}

	tier := s.currentPlan(ctx, analysis.UserID)
	return project(analysis, tier), nil
}

// List returns summaries of a user's analyses, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Summary, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	items, err := s.Repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(items))
	for _, a := range items {
		out = append(out, Summary{ID: a.ID, ATSScore: a.ATSScore, CreatedAt: a.CreatedAt})
	}
	return out, nil
}

// Summary is the list-view slice of an analysis.
type Summary struct {
	ID        string    `json:"id"`
	ATSScore  int       `json:"atsScore"`
	CreatedAt time.Time `json:"createdAt"`
}

// currentPlan reads the owner's plan at fetch time. A missing user record
// resolves to FREE so a stale row can never unlock premium fields.
func (s *Service) currentPlan(ctx context.Context, userID string) plans.Tier {
	if s.Users == nil {
		return plans.TierFree
	}
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			telemetry.Error("analysis.plan_lookup_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return plans.TierFree
	}
	return user.Plan
}

// ensureUser seeds a user row on first analysis so read-time plan lookups
// have a record. Existing rows are untouched: the plan column belongs to
// the billing integration.
func (s *Service) ensureUser(ctx context.Context, userID string, tier plans.Tier) {
	if s.Users == nil {
		return
	}
	if _, err := s.Users.GetByID(ctx, userID); !errors.Is(err, users.ErrNotFound) {
		return
	}
	user := users.User{ID: userID, Plan: tier, CreatedAt: time.Now().UTC()}
	if err := s.Users.Upsert(ctx, user); err != nil {
		telemetry.Warn("analysis.user_seed_failed", map[string]any{"user_id": userID, "error": err.Error()})
	}
}

func buildRunResult(analysis Analysis, ent plans.Entitlement) RunResult {
	keywords := analysis.MissingKeywords
	if !ent.FullKeywordList && ent.KeywordLimit > 0 && len(keywords) > ent.KeywordLimit {
		keywords = keywords[:ent.KeywordLimit]
	}
	return RunResult{
		AnalysisID:      analysis.ID,
		ATSScore:        analysis.ATSScore,
		MissingKeywords: keywords,
		Improvements:    analysis.Improvements,
		Recommendations: analysis.Recommendations,
		TailoredResume:  analysis.TailoredResume,
		CoverLetter:     analysis.CoverLetter,
		InterviewQA:     analysis.InterviewQA,
	}
}
