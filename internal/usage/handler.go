package usage

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atsmatch-backend/internal/plans"
	"atsmatch-backend/internal/shared/server/middleware"
	"atsmatch-backend/internal/shared/server/respond"
)

// AnalysisSummary is the slice of an analysis the usage endpoint exposes.
type AnalysisSummary struct {
	ID        string    `json:"id"`
	ATSScore  int       `json:"atsScore"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnalysisSource lets the usage endpoint show the user's latest analysis
// without importing the analyses package.
type AnalysisSource interface {
	LatestByUser(ctx context.Context, userID string) (AnalysisSummary, error)
}

// ErrNoAnalyses is returned by AnalysisSource when the user has none.
var ErrNoAnalyses = errors.New("no analyses")

// Handler exposes usage endpoints.
type Handler struct {
	Svc      *Service
	Analyses AnalysisSource
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, analyses AnalysisSource) *Handler {
	return &Handler{Svc: svc, Analyses: analyses}
}

// RegisterRoutes attaches usage routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/usage", h.getUsage)
}

func (h *Handler) getUsage(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	tier := middleware.UserPlanFromContext(c)

	stats, err := h.Svc.GetStats(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch usage", nil)
		}
		return
	}

	ent := plans.Resolve(tier)
	resp := gin.H{
		"plan":         tier,
		"todayUsage":   stats.TodayUsage,
		"monthlyUsage": stats.MonthlyUsage,
		"dailyQuota":   ent.DailyQuota,
		"monthlyQuota": ent.MonthlyQuota,
	}

	if h.Analyses != nil {
		if last, err := h.Analyses.LatestByUser(c.Request.Context(), userID); err == nil {
			resp["lastAnalysis"] = last
		} else if !errors.Is(err, ErrNoAnalyses) {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch usage", nil)
			return
		}
	}

	respond.JSON(c, http.StatusOK, resp)
}
