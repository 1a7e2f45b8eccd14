package users

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atsmatch-backend/internal/plans"
	"atsmatch-backend/internal/shared/server/middleware"
	"atsmatch-backend/internal/shared/server/respond"
)

// Handler exposes the current-user endpoint.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches user routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.getMe)
}

// getMe echoes the authenticated identity plus the resolved entitlement.
// The user row is upserted on first sight so later plan lookups at analysis
// read time have a record to consult.
func (h *Handler) getMe(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	tier := middleware.UserPlanFromContext(c)

	user, err := h.Repo.GetByID(c.Request.Context(), userID)
	if errors.Is(err, ErrNotFound) {
		user = User{
			ID:        userID,
			Email:     middleware.UserEmailFromContext(c),
			Plan:      tier,
			CreatedAt: time.Now().UTC(),
		}
		if err := h.Repo.Upsert(c.Request.Context(), user); err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
			return
		}
	} else if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}

	ent := plans.Resolve(user.Plan)
	respond.OK(c, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"plan":  user.Plan,
		"entitlement": gin.H{
			"dailyQuota":      ent.DailyQuota,
			"monthlyQuota":    ent.MonthlyQuota,
			"tailoredResume":  ent.TailoredResume,
			"coverLetter":     ent.CoverLetter,
			"interviewQA":     ent.InterviewQA,
			"fullKeywordList": ent.FullKeywordList,
			"export":          ent.Export,
		},
	})
}
