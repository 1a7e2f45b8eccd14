package analyses

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atsmatch-backend/internal/shared/server/middleware"
	"atsmatch-backend/internal/shared/server/respond"
	"atsmatch-backend/internal/usage"
)

// maxResumeBytes caps uploaded resume size.
const maxResumeBytes = 10 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.runAnalysis)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
}

func (h *Handler) runAnalysis(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	tier := middleware.UserPlanFromContext(c)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	if fileHeader.Size > maxResumeBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file too large", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file unreadable", nil)
		return
	}
	defer file.Close()
	resume, err := io.ReadAll(io.LimitReader(file, maxResumeBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file unreadable", nil)
		return
	}

	jobDescription := c.PostForm("jobDescription")

	result, err := h.Svc.Run(c.Request.Context(), userID, tier, resume, jobDescription)
	if err != nil {
		var verr ValidationError
		switch {
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Msg, nil)
		case errors.Is(err, usage.ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached", "Usage limit exceeded. Please upgrade your plan.", []map[string]string{
				{"field": "usage", "issue": "limit_reached"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	c.Set("analysisId", result.AnalysisID)
	respond.OK(c, result)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	analysisID := c.Param("id")

	projection, err := h.Svc.Get(c.Request.Context(), analysisID, userID)
	if err != nil {
		var verr ValidationError
		switch {
		case errors.As(err, &verr):
			respond.Error(c, http.StatusBadRequest, "validation_error", verr.Msg, nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "access denied", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	respond.OK(c, projection)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	summaries, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list analyses", nil)
		return
	}

	respond.OK(c, gin.H{"analyses": summaries})
}
