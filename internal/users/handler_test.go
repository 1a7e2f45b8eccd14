package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"atsmatch-backend/internal/plans"
)

func newMeRouter(repo Repo, tier plans.Tier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Set("userEmail", "u@example.com")
		c.Set("userPlan", string(tier))
		c.Next()
	})
	NewHandler(repo).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestGetMeSeedsUnknownUser(t *testing.T) {
	repo := NewMemoryRepo()
	r := newMeRouter(repo, plans.TierFree)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		ID          string         `json:"id"`
		Email       string         `json:"email"`
		Plan        string         `json:"plan"`
		Entitlement map[string]any `json:"entitlement"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != "user-1" || resp.Email != "u@example.com" || resp.Plan != "FREE" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Entitlement["dailyQuota"] != float64(1) {
		t.Errorf("dailyQuota = %v, want 1", resp.Entitlement["dailyQuota"])
	}

	// First sight persists the row.
	user, err := repo.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.Plan != plans.TierFree {
		t.Errorf("stored plan = %s", user.Plan)
	}
}

func TestGetMePrefersStoredPlan(t *testing.T) {
	repo := NewMemoryRepo()
	if err := repo.Upsert(context.Background(), User{
		ID: "user-1", Email: "u@example.com", Plan: plans.TierProPlus,
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	// Token still claims FREE; the stored row wins.
	r := newMeRouter(repo, plans.TierFree)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Plan        string         `json:"plan"`
		Entitlement map[string]any `json:"entitlement"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Plan != "PRO_PLUS" {
		t.Errorf("plan = %s, want PRO_PLUS", resp.Plan)
	}
	if resp.Entitlement["interviewQA"] != true {
		t.Errorf("interviewQA = %v, want true", resp.Entitlement["interviewQA"])
	}
}
