package usage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"atsmatch-backend/internal/plans"
)

type staticAnalyses struct {
	summary AnalysisSummary
	err     error
}

func (s staticAnalyses) LatestByUser(ctx context.Context, userID string) (AnalysisSummary, error) {
	return s.summary, s.err
}

func newUsageRouter(svc *Service, source AnalysisSource, tier plans.Tier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Set("userPlan", string(tier))
		c.Next()
	})
	NewHandler(svc, source).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestGetUsageFreePlan(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	if err := repo.Record(context.Background(), Event{
		UserID: "user-1", Action: ActionAnalyze, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("seed usage: %v", err)
	}

	last := AnalysisSummary{ID: "analysis-1", ATSScore: 72, CreatedAt: time.Now().UTC()}
	r := newUsageRouter(svc, staticAnalyses{summary: last}, plans.TierFree)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/usage", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Plan         string           `json:"plan"`
		TodayUsage   int              `json:"todayUsage"`
		MonthlyUsage int              `json:"monthlyUsage"`
		DailyQuota   int              `json:"dailyQuota"`
		MonthlyQuota int              `json:"monthlyQuota"`
		LastAnalysis *AnalysisSummary `json:"lastAnalysis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Plan != "FREE" || resp.TodayUsage != 1 || resp.DailyQuota != 1 {
		t.Errorf("resp = %+v", resp)
	}
	if resp.LastAnalysis == nil || resp.LastAnalysis.ID != "analysis-1" {
		t.Errorf("lastAnalysis = %+v", resp.LastAnalysis)
	}
}

func TestGetUsageNoAnalysesYet(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	r := newUsageRouter(svc, staticAnalyses{err: ErrNoAnalyses}, plans.TierPro)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/usage", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := resp["lastAnalysis"]; ok {
		t.Errorf("lastAnalysis present for user with no analyses: %v", resp)
	}
	if resp["monthlyQuota"] != float64(20) {
		t.Errorf("monthlyQuota = %v, want 20", resp["monthlyQuota"])
	}
}
