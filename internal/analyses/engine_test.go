package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"atsmatch-backend/internal/llm"
	"atsmatch-backend/internal/plans"
)

type staticLLM struct {
	resp string
	err  error
}

func (s staticLLM) Analyze(ctx context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.resp), nil
}

const fullResponse = `{
	"atsScore": 88,
	"missingKeywords": ["Kubernetes", "Go", "Terraform"],
	"improvements": ["Add container orchestration experience"],
	"recommendations": ["Mention distributed systems projects"],
	"tailoredResume": "Rewritten resume",
	"coverLetter": "Dear hiring manager",
	"interviewQA": ["Q: Describe a Go service you built."]
}`

func TestAnalyzeFreeTierStripsPremiumFields(t *testing.T) {
	engine := &Engine{LLM: staticLLM{resp: fullResponse}}

	res, outcome := engine.Analyze(context.Background(), "resume", "jd", plans.TierFree)
	if outcome != OutcomeParsed {
		t.Fatalf("outcome = %s, want %s", outcome, OutcomeParsed)
	}
	if res.TailoredResume != "" || res.CoverLetter != "" || res.InterviewQA != nil {
		t.Errorf("FREE result carries premium content: %+v", res)
	}
	if res.ATSScore != 88 || len(res.MissingKeywords) != 3 {
		t.Errorf("base fields must survive gating: %+v", res)
	}
}

func TestAnalyzeProTierKeepsAllButInterviewQA(t *testing.T) {
	engine := &Engine{LLM: staticLLM{resp: fullResponse}}

	res, _ := engine.Analyze(context.Background(), "resume", "jd", plans.TierPro)
	if res.TailoredResume == "" || res.CoverLetter == "" {
		t.Errorf("PRO result missing entitled fields: %+v", res)
	}
	if res.InterviewQA != nil {
		t.Errorf("PRO result must not carry interview QA: %v", res.InterviewQA)
	}
}

func TestAnalyzeProPlusKeepsEverything(t *testing.T) {
	engine := &Engine{LLM: staticLLM{resp: fullResponse}}

	for _, tier := range []plans.Tier{plans.TierProPlus, plans.TierLifetime} {
		res, _ := engine.Analyze(context.Background(), "resume", "jd", tier)
		if res.TailoredResume == "" || res.CoverLetter == "" || len(res.InterviewQA) == 0 {
			t.Errorf("%s result missing entitled fields: %+v", tier, res)
		}
	}
}

func TestAnalyzeParseFallback(t *testing.T) {
	engine := &Engine{LLM: staticLLM{resp: "I am not JSON, sorry"}}

	res, outcome := engine.Analyze(context.Background(), "resume", "jd", plans.TierProPlus)
	if outcome != OutcomeParseFallback {
		t.Fatalf("outcome = %s, want %s", outcome, OutcomeParseFallback)
	}
	if res.ATSScore < 0 || res.ATSScore > 100 {
		t.Errorf("fallback score out of range: %d", res.ATSScore)
	}
	if len(res.Improvements) == 0 || len(res.Recommendations) == 0 {
		t.Errorf("fallback lists must be non-empty: %+v", res)
	}
}

func TestAnalyzeProviderFallback(t *testing.T) {
	engine := &Engine{LLM: staticLLM{err: errors.New("connection refused")}}

	res, outcome := engine.Analyze(context.Background(), "resume", "jd", plans.TierFree)
	if outcome != OutcomeProviderFallback {
		t.Fatalf("outcome = %s, want %s", outcome, OutcomeProviderFallback)
	}
	if res.TailoredResume != "" || res.CoverLetter != "" || res.InterviewQA != nil {
		t.Errorf("fallback must also be gated for FREE: %+v", res)
	}
	if res.ATSScore != providerFallback().ATSScore {
		t.Errorf("score = %d, want provider fallback score", res.ATSScore)
	}
}

func TestAnalyzeFallbacksAreGatedForPro(t *testing.T) {
	engine := &Engine{LLM: staticLLM{resp: "{broken"}}

	res, _ := engine.Analyze(context.Background(), "resume", "jd", plans.TierPro)
	if res.TailoredResume == "" || res.CoverLetter == "" {
		t.Errorf("PRO parse fallback should keep entitled placeholders: %+v", res)
	}
	if res.InterviewQA != nil {
		t.Errorf("PRO parse fallback must not carry interview QA: %v", res.InterviewQA)
	}
}

func TestAnalyzeEmptyResumeStillProducesResult(t *testing.T) {
	engine := &Engine{LLM: staticLLM{resp: fullResponse}}

	res, outcome := engine.Analyze(context.Background(), "", "a valid job description mentioning Kubernetes and Go", plans.TierFree)
	if outcome != OutcomeParsed {
		t.Fatalf("outcome = %s", outcome)
	}
	if res.ATSScore < 0 || res.ATSScore > 100 {
		t.Errorf("score out of range: %d", res.ATSScore)
	}
}
