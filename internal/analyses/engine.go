package analyses

import (
	"context"
	"time"

	"atsmatch-backend/internal/llm"
	"atsmatch-backend/internal/plans"
	"atsmatch-backend/internal/shared/metrics"
	"atsmatch-backend/internal/shared/telemetry"
)

// Outcome tags how a result was produced. The user-facing shape is
// identical either way; the tag feeds metrics so fallback rates stay
// observable.
type Outcome string

const (
	OutcomeParsed           Outcome = "parsed"
	OutcomeParseFallback    Outcome = "parse_fallback"
	OutcomeProviderFallback Outcome = "provider_fallback"
)

const defaultTimeout = 60 * time.Second

// Engine runs one model-backed comparison and normalizes its output. It has
// no side effects beyond the outbound model call; persistence is the
// service's job.
type Engine struct {
	LLM     llm.Client
	Timeout time.Duration
}

// Analyze compares resume text against a job description for the given
// tier. It never returns an error: a failed invocation or unparseable
// output is absorbed into a deterministic fallback, and plan gating is
// applied to whatever result comes out. A single model attempt is made,
// bounded by the configured timeout.
func (e *Engine) Analyze(ctx context.Context, resumeText, jobDescription string, tier plans.Tier) (Result, Outcome) {
	ent := plans.Resolve(tier)

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := e.LLM.Analyze(ctx, llm.AnalyzeInput{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	})
	if err != nil {
		metrics.IncProviderFallback()
		telemetry.Warn("analysis.provider_fallback", map[string]any{"error": err.Error()})
		return applyGate(providerFallback(), ent), OutcomeProviderFallback
	}

	result, err := parseResult(raw)
	if err != nil {
		metrics.IncParseFallback()
		telemetry.Warn("analysis.parse_fallback", map[string]any{"error": err.Error()})
		return applyGate(parseFallback(), ent), OutcomeParseFallback
	}

	return applyGate(result, ent), OutcomeParsed
}
