package llm

import (
	"context"
	"encoding/json"
)

// Client abstracts LLM providers for resume-to-job comparison.
type Client interface {
	Analyze(ctx context.Context, input AnalyzeInput) (json.RawMessage, error)
}

// AnalyzeInput captures the inputs for one comparison request.
type AnalyzeInput struct {
	ResumeText     string
	JobDescription string
}
