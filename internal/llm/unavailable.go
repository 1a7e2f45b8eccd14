package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Unavailable is a Client used when no provider could be configured.
// Every call fails, which callers treat as a provider outage.
type Unavailable struct {
	Reason string
}

func (u Unavailable) Analyze(ctx context.Context, in AnalyzeInput) (json.RawMessage, error) {
	return nil, fmt.Errorf("llm provider unavailable: %s", u.Reason)
}
