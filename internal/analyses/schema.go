package analyses

import (
	"encoding/json"
	"errors"
	"strings"
)

// Result is the canonical structured payload produced by one comparison.
// Score is always within [0,100]; the three always-present lists are never
// nil. Premium fields are empty unless the producing plan entitled them.
type Result struct {
	ATSScore        int      `json:"atsScore"`
	MissingKeywords []string `json:"missingKeywords"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
	TailoredResume  string   `json:"tailoredResume,omitempty"`
	CoverLetter     string   `json:"coverLetter,omitempty"`
	InterviewQA     []string `json:"interviewQA,omitempty"`
}

// rawResult tolerates the loose shapes models actually emit: fractional
// scores and missing keys.
type rawResult struct {
	ATSScore        float64  `json:"atsScore"`
	MissingKeywords []string `json:"missingKeywords"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
	TailoredResume  string   `json:"tailoredResume"`
	CoverLetter     string   `json:"coverLetter"`
	InterviewQA     []string `json:"interviewQA"`
}

// parseResult normalizes raw model output into a Result. Markdown code
// fences are stripped first; anything still unparseable is an error the
// engine converts into the parse fallback.
func parseResult(raw json.RawMessage) (Result, error) {
	cleaned := stripFences(string(raw))
	if cleaned == "" {
		return Result{}, errors.New("empty model output")
	}

	var parsed rawResult
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return Result{}, err
	}

	return Result{
		ATSScore:        clampScore(parsed.ATSScore),
		MissingKeywords: cleanList(parsed.MissingKeywords),
		Improvements:    cleanList(parsed.Improvements),
		Recommendations: cleanList(parsed.Recommendations),
		TailoredResume:  strings.TrimSpace(parsed.TailoredResume),
		CoverLetter:     strings.TrimSpace(parsed.CoverLetter),
		InterviewQA:     cleanOptionalList(parsed.InterviewQA),
	}, nil
}

// stripFences removes a wrapping ```json ... ``` block if present.
func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func clampScore(score float64) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return int(score)
	}
}

// cleanList trims entries, drops empties, and never returns nil.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// cleanOptionalList behaves like cleanList but keeps nil for absence.
func cleanOptionalList(items []string) []string {
	if items == nil {
		return nil
	}
	out := cleanList(items)
	if len(out) == 0 {
		return nil
	}
	return out
}
