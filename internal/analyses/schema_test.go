package analyses

import (
	"encoding/json"
	"testing"
)

func TestParseResultCleanPayload(t *testing.T) {
	raw := json.RawMessage(`{
		"atsScore": 82,
		"missingKeywords": ["Kubernetes", "Go"],
		"improvements": ["Add cloud experience"],
		"recommendations": ["Highlight distributed systems work"],
		"tailoredResume": "Tailored text",
		"coverLetter": "Cover text",
		"interviewQA": ["Q: Why Go? A: ..."]
	}`)

	res, err := parseResult(raw)
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}
	if res.ATSScore != 82 {
		t.Errorf("score = %d, want 82", res.ATSScore)
	}
	if len(res.MissingKeywords) != 2 || res.MissingKeywords[0] != "Kubernetes" {
		t.Errorf("missingKeywords = %v", res.MissingKeywords)
	}
	if res.TailoredResume != "Tailored text" || res.CoverLetter != "Cover text" {
		t.Errorf("premium fields = %q, %q", res.TailoredResume, res.CoverLetter)
	}
	if len(res.InterviewQA) != 1 {
		t.Errorf("interviewQA = %v", res.InterviewQA)
	}
}

func TestParseResultStripsMarkdownFences(t *testing.T) {
	raw := json.RawMessage("```json\n{\"atsScore\": 71, \"missingKeywords\": [], \"improvements\": [], \"recommendations\": []}\n```")
	res, err := parseResult(raw)
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}
	if res.ATSScore != 71 {
		t.Errorf("score = %d, want 71", res.ATSScore)
	}
}

func TestParseResultClampsScore(t *testing.T) {
	cases := map[string]int{
		`{"atsScore": -5}`:    0,
		`{"atsScore": 150}`:   100,
		`{"atsScore": 99.7}`:  99,
		`{"atsScore": 0}`:     0,
	}
	for raw, want := range cases {
		res, err := parseResult(json.RawMessage(raw))
		if err != nil {
			t.Fatalf("parseResult(%s): %v", raw, err)
		}
		if res.ATSScore != want {
			t.Errorf("parseResult(%s).ATSScore = %d, want %d", raw, res.ATSScore, want)
		}
	}
}

func TestParseResultListsNeverNil(t *testing.T) {
	res, err := parseResult(json.RawMessage(`{"atsScore": 50}`))
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}
	if res.MissingKeywords == nil || res.Improvements == nil || res.Recommendations == nil {
		t.Errorf("always-present lists must not be nil: %+v", res)
	}
	if res.InterviewQA != nil {
		t.Errorf("absent interviewQA must stay nil, got %v", res.InterviewQA)
	}
}

func TestParseResultDropsBlankEntries(t *testing.T) {
	res, err := parseResult(json.RawMessage(`{"atsScore": 50, "missingKeywords": [" Go ", "", "  "]}`))
	if err != nil {
		t.Fatalf("parseResult: %v", err)
	}
	if len(res.MissingKeywords) != 1 || res.MissingKeywords[0] != "Go" {
		t.Errorf("missingKeywords = %v, want [Go]", res.MissingKeywords)
	}
}

func TestParseResultRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not json at all", "{truncated", "```\n```"} {
		if _, err := parseResult(json.RawMessage(raw)); err == nil {
			t.Errorf("parseResult(%q) should fail", raw)
		}
	}
}

func TestFallbackResultsAreWellFormed(t *testing.T) {
	for name, res := range map[string]Result{
		"parse":    parseFallback(),
		"provider": providerFallback(),
	} {
		if res.ATSScore < 0 || res.ATSScore > 100 {
			t.Errorf("%s fallback score out of range: %d", name, res.ATSScore)
		}
		if len(res.Improvements) == 0 || len(res.Recommendations) == 0 || len(res.MissingKeywords) == 0 {
			t.Errorf("%s fallback has empty lists: %+v", name, res)
		}
	}
	if parseFallback().ATSScore == providerFallback().ATSScore {
		t.Error("the two fallbacks must be distinguishable by score")
	}
}
