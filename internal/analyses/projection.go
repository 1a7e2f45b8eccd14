package analyses

import (
	"time"

	"atsmatch-backend/internal/plans"
)

// Projection is the plan-filtered read view of an analysis. Score and the
// three always-present lists are unconditional; premium fields appear only
// when the owner's current plan entitles them and the stored record has
// content for them.
type Projection struct {
	ID              string     `json:"id"`
	ATSScore        int        `json:"atsScore"`
	MissingKeywords []string   `json:"missingKeywords"`
	Improvements    []string   `json:"improvements"`
	Recommendations []string   `json:"recommendations"`
	UserPlan        plans.Tier `json:"userPlan"`
	CreatedAt       time.Time  `json:"createdAt"`
	TailoredResume  string     `json:"tailoredResume,omitempty"`
	CoverLetter     string     `json:"coverLetter,omitempty"`
	InterviewQA     []string   `json:"interviewQA,omitempty"`
}

func project(analysis Analysis, tier plans.Tier) Projection {
	ent := plans.Resolve(tier)
	p := Projection{
		ID:              analysis.ID,
		ATSScore:        analysis.ATSScore,
		MissingKeywords: analysis.MissingKeywords,
		Improvements:    analysis.Improvements,
		Recommendations: analysis.Recommendations,
		UserPlan:        tier,
		CreatedAt:       analysis.CreatedAt,
	}
	if ent.TailoredResume {
		p.TailoredResume = analysis.TailoredResume
	}
	if ent.CoverLetter {
		p.CoverLetter = analysis.CoverLetter
	}
	if ent.InterviewQA {
		p.InterviewQA = analysis.InterviewQA
	}
	return p
}
