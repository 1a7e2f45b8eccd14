package analyses

import "atsmatch-backend/internal/plans"

// applyGate strips premium fields the entitlement does not cover. Gating
// happens here, post-hoc, regardless of what the model produced: a FREE
// result never carries tailored-resume, cover-letter or interview-QA
// content, it is not merely hidden by the caller.
func applyGate(res Result, ent plans.Entitlement) Result {
	if !ent.TailoredResume {
		res.TailoredResume = ""
	}
	if !ent.CoverLetter {
		res.CoverLetter = ""
	}
	if !ent.InterviewQA {
		res.InterviewQA = nil
	}
	return res
}
