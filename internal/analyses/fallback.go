package analyses

// Deterministic placeholder results. The product contract is "always return
// something analyzable": a model hiccup substitutes one of these instead of
// surfacing an error. The two variants are distinguishable by wording and
// score so fallback rates can be told apart in stored data.

// parseFallback is substituted when the model responded but its output
// could not be parsed into the schema.
func parseFallback() Result {
	return Result{
		ATSScore:        65,
		MissingKeywords: []string{"Specific skills from job description"},
		Improvements:    []string{"Add more relevant keywords", "Improve formatting"},
		Recommendations: []string{"Tailor resume to job description"},
		TailoredResume:  "Tailored resume content would be here",
		CoverLetter:     "Cover letter content would be here",
		InterviewQA:     []string{"Q&A content would be here"},
	}
}

// providerFallback is substituted when the model invocation itself failed
// (network, provider error, or timeout).
func providerFallback() Result {
	return Result{
		ATSScore:        60,
		MissingKeywords: []string{"Keywords from job description"},
		Improvements:    []string{"Improve keyword matching", "Add relevant experience"},
		Recommendations: []string{"Customize resume for this position"},
		TailoredResume:  "Basic tailored resume",
		CoverLetter:     "Basic cover letter",
		InterviewQA:     []string{"Sample interview questions"},
	}
}
