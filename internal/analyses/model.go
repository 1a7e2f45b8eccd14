package analyses

import "time"

// Analysis records one comparison run. It is created exactly once per
// successful request and never updated or deleted by this core.
//
// TailoredResume, CoverLetter and InterviewQA are present only when the
// producing user's plan entitled them at creation time; absence means
// "not generated", not "empty".
type Analysis struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	ResumeText      string    `json:"resumeText"`
	JobDescription  string    `json:"jobDescription"`
	ATSScore        int       `json:"atsScore"`
	MissingKeywords []string  `json:"missingKeywords"`
	Improvements    []string  `json:"improvements"`
	Recommendations []string  `json:"recommendations"`
	TailoredResume  string    `json:"tailoredResume,omitempty"`
	CoverLetter     string    `json:"coverLetter,omitempty"`
	InterviewQA     []string  `json:"interviewQA,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
