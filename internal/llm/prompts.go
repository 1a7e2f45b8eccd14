package llm

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed prompts/ats_v1.txt
var promptATSV1 string

// SystemPrompt returns the comparison instruction sent as the system message.
func SystemPrompt() string {
	return strings.TrimSpace(promptATSV1)
}

// UserPrompt combines resume and job description into the user message.
func UserPrompt(input AnalyzeInput) string {
	resume := input.ResumeText
	if strings.TrimSpace(resume) == "" {
		resume = "N/A"
	}
	return fmt.Sprintf("Please analyze this resume against the job description:\n\nResume:\n%s\n\nJob Description:\n%s\n\nProvide a comprehensive ATS analysis with the JSON structure specified.", resume, input.JobDescription)
}
