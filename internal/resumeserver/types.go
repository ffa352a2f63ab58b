package resumeserver

import "github.com/anatolykoptev/go_resume/internal/engine/match"

// ResumeInput is the shared resume argument: inline text or a file path.
// Files may be PDF, DOCX, or plain text; format is detected from content.
type ResumeInput struct {
	Resume     string `json:"resume,omitempty" jsonschema:"Resume plain text"`
	ResumeFile string `json:"resume_file,omitempty" jsonschema:"Path to a resume file (PDF, DOCX, or plain text); alternative to resume"`
}

// ResumeScoreInput is the input for resume_score.
type ResumeScoreInput struct {
	ResumeInput
	JobDescription string `json:"job_description" jsonschema:"Job description text to score the resume against"`
	Label          string `json:"label,omitempty" jsonschema:"Optional label stored with the analysis history entry (e.g. company or role)"`
}

// ResumeScoreOutput is the output for resume_score.
type ResumeScoreOutput struct {
	Result      *match.ScoreResult `json:"result"`
	Suggestions []match.Suggestion `json:"suggestions"`
	Summary     string             `json:"summary"`
}

// ResumeParseInput is the input for resume_parse.
type ResumeParseInput struct {
	ResumeInput
}

// ResumeParseOutput is the output for resume_parse.
type ResumeParseOutput struct {
	Resume  *match.ExtractedResume `json:"resume"`
	Summary string                 `json:"summary"`
}

// JobRequirementsInput is the input for job_requirements.
type JobRequirementsInput struct {
	JobDescription string `json:"job_description" jsonschema:"Job description text to extract requirements from"`
}

// JobRequirementsOutput is the output for job_requirements.
type JobRequirementsOutput struct {
	Requirements *match.JobRequirements `json:"requirements"`
	Summary      string                 `json:"summary"`
}
