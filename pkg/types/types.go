package types

// Job sources the form offers. Referral is the only one that carries extra
// data (the referrer's name).
const (
	SourceLinkedIn = "LinkedIn"
	SourceIndeed   = "Indeed"
	SourceReferral = "Referral"
)

// TailorRequest is one form submission: pasted resume, pasted job posting,
// where the job was found, and the model temperature.
type TailorRequest struct {
	ResumeText   string  `json:"resume_text"`
	JobDescText  string  `json:"job_desc_text"`
	JobSource    string  `json:"job_source"`
	ReferrerName string  `json:"referrer_name,omitempty"`
	Temperature  float32 `json:"temperature"`
}

// DetectedInfo is what the heuristic extractors pulled out of the raw text.
// Empty fields mean "not found", not failure.
type DetectedInfo struct {
	Name     string   `json:"name"`
	JobTitle string   `json:"job_title"`
	Company  string   `json:"company"`
	Keywords []string `json:"keywords"`
}

// RoleProfile is the model's read of the posting: title, the skills that
// matter most, and the tone the resume should take.
type RoleProfile struct {
	RoleTitle string   `json:"role_title"`
	TopSkills []string `json:"top_skills"`
	Tone      string   `json:"tone"`
	Summary   string   `json:"summary"`
}

type TailorResult struct {
	Detected          DetectedInfo `json:"detected"`
	RoleProfile       RoleProfile  `json:"role_profile"`
	ScoreBefore       float64      `json:"score_before"`
	ScoreAfter        float64      `json:"score_after"`
	TailoredResume    string       `json:"tailored_resume"`
	CoverLetter       string       `json:"cover_letter"`
	HighlightedResume string       `json:"highlighted_resume"`
}

// ExportRequest asks for a .docx rendering of a text block.
type ExportRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
