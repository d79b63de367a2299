package models

// Job is a vacancy found and scored by the backend.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Description *string   `json:"description,omitempty"`
	SalaryFrom  *int64    `json:"salary_from,omitempty"`
	SalaryTo    *int64    `json:"salary_to,omitempty"`
	Currency    string    `json:"currency"`
	Location    *string   `json:"location,omitempty"`
	URL         string    `json:"url"`
	MatchScore  *float64  `json:"match_score,omitempty"`
	LLMAnalysis *string   `json:"llm_analysis,omitempty"`
	Platform    string    `json:"platform"`
	CreatedAt   Timestamp `json:"created_at"`
}

// Application statuses reported by the backend.
const (
	ApplicationStatusPending = "pending"
	ApplicationStatusSent    = "sent"
)

// JobApplication is the backend record of a submitted application. The
// embedded job may be partial (title, company and URL only).
type JobApplication struct {
	ID               int64     `json:"id"`
	Job              Job       `json:"job"`
	Status           string    `json:"status"`
	AppliedAt        Timestamp `json:"applied_at"`
	ResponseReceived bool      `json:"response_received"`
	EmailsSentCount  int       `json:"emails_sent_count"`
}

// JobSearchRequest is the body of POST /jobs/search. Matching semantics are
// entirely the backend's.
type JobSearchRequest struct {
	UserID          int64    `json:"user_id"`
	Keywords        []string `json:"keywords,omitempty"`
	Location        *string  `json:"location,omitempty"`
	SalaryFrom      *int64   `json:"salary_from,omitempty"`
	ExperienceLevel *string  `json:"experience_level,omitempty"`
}

// ApplyRequest is the body of POST /jobs/apply.
type ApplyRequest struct {
	JobIDs            []int64 `json:"job_ids"`
	ResumeID          int64   `json:"resume_id"`
	CustomCoverLetter *string `json:"custom_cover_letter,omitempty"`
}

// Per-job apply outcomes.
const (
	ApplyStatusSuccess        = "success"
	ApplyStatusAlreadyApplied = "already_applied"
)

// ApplyResult is the outcome for one job of a batch apply.
type ApplyResult struct {
	JobID      int64  `json:"job_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	EmailsSent *int   `json:"emails_sent,omitempty"`
}

// ApplyResponse aggregates a batch apply.
type ApplyResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Results []ApplyResult `json:"results"`
}
