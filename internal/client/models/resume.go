package models

// Resume is an uploaded document plus the fields the backend extracted from it.
type Resume struct {
	ID                int64     `json:"id"`
	Filename          string    `json:"filename"`
	PositionTitle     *string   `json:"position_title,omitempty"`
	Skills            []string  `json:"skills"`
	ExperienceYears   *int      `json:"experience_years,omitempty"`
	Location          *string   `json:"location,omitempty"`
	SalaryExpectation *string   `json:"salary_expectation,omitempty"`
	CreatedAt         Timestamp `json:"created_at"`
}
