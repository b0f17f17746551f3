package resumes

import "time"

// Resume is a stored resume record owned by a user.
type Resume struct {
	ID         int64     `json:"resume_id"`
	UserID     int64     `json:"user_id"`
	TemplateID int       `json:"template_id"`
	Education  string    `json:"education"`
	Skills     string    `json:"skills"`
	Experience string    `json:"experience"`
	Projects   string    `json:"projects"`
	AIContent  string    `json:"ai_content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DefaultTemplateID is assigned when the caller does not pick a template.
const DefaultTemplateID = 1

// Summary is a resume row joined with its owner's name for the admin listing.
type Summary struct {
	ResumeID   int64     `json:"resume_id"`
	UserID     int64     `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	TemplateID int       `json:"template_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateFields accumulates optional resume fields for a partial update.
// Nil pointers mean "not provided".
type UpdateFields struct {
	TemplateID *int
	Education  *string
	Skills     *string
	Experience *string
	Projects   *string
	AIContent  *string
}

// Empty reports whether no field is present.
func (f UpdateFields) Empty() bool {
	return f.TemplateID == nil && f.Education == nil && f.Skills == nil &&
		f.Experience == nil && f.Projects == nil && f.AIContent == nil
}

// MonthlyCount is a per-calendar-month resume count. Month is 1-12,
// aggregated across years.
type MonthlyCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}
