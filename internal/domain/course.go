package domain

// CourseStatus type for the course lifecycle
type CourseStatus string

const (
	CourseActive   CourseStatus = "Active"
	CourseArchived CourseStatus = "Archived"
)

// Course represents a training course. Courses are never deleted physically;
// the status toggle (Active <-> Archived) is the deletion surrogate.
// StartDate and EndDate are ISO 8601 strings as delivered by the backend.
type Course struct {
	ID                int          `json:"id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	StartDate         string       `json:"startDate"`
	EndDate           string       `json:"endDate"`
	DurationDays      int          `json:"durationDays"`
	Status            CourseStatus `json:"status"`
	CreatedBy         int          `json:"createdBy"`
	CreatedByUserName string       `json:"createdByUserName"`
}

func (c *Course) IsActive() bool {
	return c.Status == CourseActive
}

// CourseWithRole is the server-side "my courses" projection: a course
// enriched with the role the user holds inside it. Read-only on the client.
type CourseWithRole struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	DurationDays int          `json:"durationDays"`
	Status       CourseStatus `json:"status"`
	CreatedAt    string       `json:"createdAt"`
	UpdatedAt    string       `json:"updatedAt"`
	IsAvailable  bool         `json:"isAvailable"`
	RoleInCourse Role         `json:"roleInCourse"`
}
