package domain

// CourseAssignment is the many-to-many bridge between a user and a course.
// Role here is the per-assignment role (Trainer or Trainee) and may differ
// from the user's global role. Unassignment removes the record outright,
// unlike the soft deletes elsewhere.
type CourseAssignment struct {
	ID           int    `json:"id"`
	CourseID     int    `json:"courseId,omitempty"`
	UserID       int    `json:"userId"`
	UserName     string `json:"userName"`
	UserEmail    string `json:"userEmail"`
	Role         Role   `json:"role"`
	AssignedDate string `json:"assignedDate"`
}
