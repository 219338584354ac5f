package domain

// TaskAssignment is a task posted by a trainer within a course. MaterialUrl
// points at an externally stored attachment; Mark is the maximum obtainable
// score and is optional.
type TaskAssignment struct {
	ID          int     `json:"id"`
	CourseID    int     `json:"courseId"`
	TrainerID   int     `json:"trainerId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	MaterialURL string  `json:"materialUrl"`
	DueDate     string  `json:"dueDate"`
	Mark        float64 `json:"mark,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	IsAvailable bool    `json:"isAvailable"`
	IsDeleted   bool    `json:"isDeleted"`
}
