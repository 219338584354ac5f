package domain

// TaskSubmission is a trainee's answer to a task: a link to the submitted
// file. SubmitterName, CourseTitle and TaskTitle are denormalized extras some
// listings include.
type TaskSubmission struct {
	ID            int    `json:"id"`
	TaskID        int    `json:"taskId"`
	SubmittedBy   int    `json:"submittedBy"`
	TaskURL       string `json:"taskUrl"`
	CreatedAt     string `json:"createdAt"`
	IsAvailable   bool   `json:"isAvailable"`
	IsDeleted     bool   `json:"isDeleted"`
	SubmitterName string `json:"submitterName,omitempty"`
	CourseTitle   string `json:"courseTitle,omitempty"`
	TaskTitle     string `json:"taskTitle,omitempty"`
}
