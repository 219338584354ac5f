package domain

// TaskEvaluation is a trainer's mark for exactly one submission by one
// trainee.
type TaskEvaluation struct {
	ID               int     `json:"id"`
	TaskID           int     `json:"taskId"`
	TaskTitle        string  `json:"taskTitle,omitempty"`
	TaskSubmissionID int     `json:"taskSubmissionId"`
	TraineeID        int     `json:"traineeId"`
	TraineeName      string  `json:"traineeName,omitempty"`
	TrainerID        int     `json:"trainerId"`
	TrainerName      string  `json:"trainerName,omitempty"`
	Mark             float64 `json:"mark"`
	CreatedAt        string  `json:"createdAt"`
	IsAvailable      bool    `json:"isAvailable"`
	IsDeleted        bool    `json:"isDeleted"`
}

// TaskTraineeEvaluation is the per-task evaluation sheet row: one line per
// trainee on the course, joined with their submission and mark (zero values
// when they have not submitted or not been marked yet).
type TaskTraineeEvaluation struct {
	UserID             int     `json:"userId"`
	Name               string  `json:"name"`
	TaskSubmissionID   int     `json:"taskSubmissionId"`
	TaskURL            string  `json:"taskUrl,omitempty"`
	TaskAssignmentMark float64 `json:"taskAssignmentMark"`
	TaskEvaluationMark float64 `json:"taskEvaluationMark"`
	TaskTitle          string  `json:"taskTitle"`
}
