package state

import (
	"context"
	"fmt"
	"sync"

	"farhanadbm1/traintrack-client/internal/api"
	"farhanadbm1/traintrack-client/internal/domain"
)

// TaskEvaluationState is the evaluation slice's readable state: the per-task
// evaluation sheet (one row per trainee) and the authenticated trainee's own
// evaluation for the currently viewed task.
type TaskEvaluationState struct {
	Trainees           []domain.TaskTraineeEvaluation
	AuthUserEvaluation *domain.TaskEvaluation
	Status
}

// TaskEvaluationSlice owns trainer marks for submissions. Evaluating the
// same (task, trainee) pair again updates the existing mark; the backend
// owns that upsert.
type TaskEvaluationSlice struct {
	mu  sync.Mutex
	api *api.Client

	state TaskEvaluationState
}

func NewTaskEvaluationSlice(client *api.Client) *TaskEvaluationSlice {
	return &TaskEvaluationSlice{api: client}
}

func (s *TaskEvaluationSlice) State() TaskEvaluationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *TaskEvaluationSlice) ResetStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.reset()
}

// --- Inputs ---

type EvaluateInput struct {
	TaskID           int     `json:"taskId"`
	TraineeID        int     `json:"traineeId"`
	TrainerID        int     `json:"trainerId"`
	Mark             float64 `json:"mark"`
	TaskSubmissionID int     `json:"taskSubmissionId"`
}

// --- Operations ---

// FetchTraineesForTask replaces the evaluation sheet for one task.
func (s *TaskEvaluationSlice) FetchTraineesForTask(ctx context.Context, taskID int) error {
	s.beginFetch()
	var trainees []domain.TaskTraineeEvaluation
	if err := s.api.Get(ctx, fmt.Sprintf("/TaskEvaluation/trainees/%d", taskID), &trainees); err != nil {
		s.failFetch("Failed to fetch trainees for task.")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Trainees = trainees
	s.state.Loading = false
	return nil
}

// FetchAuthUserEvaluation loads the authenticated trainee's evaluation for a
// task. A null body means "not evaluated yet" and clears the field.
func (s *TaskEvaluationSlice) FetchAuthUserEvaluation(ctx context.Context, taskID, traineeID int) error {
	s.beginFetch()
	var evaluation *domain.TaskEvaluation
	if err := s.api.Get(ctx, fmt.Sprintf("/TaskEvaluation/by-trainee/%d/%d", taskID, traineeID), &evaluation); err != nil {
		s.failFetch("Failed to fetch your evaluation for this task.")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AuthUserEvaluation = evaluation
	s.state.Loading = false
	return nil
}

// Evaluate creates or updates a trainee's mark for a submission. The view
// refetches the sheet afterwards; only flags change locally.
func (s *TaskEvaluationSlice) Evaluate(ctx context.Context, in EvaluateInput) error {
	s.beginMutation()
	var resp struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	if err := s.api.Post(ctx, "/TaskEvaluation/evaluate", in, &resp); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to evaluate trainee."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// --- flag reductions ---

func (s *TaskEvaluationSlice) beginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginFetch()
}

func (s *TaskEvaluationSlice) beginMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginMutation()
}

func (s *TaskEvaluationSlice) failFetch(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failFetch(msg)
}

func (s *TaskEvaluationSlice) failMutation(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failMutation(msg)
}
