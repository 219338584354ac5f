package state

import (
	"context"
	"fmt"
	"sync"

	"farhanadbm1/traintrack-client/internal/api"
	"farhanadbm1/traintrack-client/internal/domain"
	"farhanadbm1/traintrack-client/internal/storage"
)

// TaskSubmissionState is the submission slice's readable state. The one
// collection serves all three scopes (task, trainee, course); each fetch
// replaces it.
type TaskSubmissionState struct {
	Submissions []domain.TaskSubmission
	Status
}

// TaskSubmissionSlice owns trainee submissions. The UI allows one active
// submission per (task, trainee) and blocks re-submission once evaluated;
// the slice itself does not enforce that.
type TaskSubmissionSlice struct {
	mu      sync.Mutex
	api     *api.Client
	uploads storage.Uploader

	state TaskSubmissionState
}

func NewTaskSubmissionSlice(client *api.Client, uploads storage.Uploader) *TaskSubmissionSlice {
	return &TaskSubmissionSlice{api: client, uploads: uploads}
}

func (s *TaskSubmissionSlice) State() TaskSubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *TaskSubmissionSlice) ResetStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.reset()
}

// --- Inputs ---

type SubmitTaskInput struct {
	TaskID      int    `json:"taskId"`
	SubmittedBy int    `json:"submittedBy"`
	TaskURL     string `json:"taskUrl"`
}

// --- Operations ---

// FetchByTask replaces the collection with one task's submissions.
func (s *TaskSubmissionSlice) FetchByTask(ctx context.Context, taskID int) error {
	return s.fetch(ctx, fmt.Sprintf("/TaskSubmission/by-task/%d", taskID), "Failed to fetch submissions.")
}

// FetchByTrainee replaces the collection with one trainee's submissions
// across courses.
func (s *TaskSubmissionSlice) FetchByTrainee(ctx context.Context, traineeID int) error {
	return s.fetch(ctx, fmt.Sprintf("/TaskSubmission/by-trainee/%d", traineeID), "Failed to fetch trainee submissions.")
}

// FetchByCourse replaces the collection with all submissions in a course.
func (s *TaskSubmissionSlice) FetchByCourse(ctx context.Context, courseID int) error {
	return s.fetch(ctx, fmt.Sprintf("/TaskSubmission/by-course/%d", courseID), "Failed to fetch course submissions.")
}

func (s *TaskSubmissionSlice) fetch(ctx context.Context, path, fallback string) error {
	s.beginFetch()
	var submissions []domain.TaskSubmission
	if err := s.api.Get(ctx, path, &submissions); err != nil {
		s.failFetch(fallback)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Submissions = submissions
	s.state.Loading = false
	return nil
}

// Submit records a trainee's answer URL for a task. The backend returns only
// a confirmation; callers refetch the scope they are viewing.
func (s *TaskSubmissionSlice) Submit(ctx context.Context, in SubmitTaskInput) error {
	s.beginMutation()
	if err := s.api.Post(ctx, "/TaskSubmission", in, nil); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to submit task"))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// SubmitFile uploads the answer file first and then submits the resulting
// URL. An upload failure short-circuits before the backend is called.
func (s *TaskSubmissionSlice) SubmitFile(ctx context.Context, taskID, submittedBy int, file storage.UploadInput) error {
	s.beginMutation()
	url, err := s.uploads.Upload(ctx, file)
	if err != nil {
		s.failMutation("Failed to upload submission file.")
		return err
	}

	in := SubmitTaskInput{TaskID: taskID, SubmittedBy: submittedBy, TaskURL: url}
	if err := s.api.Post(ctx, "/TaskSubmission", in, nil); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to submit task"))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// --- flag reductions ---

func (s *TaskSubmissionSlice) beginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginFetch()
}

func (s *TaskSubmissionSlice) beginMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginMutation()
}

func (s *TaskSubmissionSlice) failFetch(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failFetch(msg)
}

func (s *TaskSubmissionSlice) failMutation(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failMutation(msg)
}
