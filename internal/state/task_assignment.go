package state

import (
	"context"
	"fmt"
	"sync"

	"farhanadbm1/traintrack-client/internal/api"
	"farhanadbm1/traintrack-client/internal/domain"
	"farhanadbm1/traintrack-client/internal/storage"
)

// TaskAssignmentState is the task slice's readable state: the tasks of the
// currently viewed course plus the currently viewed task.
type TaskAssignmentState struct {
	Tasks    []domain.TaskAssignment
	Selected *domain.TaskAssignment
	Status
}

// TaskAssignmentSlice owns the tasks trainers post within a course. Creation
// can carry an attachment, which goes to object storage first; the create
// call is only issued once the upload yielded a URL.
type TaskAssignmentSlice struct {
	mu      sync.Mutex
	api     *api.Client
	uploads storage.Uploader

	state TaskAssignmentState
}

func NewTaskAssignmentSlice(client *api.Client, uploads storage.Uploader) *TaskAssignmentSlice {
	return &TaskAssignmentSlice{api: client, uploads: uploads}
}

func (s *TaskAssignmentSlice) State() TaskAssignmentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *TaskAssignmentSlice) ResetStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.reset()
}

// --- Inputs ---

type CreateTaskInput struct {
	CourseID    int     `json:"courseId"`
	TrainerID   int     `json:"trainerId"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	MaterialURL string  `json:"materialUrl,omitempty"`
	DueDate     string  `json:"dueDate"`
	Mark        float64 `json:"mark,omitempty"`
}

type UpdateTaskInput struct {
	CourseID    int     `json:"courseId"`
	TrainerID   int     `json:"trainerId"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	MaterialURL string  `json:"materialUrl,omitempty"`
	DueDate     string  `json:"dueDate"`
	Mark        float64 `json:"mark,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
	IsDeleted   bool    `json:"isDeleted"`
}

// --- Operations ---

// FetchByCourse replaces the task collection with the given course's tasks.
func (s *TaskAssignmentSlice) FetchByCourse(ctx context.Context, courseID int) error {
	s.beginFetch()
	var tasks []domain.TaskAssignment
	if err := s.api.Get(ctx, fmt.Sprintf("/TaskAssignment/by-course/%d", courseID), &tasks); err != nil {
		s.failFetch("Failed to fetch task assignments")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tasks = tasks
	s.state.Loading = false
	return nil
}

// FetchByID loads one task into the detail field.
func (s *TaskAssignmentSlice) FetchByID(ctx context.Context, id int) error {
	s.beginFetch()
	var task domain.TaskAssignment
	if err := s.api.Get(ctx, fmt.Sprintf("/TaskAssignment/%d", id), &task); err != nil {
		s.failFetch("Failed to fetch task details")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Selected = &task
	s.state.Loading = false
	return nil
}

// Create posts a new task. The backend returns only a confirmation; callers
// refetch the course's tasks when they need the updated list.
func (s *TaskAssignmentSlice) Create(ctx context.Context, in CreateTaskInput) error {
	s.beginMutation()
	if err := s.api.Post(ctx, "/TaskAssignment", in, nil); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to create task"))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// CreateWithMaterial uploads the task's attachment first and then creates the
// task with the resulting URL. An upload failure short-circuits: the backend
// is never called and the recorded error is the upload's, not a request
// error.
func (s *TaskAssignmentSlice) CreateWithMaterial(ctx context.Context, in CreateTaskInput, file storage.UploadInput) error {
	s.beginMutation()
	url, err := s.uploads.Upload(ctx, file)
	if err != nil {
		s.failMutation("Failed to upload task material.")
		return err
	}
	in.MaterialURL = url

	if err := s.api.Post(ctx, "/TaskAssignment", in, nil); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to create task"))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// Update replaces a task's fields wholesale (the backend expects the full
// payload, soft-delete flags included).
func (s *TaskAssignmentSlice) Update(ctx context.Context, id int, in UpdateTaskInput) error {
	s.beginMutation()
	if err := s.api.Put(ctx, fmt.Sprintf("/TaskAssignment/%d", id), in, nil); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to update task"))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// Delete soft-deletes a task. The collection is refreshed by the caller's
// follow-up fetch; nothing is removed locally.
func (s *TaskAssignmentSlice) Delete(ctx context.Context, id int) error {
	s.beginMutation()
	if err := s.api.Delete(ctx, fmt.Sprintf("/TaskAssignment/%d", id)); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to delete task"))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// --- flag reductions ---

func (s *TaskAssignmentSlice) beginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginFetch()
}

func (s *TaskAssignmentSlice) beginMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginMutation()
}

func (s *TaskAssignmentSlice) failFetch(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failFetch(msg)
}

func (s *TaskAssignmentSlice) failMutation(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failMutation(msg)
}
