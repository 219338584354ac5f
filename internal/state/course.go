package state

import (
	"context"
	"fmt"
	"sync"

	"farhanadbm1/traintrack-client/internal/api"
	"farhanadbm1/traintrack-client/internal/domain"
)

// CourseState is the course slice's readable state.
type CourseState struct {
	Courses []domain.Course
	Details *domain.Course
	Status
}

// CourseSlice owns the course collection. Courses are never removed from the
// collection; archiving is a status toggle.
type CourseSlice struct {
	mu  sync.Mutex
	api *api.Client

	state CourseState
}

func NewCourseSlice(client *api.Client) *CourseSlice {
	return &CourseSlice{api: client}
}

// State returns a snapshot of the slice; the collection is shared and
// read-only to callers.
func (s *CourseSlice) State() CourseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *CourseSlice) ResetStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.reset()
}

// --- Inputs ---

type CourseInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	CreatedBy   int    `json:"createdBy,omitempty"`
}

// --- Operations ---

// FetchCourses replaces the collection with the backend's full course list,
// in server order.
func (s *CourseSlice) FetchCourses(ctx context.Context) error {
	s.beginFetch()
	var courses []domain.Course
	if err := s.api.Get(ctx, "/course", &courses); err != nil {
		s.failFetch("Failed to load courses.")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Courses = courses
	s.state.Loading = false
	return nil
}

// Register creates a course and appends the returned entity to the
// collection.
func (s *CourseSlice) Register(ctx context.Context, in CourseInput) error {
	s.beginMutation()
	var created domain.Course
	if err := s.api.Post(ctx, "/course/register", in, &created); err != nil {
		s.failMutation(api.ErrorMessage(err, "Course registration failed."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Courses = append(s.state.Courses, created)
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// FetchByID loads one course into the detail field.
func (s *CourseSlice) FetchByID(ctx context.Context, id int) error {
	s.beginFetch()
	var course domain.Course
	if err := s.api.Get(ctx, fmt.Sprintf("/course/%d", id), &course); err != nil {
		s.failFetch(api.ErrorMessage(err, "Failed to load course details."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Details = &course
	s.state.Loading = false
	return nil
}

// Update edits a course; the returned entity replaces its match in the
// collection and in the detail field.
func (s *CourseSlice) Update(ctx context.Context, id int, in CourseInput) error {
	s.beginMutation()
	var updated domain.Course
	if err := s.api.Put(ctx, fmt.Sprintf("/course/%d", id), in, &updated); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to update course."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Courses {
		if s.state.Courses[i].ID == updated.ID {
			s.state.Courses[i] = updated
		}
	}
	if s.state.Details != nil && s.state.Details.ID == updated.ID {
		details := updated
		s.state.Details = &details
	}
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// ToggleStatus flips a course between Active and Archived. The backend owns
// the transition and reports the resulting status, which is applied in place.
func (s *CourseSlice) ToggleStatus(ctx context.Context, id int) error {
	s.beginMutation()
	var resp struct {
		NewStatus domain.CourseStatus `json:"newStatus"`
	}
	if err := s.api.Put(ctx, fmt.Sprintf("/course/%d/toggle-status", id), nil, &resp); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to toggle course status."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Courses {
		if s.state.Courses[i].ID == id {
			s.state.Courses[i].Status = resp.NewStatus
		}
	}
	if s.state.Details != nil && s.state.Details.ID == id {
		s.state.Details.Status = resp.NewStatus
	}
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// --- flag reductions ---

func (s *CourseSlice) beginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginFetch()
}

func (s *CourseSlice) beginMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginMutation()
}

func (s *CourseSlice) failFetch(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failFetch(msg)
}

func (s *CourseSlice) failMutation(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failMutation(msg)
}
