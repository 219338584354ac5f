package state

import (
	"context"
	"fmt"
	"sync"

	"farhanadbm1/traintrack-client/internal/api"
	"farhanadbm1/traintrack-client/internal/domain"
)

// CourseAssignmentState is the assignment slice's readable state:
// the assignments of the currently viewed course, and the authenticated
// user's own course list ("my courses" projection).
type CourseAssignmentState struct {
	Assignments []domain.CourseAssignment
	UserCourses []domain.CourseWithRole
	Status
}

// CourseAssignmentSlice owns the user-course bridge records. Unassignment is
// the one hard delete in the system: the record disappears from the
// collection instead of being flag-toggled.
type CourseAssignmentSlice struct {
	mu  sync.Mutex
	api *api.Client

	state CourseAssignmentState
}

func NewCourseAssignmentSlice(client *api.Client) *CourseAssignmentSlice {
	return &CourseAssignmentSlice{api: client}
}

func (s *CourseAssignmentSlice) State() CourseAssignmentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *CourseAssignmentSlice) ResetStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.reset()
}

// ClearAssignments empties the per-course assignment collection, used when
// the view navigates away from a course.
func (s *CourseAssignmentSlice) ClearAssignments() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Assignments = nil
}

// --- Inputs ---

type CreateCourseAssignmentInput struct {
	CourseID int         `json:"courseId"`
	UserID   int         `json:"userId"`
	Role     domain.Role `json:"role"`
}

// --- Operations ---

// FetchByCourse replaces the assignment collection with the given course's
// assignments.
func (s *CourseAssignmentSlice) FetchByCourse(ctx context.Context, courseID int) error {
	s.beginFetch()
	var assignments []domain.CourseAssignment
	if err := s.api.Get(ctx, fmt.Sprintf("/CourseAssignment/course/%d", courseID), &assignments); err != nil {
		s.failFetch(api.ErrorMessage(err, "Failed to fetch assignments."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Assignments = assignments
	s.state.Loading = false
	return nil
}

// Create assigns a user to a course with a role. The backend returns only a
// confirmation message, so the collection is left untouched; callers refetch
// when they need the updated list.
func (s *CourseAssignmentSlice) Create(ctx context.Context, in CreateCourseAssignmentInput) error {
	s.beginMutation()
	var resp struct {
		Message string `json:"message"`
	}
	if err := s.api.Post(ctx, "/CourseAssignment/assign-role", in, &resp); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to assign role."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// Unassign removes one assignment record. On success exactly that id is
// dropped from the collection.
func (s *CourseAssignmentSlice) Unassign(ctx context.Context, assignmentID int) error {
	s.beginMutation()
	if err := s.api.Delete(ctx, fmt.Sprintf("/CourseAssignment/unassign/%d", assignmentID)); err != nil {
		s.failMutation(api.ErrorMessage(err, "Failed to unassign user."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// Copy rather than filter in place: earlier snapshots share the backing
	// array.
	kept := make([]domain.CourseAssignment, 0, len(s.state.Assignments))
	for _, a := range s.state.Assignments {
		if a.ID != assignmentID {
			kept = append(kept, a)
		}
	}
	s.state.Assignments = kept
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// FetchCoursesByUser replaces the "my courses" projection for the given
// user.
func (s *CourseAssignmentSlice) FetchCoursesByUser(ctx context.Context, userID int) error {
	s.beginFetch()
	var courses []domain.CourseWithRole
	if err := s.api.Get(ctx, fmt.Sprintf("/CourseAssignment/%d", userID), &courses); err != nil {
		s.failFetch(api.ErrorMessage(err, "Failed to load your courses."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UserCourses = courses
	s.state.Loading = false
	return nil
}

// --- flag reductions ---

func (s *CourseAssignmentSlice) beginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginFetch()
}

func (s *CourseAssignmentSlice) beginMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginMutation()
}

func (s *CourseAssignmentSlice) failFetch(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failFetch(msg)
}

func (s *CourseAssignmentSlice) failMutation(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failMutation(msg)
}
