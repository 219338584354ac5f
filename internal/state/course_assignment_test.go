package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farhanadbm1/traintrack-client/internal/domain"
)

func TestFetchAssignmentsByCourse(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	courseID := seedCourseID(t, store)

	require.NoError(t, store.CourseAssignments.FetchByCourse(context.Background(), courseID))
	assignments := store.CourseAssignments.State().Assignments
	require.Len(t, assignments, 2)

	roles := map[domain.Role]int{}
	for _, a := range assignments {
		assert.Equal(t, courseID, a.CourseID)
		assert.NotEmpty(t, a.UserName)
		roles[a.Role]++
	}
	assert.Equal(t, 1, roles[domain.RoleTrainer])
	assert.Equal(t, 1, roles[domain.RoleTrainee])
}

func TestCreateAssignment(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	courseID := seedCourseID(t, store)
	trainee2ID := userIDByEmail(t, store, trainee2Email)
	require.NoError(t, store.CourseAssignments.FetchByCourse(context.Background(), courseID))

	err := store.CourseAssignments.Create(context.Background(), CreateCourseAssignmentInput{
		CourseID: courseID,
		UserID:   trainee2ID,
		Role:     domain.RoleTrainee,
	})
	require.NoError(t, err)

	state := store.CourseAssignments.State()
	assert.True(t, state.Success)
	// Create reports through the flags only; the listing refreshes on demand.
	assert.Len(t, state.Assignments, 2)

	require.NoError(t, store.CourseAssignments.FetchByCourse(context.Background(), courseID))
	assert.Len(t, store.CourseAssignments.State().Assignments, 3)
}

func TestCreateAssignmentDuplicate(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	courseID := seedCourseID(t, store)
	traineeID := userIDByEmail(t, store, traineeEmail)

	err := store.CourseAssignments.Create(context.Background(), CreateCourseAssignmentInput{
		CourseID: courseID,
		UserID:   traineeID,
		Role:     domain.RoleTrainee,
	})
	require.Error(t, err)
	assert.Equal(t, "User is already assigned to this course", store.CourseAssignments.State().Error)
}

func TestUnassign(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	courseID := seedCourseID(t, store)
	require.NoError(t, store.CourseAssignments.FetchByCourse(context.Background(), courseID))

	before := store.CourseAssignments.State().Assignments
	require.Len(t, before, 2)
	removed := before[0]

	require.NoError(t, store.CourseAssignments.Unassign(context.Background(), removed.ID))

	after := store.CourseAssignments.State().Assignments
	require.Len(t, after, 1)
	assert.NotEqual(t, removed.ID, after[0].ID)
	assert.True(t, store.CourseAssignments.State().Success)

	// The snapshot taken before the removal still holds both rows.
	assert.Len(t, before, 2)
	assert.Equal(t, removed.ID, before[0].ID)
}

func TestUnassignMissing(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	courseID := seedCourseID(t, store)
	require.NoError(t, store.CourseAssignments.FetchByCourse(context.Background(), courseID))

	err := store.CourseAssignments.Unassign(context.Background(), 99999)
	require.Error(t, err)
	assert.Equal(t, "Assignment not found", store.CourseAssignments.State().Error)
	assert.Len(t, store.CourseAssignments.State().Assignments, 2)
}

func TestFetchCoursesByUser(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, traineeEmail)
	traineeID := store.Users.State().AuthUser.ID

	require.NoError(t, store.CourseAssignments.FetchCoursesByUser(context.Background(), traineeID))
	courses := store.CourseAssignments.State().UserCourses
	require.Len(t, courses, 1)
	assert.Equal(t, "Go Fundamentals", courses[0].Title)
	assert.Equal(t, domain.RoleTrainee, courses[0].RoleInCourse)
}

func TestFetchCoursesByUserEmpty(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	adminID := store.Users.State().AuthUser.ID

	// The seed admin is assigned to nothing.
	require.NoError(t, store.CourseAssignments.FetchCoursesByUser(context.Background(), adminID))
	assert.Empty(t, store.CourseAssignments.State().UserCourses)
	assert.Empty(t, store.CourseAssignments.State().Error)
}

func TestClearAssignments(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	courseID := seedCourseID(t, store)
	require.NoError(t, store.CourseAssignments.FetchByCourse(context.Background(), courseID))
	require.NotEmpty(t, store.CourseAssignments.State().Assignments)

	store.CourseAssignments.ClearAssignments()
	assert.Empty(t, store.CourseAssignments.State().Assignments)
}
