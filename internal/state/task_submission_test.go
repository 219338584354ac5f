package state

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farhanadbm1/traintrack-client/internal/storage"
)

// submitAs signs in the given trainee and submits a URL for the task,
// restoring the previous signed-in account is the caller's business.
func submitAs(t *testing.T, store *Store, email string, taskID int, url string) int {
	t.Helper()
	loginAs(t, store, email)
	traineeID := store.Users.State().AuthUser.ID
	err := store.TaskSubmissions.Submit(context.Background(), SubmitTaskInput{
		TaskID:      taskID,
		SubmittedBy: traineeID,
		TaskURL:     url,
	})
	require.NoError(t, err)
	return traineeID
}

func TestSubmitAndFetchByTask(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, trainerEmail)
	courseID := seedCourseID(t, store)
	taskID := createTask(t, store, courseID, "Essay")

	traineeID := submitAs(t, store, traineeEmail, taskID, "https://files.example.com/essay.pdf")
	assert.True(t, store.TaskSubmissions.State().Success)

	require.NoError(t, store.TaskSubmissions.FetchByTask(context.Background(), taskID))
	subs := store.TaskSubmissions.State().Submissions
	require.Len(t, subs, 1)
	assert.Equal(t, traineeID, subs[0].SubmittedBy)
	assert.Equal(t, "https://files.example.com/essay.pdf", subs[0].TaskURL)
	assert.Equal(t, "Tina Trainee", subs[0].SubmitterName)
	assert.Equal(t, "Essay", subs[0].TaskTitle)
	assert.Equal(t, "Go Fundamentals", subs[0].CourseTitle)
}

func TestResubmitReplaces(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, trainerEmail)
	courseID := seedCourseID(t, store)
	taskID := createTask(t, store, courseID, "Essay")

	submitAs(t, store, traineeEmail, taskID, "https://files.example.com/v1.pdf")
	submitAs(t, store, traineeEmail, taskID, "https://files.example.com/v2.pdf")

	require.NoError(t, store.TaskSubmissions.FetchByTask(context.Background(), taskID))
	subs := store.TaskSubmissions.State().Submissions
	require.Len(t, subs, 1)
	assert.Equal(t, "https://files.example.com/v2.pdf", subs[0].TaskURL)
}

func TestFetchByTraineeAndByCourse(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, trainerEmail)
	courseID := seedCourseID(t, store)
	task1 := createTask(t, store, courseID, "Essay")
	task2 := createTask(t, store, courseID, "Quiz")

	traineeID := submitAs(t, store, traineeEmail, task1, "https://files.example.com/essay.pdf")
	submitAs(t, store, traineeEmail, task2, "https://files.example.com/quiz.pdf")

	require.NoError(t, store.TaskSubmissions.FetchByTrainee(context.Background(), traineeID))
	assert.Len(t, store.TaskSubmissions.State().Submissions, 2)

	require.NoError(t, store.TaskSubmissions.FetchByCourse(context.Background(), courseID))
	assert.Len(t, store.TaskSubmissions.State().Submissions, 2)

	require.NoError(t, store.TaskSubmissions.FetchByTask(context.Background(), task1))
	assert.Len(t, store.TaskSubmissions.State().Submissions, 1)
}

func TestSubmitFile(t *testing.T) {
	up := &fakeUploader{url: "https://media.example.com/answer.zip"}
	store, _ := newTestStore(t, up)
	loginAs(t, store, trainerEmail)
	courseID := seedCourseID(t, store)
	taskID := createTask(t, store, courseID, "Project")

	loginAs(t, store, traineeEmail)
	traineeID := store.Users.State().AuthUser.ID
	err := store.TaskSubmissions.SubmitFile(context.Background(), taskID, traineeID,
		storage.UploadInput{FileName: "answer.zip", ContentType: "application/zip", Body: strings.NewReader("zip")})
	require.NoError(t, err)
	assert.Equal(t, 1, up.calls)

	require.NoError(t, store.TaskSubmissions.FetchByTask(context.Background(), taskID))
	subs := store.TaskSubmissions.State().Submissions
	require.Len(t, subs, 1)
	assert.Equal(t, "https://media.example.com/answer.zip", subs[0].TaskURL)
}

func TestSubmitFileUploadFailure(t *testing.T) {
	up := &fakeUploader{err: storage.ErrUploadFailed}
	store, _ := newTestStore(t, up)
	loginAs(t, store, trainerEmail)
	courseID := seedCourseID(t, store)
	taskID := createTask(t, store, courseID, "Project")

	loginAs(t, store, traineeEmail)
	traineeID := store.Users.State().AuthUser.ID
	err := store.TaskSubmissions.SubmitFile(context.Background(), taskID, traineeID,
		storage.UploadInput{FileName: "answer.zip", Body: strings.NewReader("zip")})
	require.ErrorIs(t, err, storage.ErrUploadFailed)
	assert.Equal(t, "Failed to upload submission file.", store.TaskSubmissions.State().Error)

	require.NoError(t, store.TaskSubmissions.FetchByTask(context.Background(), taskID))
	assert.Empty(t, store.TaskSubmissions.State().Submissions)
}

func TestSubmitForbiddenForTrainer(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, trainerEmail)
	courseID := seedCourseID(t, store)
	taskID := createTask(t, store, courseID, "Essay")

	err := store.TaskSubmissions.Submit(context.Background(), SubmitTaskInput{
		TaskID:      taskID,
		SubmittedBy: store.Users.State().AuthUser.ID,
		TaskURL:     "https://files.example.com/own.pdf",
	})
	require.Error(t, err)
	assert.NotEmpty(t, store.TaskSubmissions.State().Error)
}
