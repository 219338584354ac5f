package state

import (
	"farhanadbm1/traintrack-client/internal/api"
	"farhanadbm1/traintrack-client/internal/session"
	"farhanadbm1/traintrack-client/internal/storage"
)

// Store composes the seven slices into the one process-wide state tree. It
// is constructed once at startup, lives for the session, and needs no
// teardown: the slices hold no resources beyond the shared HTTP client.
type Store struct {
	Users             *UserSlice
	Courses           *CourseSlice
	CourseAssignments *CourseAssignmentSlice
	TaskAssignments   *TaskAssignmentSlice
	TaskSubmissions   *TaskSubmissionSlice
	TaskEvaluations   *TaskEvaluationSlice
	TrainingMaterials *TrainingMaterialSlice
}

// New builds the store and hydrates the auth state from the persisted
// session. The session is read once here; later changes to the file are not
// observed.
func New(client *api.Client, uploads storage.Uploader, sess *session.Store) (*Store, error) {
	if err := sess.Load(); err != nil {
		return nil, err
	}

	store := &Store{
		Users:             NewUserSlice(client, sess),
		Courses:           NewCourseSlice(client),
		CourseAssignments: NewCourseAssignmentSlice(client),
		TaskAssignments:   NewTaskAssignmentSlice(client, uploads),
		TaskSubmissions:   NewTaskSubmissionSlice(client, uploads),
		TaskEvaluations:   NewTaskEvaluationSlice(client),
		TrainingMaterials: NewTrainingMaterialSlice(client, uploads),
	}
	store.Users.hydrate(sess.Token(), sess.User())
	return store, nil
}
