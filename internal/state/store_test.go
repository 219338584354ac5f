package state

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farhanadbm1/traintrack-client/internal/api"
	"farhanadbm1/traintrack-client/internal/config"
	"farhanadbm1/traintrack-client/internal/session"
	"farhanadbm1/traintrack-client/internal/storage"
	"farhanadbm1/traintrack-client/internal/stub"
)

// Seed account emails, matching the stub's dataset.
const (
	adminEmail    = "admin@traintrack.local"
	trainerEmail  = "trainer@traintrack.local"
	traineeEmail  = "trainee@traintrack.local"
	trainee2Email = "trainee2@traintrack.local"
)

// fakeUploader satisfies storage.Uploader without any network. err wins over
// url when both are set.
type fakeUploader struct {
	url   string
	err   error
	calls int
	last  storage.UploadInput
}

func (f *fakeUploader) Upload(_ context.Context, in storage.UploadInput) (string, error) {
	f.calls++
	f.last = in
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

// newTestStore spins up the in-memory backend behind httptest and builds a
// store talking to it, with a throwaway session file.
func newTestStore(t *testing.T, uploads storage.Uploader) (*Store, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := stub.New(config.StubConfig{JWTSecret: "test-secret"})
	srv := httptest.NewServer(backend.Engine())
	t.Cleanup(srv.Close)

	sess := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	client := api.NewClient(srv.URL+"/api", sess)

	store, err := New(client, uploads, sess)
	require.NoError(t, err)
	return store, sess
}

func loginAs(t *testing.T, store *Store, email string) {
	t.Helper()
	err := store.Users.Login(context.Background(), LoginInput{Email: email, Password: stub.SeedPassword})
	require.NoError(t, err)
}

func seedCourseID(t *testing.T, store *Store) int {
	t.Helper()
	require.NoError(t, store.Courses.FetchCourses(context.Background()))
	courses := store.Courses.State().Courses
	require.NotEmpty(t, courses)
	return courses[0].ID
}

func userIDByEmail(t *testing.T, store *Store, email string) int {
	t.Helper()
	require.NoError(t, store.Users.FetchUsers(context.Background()))
	for _, u := range store.Users.State().Users {
		if u.Email == email {
			return u.ID
		}
	}
	t.Fatalf("no seeded user with email %s", email)
	return 0
}

func TestNewStoreHydratesFromSession(t *testing.T) {
	up := &fakeUploader{}
	store, sess := newTestStore(t, up)

	loginAs(t, store, adminEmail)
	token := store.Users.State().Token
	require.NotEmpty(t, token)

	// A second store over the same session file starts authenticated.
	gin.SetMode(gin.TestMode)
	backend := stub.New(config.StubConfig{JWTSecret: "test-secret"})
	srv := httptest.NewServer(backend.Engine())
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL+"/api", sess)
	restored, err := New(client, up, sess)
	require.NoError(t, err)

	state := restored.Users.State()
	assert.Equal(t, token, state.Token)
	require.NotNil(t, state.AuthUser)
	assert.Equal(t, adminEmail, state.AuthUser.Email)
}

func TestStatusReset(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})

	// An unauthenticated fetch records an error.
	err := store.Courses.FetchCourses(context.Background())
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*api.RequestError)))
	assert.Equal(t, "Failed to load courses.", store.Courses.State().Error)

	store.Courses.ResetStatus()
	state := store.Courses.State()
	assert.Empty(t, state.Error)
	assert.False(t, state.Success)
	assert.False(t, state.Loading)
}
