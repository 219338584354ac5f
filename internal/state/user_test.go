package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farhanadbm1/traintrack-client/internal/domain"
	"farhanadbm1/traintrack-client/internal/stub"
)

func TestLogin(t *testing.T) {
	store, sess := newTestStore(t, &fakeUploader{})

	loginAs(t, store, adminEmail)

	state := store.Users.State()
	require.NotNil(t, state.AuthUser)
	assert.Equal(t, adminEmail, state.AuthUser.Email)
	assert.Equal(t, domain.RoleAdmin, state.AuthUser.Role)
	assert.NotEmpty(t, state.Token)
	assert.True(t, state.Success)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)

	// The session persisted the same pair.
	assert.Equal(t, state.Token, sess.Token())
	require.NotNil(t, sess.User())
	assert.Equal(t, adminEmail, sess.User().Email)
}

func TestLoginBadPassword(t *testing.T) {
	store, sess := newTestStore(t, &fakeUploader{})

	err := store.Users.Login(context.Background(), LoginInput{Email: adminEmail, Password: "wrong"})
	require.Error(t, err)

	state := store.Users.State()
	assert.Nil(t, state.AuthUser)
	assert.Empty(t, state.Token)
	assert.False(t, state.Success)
	assert.False(t, state.Loading)
	assert.Equal(t, "Invalid email or password", state.Error)
	assert.Empty(t, sess.Token())
}

func TestLogout(t *testing.T) {
	store, sess := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	require.NoError(t, store.Users.FetchUsers(context.Background()))

	store.Users.Logout()

	state := store.Users.State()
	assert.Nil(t, state.AuthUser)
	assert.Empty(t, state.Token)
	assert.Empty(t, sess.Token())
	// The collection survives logout; the next view decides what to show.
	assert.NotEmpty(t, state.Users)
}

func TestFetchUsers(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)

	require.NoError(t, store.Users.FetchUsers(context.Background()))
	users := store.Users.State().Users
	assert.Len(t, users, 4)

	// Fetching again replaces rather than appends.
	require.NoError(t, store.Users.FetchUsers(context.Background()))
	assert.Len(t, store.Users.State().Users, 4)
}

func TestFetchUsersUnauthenticated(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})

	err := store.Users.FetchUsers(context.Background())
	require.Error(t, err)
	state := store.Users.State()
	assert.Empty(t, state.Users)
	assert.Equal(t, "Failed to load users.", state.Error)
	assert.False(t, state.Loading)
}

func TestRegister(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	require.NoError(t, store.Users.FetchUsers(context.Background()))

	err := store.Users.Register(context.Background(), RegisterUserInput{
		Username: "newbie",
		Name:     "Nina Newbie",
		Email:    "nina@traintrack.local",
		Role:     domain.RoleTrainee,
		Password: "secret123",
	})
	require.NoError(t, err)

	state := store.Users.State()
	assert.True(t, state.Success)
	require.Len(t, state.Users, 5)
	created := state.Users[4]
	assert.Equal(t, "Nina Newbie", created.Name)
	assert.NotZero(t, created.ID)

	// The new account can sign in.
	err = store.Users.Login(context.Background(), LoginInput{Email: "nina@traintrack.local", Password: "secret123"})
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	require.NoError(t, store.Users.FetchUsers(context.Background()))

	err := store.Users.Register(context.Background(), RegisterUserInput{
		Username: "dupe",
		Name:     "Dupe",
		Email:    adminEmail,
		Role:     domain.RoleTrainee,
		Password: "secret123",
	})
	require.Error(t, err)

	state := store.Users.State()
	assert.Equal(t, "A user with this email already exists", state.Error)
	assert.False(t, state.Success)
	assert.Len(t, state.Users, 4) // collection untouched on failure
}

func TestRegisterForbiddenForTrainee(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, traineeEmail)

	err := store.Users.Register(context.Background(), RegisterUserInput{
		Username: "sneaky",
		Name:     "Sneaky",
		Email:    "sneaky@traintrack.local",
		Role:     domain.RoleAdmin,
		Password: "secret123",
	})
	require.Error(t, err)
	assert.NotEmpty(t, store.Users.State().Error)
}

func TestFetchByID(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	trainerID := userIDByEmail(t, store, trainerEmail)

	require.NoError(t, store.Users.FetchByID(context.Background(), trainerID))
	profile := store.Users.State().Profile
	require.NotNil(t, profile)
	assert.Equal(t, trainerEmail, profile.Email)

	err := store.Users.FetchByID(context.Background(), 99999)
	require.Error(t, err)
	assert.Equal(t, "User not found", store.Users.State().Error)
}

func TestUpdatePropagates(t *testing.T) {
	store, sess := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	adminID := userIDByEmail(t, store, adminEmail)
	require.NoError(t, store.Users.FetchByID(context.Background(), adminID))

	err := store.Users.Update(context.Background(), adminID, UpdateUserInput{Name: "Ada Renamed"})
	require.NoError(t, err)

	state := store.Users.State()
	assert.True(t, state.Success)
	assert.Equal(t, "Ada Renamed", state.AuthUser.Name)
	assert.Equal(t, "Ada Renamed", state.Profile.Name)
	var inList bool
	for _, u := range state.Users {
		if u.ID == adminID {
			inList = u.Name == "Ada Renamed"
		}
	}
	assert.True(t, inList)
	// The persisted session follows the authenticated user's profile.
	require.NotNil(t, sess.User())
	assert.Equal(t, "Ada Renamed", sess.User().Name)
}

func TestUpdateOtherUserLeavesAuthAlone(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	trainerID := userIDByEmail(t, store, trainerEmail)

	require.NoError(t, store.Users.Update(context.Background(), trainerID, UpdateUserInput{Name: "Tom Renamed"}))
	state := store.Users.State()
	assert.Equal(t, adminEmail, state.AuthUser.Email)
	assert.NotEqual(t, "Tom Renamed", state.AuthUser.Name)
}

func TestToggleDeleted(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, adminEmail)
	traineeID := userIDByEmail(t, store, traineeEmail)

	findTrainee := func() domain.User {
		for _, u := range store.Users.State().Users {
			if u.ID == traineeID {
				return u
			}
		}
		t.Fatal("trainee missing from collection")
		return domain.User{}
	}

	require.NoError(t, store.Users.ToggleDeleted(context.Background(), traineeID))
	assert.True(t, findTrainee().IsDeleted)
	assert.Len(t, store.Users.State().Users, 4) // soft delete keeps the row

	// The same call restores.
	require.NoError(t, store.Users.ToggleDeleted(context.Background(), traineeID))
	assert.False(t, findTrainee().IsDeleted)
}

func TestChangePassword(t *testing.T) {
	store, _ := newTestStore(t, &fakeUploader{})
	loginAs(t, store, traineeEmail)
	traineeID := store.Users.State().AuthUser.ID

	t.Run("wrong current password", func(t *testing.T) {
		err := store.Users.ChangePassword(context.Background(), traineeID, ChangePasswordInput{
			CurrentPassword: "nope",
			NewPassword:     "fresh-secret",
			ConfirmPassword: "fresh-secret",
		})
		require.Error(t, err)
		assert.False(t, store.Users.State().Success)
		assert.NotEmpty(t, store.Users.State().Error)
	})

	t.Run("success", func(t *testing.T) {
		err := store.Users.ChangePassword(context.Background(), traineeID, ChangePasswordInput{
			CurrentPassword: stub.SeedPassword,
			NewPassword:     "fresh-secret",
			ConfirmPassword: "fresh-secret",
		})
		require.NoError(t, err)
		assert.True(t, store.Users.State().Success)

		err = store.Users.Login(context.Background(), LoginInput{Email: traineeEmail, Password: "fresh-secret"})
		assert.NoError(t, err)
	})
}
