package state

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"farhanadbm1/traintrack-client/internal/api"
	"farhanadbm1/traintrack-client/internal/domain"
	"farhanadbm1/traintrack-client/internal/session"
)

// UserState is the user slice's readable state: the authenticated user and
// token, the currently viewed profile, and the full user collection.
type UserState struct {
	AuthUser *domain.User
	Profile  *domain.User
	Token    string
	Users    []domain.User
	Status
}

// UserSlice owns the user collection and the authentication state. Login,
// logout and profile updates keep the persisted session in step with the
// in-memory state.
type UserSlice struct {
	mu   sync.Mutex
	api  *api.Client
	sess *session.Store

	state UserState
}

func NewUserSlice(client *api.Client, sess *session.Store) *UserSlice {
	return &UserSlice{api: client, sess: sess}
}

// State returns a snapshot of the slice. The contained slice header shares
// its backing array with the live state; treat it as read-only.
func (s *UserSlice) State() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// hydrate seeds the auth fields from the persisted session. Called once by
// the store at construction.
func (s *UserSlice) hydrate(token string, user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	s.state.AuthUser = user
}

// ResetStatus clears the error and the one-shot success flag after the view
// has observed them.
func (s *UserSlice) ResetStatus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.reset()
}

// SetAuthUser replaces the authenticated user in state only; the session
// file is untouched.
func (s *UserSlice) SetAuthUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AuthUser = user
}

// --- Inputs ---

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUserInput struct {
	Username       string      `json:"username"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	PhoneNumber    string      `json:"phoneNumber,omitempty"`
	ProfilePicture string      `json:"profilePicture,omitempty"`
	Role           domain.Role `json:"role"`
	Password       string      `json:"password"`
}

type UpdateUserInput struct {
	Username       string      `json:"username,omitempty"`
	Name           string      `json:"name,omitempty"`
	Email          string      `json:"email,omitempty"`
	PhoneNumber    string      `json:"phoneNumber,omitempty"`
	ProfilePicture string      `json:"profilePicture,omitempty"`
	Role           domain.Role `json:"role,omitempty"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// --- Operations ---

// Login authenticates against /auth/login, persists the session and records
// the authenticated user and token.
func (s *UserSlice) Login(ctx context.Context, in LoginInput) error {
	s.beginMutation()
	var resp loginResponse
	if err := s.api.Post(ctx, "/auth/login", in, &resp); err != nil {
		msg := "Login failed"
		if api.IsStatus(err, http.StatusUnauthorized) {
			msg = api.ErrorMessage(err, "Unauthorized")
		}
		s.failMutation(msg)
		return err
	}

	// Best effort: a session write failure must not lose the login itself.
	user := resp.User
	_ = s.sess.Set(resp.Token, &user)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AuthUser = &user
	s.state.Token = resp.Token
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// Logout clears the auth state and the persisted session. The collections
// and flags other than Error are left as they are.
func (s *UserSlice) Logout() {
	_ = s.sess.Clear()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AuthUser = nil
	s.state.Token = ""
	s.state.Error = ""
}

// FetchUsers replaces the user collection with the backend's full list.
func (s *UserSlice) FetchUsers(ctx context.Context) error {
	s.beginFetch()
	var users []domain.User
	if err := s.api.Get(ctx, "/user", &users); err != nil {
		s.failFetch("Failed to load users.")
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Users = users
	s.state.Loading = false
	return nil
}

// Register creates a new account and appends it to the collection.
func (s *UserSlice) Register(ctx context.Context, in RegisterUserInput) error {
	s.beginMutation()
	var created domain.User
	if err := s.api.Post(ctx, "/user/register", in, &created); err != nil {
		msg := api.ErrorMessage(err, "Registration failed")
		if api.IsStatus(err, http.StatusUnauthorized) {
			msg = api.ErrorMessage(err, "Unauthorized")
		}
		s.failMutation(msg)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Users = append(s.state.Users, created)
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// FetchByID loads one profile into the detail field; the collection is not
// touched.
func (s *UserSlice) FetchByID(ctx context.Context, id int) error {
	s.beginFetch()
	var user domain.User
	if err := s.api.Get(ctx, fmt.Sprintf("/user/profile/%d", id), &user); err != nil {
		s.failFetch(api.ErrorMessage(err, "Failed to load profile."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Profile = &user
	s.state.Loading = false
	return nil
}

// Update edits a profile. The updated entity replaces its match in the
// collection, the detail field, and the authenticated user (in which case
// the persisted session is refreshed too).
func (s *UserSlice) Update(ctx context.Context, id int, in UpdateUserInput) error {
	s.beginMutation()
	var updated domain.User
	if err := s.api.Put(ctx, fmt.Sprintf("/user/%d", id), in, &updated); err != nil {
		s.failMutation(api.ErrorMessage(err, "Update failed."))
		return err
	}

	s.mu.Lock()
	for i := range s.state.Users {
		if s.state.Users[i].ID == updated.ID {
			s.state.Users[i] = updated
		}
	}
	if s.state.Profile != nil && s.state.Profile.ID == updated.ID {
		profile := updated
		s.state.Profile = &profile
	}
	isAuthUser := s.state.AuthUser != nil && s.state.AuthUser.ID == updated.ID
	if isAuthUser {
		authUser := updated
		s.state.AuthUser = &authUser
	}
	s.state.Loading = false
	s.state.Success = true
	s.mu.Unlock()

	if isAuthUser {
		persisted := updated
		_ = s.sess.SetUser(&persisted)
	}
	return nil
}

// ToggleDeleted flips a user's soft-delete flag. The element stays in the
// collection either way; restore is the same call again.
func (s *UserSlice) ToggleDeleted(ctx context.Context, id int) error {
	s.beginMutation()
	if err := s.api.Delete(ctx, fmt.Sprintf("/user/%d", id)); err != nil {
		s.failMutation(api.ErrorMessage(err, "Delete failed."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Users {
		if s.state.Users[i].ID == id {
			s.state.Users[i].IsDeleted = !s.state.Users[i].IsDeleted
		}
	}
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// ChangePassword is a side-channel mutation: nothing in the entity changes,
// only the flags record the outcome.
func (s *UserSlice) ChangePassword(ctx context.Context, id int, in ChangePasswordInput) error {
	s.beginMutation()
	var resp struct {
		Message string `json:"message"`
	}
	if err := s.api.Post(ctx, fmt.Sprintf("/user/change-password/%d", id), in, &resp); err != nil {
		s.failMutation(api.ErrorMessage(err, "Password change failed."))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Success = true
	return nil
}

// --- flag reductions ---

func (s *UserSlice) beginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginFetch()
}

func (s *UserSlice) beginMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.beginMutation()
}

func (s *UserSlice) failFetch(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failFetch(msg)
}

func (s *UserSlice) failMutation(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status.failMutation(msg)
}
