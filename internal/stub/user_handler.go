package stub

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"farhanadbm1/traintrack-client/internal/domain"
)

type registerUserRequest struct {
	Username       string      `json:"username" binding:"required"`
	Name           string      `json:"name" binding:"required"`
	Email          string      `json:"email" binding:"required,email"`
	PhoneNumber    string      `json:"phoneNumber"`
	ProfilePicture string      `json:"profilePicture"`
	Role           domain.Role `json:"role" binding:"required,oneof=Admin Trainer Trainee"`
	Password       string      `json:"password" binding:"required,min=6"`
}

type updateUserRequest struct {
	Username       string      `json:"username"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	PhoneNumber    string      `json:"phoneNumber"`
	ProfilePicture string      `json:"profilePicture"`
	Role           domain.Role `json:"role"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

func (s *Server) handleListUsers(c *gin.Context) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	c.JSON(http.StatusOK, s.data.users)
}

func (s *Server) handleRegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid registration payload")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, exists := s.data.userByEmail(req.Email); exists {
		abortWithMessage(c, http.StatusConflict, "A user with this email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithMessage(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := domain.User{
		ID:             s.data.id(),
		Username:       req.Username,
		Name:           req.Name,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
		Role:           req.Role,
	}
	s.data.users = append(s.data.users, user)
	s.data.passwords[user.ID] = string(hash)

	c.JSON(http.StatusCreated, user)
}

func (s *Server) handleGetProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	i, found := s.data.userByID(id)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, s.data.users[i])
}

func (s *Server) handleUpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	i, found := s.data.userByID(id)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "User not found")
		return
	}

	user := &s.data.users[i]
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.ProfilePicture != "" {
		user.ProfilePicture = req.ProfilePicture
	}
	if req.Role != "" {
		user.Role = req.Role
	}

	c.JSON(http.StatusOK, *user)
}

// handleToggleUserDeleted flips the soft-delete flag; DELETE on a user never
// removes the record.
func (s *Server) handleToggleUserDeleted(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	i, found := s.data.userByID(id)
	if !found {
		abortWithMessage(c, http.StatusNotFound, "User not found")
		return
	}
	s.data.users[i].IsDeleted = !s.data.users[i].IsDeleted

	c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
}

func (s *Server) handleChangePassword(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid password payload")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		abortWithMessage(c, http.StatusBadRequest, "New password and confirmation do not match")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, found := s.data.userByID(id); !found {
		abortWithMessage(c, http.StatusNotFound, "User not found")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.data.passwords[id]), []byte(req.CurrentPassword)); err != nil {
		abortWithMessage(c, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		abortWithMessage(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}
	s.data.passwords[id] = string(hash)

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
