package stub

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"farhanadbm1/traintrack-client/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// handleLogin verifies the password and issues a signed token, mirroring the
// real backend's /auth/login contract.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid login payload")
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	user, found := s.data.userByEmail(req.Email)
	if !found || user.IsDeleted {
		abortWithMessage(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.data.passwords[user.ID]), []byte(req.Password)); err != nil {
		abortWithMessage(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := s.generateJWT(&user)
	if err != nil {
		abortWithMessage(c, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	c.JSON(http.StatusOK, loginResponse{User: user, Token: token})
}

// generateJWT creates a new token for the given user.
func (s *Server) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "traintrack-stub",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
