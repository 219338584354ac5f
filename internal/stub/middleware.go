package stub

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"farhanadbm1/traintrack-client/internal/domain"
)

// Constants for context keys
const (
	contextUserIDKey   = "userID"
	contextUserRoleKey = "userRole"
)

// jwtClaims defines the structure of the JWT payload, shared between token
// issuing in auth.go and validation here.
type jwtClaims struct {
	UserID int         `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// authMiddleware creates a Gin middleware for JWT authentication.
func authMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithMessage(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithMessage(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}
		tokenString := parts[1]

		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithMessage(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithMessage(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}
		if !token.Valid || claims.UserID == 0 || claims.Role == "" {
			abortWithMessage(c, http.StatusUnauthorized, "Invalid token or missing claims")
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Set(contextUserRoleKey, claims.Role)
		c.Next()
	}
}

// abortWithMessage returns the backend's error body shape: a JSON object
// with a "message" field, which is what the client adapter extracts.
func abortWithMessage(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// roleMiddleware checks that the authenticated user has one of the allowed
// roles. Must run AFTER authMiddleware.
func roleMiddleware(allowedRoles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleRaw, exists := c.Get(contextUserRoleKey)
		if !exists {
			abortWithMessage(c, http.StatusInternalServerError, "User role not found in context")
			return
		}
		userRole, ok := roleRaw.(domain.Role)
		if !ok {
			abortWithMessage(c, http.StatusInternalServerError, "Invalid user role type in context")
			return
		}

		for _, allowed := range allowedRoles {
			if userRole == allowed {
				c.Next()
				return
			}
		}
		abortWithMessage(c, http.StatusForbidden, fmt.Sprintf("Access denied: Role '%s' does not have permission", userRole))
	}
}

// userIDFromContext returns the authenticated user's id set by
// authMiddleware.
func userIDFromContext(c *gin.Context) (int, error) {
	idRaw, exists := c.Get(contextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	id, ok := idRaw.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return id, nil
}
