package middleware

import (
	"errors"
	"net/http"
	"strings"

	"business_directory/internal/utils"

	"github.com/gin-gonic/gin"
)

const AuthUserKey = "authUser"

const invalidTokenMessage = "Invalid authentication token provided."

var ErrNoCredential = errors.New("no bearer token in Authorization header")

// SubjectFromRequest returns the user id carried by the request's bearer token.
// Only "Bearer <token>" with exactly one space is accepted.
func SubjectFromRequest(c *gin.Context, jwtUtil *utils.JWTUtil) (int, error) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return 0, ErrNoCredential
	}
	return jwtUtil.SubjectID(parts[1])
}

// AbortUnauthorized writes the 401 used for every authentication failure
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": invalidTokenMessage})
}

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := SubjectFromRequest(c, jwtUtil)
		if err != nil {
			AbortUnauthorized(c)
			return
		}

		c.Set(AuthUserKey, userID)
		c.Next()
	}
}
