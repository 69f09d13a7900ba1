package handler

import (
	"errors"
	"net/http"
	"strconv"

	"business_directory/internal/middleware"
	"business_directory/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgCreateDenied = "Unauthorized to create resource for specified user"
	msgUpdateDenied = "Unauthorized to update resource for specified user"
	msgDeleteDenied = "Unauthorized to delete resource for specified user"
	msgAccessDenied = "Unauthorized to access the specified resource"
	msgBadBody      = "Request body is not valid JSON"
)

// NotFound answers 404 for the requested path. It is also the router's NoRoute handler.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Requested resource " + c.Request.URL.Path + " does not exist"})
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int, bool) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, false
	}
	userID, ok := userIDVal.(int)
	return userID, ok
}

// authUserID reads the subject or answers 401 when the auth middleware did not run.
func authUserID(c *gin.Context) (int, bool) {
	userID, ok := getAuthUserID(c)
	if !ok {
		middleware.AbortUnauthorized(c)
	}
	return userID, ok
}

// pathID parses the :id parameter. Anything outside the int4 range of the
// id columns, or not positive, is a 404.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		NotFound(c)
		return 0, false
	}
	return int(id), true
}

func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadBody})
		return false
	}
	return true
}

// respondError maps service errors to responses. Unknown errors go to the
// error middleware through c.Error.
func respondError(c *gin.Context, err error, deniedMsg string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": deniedMsg})
	case errors.Is(err, service.ErrNotFound):
		NotFound(c)
	default:
		_ = c.Error(err)
	}
}
