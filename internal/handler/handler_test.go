package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"business_directory/internal/middleware"
	"business_directory/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testJWT = utils.NewJWTUtil("handler-test-secret", time.Hour)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEngine mirrors the production middleware order without the logger.
func newTestEngine(register func(rg *gin.RouterGroup, authMW gin.HandlerFunc)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
	register(&r.RouterGroup, middleware.JWTAuthMiddleware(testJWT))
	r.NoRoute(NotFound)
	return r
}

func bearer(t *testing.T, userID int) string {
	t.Helper()
	token, err := testJWT.GenerateToken(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(r http.Handler, method, path, body, auth string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
