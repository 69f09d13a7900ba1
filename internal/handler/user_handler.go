package handler

import (
	"errors"
	"net/http"
	"strings"

	"business_directory/internal/middleware"
	"business_directory/internal/model"
	"business_directory/internal/service"
	"business_directory/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler handles account, login and profile requests
type UserHandler struct {
	service service.UserService
	jwtUtil *utils.JWTUtil
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService, jwtUtil *utils.JWTUtil) *UserHandler {
	return &UserHandler{service: s, jwtUtil: jwtUtil}
}

// CreateUser registers a user. Requesting admin privileges needs the bearer
// token of an existing admin.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if !bindBody(c, &req) {
		return
	}

	creatorID := 0
	if req.Admin {
		id, err := middleware.SubjectFromRequest(c, h.jwtUtil)
		if err != nil {
			middleware.AbortUnauthorized(c)
			return
		}
		creatorID = id
	}

	user, err := h.service.CreateUser(c.Request.Context(), creatorID, req)
	if err != nil {
		respondError(c, err, "Unauthorized to create user with administrator privileges")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.ID})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body needs user email and password."})
		return
	}

	_, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication credentials"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in. Try again later."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), subjectID, id)
	if err != nil {
		respondError(c, err, msgAccessDenied)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.POST("/login", h.Login)
		users.GET("/:id", authMW, h.GetUser)
	}
}
