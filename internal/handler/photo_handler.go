package handler

import (
	"net/http"

	"business_directory/internal/model"
	"business_directory/internal/service"

	"github.com/gin-gonic/gin"
)

// PhotoHandler handles photo related requests
type PhotoHandler struct {
	service service.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(s service.PhotoService) *PhotoHandler {
	return &PhotoHandler{service: s}
}

func (h *PhotoHandler) CreatePhoto(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	var req model.CreatePhotoRequest
	if !bindBody(c, &req) {
		return
	}

	photo, err := h.service.CreatePhoto(c.Request.Context(), subjectID, req)
	if err != nil {
		respondError(c, err, msgCreateDenied)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": photo.ID})
}

func (h *PhotoHandler) GetPhoto(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	photo, err := h.service.GetPhoto(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgAccessDenied)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (h *PhotoHandler) UpdatePhoto(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.UpdatePhotoRequest
	if !bindBody(c, &req) {
		return
	}

	if err := h.service.UpdatePhoto(c.Request.Context(), subjectID, id, req); err != nil {
		respondError(c, err, msgUpdateDenied)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePhoto(c.Request.Context(), subjectID, id); err != nil {
		respondError(c, err, msgDeleteDenied)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUserPhotos serves GET /users/:id/photos
func (h *PhotoHandler) ListUserPhotos(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	userID, ok := pathID(c)
	if !ok {
		return
	}

	photos, err := h.service.ListUserPhotos(c.Request.Context(), subjectID, userID)
	if err != nil {
		respondError(c, err, msgAccessDenied)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// RegisterPhotoRoutes registers photo routes
func (h *PhotoHandler) RegisterPhotoRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	photos := rg.Group("/photos")
	{
		photos.POST("", authMW, h.CreatePhoto)
		photos.GET("/:id", h.GetPhoto)
		photos.PATCH("/:id", authMW, h.UpdatePhoto)
		photos.DELETE("/:id", authMW, h.DeletePhoto)
	}
	rg.GET("/users/:id/photos", authMW, h.ListUserPhotos)
}
