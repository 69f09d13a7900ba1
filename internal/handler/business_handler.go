package handler

import (
	"net/http"

	"business_directory/internal/model"
	"business_directory/internal/service"

	"github.com/gin-gonic/gin"
)

// BusinessHandler handles business related requests
type BusinessHandler struct {
	service service.BusinessService
}

// NewBusinessHandler creates a new BusinessHandler
func NewBusinessHandler(s service.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: s}
}

func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	businesses, err := h.service.ListBusinesses(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	var req model.CreateBusinessRequest
	if !bindBody(c, &req) {
		return
	}

	business, err := h.service.CreateBusiness(c.Request.Context(), subjectID, req)
	if err != nil {
		respondError(c, err, msgCreateDenied)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": business.ID})
}

// GetBusiness returns the business together with its photos and reviews
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	details, err := h.service.GetBusiness(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgAccessDenied)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.UpdateBusinessRequest
	if !bindBody(c, &req) {
		return
	}

	if err := h.service.UpdateBusiness(c.Request.Context(), subjectID, id, req); err != nil {
		respondError(c, err, msgUpdateDenied)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BusinessHandler) DeleteBusiness(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBusiness(c.Request.Context(), subjectID, id); err != nil {
		respondError(c, err, msgDeleteDenied)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUserBusinesses serves GET /users/:id/businesses
func (h *BusinessHandler) ListUserBusinesses(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	userID, ok := pathID(c)
	if !ok {
		return
	}

	businesses, err := h.service.ListUserBusinesses(c.Request.Context(), subjectID, userID)
	if err != nil {
		respondError(c, err, msgAccessDenied)
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// RegisterBusinessRoutes registers business routes
func (h *BusinessHandler) RegisterBusinessRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	businesses := rg.Group("/businesses")
	{
		businesses.GET("", h.ListBusinesses)
		businesses.POST("", authMW, h.CreateBusiness)
		businesses.GET("/:id", h.GetBusiness)
		businesses.PATCH("/:id", authMW, h.UpdateBusiness)
		businesses.DELETE("/:id", authMW, h.DeleteBusiness)
	}
	rg.GET("/users/:id/businesses", authMW, h.ListUserBusinesses)
}
