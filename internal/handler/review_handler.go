package handler

import (
	"net/http"

	"business_directory/internal/model"
	"business_directory/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles review related requests
type ReviewHandler struct {
	service service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	var req model.CreateReviewRequest
	if !bindBody(c, &req) {
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), subjectID, req)
	if err != nil {
		respondError(c, err, msgCreateDenied)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": review.ID})
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	review, err := h.service.GetReview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgAccessDenied)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.UpdateReviewRequest
	if !bindBody(c, &req) {
		return
	}

	if err := h.service.UpdateReview(c.Request.Context(), subjectID, id, req); err != nil {
		respondError(c, err, msgUpdateDenied)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), subjectID, id); err != nil {
		respondError(c, err, msgDeleteDenied)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUserReviews serves GET /users/:id/reviews
func (h *ReviewHandler) ListUserReviews(c *gin.Context) {
	subjectID, ok := authUserID(c)
	if !ok {
		return
	}
	userID, ok := pathID(c)
	if !ok {
		return
	}

	reviews, err := h.service.ListUserReviews(c.Request.Context(), subjectID, userID)
	if err != nil {
		respondError(c, err, msgAccessDenied)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// RegisterReviewRoutes registers review routes
func (h *ReviewHandler) RegisterReviewRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	reviews := rg.Group("/reviews")
	{
		reviews.POST("", authMW, h.CreateReview)
		reviews.GET("/:id", h.GetReview)
		reviews.PATCH("/:id", authMW, h.UpdateReview)
		reviews.DELETE("/:id", authMW, h.DeleteReview)
	}
	rg.GET("/users/:id/reviews", authMW, h.ListUserReviews)
}
