package model

import "time"

// Review is a user's rating of a business
type Review struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	BusinessID int       `json:"businessId"`
	Dollars    int       `json:"dollars"` // 1..4
	Stars      int       `json:"stars"`   // 0..5
	Review     string    `json:"review,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateReviewRequest is the body of POST /reviews
type CreateReviewRequest struct {
	UserID     int    `json:"userId" validate:"required,max=2147483647"`
	BusinessID int    `json:"businessId" validate:"required,max=2147483647"`
	Dollars    int    `json:"dollars" validate:"required,min=1,max=4"`
	Stars      *int   `json:"stars" validate:"required,min=0,max=5"` // Pointer so 0 stars passes "required"
	Review     string `json:"review"`
}

// UpdateReviewRequest holds the mutable review fields; userId and businessId are fixed.
type UpdateReviewRequest struct {
	Dollars *int    `json:"dollars,omitempty" validate:"omitnil,min=1,max=4"`
	Stars   *int    `json:"stars,omitempty" validate:"omitnil,min=0,max=5"`
	Review  *string `json:"review,omitempty"`
}
