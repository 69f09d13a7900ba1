package model

import "time"

// Photo represents a user-uploaded photo of a business
type Photo struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	BusinessID int       `json:"businessId"`
	Caption    string    `json:"caption,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreatePhotoRequest is the body of POST /photos
type CreatePhotoRequest struct {
	UserID     int    `json:"userId" validate:"required,max=2147483647"`
	BusinessID int    `json:"businessId" validate:"required,max=2147483647"`
	Caption    string `json:"caption"`
}

// UpdatePhotoRequest only carries the caption; userId and businessId cannot be retargeted.
type UpdatePhotoRequest struct {
	Caption *string `json:"caption,omitempty"`
}
