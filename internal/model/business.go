package model

import "time"

// Business is a directory listing owned by a single user
type Business struct {
	ID          int       `json:"id"`
	OwnerID     int       `json:"ownerId"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	Phone       string    `json:"phone"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Website     string    `json:"website,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BusinessDetails is a business together with its photos and reviews
type BusinessDetails struct {
	Business
	Photos  []Photo  `json:"photos"`
	Reviews []Review `json:"reviews"`
}

// CreateBusinessRequest is used for creating a new business
type CreateBusinessRequest struct {
	OwnerID     int    `json:"ownerId" validate:"required,max=2147483647"`
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	Zip         string `json:"zip" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Subcategory string `json:"subcategory" validate:"required"`
	Website     string `json:"website" validate:"omitempty,url"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// UpdateBusinessRequest holds the client-mutable business fields.
// It has no ownerId; ownership cannot be transferred.
type UpdateBusinessRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,min=1"` // Pointers to allow partial updates
	Address     *string `json:"address,omitempty" validate:"omitnil,min=1"`
	City        *string `json:"city,omitempty" validate:"omitnil,min=1"`
	State       *string `json:"state,omitempty" validate:"omitnil,min=1"`
	Zip         *string `json:"zip,omitempty" validate:"omitnil,min=1"`
	Phone       *string `json:"phone,omitempty" validate:"omitnil,min=1"`
	Category    *string `json:"category,omitempty" validate:"omitnil,min=1"`
	Subcategory *string `json:"subcategory,omitempty" validate:"omitnil,min=1"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
}
