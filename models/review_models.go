package models

import "time"

// Review is a public product review.
type Review struct {
	ID                string    `json:"id"`
	Rating            int       `json:"rating"`
	Name              string    `json:"name"`
	Review            string    `json:"review"`
	ContactPermission bool      `json:"contactPermission"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CreateReviewRequest is the body of POST /api/reviews.
type CreateReviewRequest struct {
	Rating            int    `json:"rating"`
	Name              string `json:"name"`
	Review            string `json:"review"`
	ContactPermission bool   `json:"contactPermission"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}
