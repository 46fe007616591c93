// repository/review_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/fadhlanhapp/splitbill-backend/models"
)

// ReviewRepository handles database operations for reviews.
type ReviewRepository struct {
	DB *sql.DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// Create inserts a review.
func (r *ReviewRepository) Create(review *models.Review) error {
	_, err := r.DB.Exec(
		`INSERT INTO reviews (id, rating, name, review, contact_permission, email, phone, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8)`,
		review.ID, review.Rating, review.Name, review.Review,
		review.ContactPermission, review.Email, review.Phone, review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review: %v", err)
	}
	return nil
}

// Page returns one page of reviews, newest first. rating filters when > 0.
func (r *ReviewRepository) Page(rating, offset, limit int) ([]models.Review, error) {
	rows, err := r.DB.Query(
		`SELECT id, rating, name, review, contact_permission,
			COALESCE(email, ''), COALESCE(phone, ''), created_at
		 FROM reviews
		 WHERE ($1 = 0 OR rating = $1)
		 ORDER BY created_at DESC
		 OFFSET $2 LIMIT $3`,
		rating, offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %v", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.ID, &review.Rating, &review.Name, &review.Review,
			&review.ContactPermission, &review.Email, &review.Phone, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %v", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// Count returns the number of reviews matching the rating filter.
func (r *ReviewRepository) Count(rating int) (int, error) {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM reviews WHERE ($1 = 0 OR rating = $1)`,
		rating,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %v", err)
	}
	return count, nil
}
