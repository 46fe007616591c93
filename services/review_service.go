// services/review_service.go
package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// ReviewStore is the persistence surface the review service needs.
type ReviewStore interface {
	Create(review *models.Review) error
	Page(rating, offset, limit int) ([]models.Review, error)
	Count(rating int) (int, error)
}

// ReviewService handles public product reviews.
type ReviewService struct {
	store ReviewStore
}

// NewReviewService creates a new review service
func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{store: store}
}

// Create validates and stores a review. Contact fields are required, and
// format-checked, only when the reviewer agreed to be contacted.
func (s *ReviewService) Create(req *models.CreateReviewRequest) (*models.Review, error) {
	var fieldErrors []utils.FieldError

	if req.Rating == 0 {
		fieldErrors = append(fieldErrors, utils.FieldError{Field: "rating", Message: "Rating harus diisi"})
	}
	if strings.TrimSpace(req.Review) == "" {
		fieldErrors = append(fieldErrors, utils.FieldError{Field: "review", Message: "Ulasan harus diisi"})
	}
	if len(fieldErrors) > 0 {
		return nil, utils.NewValidationError("Validation error", fieldErrors...)
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.NewValidationError("Validation error",
			utils.FieldError{Field: "rating", Message: "Rating harus antara 1-5"})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := utils.StripSpaces(req.Phone)

	if req.ContactPermission {
		if email == "" {
			fieldErrors = append(fieldErrors, utils.FieldError{Field: "email", Message: "Email harus diisi jika bersedia dihubungi"})
		}
		if phone == "" {
			fieldErrors = append(fieldErrors, utils.FieldError{Field: "phone", Message: "Nomor telepon harus diisi jika bersedia dihubungi"})
		}
		if email != "" && !utils.IsValidEmail(email) {
			fieldErrors = append(fieldErrors, utils.FieldError{Field: "email", Message: "Format email tidak valid"})
		}
		if phone != "" && !utils.IsValidPhone(phone) {
			fieldErrors = append(fieldErrors, utils.FieldError{Field: "phone", Message: "Format nomor telepon tidak valid"})
		}
		if len(fieldErrors) > 0 {
			return nil, utils.NewValidationError("Validation error", fieldErrors...)
		}
	} else {
		email = ""
		phone = ""
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Anonim"
	}

	review := &models.Review{
		ID:                uuid.NewString(),
		Rating:            req.Rating,
		Name:              name,
		Review:            strings.TrimSpace(req.Review),
		ContactPermission: req.ContactPermission,
		Email:             email,
		Phone:             phone,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.store.Create(review); err != nil {
		return nil, utils.NewInternalError("Failed to store review")
	}
	return review, nil
}

// List returns one page of reviews plus pagination metadata. The page and
// count queries are independent, so they run concurrently.
func (s *ReviewService) List(page, limit, rating int) ([]models.Review, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var (
		reviews  []models.Review
		total    int
		pageErr  error
		countErr error
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		total, countErr = s.store.Count(rating)
	}()
	reviews, pageErr = s.store.Page(rating, offset, limit)
	<-done

	if pageErr != nil || countErr != nil {
		return nil, models.Pagination{}, utils.NewInternalError("Failed to retrieve reviews")
	}

	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	return reviews, models.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}, nil
}
