// services/banner_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/repository"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// BannerStore is the persistence surface the banner service needs.
type BannerStore interface {
	ReplaceAll(inputs []models.BannerInput) error
	List() ([]models.Banner, error)
	Delete(id string) error
}

// BannerService handles banner business logic.
type BannerService struct {
	store BannerStore
}

// NewBannerService creates a new banner service
func NewBannerService(store BannerStore) *BannerService {
	return &BannerService{store: store}
}

// ReplaceAll validates the whole batch before any persistence runs, then
// applies it atomically and returns the freshly reloaded set. A mid-batch
// failure leaves the stored set untouched.
func (s *BannerService) ReplaceAll(inputs []models.BannerInput) ([]models.Banner, error) {
	normalized := make([]models.BannerInput, 0, len(inputs))
	for _, input := range inputs {
		image := strings.TrimSpace(input.Image)
		route := strings.TrimSpace(input.Route)
		if image == "" || route == "" {
			return nil, utils.NewValidationError(utils.ErrBannerFields,
				utils.FieldError{Field: "image", Message: utils.MsgBannerImageField},
				utils.FieldError{Field: "route", Message: utils.MsgBannerRouteField},
			)
		}
		normalized = append(normalized, models.BannerInput{
			ID:    strings.TrimSpace(input.ID),
			Image: image,
			Route: route,
		})
	}

	if err := s.store.ReplaceAll(normalized); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.NewNotFoundError(err.Error())
		}
		return nil, utils.NewInternalError("Failed to save banners")
	}

	banners, err := s.store.List()
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve banners")
	}
	return banners, nil
}

// List returns all banners, newest first.
func (s *BannerService) List() ([]models.Banner, error) {
	banners, err := s.store.List()
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve banners")
	}
	return banners, nil
}

// Delete removes a single banner.
func (s *BannerService) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return utils.NewBadRequestError(utils.ErrBannerIDRequired)
	}
	if err := s.store.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.NewNotFoundError(utils.ErrBannerNotFound)
		}
		return utils.NewInternalError(fmt.Sprintf("Failed to delete banner %s", id))
	}
	return nil
}
