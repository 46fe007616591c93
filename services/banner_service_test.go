package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/repository"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

type fakeBannerStore struct {
	replaceCalls int
	replaced     []models.BannerInput
	replaceErr   error
	banners      []models.Banner
	deleteErr    error
}

func (s *fakeBannerStore) ReplaceAll(inputs []models.BannerInput) error {
	s.replaceCalls++
	s.replaced = inputs
	return s.replaceErr
}

func (s *fakeBannerStore) List() ([]models.Banner, error) {
	return s.banners, nil
}

func (s *fakeBannerStore) Delete(id string) error {
	return s.deleteErr
}

func TestBannerService_ReplaceAll(t *testing.T) {
	store := &fakeBannerStore{banners: []models.Banner{{ID: "b1", Image: "https://cdn/img.png", Route: "/promo"}}}
	service := NewBannerService(store)

	banners, err := service.ReplaceAll([]models.BannerInput{
		{ID: " b1 ", Image: " https://cdn/img.png ", Route: " /promo "},
		{Image: "https://cdn/new.png", Route: "/new"},
	})

	require.NoError(t, err)
	require.Len(t, store.replaced, 2)
	assert.Equal(t, "b1", store.replaced[0].ID, "fields are trimmed before persistence")
	assert.Equal(t, "https://cdn/img.png", store.replaced[0].Image)
	assert.Equal(t, "", store.replaced[1].ID)
	assert.Len(t, banners, 1, "response is the reloaded stored set")
}

func TestBannerService_ReplaceAll_ValidationBeforePersistence(t *testing.T) {
	store := &fakeBannerStore{}
	service := NewBannerService(store)

	_, err := service.ReplaceAll([]models.BannerInput{
		{Image: "https://cdn/ok.png", Route: "/ok"},
		{Image: "https://cdn/bad.png", Route: "   "},
	})

	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, utils.ErrBannerFields, appErr.Message)
	assert.NotEmpty(t, appErr.Details)
	assert.Zero(t, store.replaceCalls, "an invalid batch never reaches the store")
}

func TestBannerService_ReplaceAll_UnknownID(t *testing.T) {
	store := &fakeBannerStore{
		replaceErr: fmt.Errorf("banner b404: %w", repository.ErrNotFound),
	}
	service := NewBannerService(store)

	_, err := service.ReplaceAll([]models.BannerInput{
		{ID: "b404", Image: "https://cdn/img.png", Route: "/promo"},
	})

	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Contains(t, appErr.Message, "b404")
}

func TestBannerService_ReplaceAll_EmptySetClears(t *testing.T) {
	store := &fakeBannerStore{}
	service := NewBannerService(store)

	banners, err := service.ReplaceAll(nil)

	require.NoError(t, err)
	assert.Equal(t, 1, store.replaceCalls, "an empty set still replaces the stored set")
	assert.Empty(t, banners)
}

func TestBannerService_Delete(t *testing.T) {
	service := NewBannerService(&fakeBannerStore{})
	assert.NoError(t, service.Delete("b1"))

	err := service.Delete("  ")
	require.Error(t, err)
	assert.Equal(t, utils.ErrBannerIDRequired, err.Error())

	service = NewBannerService(&fakeBannerStore{deleteErr: repository.ErrNotFound})
	err = service.Delete("b404")
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, utils.ErrBannerNotFound, appErr.Message)
}
