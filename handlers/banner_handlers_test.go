package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/services"
)

type recordingBannerStore struct {
	replaceCalls int
	replaced     []models.BannerInput
	banners      []models.Banner
}

func (s *recordingBannerStore) ReplaceAll(inputs []models.BannerInput) error {
	s.replaceCalls++
	s.replaced = inputs
	return nil
}

func (s *recordingBannerStore) List() ([]models.Banner, error) {
	return s.banners, nil
}

func (s *recordingBannerStore) Delete(id string) error { return nil }

func postBanners(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/banners", UpsertBanners)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/banners", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestUpsertBanners_RejectsNonArrayBatches(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"null banners", `{"banners": null}`},
		{"missing banners key", `{}`},
		{"banners is an object", `{"banners": {"image": "x", "route": "/x"}}`},
		{"banners is a string", `{"banners": "all"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recordingBannerStore{banners: []models.Banner{{ID: "b1"}}}
			bannerService = services.NewBannerService(store)

			recorder := postBanners(t, tt.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Zero(t, store.replaceCalls, "a non-array batch must never reach the store")
		})
	}
}

func TestUpsertBanners_EmptyArrayStillReplaces(t *testing.T) {
	store := &recordingBannerStore{}
	bannerService = services.NewBannerService(store)

	recorder := postBanners(t, `{"banners": []}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, store.replaceCalls, "an explicit empty array is a deliberate full clear")
}

func TestUpsertBanners_ValidBatch(t *testing.T) {
	store := &recordingBannerStore{}
	bannerService = services.NewBannerService(store)

	recorder := postBanners(t, `{"banners": [{"image": "https://cdn/img.png", "route": "/promo"}]}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, store.replaced, 1)
	assert.Equal(t, "/promo", store.replaced[0].Route)
}
