// handlers/banner_handlers.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// ListBanners handles the public GET /api/banners.
func ListBanners(c *gin.Context) {
	banners, err := bannerService.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, http.StatusOK, gin.H{"data": gin.H{"banners": banners}})
}

// UpsertBanners handles POST /api/banners: the submitted set replaces the
// stored set as a whole.
func UpsertBanners(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := bindJSON(c, &raw); err != nil {
		utils.HandleError(c, err)
		return
	}

	// A JSON null decodes into a nil slice without error, and a nil batch
	// would wipe the stored set. Only a real array may reach the service.
	var inputs []models.BannerInput
	payload, ok := raw["banners"]
	if !ok || json.Unmarshal(payload, &inputs) != nil || inputs == nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrBannersNotArray))
		return
	}

	banners, err := bannerService.ReplaceAll(inputs)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusOK, gin.H{
		"message": utils.MsgBannersSaved,
		"data":    gin.H{"banners": banners},
	})
}

// DeleteBanner handles DELETE /api/banners?id=.
func DeleteBanner(c *gin.Context) {
	if err := bannerService.Delete(c.Query("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, http.StatusOK, gin.H{"message": utils.MsgBannerDeleted})
}
