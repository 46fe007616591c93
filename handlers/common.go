// handlers/common.go
package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/repository"
	"github.com/fadhlanhapp/splitbill-backend/services"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

var (
	authService        *services.AuthService
	splitBillService   *services.SplitBillService
	excelService       *services.ExcelService
	participantService *services.ParticipantService
	bannerService      *services.BannerService
	reviewService      *services.ReviewService
	walletService      *services.WalletService
	scanService        *services.ScanService
)

// InitHandlers wires the handler package against the shared database handle
// and environment configuration. Must be called after repository.InitDB.
func InitHandlers() error {
	db := repository.GetDB()

	auth, err := services.NewAuthService(
		repository.NewUserRepository(db),
		os.Getenv("JWT_SECRET"),
		os.Getenv("JWT_REFRESH_SECRET"),
	)
	if err != nil {
		return err
	}
	authService = auth

	splitBillService = services.NewSplitBillService(repository.NewSplitBillRepository(db))
	excelService = services.NewExcelService(splitBillService)
	participantService = services.NewParticipantService(repository.NewParticipantRepository(db))
	bannerService = services.NewBannerService(repository.NewBannerRepository(db))
	reviewService = services.NewReviewService(repository.NewReviewRepository(db))
	walletService = services.NewWalletService(repository.NewWalletRepository(db))
	scanService = services.NewScanService(os.Getenv("SCAN_API_URL"), os.Getenv("SCAN_API_KEY"))

	return nil
}

// Auth exposes the auth service for the route-level middleware.
func Auth() *services.AuthService {
	return authService
}

// bindJSON decodes the request body into dst, mapping an oversized body to a
// 413 and anything else unparseable to a 400.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return utils.NewPayloadTooLargeError("Request body too large")
		}
		return utils.NewBadRequestError(utils.ErrInvalidRequest)
	}
	return nil
}
