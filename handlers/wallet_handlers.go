// handlers/wallet_handlers.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// ListWallets handles the public GET /api/wallets.
func ListWallets(c *gin.Context) {
	wallets, err := walletService.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, http.StatusOK, gin.H{"wallets": wallets})
}

// CreateWallet handles POST /api/wallets.
func CreateWallet(c *gin.Context) {
	var request models.CreateWalletRequest
	if err := bindJSON(c, &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	wallet, err := walletService.Create(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusCreated, gin.H{"wallet": wallet})
}
