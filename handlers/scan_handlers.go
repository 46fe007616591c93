// handlers/scan_handlers.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// ScanBill handles POST /api/scan, forwarding the uploaded image to the
// external vision endpoint and returning the extracted bill JSON.
func ScanBill(c *gin.Context) {
	var request models.ScanRequest
	if err := bindJSON(c, &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	result, err := scanService.Analyze(c.Request.Context(), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusOK, gin.H{"data": result})
}
