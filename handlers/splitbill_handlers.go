// handlers/splitbill_handlers.go
package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/middleware"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// CreateSplitBill handles POST /api/split-bills. The body is taken as raw
// JSON and run through the sanitizer; it is never bound to the record type
// directly.
func CreateSplitBill(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrTokenRequired))
		return
	}

	var raw map[string]interface{}
	if err := bindJSON(c, &raw); err != nil {
		utils.HandleError(c, err)
		return
	}

	record, err := splitBillService.Create(principal.UserID, raw)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusCreated, gin.H{"record": record})
}

// ListSplitBills handles GET /api/split-bills.
func ListSplitBills(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrTokenRequired))
		return
	}

	records, err := splitBillService.ListByOwner(principal.UserID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusOK, gin.H{"records": records})
}

// GetSplitBill handles GET /api/split-bills/:id.
func GetSplitBill(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrTokenRequired))
		return
	}

	record, err := splitBillService.GetByID(principal.UserID, c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusOK, gin.H{"record": record})
}

// ExportSplitBill handles GET /api/split-bills/:id/export, streaming the
// record as an xlsx download.
func ExportSplitBill(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrTokenRequired))
		return
	}

	file, filename, err := excelService.ExportRecord(principal.UserID, c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.HandleError(c, utils.NewInternalError("Failed to generate export"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
