// handlers/participant_handlers.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/middleware"
	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// ListParticipants handles GET /api/participants.
func ListParticipants(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrTokenRequired))
		return
	}

	participants, err := participantService.List(principal.UserID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusOK, gin.H{"participants": participants})
}

// CreateParticipant handles POST /api/participants.
func CreateParticipant(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrTokenRequired))
		return
	}

	var request models.CreateParticipantRequest
	if err := bindJSON(c, &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	participant, err := participantService.Create(principal.UserID, request.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusCreated, gin.H{"participant": participant})
}

// DeleteParticipant handles DELETE /api/participants/:id.
func DeleteParticipant(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrTokenRequired))
		return
	}

	if err := participantService.Delete(principal.UserID, c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusOK, gin.H{})
}
