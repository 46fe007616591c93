// handlers/auth_handlers.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/middleware"
	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// Login handles POST /api/auth/login for the admin dashboard.
func Login(c *gin.Context) {
	var request models.LoginRequest
	if err := bindJSON(c, &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	user, tokens, err := authService.Login(request.Email, request.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusOK, gin.H{
		"message":      utils.MsgLoginSuccessful,
		"user":         user.Public(),
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

// Register handles POST /api/auth/register.
func Register(c *gin.Context) {
	var request models.RegisterRequest
	if err := bindJSON(c, &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	user, err := authService.Register(request.Name, request.Email, request.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusCreated, gin.H{"user": user.Public()})
}

// Refresh handles POST /api/auth/refresh.
func Refresh(c *gin.Context) {
	var request models.RefreshRequest
	if err := bindJSON(c, &request); err != nil {
		utils.HandleError(c, err)
		return
	}
	if request.RefreshToken == "" {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	tokens, err := authService.Refresh(request.RefreshToken)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, http.StatusOK, gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so there is
// nothing to revoke server-side; an invalid refresh token is logged and
// ignored rather than failing the logout.
func Logout(c *gin.Context) {
	var request models.RefreshRequest
	if err := bindJSON(c, &request); err != nil {
		utils.HandleError(c, err)
		return
	}

	if request.RefreshToken != "" {
		if _, err := authService.ValidateRefreshToken(request.RefreshToken); err != nil {
			slog.Warn("invalid refresh token during logout", "error", err)
		}
	}

	utils.HandleSuccess(c, http.StatusOK, gin.H{"message": utils.MsgLogoutSuccessful})
}

// Me handles GET /api/auth/me.
func Me(c *gin.Context) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrTokenRequired))
		return
	}
	utils.HandleSuccess(c, http.StatusOK, gin.H{"user": user.Public()})
}

// ListUsers handles GET /api/users for admins.
func ListUsers(c *gin.Context) {
	users, err := authService.ListUsers()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, http.StatusOK, gin.H{"users": users})
}
