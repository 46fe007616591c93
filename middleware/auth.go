// middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/services"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// Context keys set by the auth gate.
const (
	ContextUserKey      = "user"
	ContextPrincipalKey = "principal"
)

// RequireUser rejects requests without a valid bearer access token and
// attaches the resolved user and principal to the context.
func RequireUser(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrTokenRequired))
			return
		}

		user, err := auth.ResolveUser(token)
		if err != nil {
			utils.HandleError(c, err)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextPrincipalKey, models.Principal{UserID: user.ID, IsAdmin: user.IsAdmin})
		c.Next()
	}
}

// RequireAdmin rejects authenticated callers who are not admins. Must run
// after RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok || !principal.IsAdmin {
			utils.HandleError(c, utils.NewForbiddenError(utils.ErrAdminOnly))
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal the auth gate attached, if any.
func PrincipalFrom(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}

// UserFrom returns the full user record the auth gate attached, if any.
func UserFrom(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
