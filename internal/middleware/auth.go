package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Shubha258/Task-Manager/internal/constants"
	"github.com/Shubha258/Task-Manager/internal/models"
	"github.com/Shubha258/Task-Manager/internal/repository"
	"github.com/Shubha258/Task-Manager/internal/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireAuth verifies the bearer token on the Authorization header, resolves
// it to a stored user and attaches that user to the request context.
//
// The header is split on spaces and only the second segment is used; the
// scheme itself is not validated. A header without a second segment counts as
// a missing token (400), a bad signature as an invalid one (401).
func RequireAuth(tokens *token.Service, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Token not found"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) < 2 || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": false, "msg": "Token not found"})
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": false, "msg": "Invalid token"})
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": false, "msg": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": false, "msg": "Internal Server Error"})
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user attached by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
