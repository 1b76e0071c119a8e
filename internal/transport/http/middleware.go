package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillswaphq/skillswap-backend/internal/consts"
	"github.com/skillswaphq/skillswap-backend/internal/utils/jwtauth"
	"github.com/skillswaphq/skillswap-backend/internal/view"
)

// authMiddleware validates the Bearer token and injects the acting user's id
// into the request context. Handlers behind it can rely on the id being set.
func authMiddleware(jwtManager *jwtauth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, view.ErrorResponse{Error: "missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, view.ErrorResponse{Error: "invalid authorization header"})
			return
		}

		claims, err := jwtManager.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, view.ErrorResponse{Error: err.Error()})
			return
		}

		c.Set(consts.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}
