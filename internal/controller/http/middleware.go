package http

import (
	"net/http"
	"strings"

	"github.com/360Pawan/360Tube/internal/repo/persistent"
	"github.com/360Pawan/360Tube/pkg/jwt"
	"github.com/360Pawan/360Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"

	ctxUserKey   = "user"
	ctxUserIDKey = "user_id"
)

// AuthRequired is the single authentication gate. It takes the access
// token from the session cookie or the Authorization header (cookie
// wins), verifies it and attaches the backing account to the request
// context. Handlers never re-verify tokens.
func AuthRequired(jwtService *jwt.Service, userRepo persistent.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractAccessToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := jwtService.ValidateAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user, err := userRepo.GetByID(claims.UserID)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Account no longer exists")
			return
		}

		user.Password = ""
		user.RefreshToken = ""

		c.Set(ctxUserKey, user)
		c.Set(ctxUserIDKey, user.ID)
		c.Next()
	}
}

func extractAccessToken(c *gin.Context) string {
	if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
