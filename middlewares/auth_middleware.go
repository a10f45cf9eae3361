package middlewares

import (
	"net/http"
	"strings"

	"articlehub/services"
	"articlehub/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware resolves the Bearer token into an Identity and puts
// it on the request context. Everything behind it trusts that value.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := utils.ParseJWT(token, secret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx.Set(identityKey, services.Identity{UserID: claims.UserID, Roles: claims.Roles})
		ctx.Next()
	}
}

// CurrentIdentity returns the identity the middleware stored.
func CurrentIdentity(ctx *gin.Context) services.Identity {
	identity, _ := ctx.MustGet(identityKey).(services.Identity)
	return identity
}
