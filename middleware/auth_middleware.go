package middleware

import (
	"net/http"
	"strings"

	"stockdock/auth"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
)

func bearerToken(header string) string {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// AdminOnly guards gin routes behind an admin bearer token.
func AdminOnly(signer *auth.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}

		claims, err := signer.ValidateToken(token)
		if err != nil || claims.Role != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Forbidden: Admin access required"})
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}

// HumaAdminOnly is the huma counterpart of AdminOnly.
func HumaAdminOnly(api huma.API, signer *auth.Signer) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := bearerToken(ctx.Header("Authorization"))
		if token == "" {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := signer.ValidateToken(token)
		if err != nil || claims.Role != auth.RoleAdmin {
			huma.WriteErr(api, ctx, http.StatusForbidden, "Forbidden: Admin access required")
			return
		}

		next(huma.WithValue(ctx, "subject", claims.Subject))
	}
}
