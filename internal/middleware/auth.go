// Package middleware provides HTTP middleware for the API service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/Jerdirlson/api-task/internal/api"
	"github.com/Jerdirlson/api-task/internal/service"
	"github.com/gin-gonic/gin"
)

// claimsKey is the gin context key the decoded claims are stored under.
const claimsKey = "auth_claims"

// RequireAuth gates a route on a valid bearer token. On success the decoded
// claims are attached to the request context; on failure the chain is
// aborted with 401 and the downstream handler never runs.
func RequireAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, tokens)
		if !ok {
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole gates a route on a valid bearer token whose role claim equals
// the required role exactly. There is no hierarchy: a role-1 token does not
// satisfy a role-3 route, nor the other way round. Mismatches answer 401,
// matching the service's observed external behavior.
func RequireRole(tokens service.TokenService, role int) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, tokens)
		if !ok {
			return
		}
		if claims.Role != role {
			api.AbortError(c, http.StatusUnauthorized, "Insufficient permissions")
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens service.TokenService) (*service.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		api.AbortError(c, http.StatusUnauthorized, "Authorization header not found")
		return nil, false
	}

	raw := strings.TrimPrefix(header, "Bearer ")
	claims, err := tokens.Validate(raw)
	if err != nil {
		api.AbortError(c, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}
	return claims, true
}

// ClaimsFromContext returns the claims attached by RequireAuth/RequireRole.
func ClaimsFromContext(c *gin.Context) (*service.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service.Claims)
	return claims, ok
}
