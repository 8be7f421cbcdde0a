package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"timbrapp.com/timbrapp/attendance/core"
	"timbrapp.com/timbrapp/security"
	"timbrapp.com/timbrapp/web/common"
)

const ClaimsKey = "sessionClaims"

// Timeouts carries the per-role session timeout configuration.
type Timeouts struct {
	Employee time.Duration
	Admin    time.Duration
}

// Authentication checks for a valid Bearer token, then applies the session
// guard: a token whose establishment instant is older than the role's
// timeout is rejected with 401 and the client must log in again.
func Authentication(jwtSecret []byte, timeouts Timeouts) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := security.ParseSessionToken(jwtSecret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid token"))
			return
		}

		timeout := timeouts.Employee
		if claims.Role == security.RoleAdmin {
			timeout = timeouts.Admin
		}
		if claims.IssuedAt == nil || !core.SessionValid(claims.IssuedAt.Time, time.Now(), timeout) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse(core.ErrSessionExpired.Error()))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := SessionFrom(c)
		if claims == nil || claims.Role != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// SessionFrom returns the verified claims set by Authentication, or nil.
func SessionFrom(c *gin.Context) *security.SessionClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*security.SessionClaims)
	return claims
}
