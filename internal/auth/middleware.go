package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// LoginKey is the gin context key the middleware stores the caller's login under.
	LoginKey = "authLogin"

	requestIDHeader = "X-Request-ID"
)

// RequireLogin resolves the caller's identity from the Authorization header.
// The bearer value is either a session token issued at login or, for clients
// of the legacy interface, the raw login itself. No cryptographic guarantee is
// implied by the raw form; it is kept as an interface contract.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		bearer := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if bearer == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		login := bearer
		if parsed, err := ParseToken(bearer); err == nil {
			login = parsed
		}
		c.Set(LoginKey, login)
		c.Next()
	}
}

// LoginFrom returns the login set by RequireLogin.
func LoginFrom(c *gin.Context) (string, bool) {
	v, exists := c.Get(LoginKey)
	if !exists {
		return "", false
	}
	login, ok := v.(string)
	return login, ok && login != ""
}

// RequestID tags every request with an id for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
