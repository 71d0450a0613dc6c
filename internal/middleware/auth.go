package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/pkg/response"
)

const scopeKey = "scope"

// Claims is the JWT payload carried by API tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// Auth validates the Bearer token and stores the caller's scope on the
// request context. Tokens are HS256-signed with the configured secret; the
// subject claim is the user id.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(m.config.Auth.JWTSecret), nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: claims.Subject})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth. The second return is false for
// unauthenticated requests.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
