package middleware

import (
	"strings"

	"ShaadiBiodata/internal/apperr"
	"ShaadiBiodata/internal/auth"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

var (
	ErrNoToken        = apperr.New(apperr.KindUnauthenticated, "No token provided")
	ErrMalformedToken = apperr.New(apperr.KindUnauthenticated, "Unauthorized")
)

// AuthMiddleware admits requests carrying a valid "Authorization: Bearer"
// token and exposes its claims through ClaimsFrom. No storage lookup is made.
func AuthMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, ErrNoToken)
			return
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			abort(c, ErrMalformedToken)
			return
		}

		claims, err := issuer.Validate(tokenString)
		if err != nil {
			abort(c, auth.ErrInvalidToken)
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the identity stored by AuthMiddleware.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

func abort(c *gin.Context, err *apperr.Error) {
	c.AbortWithStatusJSON(apperr.Status(err.Kind), gin.H{"error": err.Message})
}
