package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hpd-transportes/wash-registry/utils"
)

// ContextSessionID is the gin context key holding the session token id.
const ContextSessionID = "session_id"

// SessionValidator is satisfied by services.AuthService.
type SessionValidator interface {
	Validate(token string) (*utils.SessionClaims, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("authorization header missing")
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", errors.New("invalid authorization format")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", errors.New("authorization header missing")
	}
	return token, nil
}

// AuthMiddleware rejects requests without a valid session token.
func AuthMiddleware(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := BearerToken(c)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, err)
			return
		}

		claims, err := sessions.Validate(token)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, utils.ErrInvalidToken)
			return
		}

		c.Set(ContextSessionID, claims.ID)
		c.Next()
	}
}
