package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hpd-transportes/wash-registry/middlewares"
	"github.com/hpd-transportes/wash-registry/models"
	"github.com/hpd-transportes/wash-registry/services"
	"github.com/hpd-transportes/wash-registry/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Login checks the shared password and returns a session token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := ac.Auth.Authenticate(*req.Password)
	if err != nil {
		respondServiceError(c, "Login", err)
		return
	}

	utils.InfoLogger.WithField("ip", c.ClientIP()).Info("session opened")
	c.JSON(http.StatusOK, models.AuthResponse{
		Authenticated: true,
		Message:       "Acesso autorizado",
		Token:         session.Token,
		ExpiresAt:     session.ExpiresAt,
	})
}

// Session reports whether the bearer token is still valid.
func (ac *AuthController) Session(c *gin.Context) {
	token, err := middlewares.BearerToken(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	claims, err := ac.Auth.Validate(token)
	if err != nil {
		respondServiceError(c, "Session", err)
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Authenticated: true,
		ExpiresAt:     claims.ExpiresAt.Time,
	})
}

// Logout revokes the bearer token.
func (ac *AuthController) Logout(c *gin.Context) {
	token, err := middlewares.BearerToken(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	if err := ac.Auth.Revoke(token); err != nil {
		respondServiceError(c, "Logout", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sessão terminada"})
}
