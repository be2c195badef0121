package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hpd-transportes/wash-registry/services"
	"github.com/hpd-transportes/wash-registry/utils"
)

// respondServiceError maps service errors to status codes. Anything not
// recognised is logged and reported as 500.
func respondServiceError(c *gin.Context, funcName string, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		utils.RespondError(c, http.StatusUnauthorized, err)
	case errors.Is(err, services.ErrConflict):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	default:
		utils.LogError("controllers", funcName, c.Request.URL.Path, err)
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

// respondBindError reports a request body or path that failed binding.
func respondBindError(c *gin.Context, err error) {
	utils.RespondError(c, http.StatusUnprocessableEntity, err)
}
