package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hpd-transportes/wash-registry/models"
	"github.com/hpd-transportes/wash-registry/services"
)

type WasherController struct {
	References *services.ReferenceService
}

func NewWasherController(refs *services.ReferenceService) *WasherController {
	return &WasherController{References: refs}
}

// CreateWasher adds a name to the washer list; 400 if it is already there.
func (wc *WasherController) CreateWasher(c *gin.Context) {
	var body models.ReferenceInput
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}

	washer, err := wc.References.AddWasher(c.Request.Context(), body.Name)
	if err != nil {
		respondServiceError(c, "CreateWasher", err)
		return
	}
	c.JSON(http.StatusOK, washer)
}

func (wc *WasherController) GetAllWashers(c *gin.Context) {
	washers, err := wc.References.ListWashers(c.Request.Context())
	if err != nil {
		respondServiceError(c, "GetAllWashers", err)
		return
	}
	c.JSON(http.StatusOK, washers)
}
