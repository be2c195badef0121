package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hpd-transportes/wash-registry/models"
	"github.com/hpd-transportes/wash-registry/services"
)

type WashController struct {
	Washes *services.WashService
}

func NewWashController(washes *services.WashService) *WashController {
	return &WashController{Washes: washes}
}

type listQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=0"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// monthURI fails binding (422) for non-numeric segments. Out of range
// months simply match nothing.
type monthURI struct {
	Year  int `uri:"year"`
	Month int `uri:"month"`
}

// CreateWash
func (wc *WashController) CreateWash(c *gin.Context) {
	var body models.WashRecordInput
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}

	wash, err := wc.Washes.Create(c.Request.Context(), body)
	if err != nil {
		respondServiceError(c, "CreateWash", err)
		return
	}
	c.JSON(http.StatusOK, wash)
}

// GetAllWashes returns one page, newest first. X-Total-Count carries the
// collection size.
func (wc *WashController) GetAllWashes(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	washes, total, err := wc.Washes.List(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		respondServiceError(c, "GetAllWashes", err)
		return
	}
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, washes)
}

// GetTodayWashes
func (wc *WashController) GetTodayWashes(c *gin.Context) {
	washes, err := wc.Washes.Today(c.Request.Context())
	if err != nil {
		respondServiceError(c, "GetTodayWashes", err)
		return
	}
	c.JSON(http.StatusOK, washes)
}

// GetMonthWashes
func (wc *WashController) GetMonthWashes(c *gin.Context) {
	var uri monthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err)
		return
	}

	washes, err := wc.Washes.Month(c.Request.Context(), uri.Year, uri.Month)
	if err != nil {
		respondServiceError(c, "GetMonthWashes", err)
		return
	}
	c.JSON(http.StatusOK, washes)
}

// DeleteWash
func (wc *WashController) DeleteWash(c *gin.Context) {
	if err := wc.Washes.Delete(c.Request.Context(), c.Param("wash_id")); err != nil {
		respondServiceError(c, "DeleteWash", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lavagem eliminada com sucesso"})
}
