package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hpd-transportes/wash-registry/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// GetMonthSummary returns totals for one month.
func (rc *ReportController) GetMonthSummary(c *gin.Context) {
	var uri monthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err)
		return
	}

	summary, _, err := rc.Reports.MonthSummary(c.Request.Context(), uri.Year, uri.Month)
	if err != nil {
		respondServiceError(c, "GetMonthSummary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportMonth streams the month as an xlsx workbook.
func (rc *ReportController) ExportMonth(c *gin.Context) {
	var uri monthURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err)
		return
	}

	summary, washes, err := rc.Reports.MonthSummary(c.Request.Context(), uri.Year, uri.Month)
	if err != nil {
		respondServiceError(c, "ExportMonth", err)
		return
	}

	// Build in memory first so a failure can still become a JSON error.
	var buf bytes.Buffer
	if err := services.WriteWorkbook(&buf, summary, washes); err != nil {
		respondServiceError(c, "ExportMonth", err)
		return
	}

	filename := fmt.Sprintf("lavagens-%04d-%02d.xlsx", uri.Year, uri.Month)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
