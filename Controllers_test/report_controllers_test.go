package Controllers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hpd-transportes/wash-registry/controllers"
	"github.com/hpd-transportes/wash-registry/services"
)

func setupReportRouter(t *testing.T) *gin.Engine {
	washes := services.NewWashService(setupTestStore(t))
	washCtrl := controllers.NewWashController(washes)
	reportCtrl := controllers.NewReportController(services.NewReportService(washes))

	router := newTestEngine()
	router.POST("/lavagens", washCtrl.CreateWash)
	router.GET("/relatorios/month/:year/:month", reportCtrl.GetMonthSummary)
	router.GET("/relatorios/month/:year/:month/export", reportCtrl.ExportMonth)
	return router
}

func TestGetMonthSummary(t *testing.T) {
	router := setupReportRouter(t)
	for _, amount := range []float64{85.5, 14.5} {
		w := doJSON(t, router, http.MethodPost, "/lavagens", washPayload("2025-03-14", amount))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := doJSON(t, router, http.MethodPost, "/lavagens", washPayload("2025-04-01", 1000))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/relatorios/month/2025/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary map[string]interface{}
	decode(t, w, &summary)
	assert.EqualValues(t, 2, summary["count"])
	assert.Equal(t, "100", summary["total"])
	byWasher := summary["by_washer"].([]interface{})
	require.Len(t, byWasher, 1)
}

func TestExportMonth(t *testing.T) {
	router := setupReportRouter(t)
	w := doJSON(t, router, http.MethodPost, "/lavagens", washPayload("2025-03-14", 85.5))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/relatorios/month/2025/3/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "lavagens-2025-03.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	washer, err := f.GetCellValue("Lavagens", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Anfílófio Sousa", washer)
}

func TestExportMonth_BadYear(t *testing.T) {
	router := setupReportRouter(t)

	w := doJSON(t, router, http.MethodGet, "/relatorios/month/x/3/export", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
