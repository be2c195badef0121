package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpd-transportes/wash-registry/controllers"
	"github.com/hpd-transportes/wash-registry/models"
	"github.com/hpd-transportes/wash-registry/services"
)

func setupWashRouter(t *testing.T, now func() time.Time) *gin.Engine {
	svc := services.NewWashService(setupTestStore(t))
	if now != nil {
		svc.Now = now
	}
	ctrl := controllers.NewWashController(svc)

	router := newTestEngine()
	router.POST("/lavagens", ctrl.CreateWash)
	router.GET("/lavagens", ctrl.GetAllWashes)
	router.GET("/lavagens/today", ctrl.GetTodayWashes)
	router.GET("/lavagens/month/:year/:month", ctrl.GetMonthWashes)
	router.DELETE("/lavagens/:wash_id", ctrl.DeleteWash)
	return router
}

func TestCreateWash(t *testing.T) {
	router := setupWashRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/lavagens", washPayload("2025-03-14", 85.5))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got map[string]interface{}
	decode(t, w, &got)
	assert.NotEmpty(t, got["id"])
	assert.NotEmpty(t, got["created_at"])
	for k, v := range washPayload("2025-03-14", 85.5) {
		assert.Equal(t, v, got[k], k)
	}
}

func TestCreateWash_WebClientBody(t *testing.T) {
	router := setupWashRouter(t, nil)

	body := json.RawMessage(`{
		"data": "2025-03-14",
		"tipo_veiculo": "Cisterna",
		"area_negocio": "Alimentar",
		"lavador": "Anfílófio Sousa",
		"tipo_lavagem": "Interior Cisterna + Conjunto",
		"empresa_tipo": "interna",
		"empresa_nome": "HPD Transportes",
		"matricula_trator": "",
		"matricula_reboque": "",
		"valor": 45,
		"observacoes": ""
	}`)
	w := doJSON(t, router, http.MethodPost, "/lavagens", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/lavagens", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-03-14", list[0]["data"])
	assert.Equal(t, "Anfílófio Sousa", list[0]["lavador"])
	assert.Equal(t, float64(45), list[0]["valor"])
}

func TestCreateWash_OptionalFieldsDefaultEmpty(t *testing.T) {
	router := setupWashRouter(t, nil)
	payload := washPayload("2025-03-14", 0)
	delete(payload, "matricula_trator")
	delete(payload, "matricula_reboque")
	delete(payload, "observacoes")

	w := doJSON(t, router, http.MethodPost, "/lavagens", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.WashRecord
	decode(t, w, &got)
	assert.Equal(t, "", got.TractorPlate)
	assert.Equal(t, "", got.Notes)
	assert.Equal(t, 0.0, got.Amount)
}

func TestCreateWash_ValidationErrors(t *testing.T) {
	router := setupWashRouter(t, nil)

	missing := washPayload("2025-03-14", 10)
	delete(missing, "lavador")

	badAmount := washPayload("2025-03-14", 10)
	badAmount["valor"] = "muito"

	negative := washPayload("2025-03-14", -1)

	noAmount := washPayload("2025-03-14", 10)
	delete(noAmount, "valor")

	for name, body := range map[string]map[string]interface{}{
		"missing field": missing,
		"bad amount":    badAmount,
		"negative":      negative,
		"no amount":     noAmount,
	} {
		t.Run(name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/lavagens", body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		})
	}
}

func TestCreateWash_EmptyStringsAccepted(t *testing.T) {
	router := setupWashRouter(t, nil)
	payload := washPayload("", 5)
	payload["tipo_veiculo"] = ""

	w := doJSON(t, router, http.MethodPost, "/lavagens", payload)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestGetAllWashes_NewestFirst(t *testing.T) {
	clock := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	router := setupWashRouter(t, func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})

	var ids []string
	for i := 0; i < 4; i++ {
		w := doJSON(t, router, http.MethodPost, "/lavagens", washPayload("2025-03-14", float64(i)))
		require.Equal(t, http.StatusOK, w.Code)
		var rec models.WashRecord
		decode(t, w, &rec)
		ids = append(ids, rec.ID)
	}

	w := doJSON(t, router, http.MethodGet, "/lavagens", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4", w.Header().Get("X-Total-Count"))

	var list []models.WashRecord
	decode(t, w, &list)
	require.Len(t, list, 4)
	for i, rec := range list {
		assert.Equal(t, ids[3-i], rec.ID)
	}

	w = doJSON(t, router, http.MethodGet, "/lavagens?limit=2&offset=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)

	w = doJSON(t, router, http.MethodGet, "/lavagens?limit=-3", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetAllWashes_EmptyIsArray(t *testing.T) {
	router := setupWashRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/lavagens", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetTodayWashes(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)
	router := setupWashRouter(t, func() time.Time { return now })

	w := doJSON(t, router, http.MethodPost, "/lavagens", washPayload("2025-03-14", 10))
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPost, "/lavagens", washPayload("2025-03-13", 20))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/lavagens/today", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.WashRecord
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-03-14", list[0].ServiceDate)
}

func TestGetMonthWashes(t *testing.T) {
	router := setupWashRouter(t, nil)

	for _, d := range []string{"2025-03-14", "2025-03-01", "2025-04-14", "14/03/2025", "2024-03-14"} {
		w := doJSON(t, router, http.MethodPost, "/lavagens", washPayload(d, 85.5))
		require.Equal(t, http.StatusOK, w.Code)
	}

	tests := []struct {
		url  string
		want int
	}{
		{"/lavagens/month/2025/3", 2},
		{"/lavagens/month/2025/4", 1},
		{"/lavagens/month/2024/3", 1},
		{"/lavagens/month/2025/5", 0},
		{"/lavagens/month/2025/13", 0},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, tt.url, nil)
			require.Equal(t, http.StatusOK, w.Code)
			var list []models.WashRecord
			decode(t, w, &list)
			assert.Len(t, list, tt.want)
		})
	}

	w := doJSON(t, router, http.MethodGet, "/lavagens/month/dois-mil/3", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteWash(t *testing.T) {
	router := setupWashRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/lavagens", washPayload("2025-03-14", 10))
	require.Equal(t, http.StatusOK, w.Code)
	var rec models.WashRecord
	decode(t, w, &rec)

	url := fmt.Sprintf("/lavagens/%s", rec.ID)
	w = doJSON(t, router, http.MethodDelete, url, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var msg map[string]string
	decode(t, w, &msg)
	assert.Equal(t, "Lavagem eliminada com sucesso", msg["message"])

	w = doJSON(t, router, http.MethodGet, "/lavagens", nil)
	var list []models.WashRecord
	decode(t, w, &list)
	assert.Empty(t, list)

	w = doJSON(t, router, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var errResp map[string]interface{}
	decode(t, w, &errResp)
	assert.Equal(t, false, errResp["status"])
	assert.Equal(t, "Lavagem não encontrada", errResp["detail"])
}
