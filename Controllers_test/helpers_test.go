package Controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hpd-transportes/wash-registry/database"
)

func setupTestStore(t *testing.T) *database.GormStore {
	t.Helper()
	store, err := database.OpenGorm("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(t *testing.T, r http.Handler, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func washPayload(date string, amount float64) map[string]interface{} {
	return map[string]interface{}{
		"data":              date,
		"tipo_veiculo":      "Cisterna",
		"area_negocio":      "Alimentar",
		"lavador":           "Anfílófio Sousa",
		"tipo_lavagem":      "Interior Cisterna + Conjunto",
		"empresa_tipo":      "interna",
		"empresa_nome":      "HPD Transportes",
		"matricula_trator":  "12-AB-34",
		"matricula_reboque": "56-CD-78",
		"valor":             amount,
		"observacoes":       "Lavagem completa com desinfecção",
	}
}
