package swagger_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/hvac-catalog/api-contract"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/http/swagger"
)

func TestSwaggerDocsRoute(t *testing.T) {
	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)

	r := chi.NewRouter()
	require.NoError(t, swagger.Register(r, doc))

	t.Run("Should get docs successfully", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, resp.Body.String(), "<!DOCTYPE html>")
		assert.Contains(t, resp.Body.String(), "/docs/openapi.yml")
		assert.Contains(t, resp.Body.String(), "<title>"+doc.Info.Title+"</title>")
	})

	t.Run("Should get openapi.yml successfully", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs/openapi.yml", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "application/yaml")
		assert.Equal(t, apicontract.GetSpecBytes(), resp.Body.Bytes())
	})

	t.Run("Should get openapi.json successfully", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil)
		resp := httptest.NewRecorder()

		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Header().Get("Content-Type"), "application/json")

		var body map[string]any
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "3.0.3", body["openapi"])
	})
}
