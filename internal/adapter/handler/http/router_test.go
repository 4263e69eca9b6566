package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sm8ta/motodash/internal/adapter/logger"
	"github.com/sm8ta/motodash/internal/adapter/memory"
	"github.com/sm8ta/motodash/internal/adapter/prometheus"
	"github.com/sm8ta/motodash/internal/adapter/sqlite"
	"github.com/sm8ta/motodash/internal/config"
	"github.com/sm8ta/motodash/internal/core/domain"
	"github.com/sm8ta/motodash/internal/core/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "moto.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(db, "../../sqlite/migrations"))

	log := logger.NewLoggerAdapterFromZap(zap.NewNop())
	cache := memory.NewCacheAdapter(time.Minute)
	validate := services.NewValidator()
	metrics := prometheus.NewPrometheusAdapter()

	bikes := services.NewBikeService(sqlite.NewRepository[domain.Bike](db, domain.BikeSchema), log, validate, cache)
	fuel := services.NewFuelService(sqlite.NewRepository[domain.FuelEntry](db, domain.FuelSchema), log, validate, cache)
	tours := services.NewTourService(sqlite.NewRepository[domain.Tour](db, domain.TourSchema), log, validate, cache)

	router, err := NewRouter(
		&config.HTTP{Env: "test", AllowedOrigins: "*"},
		zap.NewNop(),
		metrics.Handler(),
		nil,
		NewResourceHandler[domain.Bike, *domain.BikeInput](bikes, log, metrics),
		NewResourceHandler[domain.FuelEntry, *domain.FuelInput](fuel, log, metrics),
		NewResourceHandler[domain.Tour, *domain.TourInput](tours, log, metrics),
	)
	require.NoError(t, err)

	return router.Engine()
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	engine := newTestRouter(t)

	w := do(t, engine, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[healthResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Time)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestBikeLifecycle(t *testing.T) {
	engine := newTestRouter(t)

	w := do(t, engine, http.MethodGet, "/bikes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(t, engine, http.MethodPost, "/bikes", `{"name":"Daily","manufacturer":"Honda","model":"CB500F","year":"2020","mileage":"1200"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[domain.Bike](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 2020, created.Year)
	assert.Equal(t, 1200, created.Mileage)
	assert.Equal(t, "", created.Notes)

	w = do(t, engine, http.MethodGet, "/bikes/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decode[domain.Bike](t, w).ID)

	w = do(t, engine, http.MethodPut, "/bikes/"+created.ID, `{"mileage":1500}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[domain.Bike](t, w)
	assert.Equal(t, 1500, updated.Mileage)
	assert.Equal(t, "Daily", updated.Name)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt.Time))

	w = do(t, engine, http.MethodDelete, "/bikes/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, engine, http.MethodDelete, "/bikes/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, engine, http.MethodGet, "/bikes/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateValidationErrors(t *testing.T) {
	engine := newTestRouter(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"year too old", `{"name":"A","year":1899,"mileage":0}`, "year"},
		{"year in future", fmt.Sprintf(`{"name":"A","year":%d,"mileage":0}`, time.Now().Year()+1), "year"},
		{"missing name", `{"year":2000,"mileage":0}`, "name"},
		{"wrong type", `{"name":5,"year":2000,"mileage":0}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, engine, http.MethodPost, "/bikes", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			resp := decode[errorResponse](t, w)
			assert.Contains(t, resp.Fields, tt.field)
		})
	}

	w := do(t, engine, http.MethodGet, "/bikes", "")
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestInvalidJSON(t *testing.T) {
	engine := newTestRouter(t)

	w := do(t, engine, http.MethodPost, "/bikes", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid JSON format", decode[errorResponse](t, w).Message)
}

func TestUpdateErrors(t *testing.T) {
	engine := newTestRouter(t)

	w := do(t, engine, http.MethodPost, "/bikes", `{"name":"A","year":2000,"mileage":0}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[domain.Bike](t, w)

	w = do(t, engine, http.MethodPut, "/bikes/"+created.ID, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no changes supplied", decode[errorResponse](t, w).Message)

	w = do(t, engine, http.MethodPut, "/bikes/"+created.ID, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, engine, http.MethodPut, "/bikes/missing", `{"notes":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFuelPricePerLiter(t *testing.T) {
	engine := newTestRouter(t)

	w := do(t, engine, http.MethodPost, "/fuel", `{"bikeId":"b1","date":"2024-05-01","liters":10,"pricePerLiter":"1.75","distance":180}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	entry := decode[domain.FuelEntry](t, w)
	assert.InDelta(t, 17.5, entry.Cost, 1e-9)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "pricePerLiter")
}

func TestOutOfRangeNumbersAreNotStored(t *testing.T) {
	engine := newTestRouter(t)

	w := do(t, engine, http.MethodPost, "/bikes", `{"name":"A","year":2000,"mileage":1e19}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, decode[errorResponse](t, w).Fields, "mileage")

	w = do(t, engine, http.MethodPost, "/fuel", `{"bikeId":"b1","date":"2024-05-01","liters":1e200,"pricePerLiter":1e200,"distance":100}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, decode[errorResponse](t, w).Fields, "pricePerLiter")

	w = do(t, engine, http.MethodGet, "/bikes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(t, engine, http.MethodGet, "/fuel", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestToursListedNewestFirst(t *testing.T) {
	engine := newTestRouter(t)

	var ids []string
	for _, name := range []string{"one", "two", "three"} {
		w := do(t, engine, http.MethodPost, "/tours", fmt.Sprintf(`{"bikeId":"b1","name":%q,"distance":100}`, name))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		ids = append(ids, decode[domain.Tour](t, w).ID)
	}

	w := do(t, engine, http.MethodGet, "/tours", "")
	require.Equal(t, http.StatusOK, w.Code)
	tours := decode[[]domain.Tour](t, w)
	require.Len(t, tours, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{tours[0].ID, tours[1].ID, tours[2].ID})
}

func TestMetricsEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	do(t, engine, http.MethodGet, "/bikes", "")

	w := do(t, engine, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/bikes"`)
}
