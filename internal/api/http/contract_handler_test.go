package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "garagebook-backend/internal/api/http"
	"garagebook-backend/internal/clock"
	"garagebook-backend/internal/domain"
	"garagebook-backend/internal/gating"
	"garagebook-backend/internal/notify"
	"garagebook-backend/internal/repository/file"
	"garagebook-backend/internal/security"
	"garagebook-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T, tokens security.TokenManager) *mux.Router {
	t.Helper()
	store, err := file.Open(t.TempDir())
	require.NoError(t, err)

	queue := notify.NewQueue()
	limits := gating.LimitsFor(gating.PlanPremium)
	contracts := service.NewContractService(
		store.ContractRepository(), store.VehicleRepository(), queue, clock.Fixed{T: testNow}, limits)
	vehicles := service.NewVehicleService(store.VehicleRepository(), contracts, clock.Fixed{T: testNow}, limits)

	return api.NewRouter(
		api.NewContractHandler(contracts),
		api.NewVehicleHandler(vehicles, contracts),
		api.NewReminderHandler(queue),
		tokens,
	)
}

func postJSON(t *testing.T, router *mux.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func contractBody(vehicleID, renter string, start, end time.Time) map[string]any {
	return map[string]any{
		"vehicle_id":          vehicleID,
		"renter_name":         renter,
		"start_date":          start.Format(time.RFC3339),
		"end_date":            end.Format(time.RFC3339),
		"price_per_day_cents": 5000,
	}
}

func TestContractEndpoints(t *testing.T) {
	router := newTestRouter(t, nil)
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)

	var created domain.RentalContract

	t.Run("Create", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/contracts", contractBody("v1", "Ada", start, end))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, int64(35000), created.TotalPriceCents)
	})

	t.Run("Overlap rejected with reason", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/contracts",
			contractBody("v1", "Bob", start.AddDate(0, 0, 4), end.AddDate(0, 0, 2)))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ReasonUnavailable)
	})

	t.Run("Bad date order rejected", func(t *testing.T) {
		rec := postJSON(t, router, "/api/v1/contracts", contractBody("v1", "Bob", end, end))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ReasonDateOrder)
	})

	t.Run("Get", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts/"+created.ID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Get missing is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Pending reminders listed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders/pending", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var pending []domain.Reminder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
		assert.Len(t, pending, 4)
	})
}

func TestAvailabilityEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)

	rec := postJSON(t, router, "/api/v1/contracts", contractBody("v1", "Ada", start, end))
	require.Equal(t, http.StatusCreated, rec.Code)

	check := func(s, e time.Time) bool {
		url := fmt.Sprintf("/api/v1/availability?vehicle_id=v1&start=%s&end=%s",
			s.Format(time.RFC3339), e.Format(time.RFC3339))
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body["available"]
	}

	assert.False(t, check(start.AddDate(0, 0, 4), end.AddDate(0, 0, 2)))
	assert.True(t, check(end, end.AddDate(0, 0, 4))) // back to back
}

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	router := newTestRouter(t, tokens)

	t.Run("Missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid token passes", func(t *testing.T) {
		token, err := tokens.Generate("garage-owner")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
