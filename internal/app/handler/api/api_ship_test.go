package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ship_tracker/internal/app/ds"
	"ship_tracker/internal/app/handler"
	"ship_tracker/internal/app/repository"
)

func newTestRouter() (*gin.Engine, *repository.Repository) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	rep := repository.New()
	handler.NewHandler(rep).SetupRoutes(router)
	return router, rep
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeShip(t *testing.T, rec *httptest.ResponseRecorder) ds.Ship {
	t.Helper()
	var ship ds.Ship
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ship))
	return ship
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func createSampleShip(t *testing.T, router *gin.Engine) ds.Ship {
	t.Helper()
	rec := doRequest(router, http.MethodPost, "/ships",
		`{"name": "Test Ship", "position_x": 10, "position_y": 20, "destination_x": 30, "destination_y": 40}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeShip(t, rec)
}

func TestShipLifecycleScenario(t *testing.T) {
	router, _ := newTestRouter()

	// create
	ship := createSampleShip(t, router)
	assert.NotEmpty(t, ship.ID)

	// set destination
	rec := doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/destination", `{"x": 100, "y": 200}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeShip(t, rec)
	assert.Equal(t, 100.0, updated.DestinationX)
	assert.Equal(t, 200.0, updated.DestinationY)
	assert.Equal(t, ship.ID, updated.ID)

	// get reflects the update
	rec = doRequest(router, http.MethodGet, "/ships/"+ship.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, updated, decodeShip(t, rec))

	// delete
	rec = doRequest(router, http.MethodDelete, "/ships/"+ship.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var result struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Ship deleted successfully", result.Message)

	// gone
	rec = doRequest(router, http.MethodGet, "/ships/"+ship.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ship not found", decodeError(t, rec))
}

func TestGetShips(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, http.MethodGet, "/ships", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	createSampleShip(t, router)
	createSampleShip(t, router)

	rec = doRequest(router, http.MethodGet, "/ships", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ships []ds.Ship
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ships))
	assert.Len(t, ships, 2)
}

func TestCreateShipValidation(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, http.MethodPost, "/ships", `{"name": "S", "position_x": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required field: position_y", decodeError(t, rec))

	rec = doRequest(router, http.MethodPost, "/ships",
		`{"name": "S", "position_x": "abc", "position_y": 2, "destination_x": 3, "destination_y": 4}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid data format", decodeError(t, rec))

	// malformed JSON body
	rec = doRequest(router, http.MethodPost, "/ships", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid data format", decodeError(t, rec))
}

func TestCreateShipNumericStrings(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, http.MethodPost, "/ships",
		`{"name": "S", "position_x": "150.5", "position_y": "250.5", "destination_x": 3, "destination_y": 4}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	ship := decodeShip(t, rec)
	assert.Equal(t, 150.5, ship.PositionX)
	assert.Equal(t, 250.5, ship.PositionY)
}

func TestUpdateShip(t *testing.T) {
	router, _ := newTestRouter()
	ship := createSampleShip(t, router)

	rec := doRequest(router, http.MethodPut, "/ships/"+ship.ID, `{"name": "Renamed", "destination_x": "55.5"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeShip(t, rec)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 55.5, updated.DestinationX)
	assert.Equal(t, ship.PositionX, updated.PositionX)

	// empty update returns the record unchanged
	rec = doRequest(router, http.MethodPut, "/ships/"+ship.ID, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, updated, decodeShip(t, rec))

	rec = doRequest(router, http.MethodPut, "/ships/unknown-id", `{"name": "X"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ship not found", decodeError(t, rec))

	rec = doRequest(router, http.MethodPut, "/ships/"+ship.ID, `{"position_x": "bad"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid data format", decodeError(t, rec))
}

func TestDeleteShipTwice(t *testing.T) {
	router, _ := newTestRouter()
	ship := createSampleShip(t, router)

	rec := doRequest(router, http.MethodDelete, "/ships/"+ship.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/ships/"+ship.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ship not found", decodeError(t, rec))
}

func TestMoveShip(t *testing.T) {
	router, _ := newTestRouter()
	ship := createSampleShip(t, router)

	rec := doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/move", `{"x": -5, "y": 7.5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	moved := decodeShip(t, rec)
	assert.Equal(t, -5.0, moved.PositionX)
	assert.Equal(t, 7.5, moved.PositionY)
	assert.Equal(t, ship.DestinationX, moved.DestinationX)

	rec = doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/move", `{"x": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing x or y coordinates", decodeError(t, rec))

	rec = doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/move", `{"x": "bad", "y": 2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid coordinate format", decodeError(t, rec))
}

func TestSetDestination(t *testing.T) {
	router, _ := newTestRouter()
	ship := createSampleShip(t, router)

	tests := []struct {
		name string
		body string
		x, y float64
	}{
		{"numbers", `{"x": 100, "y": 200}`, 100, 200},
		{"string numbers", `{"x": "150.5", "y": "250.5"}`, 150.5, 250.5},
		{"negative coordinates", `{"x": -50, "y": -75}`, -50, -75},
		{"zero coordinates", `{"x": 0, "y": 0}`, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/destination", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)
			updated := decodeShip(t, rec)
			assert.Equal(t, tt.x, updated.DestinationX)
			assert.Equal(t, tt.y, updated.DestinationY)
		})
	}
}

func TestSetDestinationErrors(t *testing.T) {
	router, _ := newTestRouter()
	ship := createSampleShip(t, router)

	rec := doRequest(router, http.MethodPost, "/ships/non-existent-id/destination", `{"x": 100, "y": 200}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ship not found", decodeError(t, rec))

	for _, body := range []string{`{"y": 200}`, `{"x": 100}`} {
		rec = doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/destination", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing x or y coordinates", decodeError(t, rec))
	}

	for _, body := range []string{`{"x": "invalid", "y": 200}`, `{"x": 100, "y": "invalid"}`} {
		rec = doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/destination", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid coordinate format", decodeError(t, rec))
	}
}

func TestSetSpeed(t *testing.T) {
	router, _ := newTestRouter()
	ship := createSampleShip(t, router)

	rec := doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/speed", `{"speed": 25.5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 25.5, decodeShip(t, rec).Speed)

	rec = doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/speed", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing speed parameter", decodeError(t, rec))

	rec = doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/speed", `{"speed": "fast"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid speed format", decodeError(t, rec))

	for _, body := range []string{`{"speed": 0}`, `{"speed": -3}`} {
		rec = doRequest(router, http.MethodPost, "/ships/"+ship.ID+"/speed", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Speed must be greater than 0", decodeError(t, rec))
	}

	rec = doRequest(router, http.MethodPost, "/ships/unknown-id/speed", `{"speed": 5}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy", "ships_count": 0}`, rec.Body.String())

	createSampleShip(t, router)
	rec = doRequest(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy", "ships_count": 1}`, rec.Body.String())
}
