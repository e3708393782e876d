package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/modules/setup/marker"
	"github.com/itam-labs/assetdesk/modules/setup/presentation/controllers"
	"github.com/itam-labs/assetdesk/modules/setup/services"
)

func newSetupRouter(t *testing.T) (*mux.Router, *marker.Store) {
	t.Helper()
	store := marker.NewStore(filepath.Join(t.TempDir(), "setup-complete.json"))
	controller := controllers.NewSetupController(services.NewProvisioner(store, time.Second), store)

	router := mux.NewRouter()
	controller.Register(router)
	return router, store
}

func TestCheckSetupStatus(t *testing.T) {
	router, store := newSetupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/setup/check-setup-status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"setupCompleted":false}`, rec.Body.String())

	require.NoError(t, store.Write(time.Now()))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/setup/check-setup-status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"setupCompleted":true}`, rec.Body.String())
}

func TestTestDBConnection_MissingParameters(t *testing.T) {
	router, _ := newSetupRouter(t)

	for _, body := range []string{
		`{}`,
		`{"host":"localhost","port":5432}`,
		`{"host":"localhost","port":5432,"database":"assetdesk"}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/setup/test-db-connection", strings.NewReader(body))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "Missing required database connection parameters")
	}
}

func TestComplete_RejectsInvalidPlan(t *testing.T) {
	router, _ := newSetupRouter(t)

	for _, body := range []string{
		`not json`,
		`{}`,
		`{"admin":{"name":"Admin","email":"admin@example.com","password":"short"},"database":{"host":"localhost","port":5432,"database":"assetdesk","username":"postgres"}}`,
		`{"admin":{"name":"Admin","email":"not-an-email","password":"changeme123"},"database":{"host":"localhost","port":5432,"database":"assetdesk","username":"postgres"}}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/setup/complete", strings.NewReader(body))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "Missing required setup parameters")
	}
}
