package gate_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/modules/setup/gate"
	"github.com/itam-labs/assetdesk/modules/setup/marker"
)

func newGatedHandler(store *marker.Store) http.Handler {
	return gate.Middleware(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestGate_BlocksUntilSetupCompletes(t *testing.T) {
	store := marker.NewStore(filepath.Join(t.TempDir(), "setup-complete.json"))
	handler := newGatedHandler(store)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/assets", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"Setup has not been completed","setupRequired":true}`, rec.Body.String())
}

func TestGate_RedirectsBrowserRoutes(t *testing.T) {
	store := marker.NewStore(filepath.Join(t.TempDir(), "setup-complete.json"))
	handler := newGatedHandler(store)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/setup", rec.Header().Get("Location"))
}

func TestGate_AlwaysAllowsSetupRoutes(t *testing.T) {
	store := marker.NewStore(filepath.Join(t.TempDir(), "setup-complete.json"))
	handler := newGatedHandler(store)

	for _, path := range []string{
		"/api/setup/check-setup-status",
		"/api/setup/test-db-connection",
		"/api/setup/complete",
		"/setup",
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGate_OpensAfterMarkerWrite(t *testing.T) {
	store := marker.NewStore(filepath.Join(t.TempDir(), "setup-complete.json"))
	handler := newGatedHandler(store)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/assets", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// The marker is re-read per request, so completion takes effect without
	// rebuilding the middleware chain.
	require.NoError(t, store.Write(time.Now()))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/assets", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
