// Package gate blocks the API until first-run provisioning has completed.
package gate

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/modules/setup/marker"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
)

// Middleware blocks every route except the setup flow until the completion
// marker exists: API routes answer 503, anything else redirects to the setup
// wizard. The marker is re-read on each request, so setup finished by another
// instance is honored immediately.
func Middleware(store *marker.Store) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if strings.HasPrefix(path, "/api/setup") || strings.HasPrefix(path, "/setup") || store.IsComplete() {
				next.ServeHTTP(w, r)
				return
			}
			if strings.HasPrefix(path, "/api/") {
				_ = httpapi.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
					"message":       "Setup has not been completed",
					"setupRequired": true,
				})
				return
			}
			http.Redirect(w, r, "/setup", http.StatusFound)
		})
	}
}
