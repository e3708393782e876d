package server

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/itam-labs/assetdesk/modules/setup/gate"
	"github.com/itam-labs/assetdesk/modules/setup/marker"
	"github.com/itam-labs/assetdesk/pkg/application"
	"github.com/itam-labs/assetdesk/pkg/configuration"
	"github.com/itam-labs/assetdesk/pkg/constants"
	"github.com/itam-labs/assetdesk/pkg/httpapi"
	"github.com/itam-labs/assetdesk/pkg/metrics"
	"github.com/itam-labs/assetdesk/pkg/middleware"
	"github.com/itam-labs/assetdesk/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
	MarkerStore   *marker.Store
}

// Default assembles the API server: logging and context middleware first,
// then CORS, then the setup completion gate in front of every route except
// the setup endpoints themselves.
func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	app.RegisterMiddleware(
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Cors(options.Configuration.Origin, "http://localhost:3000"),
		gate.Middleware(options.MarkerStore),
	)

	if options.Configuration.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(options.Configuration.Prometheus.Path))
	}

	return server.NewHTTPServer(app, notFound(), methodNotAllowed()), nil
}

func notFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "Not found"})
	})
}

func methodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method not allowed"})
	})
}
