// Package metrics exposes the Prometheus scrape endpoint as a regular
// controller so it rides the same router and middleware as the API.
package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itam-labs/assetdesk/pkg/application"
)

const defaultScrapePath = "/debug/prometheus"

// PrometheusController serves the default registry at a configurable path.
type PrometheusController struct {
	path string
}

func NewPrometheusController(path string) application.Controller {
	if path == "" {
		path = defaultScrapePath
	}
	return &PrometheusController{path: path}
}

func (c *PrometheusController) Key() string {
	return c.path
}

func (c *PrometheusController) Register(r *mux.Router) {
	r.Handle(c.path, promhttp.Handler()).Methods(http.MethodGet)
}
