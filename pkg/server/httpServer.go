// Package server assembles the application's controllers and middleware
// chain into a single http.Handler.
package server

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"

	"github.com/itam-labs/assetdesk/pkg/application"
)

// HTTPServer builds one mux router from everything the application
// registered. Fallback handlers pass through the same middleware chain, so
// the setup gate and JSON error envelopes cover unmatched routes too.
type HTTPServer struct {
	controllers []application.Controller
	middlewares []mux.MiddlewareFunc
	notFound    http.Handler
	notAllowed  http.Handler
}

func NewHTTPServer(
	app application.Application,
	notFoundHandler, methodNotAllowedHandler http.Handler,
) *HTTPServer {
	return &HTTPServer{
		controllers: app.Controllers(),
		middlewares: app.Middleware(),
		notFound:    notFoundHandler,
		notAllowed:  methodNotAllowedHandler,
	}
}

func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.middlewares...)
	for _, controller := range s.controllers {
		controller.Register(r)
	}
	r.NotFoundHandler = s.chain(s.notFound)
	r.MethodNotAllowedHandler = s.chain(s.notAllowed)
	return r
}

// chain wraps a handler in the middleware stack; mux only applies Use
// middleware to matched routes.
func (s *HTTPServer) chain(h http.Handler) http.Handler {
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		h = s.middlewares[i](h)
	}
	return h
}

// Handler returns the router wrapped with gzip compression.
func (s *HTTPServer) Handler() http.Handler {
	return gziphandler.GzipHandler(s.Router())
}

func (s *HTTPServer) Start(socketAddress string) error {
	return http.ListenAndServe(socketAddress, s.Handler())
}
