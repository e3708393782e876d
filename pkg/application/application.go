package application

import (
	"sync"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/itam-labs/assetdesk/pkg/eventbus"
)

// Controller registers a set of routes under a stable key.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module wires its repositories, services and controllers into the app.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	Pool() *pgxpool.Pool
	Logger() *logrus.Logger
	EventBus() eventbus.EventBus
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
}

type ApplicationOptions struct {
	Pool   *pgxpool.Pool
	Logger *logrus.Logger
	Bus    eventbus.EventBus
}

func New(opts *ApplicationOptions) Application {
	bus := opts.Bus
	if bus == nil {
		bus = eventbus.NewEventPublisher(opts.Logger)
	}
	return &application{
		pool:   opts.Pool,
		logger: opts.Logger,
		bus:    bus,
	}
}

type application struct {
	mu          sync.Mutex
	pool        *pgxpool.Pool
	logger      *logrus.Logger
	bus         eventbus.EventBus
	controllers map[string]Controller
	order       []string
	middleware  []mux.MiddlewareFunc
}

func (a *application) EventBus() eventbus.EventBus {
	return a.bus
}

func (a *application) Pool() *pgxpool.Pool {
	return a.pool
}

func (a *application) Logger() *logrus.Logger {
	return a.logger
}

func (a *application) Controllers() []Controller {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Controller, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, a.controllers[key])
	}
	return out
}

func (a *application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}

func (a *application) RegisterControllers(controllers ...Controller) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.controllers == nil {
		a.controllers = make(map[string]Controller)
	}
	for _, c := range controllers {
		if _, exists := a.controllers[c.Key()]; !exists {
			a.order = append(a.order, c.Key())
		}
		a.controllers[c.Key()] = c
	}
}

func (a *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}
