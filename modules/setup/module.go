package setup

import (
	"time"

	"github.com/itam-labs/assetdesk/modules/setup/marker"
	"github.com/itam-labs/assetdesk/modules/setup/presentation/controllers"
	"github.com/itam-labs/assetdesk/modules/setup/services"
	"github.com/itam-labs/assetdesk/pkg/application"
)

type ModuleOptions struct {
	// MarkerPath is where the completion marker is persisted.
	MarkerPath string
	// ConnTimeout bounds database connectivity probes during provisioning.
	ConnTimeout time.Duration
}

type Module struct {
	opts *ModuleOptions
}

func NewModule(opts *ModuleOptions) *Module {
	return &Module{opts: opts}
}

func (m *Module) Name() string {
	return "setup"
}

func (m *Module) Register(app application.Application) error {
	store := marker.NewStore(m.opts.MarkerPath)
	provisioner := services.NewProvisioner(store, m.opts.ConnTimeout)
	app.RegisterControllers(controllers.NewSetupController(provisioner, store))
	return nil
}
