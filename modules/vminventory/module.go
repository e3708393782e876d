package vminventory

import (
	"github.com/itam-labs/assetdesk/modules/vminventory/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/vminventory/presentation/controllers"
	"github.com/itam-labs/assetdesk/modules/vminventory/services"
	"github.com/itam-labs/assetdesk/pkg/application"
)

type Module struct{}

func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "vminventory"
}

func (m *Module) Register(app application.Application) error {
	vmService := services.NewVMService(persistence.NewVMRepository(), app.EventBus())
	vmCSVService := services.NewVMCSVService(vmService)
	zabbixService := services.NewZabbixService(persistence.NewZabbixRepository())

	app.RegisterControllers(
		controllers.NewVMController(vmService, vmCSVService),
		controllers.NewZabbixController(zabbixService),
	)
	return nil
}
