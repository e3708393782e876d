package assets

import (
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/assets/presentation/controllers"
	"github.com/itam-labs/assetdesk/modules/assets/services"
	"github.com/itam-labs/assetdesk/pkg/application"
)

type Module struct{}

func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "assets"
}

func (m *Module) Register(app application.Application) error {
	bus := app.EventBus()

	assetService := services.NewAssetService(persistence.NewAssetRepository(), bus)
	assetCSVService := services.NewAssetCSVService(assetService)
	componentService := services.NewComponentService(persistence.NewComponentRepository(), bus)
	accessoryService := services.NewAccessoryService(persistence.NewAccessoryRepository(), bus)
	licenseService := services.NewLicenseService(persistence.NewLicenseRepository(), bus)
	bitlockerService := services.NewBitLockerService(persistence.NewBitLockerRepository(), bus)

	app.RegisterControllers(
		controllers.NewAssetsController(assetService, assetCSVService),
		controllers.NewComponentsController(componentService),
		controllers.NewAccessoriesController(accessoryService),
		controllers.NewLicensesController(licenseService),
		controllers.NewBitLockerController(bitlockerService),
	)
	return nil
}
