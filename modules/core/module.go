package core

import (
	"context"

	assetpersistence "github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/core/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/modules/core/presentation/controllers"
	"github.com/itam-labs/assetdesk/modules/core/services"
	vmpersistence "github.com/itam-labs/assetdesk/modules/vminventory/infrastructure/persistence"
	"github.com/itam-labs/assetdesk/pkg/application"
	"github.com/itam-labs/assetdesk/pkg/composables"
)

type Module struct{}

func NewModule() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	userRepo := persistence.NewUserRepository()
	userService := services.NewUserService(userRepo, app.EventBus())
	activityService := services.NewActivityService(persistence.NewActivityRepository())
	settingsService := services.NewNetworkSettingsService(persistence.NewNetworkSettingsRepository())
	dashboardService := services.NewDashboardService(
		assetpersistence.NewAssetRepository(),
		userRepo,
		assetpersistence.NewComponentRepository(),
		assetpersistence.NewAccessoryRepository(),
		assetpersistence.NewLicenseRepository(),
		vmpersistence.NewZabbixRepository(),
	)

	// Subscriber context outlives any request, so it carries its own pool
	// and logger.
	subscriberCtx := composables.WithPool(context.Background(), app.Pool())
	subscriberCtx = composables.WithLogger(subscriberCtx, app.Logger().WithField("subsystem", "activity"))
	activityService.RegisterSubscriber(subscriberCtx, app.EventBus())

	app.RegisterControllers(
		controllers.NewUsersController(userService),
		controllers.NewActivityController(activityService),
		controllers.NewNetworkSettingsController(settingsService),
		controllers.NewDashboardController(dashboardService),
	)
	return nil
}
