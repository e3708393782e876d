package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itam-labs/assetdesk/internal/server"
	"github.com/itam-labs/assetdesk/modules"
	"github.com/itam-labs/assetdesk/modules/setup/marker"
	"github.com/itam-labs/assetdesk/pkg/application"
	"github.com/itam-labs/assetdesk/pkg/configuration"
	"github.com/itam-labs/assetdesk/pkg/eventbus"
	"github.com/itam-labs/assetdesk/pkg/logging"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		cleanup := logging.SetupTracing(
			context.Background(),
			conf.OpenTelemetry.ServiceName,
			conf.OpenTelemetry.TempoURL,
		)
		defer cleanup()
		logger.Info("OpenTelemetry tracing enabled, exporting to Tempo at " + conf.OpenTelemetry.TempoURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}

	app := application.New(&application.ApplicationOptions{
		Pool:   pool,
		Logger: logger,
		Bus:    eventbus.NewEventPublisher(logger),
	})
	builtIn := modules.BuiltIn(&modules.Options{
		SetupMarkerPath: conf.SetupMarkerPath,
		ConnTimeout:     conf.SetupConnTimeout,
	})
	if err := modules.Load(app, builtIn...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
		MarkerStore:   marker.NewStore(conf.SetupMarkerPath),
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
