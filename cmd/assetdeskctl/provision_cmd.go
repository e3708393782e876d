package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/itam-labs/assetdesk/modules/setup/domain"
	"github.com/itam-labs/assetdesk/modules/setup/marker"
	"github.com/itam-labs/assetdesk/modules/setup/services"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/configuration"
)

type provisionOptions struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	SeedAll       bool
}

func newProvisionCmd() *cobra.Command {
	var opts provisionOptions

	cmd := &cobra.Command{
		Use:   "provision --admin-name <name> --admin-email <email> --admin-password <password>",
		Short: "Run first-run provisioning against the configured database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.AdminName) == "" {
				return errors.New("--admin-name is required")
			}
			if strings.TrimSpace(opts.AdminEmail) == "" {
				return errors.New("--admin-email is required")
			}
			if strings.TrimSpace(opts.AdminPassword) == "" {
				return errors.New("--admin-password is required")
			}

			conf := configuration.Use()
			port, err := strconv.Atoi(conf.Database.Port)
			if err != nil {
				return fmt.Errorf("invalid DB_PORT %q: %w", conf.Database.Port, err)
			}

			plan := &domain.Plan{
				Admin: domain.AdminAccount{
					Name:     opts.AdminName,
					Email:    opts.AdminEmail,
					Password: opts.AdminPassword,
				},
				Database: domain.DatabaseConfig{
					Host:     conf.Database.Host,
					Port:     port,
					Database: conf.Database.Name,
					Username: conf.Database.User,
					Password: conf.Database.Password,
				},
			}
			if opts.SeedAll {
				plan.ImportOptions = domain.ImportOptions{
					Assets:        true,
					Users:         true,
					Components:    true,
					Accessories:   true,
					Licenses:      true,
					ZabbixVMs:     true,
					ActivityLogs:  true,
					BitLockerKeys: true,
				}
			}

			store := marker.NewStore(conf.SetupMarkerPath)
			provisioner := services.NewProvisioner(store, conf.SetupConnTimeout)

			ctx := composables.WithLogger(cmd.Context(), conf.Logger().WithField("command", "provision"))

			start := time.Now()
			adminID, err := provisioner.Run(ctx, plan)
			if err != nil {
				return err
			}
			fmt.Printf("setup complete in %s, admin user id %d\n", time.Since(start).Round(time.Millisecond), adminID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.AdminName, "admin-name", "", "initial administrator display name")
	cmd.Flags().StringVar(&opts.AdminEmail, "admin-email", "", "initial administrator email")
	cmd.Flags().StringVar(&opts.AdminPassword, "admin-password", "", "initial administrator password")
	cmd.Flags().BoolVar(&opts.SeedAll, "seed-all", false, "load every sample dataset after schema creation")
	return cmd
}
