package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itam-labs/assetdesk/modules/setup/marker"
	"github.com/itam-labs/assetdesk/pkg/configuration"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the setup completion marker so the wizard runs again",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configuration.Use()
			store := marker.NewStore(conf.SetupMarkerPath)
			if err := store.Remove(); err != nil {
				return err
			}
			fmt.Println("setup marker removed")
			return nil
		},
	}
}
