package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itam-labs/assetdesk/modules/setup/marker"
	"github.com/itam-labs/assetdesk/pkg/configuration"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether first-run setup has completed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configuration.Use()
			store := marker.NewStore(conf.SetupMarkerPath)
			if store.IsComplete() {
				fmt.Println("setup: complete")
			} else {
				fmt.Println("setup: pending")
			}
			return nil
		},
	}
}
