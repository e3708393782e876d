package modules

import (
	"time"

	"github.com/itam-labs/assetdesk/modules/assets"
	"github.com/itam-labs/assetdesk/modules/core"
	"github.com/itam-labs/assetdesk/modules/setup"
	"github.com/itam-labs/assetdesk/modules/vminventory"
	"github.com/itam-labs/assetdesk/pkg/application"
)

type Options struct {
	SetupMarkerPath string
	ConnTimeout     time.Duration
}

// BuiltIn returns every module the server ships with. Setup registers first
// so its routes exist before the completion gate starts bouncing traffic.
func BuiltIn(opts *Options) []application.Module {
	return []application.Module{
		setup.NewModule(&setup.ModuleOptions{
			MarkerPath:  opts.SetupMarkerPath,
			ConnTimeout: opts.ConnTimeout,
		}),
		core.NewModule(),
		assets.NewModule(),
		vminventory.NewModule(),
	}
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
