package services

import (
	"context"
	"net"

	"github.com/itam-labs/assetdesk/modules/core/domain/networksettings"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

type NetworkSettingsService struct {
	repo networksettings.Repository
}

func NewNetworkSettingsService(repo networksettings.Repository) *NetworkSettingsService {
	return &NetworkSettingsService{repo: repo}
}

func (s *NetworkSettingsService) Get(ctx context.Context) (*networksettings.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *NetworkSettingsService) Update(ctx context.Context, data *networksettings.Settings) (*networksettings.Settings, error) {
	for _, addr := range []string{data.DNS1, data.DNS2} {
		if net.ParseIP(addr) == nil {
			return nil, serrors.New(serrors.KindInvalidInput, "DNS servers must be valid IP addresses")
		}
	}
	for _, addr := range []string{data.DefaultGateway, data.SubnetMask} {
		if addr != "" && net.ParseIP(addr) == nil {
			return nil, serrors.New(serrors.KindInvalidInput, "network addresses must be valid IPs")
		}
	}

	var updated *networksettings.Settings
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.repo.Update(txCtx, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
