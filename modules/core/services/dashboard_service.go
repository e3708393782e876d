package services

import (
	"context"

	"github.com/itam-labs/assetdesk/modules/assets/domain/accessory"
	"github.com/itam-labs/assetdesk/modules/assets/domain/asset"
	"github.com/itam-labs/assetdesk/modules/assets/domain/component"
	"github.com/itam-labs/assetdesk/modules/assets/domain/license"
	"github.com/itam-labs/assetdesk/modules/core/domain/user"
	"github.com/itam-labs/assetdesk/modules/vminventory/domain/zabbix"
)

const expiringWindowDays = 30

// Summary mirrors the dashboard widget payload.
type Summary struct {
	TotalAssets          int64 `json:"totalAssets"`
	TotalUsers           int64 `json:"totalUsers"`
	TotalComponents      int64 `json:"totalComponents"`
	TotalAccessories     int64 `json:"totalAccessories"`
	TotalLicenses        int64 `json:"totalLicenses"`
	TotalZabbixVMs       int64 `json:"totalZabbixVMs"`
	ExpiringLicenses     int64 `json:"expiringLicenses"`
	DeployedAssets       int64 `json:"deployedAssets"`
	AvailableAssets      int64 `json:"availableAssets"`
	MaintenanceAssets    int64 `json:"maintenanceAssets"`
	DecommissionedAssets int64 `json:"decommissionedAssets"`
}

type DashboardService struct {
	assets      asset.Repository
	users       user.Repository
	components  component.Repository
	accessories accessory.Repository
	licenses    license.Repository
	zabbix      zabbix.Repository
}

func NewDashboardService(
	assets asset.Repository,
	users user.Repository,
	components component.Repository,
	accessories accessory.Repository,
	licenses license.Repository,
	zabbixVMs zabbix.Repository,
) *DashboardService {
	return &DashboardService{
		assets:      assets,
		users:       users,
		components:  components,
		accessories: accessories,
		licenses:    licenses,
		zabbix:      zabbixVMs,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*Summary, error) {
	var (
		out Summary
		err error
	)

	if out.TotalAssets, err = s.assets.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalComponents, err = s.components.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalAccessories, err = s.accessories.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalLicenses, err = s.licenses.Count(ctx); err != nil {
		return nil, err
	}
	if out.TotalZabbixVMs, err = s.zabbix.Count(ctx); err != nil {
		return nil, err
	}
	if out.ExpiringLicenses, err = s.licenses.CountExpiringWithin(ctx, expiringWindowDays); err != nil {
		return nil, err
	}
	if out.DeployedAssets, err = s.assets.CountByStatus(ctx, asset.StatusDeployed); err != nil {
		return nil, err
	}
	if out.AvailableAssets, err = s.assets.CountByStatus(ctx, asset.StatusAvailable); err != nil {
		return nil, err
	}
	if out.MaintenanceAssets, err = s.assets.CountByStatus(ctx, asset.StatusMaintenance); err != nil {
		return nil, err
	}
	if out.DecommissionedAssets, err = s.assets.CountByStatus(ctx, asset.StatusDecommissioned); err != nil {
		return nil, err
	}

	return &out, nil
}
