package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/modules/assets/domain/accessory"
	"github.com/itam-labs/assetdesk/modules/assets/domain/asset"
	"github.com/itam-labs/assetdesk/modules/assets/domain/component"
	"github.com/itam-labs/assetdesk/modules/assets/domain/license"
	"github.com/itam-labs/assetdesk/modules/core/domain/user"
	"github.com/itam-labs/assetdesk/modules/vminventory/domain/zabbix"
)

type fakeAssetRepo struct {
	asset.Repository
	total    int64
	byStatus map[asset.Status]int64
}

func (f *fakeAssetRepo) Count(context.Context) (int64, error) { return f.total, nil }
func (f *fakeAssetRepo) CountByStatus(_ context.Context, status asset.Status) (int64, error) {
	return f.byStatus[status], nil
}

type fakeUserRepo struct {
	user.Repository
	total int64
}

func (f *fakeUserRepo) Count(context.Context) (int64, error) { return f.total, nil }

type fakeComponentRepo struct {
	component.Repository
	total int64
}

func (f *fakeComponentRepo) Count(context.Context) (int64, error) { return f.total, nil }

type fakeAccessoryRepo struct {
	accessory.Repository
	total int64
}

func (f *fakeAccessoryRepo) Count(context.Context) (int64, error) { return f.total, nil }

type fakeLicenseRepo struct {
	license.Repository
	total    int64
	expiring int64
	gotDays  int
}

func (f *fakeLicenseRepo) Count(context.Context) (int64, error) { return f.total, nil }
func (f *fakeLicenseRepo) CountExpiringWithin(_ context.Context, days int) (int64, error) {
	f.gotDays = days
	return f.expiring, nil
}

type fakeZabbixRepo struct {
	zabbix.Repository
	total int64
}

func (f *fakeZabbixRepo) Count(context.Context) (int64, error) { return f.total, nil }

func TestDashboardSummary(t *testing.T) {
	licenses := &fakeLicenseRepo{total: 12, expiring: 3}
	svc := NewDashboardService(
		&fakeAssetRepo{
			total: 42,
			byStatus: map[asset.Status]int64{
				asset.StatusDeployed:       20,
				asset.StatusAvailable:      15,
				asset.StatusMaintenance:    5,
				asset.StatusDecommissioned: 2,
			},
		},
		&fakeUserRepo{total: 9},
		&fakeComponentRepo{total: 7},
		&fakeAccessoryRepo{total: 4},
		licenses,
		&fakeZabbixRepo{total: 6},
	)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), summary.TotalAssets)
	assert.Equal(t, int64(9), summary.TotalUsers)
	assert.Equal(t, int64(7), summary.TotalComponents)
	assert.Equal(t, int64(4), summary.TotalAccessories)
	assert.Equal(t, int64(12), summary.TotalLicenses)
	assert.Equal(t, int64(6), summary.TotalZabbixVMs)
	assert.Equal(t, int64(3), summary.ExpiringLicenses)
	assert.Equal(t, int64(20), summary.DeployedAssets)
	assert.Equal(t, int64(15), summary.AvailableAssets)
	assert.Equal(t, int64(5), summary.MaintenanceAssets)
	assert.Equal(t, int64(2), summary.DecommissionedAssets)
	assert.Equal(t, 30, licenses.gotDays, "expiring licenses use a 30 day window")
}
