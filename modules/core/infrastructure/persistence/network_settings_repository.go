package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/modules/core/domain/networksettings"
	"github.com/itam-labs/assetdesk/modules/core/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
)

var (
	ErrNetworkSettingsNotFound = fmt.Errorf("network settings not found")
)

const (
	networkSettingsFindQuery = `
		SELECT id, dns1, dns2, default_gateway, subnet_mask, created_at, updated_at
		FROM network_settings
		ORDER BY id
		LIMIT 1`
	networkSettingsUpdateQuery = `
		UPDATE network_settings
		SET dns1 = $1, dns2 = $2, default_gateway = $3, subnet_mask = $4, updated_at = $5
		WHERE id = $6`
)

type NetworkSettingsRepository struct{}

func NewNetworkSettingsRepository() networksettings.Repository {
	return &NetworkSettingsRepository{}
}

func (r *NetworkSettingsRepository) Get(ctx context.Context) (*networksettings.Settings, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	var m models.NetworkSettings
	if err := tx.QueryRow(ctx, networkSettingsFindQuery).Scan(
		&m.ID,
		&m.DNS1,
		&m.DNS2,
		&m.DefaultGateway,
		&m.SubnetMask,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, ErrNetworkSettingsNotFound
	}

	return toDomainNetworkSettings(&m), nil
}

func (r *NetworkSettingsRepository) Update(ctx context.Context, data *networksettings.Settings) (*networksettings.Settings, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	tag, err := tx.Exec(
		ctx,
		networkSettingsUpdateQuery,
		data.DNS1,
		data.DNS2,
		mapping.ValueToSQLNullString(data.DefaultGateway),
		mapping.ValueToSQLNullString(data.SubnetMask),
		time.Now(),
		data.ID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update network settings")
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNetworkSettingsNotFound
	}

	return r.Get(ctx)
}
