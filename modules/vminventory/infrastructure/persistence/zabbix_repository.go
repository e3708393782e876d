package persistence

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/modules/vminventory/domain/zabbix"
	"github.com/itam-labs/assetdesk/modules/vminventory/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
	"github.com/itam-labs/assetdesk/pkg/repo"
)

const (
	zabbixFindQuery = `
		SELECT id, name, ip_address, status, cpu_usage, memory_usage, disk_usage,
			os, last_check, created_at, updated_at
		FROM zabbix_vms`
	zabbixCountQuery = `SELECT COUNT(*) FROM zabbix_vms`
)

var zabbixInsertFields = []string{
	"name",
	"ip_address",
	"status",
	"cpu_usage",
	"memory_usage",
	"disk_usage",
	"os",
	"last_check",
}

type ZabbixRepository struct{}

func NewZabbixRepository() zabbix.Repository {
	return &ZabbixRepository{}
}

func (r *ZabbixRepository) GetAll(ctx context.Context) ([]zabbix.VM, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, zabbixFindQuery+" ORDER BY name")
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var vms []zabbix.VM
	for rows.Next() {
		var m models.ZabbixVM
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.IPAddress,
			&m.Status,
			&m.CPUUsage,
			&m.MemoryUsage,
			&m.DiskUsage,
			&m.OS,
			&m.LastCheck,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan zabbix vm row")
		}
		vms = append(vms, *toDomainZabbixVM(&m))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return vms, nil
}

func (r *ZabbixRepository) Create(ctx context.Context, data *zabbix.VM) (*zabbix.VM, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := repo.Insert("zabbix_vms", zabbixInsertFields, "id")
	var id int
	if err := tx.QueryRow(ctx, query,
		data.Name,
		mapping.ValueToSQLNullString(data.IPAddress),
		data.Status,
		mapping.ValueToSQLNullFloat64(data.CPUUsage),
		mapping.ValueToSQLNullFloat64(data.MemoryUsage),
		mapping.ValueToSQLNullFloat64(data.DiskUsage),
		mapping.ValueToSQLNullString(data.OS),
		mapping.TimestampToSQLNullTime(data.LastCheck),
	).Scan(&id); err != nil {
		return nil, errors.Wrap(err, "failed to insert zabbix vm")
	}

	var m models.ZabbixVM
	if err := tx.QueryRow(ctx, zabbixFindQuery+" WHERE id = $1", id).Scan(
		&m.ID,
		&m.Name,
		&m.IPAddress,
		&m.Status,
		&m.CPUUsage,
		&m.MemoryUsage,
		&m.DiskUsage,
		&m.OS,
		&m.LastCheck,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, errors.Wrap(err, "failed to scan zabbix vm row")
	}
	return toDomainZabbixVM(&m), nil
}

func (r *ZabbixRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, zabbixCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count zabbix vms")
	}
	return count, nil
}
