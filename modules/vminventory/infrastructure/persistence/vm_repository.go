package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/modules/vminventory/domain/vm"
	"github.com/itam-labs/assetdesk/modules/vminventory/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
	"github.com/itam-labs/assetdesk/pkg/repo"
)

var (
	ErrVMNotFound = fmt.Errorf("vm inventory record not found")
)

const (
	vmFindQuery = `
		SELECT id, start_date, end_date, validity, hypervisor, hostname, host_model,
			host_ip_address, host_os, rack, vm_id, vm_name, vm_status, vm_ip_address,
			internet_access, vm_os, vm_os_version, deployed_by, assigned_user,
			department, jira_ticket_number, remarks, created_at, updated_at
		FROM vm_inventory`
	vmCountQuery  = `SELECT COUNT(*) FROM vm_inventory`
	vmDeleteQuery = `DELETE FROM vm_inventory WHERE id = $1`
)

var vmInsertFields = []string{
	"start_date", "end_date", "validity", "hypervisor", "hostname", "host_model",
	"host_ip_address", "host_os", "rack", "vm_id", "vm_name", "vm_status",
	"vm_ip_address", "internet_access", "vm_os", "vm_os_version", "deployed_by",
	"assigned_user", "department", "jira_ticket_number", "remarks",
}

type VMRepository struct{}

func NewVMRepository() vm.Repository {
	return &VMRepository{}
}

func (r *VMRepository) GetAll(ctx context.Context) ([]vm.VMInventory, error) {
	return r.queryVMs(ctx, vmFindQuery+" ORDER BY created_at DESC")
}

func (r *VMRepository) GetByID(ctx context.Context, id int) (*vm.VMInventory, error) {
	vms, err := r.queryVMs(ctx, vmFindQuery+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(vms) == 0 {
		return nil, ErrVMNotFound
	}
	return &vms[0], nil
}

func (r *VMRepository) Create(ctx context.Context, data *vm.VMInventory) (*vm.VMInventory, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := repo.Insert("vm_inventory", vmInsertFields, "id")
	var id int
	if err := tx.QueryRow(ctx, query, r.insertArgs(data)...).Scan(&id); err != nil {
		return nil, errors.Wrap(err, "failed to insert vm inventory record")
	}

	return r.GetByID(ctx, id)
}

func (r *VMRepository) Update(ctx context.Context, data *vm.VMInventory) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	fields := append(append([]string{}, vmInsertFields...), "updated_at")
	query := repo.Update("vm_inventory", fields, fmt.Sprintf("id = $%d", len(fields)+1))
	args := append(r.insertArgs(data), time.Now(), data.ID)
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "failed to update vm inventory record")
	}
	if tag.RowsAffected() == 0 {
		return ErrVMNotFound
	}
	return nil
}

func (r *VMRepository) Delete(ctx context.Context, id int) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, vmDeleteQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVMNotFound
	}
	return nil
}

func (r *VMRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, vmCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count vm inventory records")
	}
	return count, nil
}

func (r *VMRepository) insertArgs(data *vm.VMInventory) []interface{} {
	return []interface{}{
		mapping.DateToSQLNullTime(data.StartDate),
		mapping.DateToSQLNullTime(data.EndDate),
		data.Validity,
		mapping.ValueToSQLNullString(data.Hypervisor),
		mapping.ValueToSQLNullString(data.Hostname),
		mapping.ValueToSQLNullString(data.HostModel),
		mapping.ValueToSQLNullString(data.HostIPAddress),
		mapping.ValueToSQLNullString(data.HostOS),
		mapping.ValueToSQLNullString(data.Rack),
		mapping.ValueToSQLNullString(data.VMID),
		mapping.ValueToSQLNullString(data.VMName),
		mapping.ValueToSQLNullString(data.VMStatus),
		mapping.ValueToSQLNullString(data.VMIPAddress),
		data.InternetAccess,
		mapping.ValueToSQLNullString(data.VMOS),
		mapping.ValueToSQLNullString(data.VMOSVersion),
		mapping.ValueToSQLNullString(data.DeployedBy),
		mapping.ValueToSQLNullString(data.User),
		mapping.ValueToSQLNullString(data.Department),
		mapping.ValueToSQLNullString(data.JiraTicketNumber),
		mapping.ValueToSQLNullString(data.Remarks),
	}
}

func (r *VMRepository) queryVMs(ctx context.Context, query string, args ...interface{}) ([]vm.VMInventory, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var vms []vm.VMInventory
	for rows.Next() {
		var m models.VMInventory
		if err := rows.Scan(
			&m.ID,
			&m.StartDate,
			&m.EndDate,
			&m.Validity,
			&m.Hypervisor,
			&m.Hostname,
			&m.HostModel,
			&m.HostIPAddress,
			&m.HostOS,
			&m.Rack,
			&m.VMID,
			&m.VMName,
			&m.VMStatus,
			&m.VMIPAddress,
			&m.InternetAccess,
			&m.VMOS,
			&m.VMOSVersion,
			&m.DeployedBy,
			&m.User,
			&m.Department,
			&m.JiraTicketNumber,
			&m.Remarks,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan vm inventory row")
		}
		vms = append(vms, *toDomainVMInventory(&m))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return vms, nil
}
