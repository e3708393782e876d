package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/modules/assets/domain/asset"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
	"github.com/itam-labs/assetdesk/pkg/repo"
)

var (
	ErrAssetNotFound = fmt.Errorf("asset not found")
)

const (
	assetFindQuery = `
		SELECT id, asset_tag, serial_number, model, status, category, manufacturer,
			purchase_date, purchase_cost, warranty_expires, assigned_to, location,
			notes, ip_address, mac_address, date_released, released_by,
			finance_checked, created_at, updated_at
		FROM assets`
	assetCountQuery  = `SELECT COUNT(*) FROM assets`
	assetDeleteQuery = `DELETE FROM assets WHERE id = $1`
)

var assetInsertFields = []string{
	"asset_tag", "serial_number", "model", "status", "category", "manufacturer",
	"purchase_date", "purchase_cost", "warranty_expires", "assigned_to",
	"location", "notes", "ip_address", "mac_address", "date_released",
	"released_by", "finance_checked",
}

type AssetRepository struct{}

func NewAssetRepository() asset.Repository {
	return &AssetRepository{}
}

func (r *AssetRepository) GetAll(ctx context.Context) ([]asset.Asset, error) {
	return r.queryAssets(ctx, assetFindQuery+" ORDER BY created_at DESC")
}

func (r *AssetRepository) GetByID(ctx context.Context, id int) (*asset.Asset, error) {
	assets, err := r.queryAssets(ctx, assetFindQuery+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, ErrAssetNotFound
	}
	return &assets[0], nil
}

func (r *AssetRepository) Create(ctx context.Context, data *asset.Asset) (*asset.Asset, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := repo.Insert("assets", assetInsertFields, "id")
	var id int
	if err := tx.QueryRow(
		ctx,
		query,
		data.AssetTag,
		mapping.ValueToSQLNullString(data.SerialNumber),
		data.Model,
		string(data.Status),
		data.Category,
		mapping.ValueToSQLNullString(data.Manufacturer),
		mapping.DateToSQLNullTime(data.PurchaseDate),
		mapping.ValueToSQLNullFloat64(data.PurchaseCost),
		mapping.DateToSQLNullTime(data.WarrantyExpires),
		mapping.ValueToSQLNullString(data.AssignedTo),
		mapping.ValueToSQLNullString(data.Location),
		mapping.ValueToSQLNullString(data.Notes),
		mapping.ValueToSQLNullString(data.IPAddress),
		mapping.ValueToSQLNullString(data.MACAddress),
		mapping.DateToSQLNullTime(data.DateReleased),
		mapping.ValueToSQLNullString(data.ReleasedBy),
		data.FinanceChecked,
	).Scan(&id); err != nil {
		return nil, mapDBError(err, "asset with this tag or serial number already exists")
	}

	return r.GetByID(ctx, id)
}

func (r *AssetRepository) Update(ctx context.Context, data *asset.Asset) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	fields := append(append([]string{}, assetInsertFields...), "updated_at")
	query := repo.Update("assets", fields, fmt.Sprintf("id = $%d", len(fields)+1))
	tag, err := tx.Exec(
		ctx,
		query,
		data.AssetTag,
		mapping.ValueToSQLNullString(data.SerialNumber),
		data.Model,
		string(data.Status),
		data.Category,
		mapping.ValueToSQLNullString(data.Manufacturer),
		mapping.DateToSQLNullTime(data.PurchaseDate),
		mapping.ValueToSQLNullFloat64(data.PurchaseCost),
		mapping.DateToSQLNullTime(data.WarrantyExpires),
		mapping.ValueToSQLNullString(data.AssignedTo),
		mapping.ValueToSQLNullString(data.Location),
		mapping.ValueToSQLNullString(data.Notes),
		mapping.ValueToSQLNullString(data.IPAddress),
		mapping.ValueToSQLNullString(data.MACAddress),
		mapping.DateToSQLNullTime(data.DateReleased),
		mapping.ValueToSQLNullString(data.ReleasedBy),
		data.FinanceChecked,
		time.Now(),
		data.ID,
	)
	if err != nil {
		return mapDBError(err, "asset with this tag or serial number already exists")
	}
	if tag.RowsAffected() == 0 {
		return ErrAssetNotFound
	}
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id int) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, assetDeleteQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAssetNotFound
	}
	return nil
}

func (r *AssetRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, assetCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count assets")
	}
	return count, nil
}

func (r *AssetRepository) CountByStatus(ctx context.Context, status asset.Status) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	query := repo.Join(assetCountQuery, repo.JoinWhere("status = $1"))
	if err := tx.QueryRow(ctx, query, string(status)).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count assets by status")
	}
	return count, nil
}

func (r *AssetRepository) queryAssets(ctx context.Context, query string, args ...interface{}) ([]asset.Asset, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(
			&a.ID,
			&a.AssetTag,
			&a.SerialNumber,
			&a.Model,
			&a.Status,
			&a.Category,
			&a.Manufacturer,
			&a.PurchaseDate,
			&a.PurchaseCost,
			&a.WarrantyExpires,
			&a.AssignedTo,
			&a.Location,
			&a.Notes,
			&a.IPAddress,
			&a.MACAddress,
			&a.DateReleased,
			&a.ReleasedBy,
			&a.FinanceChecked,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan asset row")
		}
		assets = append(assets, *toDomainAsset(&a))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return assets, nil
}
