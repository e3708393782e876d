package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/modules/assets/domain/accessory"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
	"github.com/itam-labs/assetdesk/pkg/repo"
)

var (
	ErrAccessoryNotFound = fmt.Errorf("accessory not found")
)

const (
	accessoryFindQuery = `
		SELECT id, name, category, manufacturer, model, purchase_date,
			purchase_cost, quantity, quantity_available, location, created_at, updated_at
		FROM accessories`
	accessoryCountQuery  = `SELECT COUNT(*) FROM accessories`
	accessoryDeleteQuery = `DELETE FROM accessories WHERE id = $1`
)

var accessoryInsertFields = []string{
	"name", "category", "manufacturer", "model", "purchase_date",
	"purchase_cost", "quantity", "quantity_available", "location",
}

type AccessoryRepository struct{}

func NewAccessoryRepository() accessory.Repository {
	return &AccessoryRepository{}
}

func (r *AccessoryRepository) GetAll(ctx context.Context) ([]accessory.Accessory, error) {
	return r.queryAccessories(ctx, accessoryFindQuery+" ORDER BY created_at DESC")
}

func (r *AccessoryRepository) GetByID(ctx context.Context, id int) (*accessory.Accessory, error) {
	accessories, err := r.queryAccessories(ctx, accessoryFindQuery+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(accessories) == 0 {
		return nil, ErrAccessoryNotFound
	}
	return &accessories[0], nil
}

func (r *AccessoryRepository) Create(ctx context.Context, data *accessory.Accessory) (*accessory.Accessory, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := repo.Insert("accessories", accessoryInsertFields, "id")
	var id int
	if err := tx.QueryRow(
		ctx,
		query,
		data.Name,
		data.Category,
		mapping.ValueToSQLNullString(data.Manufacturer),
		mapping.ValueToSQLNullString(data.Model),
		mapping.DateToSQLNullTime(data.PurchaseDate),
		mapping.ValueToSQLNullFloat64(data.PurchaseCost),
		data.Quantity,
		data.QuantityAvailable,
		mapping.ValueToSQLNullString(data.Location),
	).Scan(&id); err != nil {
		return nil, mapDBError(err, "accessory already exists")
	}

	return r.GetByID(ctx, id)
}

func (r *AccessoryRepository) Update(ctx context.Context, data *accessory.Accessory) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	fields := append(append([]string{}, accessoryInsertFields...), "updated_at")
	query := repo.Update("accessories", fields, fmt.Sprintf("id = $%d", len(fields)+1))
	tag, err := tx.Exec(
		ctx,
		query,
		data.Name,
		data.Category,
		mapping.ValueToSQLNullString(data.Manufacturer),
		mapping.ValueToSQLNullString(data.Model),
		mapping.DateToSQLNullTime(data.PurchaseDate),
		mapping.ValueToSQLNullFloat64(data.PurchaseCost),
		data.Quantity,
		data.QuantityAvailable,
		mapping.ValueToSQLNullString(data.Location),
		time.Now(),
		data.ID,
	)
	if err != nil {
		return mapDBError(err, "accessory already exists")
	}
	if tag.RowsAffected() == 0 {
		return ErrAccessoryNotFound
	}
	return nil
}

func (r *AccessoryRepository) Delete(ctx context.Context, id int) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, accessoryDeleteQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccessoryNotFound
	}
	return nil
}

func (r *AccessoryRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, accessoryCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count accessories")
	}
	return count, nil
}

func (r *AccessoryRepository) queryAccessories(ctx context.Context, query string, args ...interface{}) ([]accessory.Accessory, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var accessories []accessory.Accessory
	for rows.Next() {
		var a models.Accessory
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Category,
			&a.Manufacturer,
			&a.Model,
			&a.PurchaseDate,
			&a.PurchaseCost,
			&a.Quantity,
			&a.QuantityAvailable,
			&a.Location,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan accessory row")
		}
		accessories = append(accessories, *toDomainAccessory(&a))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return accessories, nil
}
