package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/modules/assets/domain/component"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
	"github.com/itam-labs/assetdesk/pkg/repo"
)

var (
	ErrComponentNotFound = fmt.Errorf("component not found")
)

const (
	componentFindQuery = `
		SELECT id, name, category, serial_number, manufacturer, model,
			purchase_date, purchase_cost, asset_id, status, created_at, updated_at
		FROM components`
	componentCountQuery  = `SELECT COUNT(*) FROM components`
	componentDeleteQuery = `DELETE FROM components WHERE id = $1`
)

var componentInsertFields = []string{
	"name", "category", "serial_number", "manufacturer", "model",
	"purchase_date", "purchase_cost", "asset_id", "status",
}

type ComponentRepository struct{}

func NewComponentRepository() component.Repository {
	return &ComponentRepository{}
}

func (r *ComponentRepository) GetAll(ctx context.Context) ([]component.Component, error) {
	return r.queryComponents(ctx, componentFindQuery+" ORDER BY created_at DESC")
}

func (r *ComponentRepository) GetByID(ctx context.Context, id int) (*component.Component, error) {
	components, err := r.queryComponents(ctx, componentFindQuery+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(components) == 0 {
		return nil, ErrComponentNotFound
	}
	return &components[0], nil
}

func (r *ComponentRepository) Create(ctx context.Context, data *component.Component) (*component.Component, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := repo.Insert("components", componentInsertFields, "id")
	var id int
	if err := tx.QueryRow(
		ctx,
		query,
		data.Name,
		data.Category,
		mapping.ValueToSQLNullString(data.SerialNumber),
		mapping.ValueToSQLNullString(data.Manufacturer),
		mapping.ValueToSQLNullString(data.Model),
		mapping.DateToSQLNullTime(data.PurchaseDate),
		mapping.ValueToSQLNullFloat64(data.PurchaseCost),
		mapping.PointerToSQLNullInt32(data.AssetID),
		data.Status,
	).Scan(&id); err != nil {
		return nil, mapDBError(err, "component already exists")
	}

	return r.GetByID(ctx, id)
}

func (r *ComponentRepository) Update(ctx context.Context, data *component.Component) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	fields := append(append([]string{}, componentInsertFields...), "updated_at")
	query := repo.Update("components", fields, fmt.Sprintf("id = $%d", len(fields)+1))
	tag, err := tx.Exec(
		ctx,
		query,
		data.Name,
		data.Category,
		mapping.ValueToSQLNullString(data.SerialNumber),
		mapping.ValueToSQLNullString(data.Manufacturer),
		mapping.ValueToSQLNullString(data.Model),
		mapping.DateToSQLNullTime(data.PurchaseDate),
		mapping.ValueToSQLNullFloat64(data.PurchaseCost),
		mapping.PointerToSQLNullInt32(data.AssetID),
		data.Status,
		time.Now(),
		data.ID,
	)
	if err != nil {
		return mapDBError(err, "component already exists")
	}
	if tag.RowsAffected() == 0 {
		return ErrComponentNotFound
	}
	return nil
}

func (r *ComponentRepository) Delete(ctx context.Context, id int) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, componentDeleteQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrComponentNotFound
	}
	return nil
}

func (r *ComponentRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, componentCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count components")
	}
	return count, nil
}

func (r *ComponentRepository) queryComponents(ctx context.Context, query string, args ...interface{}) ([]component.Component, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var components []component.Component
	for rows.Next() {
		var c models.Component
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Category,
			&c.SerialNumber,
			&c.Manufacturer,
			&c.Model,
			&c.PurchaseDate,
			&c.PurchaseCost,
			&c.AssetID,
			&c.Status,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan component row")
		}
		components = append(components, *toDomainComponent(&c))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return components, nil
}
