package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/modules/assets/domain/license"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
	"github.com/itam-labs/assetdesk/pkg/repo"
)

var (
	ErrLicenseNotFound = fmt.Errorf("license not found")
)

const (
	licenseFindQuery = `
		SELECT id, name, software, key, seats, seats_available, purchase_date,
			expiration_date, purchase_cost, notes, created_at, updated_at
		FROM licenses`
	licenseCountQuery    = `SELECT COUNT(*) FROM licenses`
	licenseDeleteQuery   = `DELETE FROM licenses WHERE id = $1`
	licenseExpiringQuery = `
		SELECT COUNT(*) FROM licenses
		WHERE expiration_date IS NOT NULL
			AND expiration_date BETWEEN NOW() AND NOW() + make_interval(days => $1)`
)

var licenseInsertFields = []string{
	"name", "software", "key", "seats", "seats_available",
	"purchase_date", "expiration_date", "purchase_cost", "notes",
}

type LicenseRepository struct{}

func NewLicenseRepository() license.Repository {
	return &LicenseRepository{}
}

func (r *LicenseRepository) GetAll(ctx context.Context) ([]license.License, error) {
	return r.queryLicenses(ctx, licenseFindQuery+" ORDER BY created_at DESC")
}

func (r *LicenseRepository) GetByID(ctx context.Context, id int) (*license.License, error) {
	licenses, err := r.queryLicenses(ctx, licenseFindQuery+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(licenses) == 0 {
		return nil, ErrLicenseNotFound
	}
	return &licenses[0], nil
}

func (r *LicenseRepository) Create(ctx context.Context, data *license.License) (*license.License, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := repo.Insert("licenses", licenseInsertFields, "id")
	var id int
	if err := tx.QueryRow(
		ctx,
		query,
		data.Name,
		data.Software,
		data.Key,
		data.Seats,
		data.SeatsAvailable,
		mapping.DateToSQLNullTime(data.PurchaseDate),
		mapping.DateToSQLNullTime(data.ExpirationDate),
		mapping.ValueToSQLNullFloat64(data.PurchaseCost),
		mapping.ValueToSQLNullString(data.Notes),
	).Scan(&id); err != nil {
		return nil, mapDBError(err, "license already exists")
	}

	return r.GetByID(ctx, id)
}

func (r *LicenseRepository) Update(ctx context.Context, data *license.License) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	fields := append(append([]string{}, licenseInsertFields...), "updated_at")
	query := repo.Update("licenses", fields, fmt.Sprintf("id = $%d", len(fields)+1))
	tag, err := tx.Exec(
		ctx,
		query,
		data.Name,
		data.Software,
		data.Key,
		data.Seats,
		data.SeatsAvailable,
		mapping.DateToSQLNullTime(data.PurchaseDate),
		mapping.DateToSQLNullTime(data.ExpirationDate),
		mapping.ValueToSQLNullFloat64(data.PurchaseCost),
		mapping.ValueToSQLNullString(data.Notes),
		time.Now(),
		data.ID,
	)
	if err != nil {
		return mapDBError(err, "license already exists")
	}
	if tag.RowsAffected() == 0 {
		return ErrLicenseNotFound
	}
	return nil
}

func (r *LicenseRepository) Delete(ctx context.Context, id int) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, licenseDeleteQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLicenseNotFound
	}
	return nil
}

func (r *LicenseRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, licenseCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count licenses")
	}
	return count, nil
}

func (r *LicenseRepository) CountExpiringWithin(ctx context.Context, days int) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, licenseExpiringQuery, days).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count expiring licenses")
	}
	return count, nil
}

func (r *LicenseRepository) queryLicenses(ctx context.Context, query string, args ...interface{}) ([]license.License, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var licenses []license.License
	for rows.Next() {
		var l models.License
		if err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.Software,
			&l.Key,
			&l.Seats,
			&l.SeatsAvailable,
			&l.PurchaseDate,
			&l.ExpirationDate,
			&l.PurchaseCost,
			&l.Notes,
			&l.CreatedAt,
			&l.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan license row")
		}
		licenses = append(licenses, *toDomainLicense(&l))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return licenses, nil
}
