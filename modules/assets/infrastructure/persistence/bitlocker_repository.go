package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/modules/assets/domain/bitlocker"
	"github.com/itam-labs/assetdesk/modules/assets/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
	"github.com/itam-labs/assetdesk/pkg/repo"
)

var (
	ErrBitLockerKeyNotFound = fmt.Errorf("bitlocker key not found")
)

const (
	bitlockerFindQuery = `
		SELECT id, asset_id, recovery_key, drive_letter, created_at, updated_at
		FROM bitlocker_keys`
	bitlockerDeleteQuery = `DELETE FROM bitlocker_keys WHERE id = $1`
)

var bitlockerInsertFields = []string{"asset_id", "recovery_key", "drive_letter"}

type BitLockerRepository struct{}

func NewBitLockerRepository() bitlocker.Repository {
	return &BitLockerRepository{}
}

func (r *BitLockerRepository) GetAll(ctx context.Context) ([]bitlocker.Key, error) {
	return r.queryKeys(ctx, bitlockerFindQuery+" ORDER BY created_at DESC")
}

func (r *BitLockerRepository) GetByID(ctx context.Context, id int) (*bitlocker.Key, error) {
	keys, err := r.queryKeys(ctx, bitlockerFindQuery+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, ErrBitLockerKeyNotFound
	}
	return &keys[0], nil
}

func (r *BitLockerRepository) Create(ctx context.Context, data *bitlocker.Key) (*bitlocker.Key, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := repo.Insert("bitlocker_keys", bitlockerInsertFields, "id")
	var id int
	if err := tx.QueryRow(
		ctx,
		query,
		mapping.PointerToSQLNullInt32(data.AssetID),
		data.RecoveryKey,
		mapping.ValueToSQLNullString(data.DriveLetter),
	).Scan(&id); err != nil {
		return nil, mapDBError(err, "bitlocker key already exists")
	}

	return r.GetByID(ctx, id)
}

func (r *BitLockerRepository) Update(ctx context.Context, data *bitlocker.Key) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	fields := append(append([]string{}, bitlockerInsertFields...), "updated_at")
	query := repo.Update("bitlocker_keys", fields, fmt.Sprintf("id = $%d", len(fields)+1))
	tag, err := tx.Exec(
		ctx,
		query,
		mapping.PointerToSQLNullInt32(data.AssetID),
		data.RecoveryKey,
		mapping.ValueToSQLNullString(data.DriveLetter),
		time.Now(),
		data.ID,
	)
	if err != nil {
		return mapDBError(err, "bitlocker key already exists")
	}
	if tag.RowsAffected() == 0 {
		return ErrBitLockerKeyNotFound
	}
	return nil
}

func (r *BitLockerRepository) Delete(ctx context.Context, id int) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, bitlockerDeleteQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBitLockerKeyNotFound
	}
	return nil
}

func (r *BitLockerRepository) queryKeys(ctx context.Context, query string, args ...interface{}) ([]bitlocker.Key, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var keys []bitlocker.Key
	for rows.Next() {
		var k models.BitLockerKey
		if err := rows.Scan(
			&k.ID,
			&k.AssetID,
			&k.RecoveryKey,
			&k.DriveLetter,
			&k.CreatedAt,
			&k.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan bitlocker key row")
		}
		keys = append(keys, *toDomainBitLockerKey(&k))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return keys, nil
}
