package persistence

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/modules/core/domain/activity"
	"github.com/itam-labs/assetdesk/modules/core/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
	"github.com/itam-labs/assetdesk/pkg/repo"
)

var (
	ErrActivityLogNotFound = fmt.Errorf("activity log not found")
)

const (
	activityFindQuery = `
		SELECT id, user_id, action, item_type, item_id, details, created_at
		FROM activity_logs`
	activityCountQuery = `SELECT COUNT(*) FROM activity_logs`
)

var activityInsertFields = []string{"user_id", "action", "item_type", "item_id", "details"}

type ActivityRepository struct{}

func NewActivityRepository() activity.Repository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) GetAll(ctx context.Context, limit int) ([]activity.Log, error) {
	query := repo.Join(activityFindQuery, "ORDER BY created_at DESC", repo.FormatLimitOffset(limit, 0))
	return r.queryLogs(ctx, query)
}

func (r *ActivityRepository) Create(ctx context.Context, data *activity.Log) (*activity.Log, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := repo.Insert("activity_logs", activityInsertFields, "id")
	var id int
	if err := tx.QueryRow(
		ctx,
		query,
		mapping.PointerToSQLNullInt32(data.UserID),
		data.Action,
		string(data.ItemType),
		data.ItemID,
		mapping.ValueToSQLNullString(data.Details),
	).Scan(&id); err != nil {
		return nil, errors.Wrap(err, "failed to insert activity log")
	}

	logs, err := r.queryLogs(ctx, activityFindQuery+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, ErrActivityLogNotFound
	}
	return &logs[0], nil
}

func (r *ActivityRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, activityCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count activity logs")
	}
	return count, nil
}

func (r *ActivityRepository) queryLogs(ctx context.Context, query string, args ...interface{}) ([]activity.Log, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var logs []activity.Log
	for rows.Next() {
		var l models.ActivityLog
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.Action,
			&l.ItemType,
			&l.ItemID,
			&l.Details,
			&l.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan activity log row")
		}
		logs = append(logs, *toDomainActivityLog(&l))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return logs, nil
}
