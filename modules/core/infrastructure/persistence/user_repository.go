package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/itam-labs/assetdesk/modules/core/domain/user"
	"github.com/itam-labs/assetdesk/modules/core/infrastructure/persistence/models"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
	"github.com/itam-labs/assetdesk/pkg/repo"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
)

const (
	userFindQuery = `
		SELECT id, name, email, password, department, position, phone, location,
			is_active, is_admin, created_at, updated_at
		FROM users`
	userCountQuery  = `SELECT COUNT(*) FROM users`
	userDeleteQuery = `DELETE FROM users WHERE id = $1`
)

var userInsertFields = []string{
	"name", "email", "password", "department", "position", "phone",
	"location", "is_active", "is_admin",
}

const uniqueViolation = "23505"

func mapDBError(err error, message string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return serrors.Wrap(err, serrors.KindConflict, message)
	}
	return err
}

type UserRepository struct{}

func NewUserRepository() user.Repository {
	return &UserRepository{}
}

func (r *UserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	return r.queryUsers(ctx, userFindQuery+" ORDER BY name")
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*user.User, error) {
	users, err := r.queryUsers(ctx, userFindQuery+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return &users[0], nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	users, err := r.queryUsers(ctx, userFindQuery+" WHERE email = $1", email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return &users[0], nil
}

func (r *UserRepository) Create(ctx context.Context, data *user.User) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	query := repo.Insert("users", userInsertFields, "id")
	var id int
	if err := tx.QueryRow(
		ctx,
		query,
		data.Name,
		data.Email,
		mapping.ValueToSQLNullString(data.PasswordHash),
		mapping.ValueToSQLNullString(data.Department),
		mapping.ValueToSQLNullString(data.Position),
		mapping.ValueToSQLNullString(data.Phone),
		mapping.ValueToSQLNullString(data.Location),
		data.IsActive,
		data.IsAdmin,
	).Scan(&id); err != nil {
		return nil, mapDBError(err, "user with this email already exists")
	}

	return r.GetByID(ctx, id)
}

func (r *UserRepository) Update(ctx context.Context, data *user.User) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	fields := append(append([]string{}, userInsertFields...), "updated_at")
	query := repo.Update("users", fields, fmt.Sprintf("id = $%d", len(fields)+1))
	tag, err := tx.Exec(
		ctx,
		query,
		data.Name,
		data.Email,
		mapping.ValueToSQLNullString(data.PasswordHash),
		mapping.ValueToSQLNullString(data.Department),
		mapping.ValueToSQLNullString(data.Position),
		mapping.ValueToSQLNullString(data.Phone),
		mapping.ValueToSQLNullString(data.Location),
		data.IsActive,
		data.IsAdmin,
		time.Now(),
		data.ID,
	)
	if err != nil {
		return mapDBError(err, "user with this email already exists")
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, userDeleteQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, userCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}
	return count, nil
}

func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.Password,
			&u.Department,
			&u.Position,
			&u.Phone,
			&u.Location,
			&u.IsActive,
			&u.IsAdmin,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan user row")
		}
		users = append(users, *toDomainUser(&u))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return users, nil
}
