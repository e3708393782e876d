package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/itam-labs/assetdesk/modules/setup/domain"
	"github.com/itam-labs/assetdesk/modules/setup/marker"
	"github.com/itam-labs/assetdesk/modules/setup/seed"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

const bcryptCost = 10

// Provisioner runs the one-shot first-boot sequence: schema, admin account,
// seed data, completion marker. Each unit is transactional on its own; a
// failure never rolls back an earlier unit, and a re-run tolerates whatever
// the previous run left behind.
type Provisioner struct {
	marker      *marker.Store
	connTimeout time.Duration
}

func NewProvisioner(markerStore *marker.Store, connTimeout time.Duration) *Provisioner {
	return &Provisioner{marker: markerStore, connTimeout: connTimeout}
}

func connString(cfg domain.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		url.QueryEscape(cfg.Username),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)
}

// TestConnection checks that the candidate database accepts connections,
// bounded by the configured short timeout.
func (p *Provisioner) TestConnection(ctx context.Context, cfg domain.DatabaseConfig) error {
	ctx, cancel := context.WithTimeout(ctx, p.connTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString(cfg))
	if err != nil {
		return serrors.Wrap(err, serrors.KindConnection, "Failed to connect to database")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return serrors.Wrap(err, serrors.KindConnection, "Failed to connect to database")
	}
	return nil
}

// Run executes the provisioning plan and returns the new admin account's
// identifier. The pool opened for the run is always torn down, whatever the
// outcome.
func (p *Provisioner) Run(ctx context.Context, plan *domain.Plan) (int, error) {
	logger := composables.UseLogger(ctx)

	pool, err := pgxpool.New(ctx, connString(plan.Database))
	if err != nil {
		return 0, serrors.Wrap(err, serrors.KindConnection, "Failed to connect to database")
	}
	defer pool.Close()

	ctx = composables.WithPool(ctx, pool)

	logger.Info("setup: creating database tables")
	if err := CreateSchema(ctx); err != nil {
		return 0, err
	}

	logger.Info("setup: creating admin user")
	adminID, err := p.createAdmin(ctx, plan.Admin)
	if err != nil {
		return 0, err
	}
	logger.Infof("setup: admin user created with id %d", adminID)

	logger.Info("setup: importing seed data")
	warnings, err := seed.Run(ctx, plan.ImportOptions)
	if err != nil {
		return 0, err
	}
	if warnings > 0 {
		partial := serrors.New(serrors.KindPartialFailure,
			fmt.Sprintf("%d seed records stored with unresolved references", warnings))
		logger.WithError(partial).Warn("setup: seed data imported partially")
	}

	logger.Info("setup: marking setup as complete")
	if err := p.marker.Write(time.Now()); err != nil {
		return 0, err
	}

	return adminID, nil
}

func (p *Provisioner) createAdmin(ctx context.Context, admin domain.AdminAccount) (int, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcryptCost)
	if err != nil {
		return 0, err
	}

	var adminID int
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		tx, err := composables.UseTx(txCtx)
		if err != nil {
			return err
		}
		const query = `
			INSERT INTO users (name, email, password, is_admin)
			VALUES ($1, $2, $3, TRUE)
			RETURNING id`
		return tx.QueryRow(txCtx, query, admin.Name, admin.Email, string(hashed)).Scan(&adminID)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, serrors.Wrap(err, serrors.KindConflict, "admin user already exists")
		}
		return 0, err
	}
	return adminID, nil
}
