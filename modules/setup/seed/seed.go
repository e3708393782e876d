// Package seed inserts the built-in sample datasets during provisioning.
// Each dataset runs in its own transaction; rows already present are skipped
// by natural key, and an unresolvable cross-entity reference produces a
// warning, never a failure.
package seed

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/modules/setup/domain"
	"github.com/itam-labs/assetdesk/pkg/composables"
	"github.com/itam-labs/assetdesk/pkg/mapping"
	"github.com/itam-labs/assetdesk/pkg/repo"
)

// Run imports every dataset whose toggle is set and returns how many rows
// were stored with an unresolved cross-entity reference. Datasets are
// independent: a toggle never implies another, and assets must simply be
// seeded first for component and recovery-key references to resolve.
func Run(ctx context.Context, opts domain.ImportOptions) (int, error) {
	type dataset struct {
		name    string
		enabled bool
		insert  func(context.Context) (int, error)
	}

	datasets := []dataset{
		{"assets", opts.Assets, insertAssets},
		{"users", opts.Users, insertUsers},
		{"components", opts.Components, insertComponents},
		{"accessories", opts.Accessories, insertAccessories},
		{"licenses", opts.Licenses, insertLicenses},
		{"zabbix_vms", opts.ZabbixVMs, insertZabbixVMs},
		{"activity_logs", opts.ActivityLogs, insertActivityLogs},
		{"bitlocker_keys", opts.BitLockerKeys, insertBitLockerKeys},
	}

	warnings := 0
	for _, d := range datasets {
		if !d.enabled {
			continue
		}
		var warned int
		err := composables.InTx(ctx, func(txCtx context.Context) error {
			var err error
			warned, err = d.insert(txCtx)
			return err
		})
		if err != nil {
			return warnings, errors.Wrapf(err, "failed to seed %s", d.name)
		}
		warnings += warned
		composables.UseLogger(ctx).Infof("seeded %s", d.name)
	}
	return warnings, nil
}

// rowExists reports whether a natural-key probe query matches a row. Most
// seed tables only constrain their SERIAL primary key, so re-run idempotency
// has to be enforced here rather than by ON CONFLICT.
func rowExists(ctx context.Context, tx repo.Tx, query string, args ...any) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, repo.Exists(query), args...).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "failed to check seed row")
	}
	return exists, nil
}

func insertAssets(ctx context.Context) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	const query = `
		INSERT INTO assets (
			asset_tag, serial_number, model, status, category, manufacturer,
			purchase_date, purchase_cost, warranty_expires, location, notes,
			ip_address, mac_address
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (asset_tag) DO NOTHING`
	for _, a := range Assets {
		if _, err := tx.Exec(ctx, query,
			a.Tag,
			mapping.ValueToSQLNullString(a.SerialNumber),
			a.Model,
			a.Status,
			a.Category,
			mapping.ValueToSQLNullString(a.Manufacturer),
			mapping.DateToSQLNullTime(a.PurchaseDate),
			a.PurchaseCost,
			mapping.DateToSQLNullTime(a.WarrantyExpires),
			mapping.ValueToSQLNullString(a.Location),
			mapping.ValueToSQLNullString(a.Notes),
			mapping.ValueToSQLNullString(a.IPAddress),
			mapping.ValueToSQLNullString(a.MACAddress),
		); err != nil {
			return 0, err
		}
	}
	return 0, nil
}

func insertUsers(ctx context.Context) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	const query = `
		INSERT INTO users (name, email, department, position, phone, location, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO NOTHING`
	for _, u := range Users {
		if _, err := tx.Exec(ctx, query,
			u.Name,
			u.Email,
			mapping.ValueToSQLNullString(u.Department),
			mapping.ValueToSQLNullString(u.Position),
			mapping.ValueToSQLNullString(u.Phone),
			mapping.ValueToSQLNullString(u.Location),
			u.IsActive,
		); err != nil {
			return 0, err
		}
	}
	return 0, nil
}

// lookupAssetID resolves an asset tag to its row identifier, returning nil
// when the tag is blank or not seeded.
func lookupAssetID(ctx context.Context, tag string) (*int, error) {
	if tag == "" {
		return nil, nil
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var id int
	if err := tx.QueryRow(ctx, `SELECT id FROM assets WHERE asset_tag = $1`, tag).Scan(&id); err != nil {
		return nil, nil
	}
	return &id, nil
}

func insertComponents(ctx context.Context) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	logger := composables.UseLogger(ctx)
	const query = `
		INSERT INTO components (
			name, category, serial_number, manufacturer, model,
			purchase_date, purchase_cost, status, asset_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	warned := 0
	for _, c := range Components {
		exists, err := rowExists(ctx, tx, `SELECT 1 FROM components WHERE name = $1`, c.Name)
		if err != nil {
			return warned, err
		}
		if exists {
			continue
		}
		assetID, err := lookupAssetID(ctx, c.AssetTag)
		if err != nil {
			return warned, err
		}
		if c.AssetTag != "" && assetID == nil {
			logger.Warnf("seed: component %q references unknown asset %q, storing without owner", c.Name, c.AssetTag)
			warned++
		}
		if _, err := tx.Exec(ctx, query,
			c.Name,
			c.Category,
			mapping.ValueToSQLNullString(c.SerialNumber),
			mapping.ValueToSQLNullString(c.Manufacturer),
			mapping.ValueToSQLNullString(c.Model),
			mapping.DateToSQLNullTime(c.PurchaseDate),
			c.PurchaseCost,
			c.Status,
			mapping.PointerToSQLNullInt32(assetID),
		); err != nil {
			return warned, err
		}
	}
	return warned, nil
}

func insertAccessories(ctx context.Context) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	const query = `
		INSERT INTO accessories (
			name, category, manufacturer, model, purchase_date,
			purchase_cost, quantity, quantity_available, location
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, a := range Accessories {
		exists, err := rowExists(ctx, tx, `SELECT 1 FROM accessories WHERE name = $1`, a.Name)
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}
		if _, err := tx.Exec(ctx, query,
			a.Name,
			a.Category,
			mapping.ValueToSQLNullString(a.Manufacturer),
			mapping.ValueToSQLNullString(a.Model),
			mapping.DateToSQLNullTime(a.PurchaseDate),
			a.PurchaseCost,
			a.Quantity,
			a.QuantityAvailable,
			mapping.ValueToSQLNullString(a.Location),
		); err != nil {
			return 0, err
		}
	}
	return 0, nil
}

func insertLicenses(ctx context.Context) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	const query = `
		INSERT INTO licenses (
			name, software, key, seats, seats_available,
			purchase_date, expiration_date, purchase_cost, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, l := range Licenses {
		exists, err := rowExists(ctx, tx, `SELECT 1 FROM licenses WHERE key = $1`, l.Key)
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}
		if _, err := tx.Exec(ctx, query,
			l.Name,
			l.Software,
			l.Key,
			l.Seats,
			l.SeatsAvailable,
			mapping.DateToSQLNullTime(l.PurchaseDate),
			mapping.DateToSQLNullTime(l.ExpirationDate),
			l.PurchaseCost,
			mapping.ValueToSQLNullString(l.Notes),
		); err != nil {
			return 0, err
		}
	}
	return 0, nil
}

func insertZabbixVMs(ctx context.Context) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var batch [][]any
	for _, v := range ZabbixVMs {
		exists, err := rowExists(ctx, tx, `SELECT 1 FROM zabbix_vms WHERE name = $1`, v.Name)
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}
		batch = append(batch, []any{
			v.Name,
			mapping.ValueToSQLNullString(v.IPAddress),
			v.Status,
			v.CPUUsage,
			v.MemoryUsage,
			v.DiskUsage,
			mapping.ValueToSQLNullString(v.OS),
			mapping.TimestampToSQLNullTime(v.LastCheck),
		})
	}
	if len(batch) == 0 {
		return 0, nil
	}
	query, args := repo.BatchInsertQueryN(`
		INSERT INTO zabbix_vms (
			name, ip_address, status, cpu_usage, memory_usage,
			disk_usage, os, last_check
		) VALUES`, batch)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return 0, err
	}
	return 0, nil
}

// lookupUserID resolves a seed user's email to a row identifier.
func lookupUserID(ctx context.Context, email string) (*int, error) {
	if email == "" {
		return nil, nil
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	var id int
	if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id); err != nil {
		return nil, nil
	}
	return &id, nil
}

func insertActivityLogs(ctx context.Context) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	logger := composables.UseLogger(ctx)
	const query = `
		INSERT INTO activity_logs (user_id, action, item_type, item_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	warned := 0
	for _, l := range ActivityLogs {
		exists, err := rowExists(ctx, tx,
			`SELECT 1 FROM activity_logs WHERE action = $1 AND item_type = $2 AND item_id = $3`,
			l.Action, l.ItemType, l.ItemID)
		if err != nil {
			return warned, err
		}
		if exists {
			continue
		}
		userID, err := lookupUserID(ctx, l.UserEmail)
		if err != nil {
			return warned, err
		}
		if userID == nil {
			logger.Warnf("seed: activity log references unknown user %q, storing without actor", l.UserEmail)
			warned++
		}
		if _, err := tx.Exec(ctx, query,
			mapping.PointerToSQLNullInt32(userID),
			l.Action,
			l.ItemType,
			l.ItemID,
			mapping.ValueToSQLNullString(l.Details),
			mapping.TimestampToSQLNullTime(l.Timestamp),
		); err != nil {
			return warned, err
		}
	}
	return warned, nil
}

func insertBitLockerKeys(ctx context.Context) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	logger := composables.UseLogger(ctx)
	const query = `
		INSERT INTO bitlocker_keys (asset_id, recovery_key, created_at)
		VALUES ($1, $2, $3)`
	warned := 0
	for _, k := range BitLockerKeys {
		exists, err := rowExists(ctx, tx, `SELECT 1 FROM bitlocker_keys WHERE recovery_key = $1`, k.RecoveryKey)
		if err != nil {
			return warned, err
		}
		if exists {
			continue
		}
		assetID, err := lookupAssetID(ctx, k.AssetTag)
		if err != nil {
			return warned, err
		}
		if assetID == nil {
			logger.Warnf("seed: recovery key references unknown asset %q, skipping", k.AssetTag)
			warned++
			continue
		}
		if _, err := tx.Exec(ctx, query,
			mapping.PointerToSQLNullInt32(assetID),
			k.RecoveryKey,
			mapping.TimestampToSQLNullTime(k.CreatedAt),
		); err != nil {
			return warned, err
		}
	}
	return warned, nil
}
