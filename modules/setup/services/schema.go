package services

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/itam-labs/assetdesk/pkg/composables"
)

// schemaStatements is ordered so referenced tables exist before their
// dependents. Every statement is idempotent: CREATE IF NOT EXISTS and
// conflict-ignoring default rows, so a re-run after a partial failure is safe.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS assets (
		id SERIAL PRIMARY KEY,
		asset_tag VARCHAR(50) UNIQUE NOT NULL,
		serial_number VARCHAR(100) UNIQUE,
		model VARCHAR(100) NOT NULL,
		status VARCHAR(50) NOT NULL,
		category VARCHAR(50) NOT NULL,
		manufacturer VARCHAR(100),
		purchase_date DATE,
		purchase_cost DECIMAL(10, 2),
		warranty_expires DATE,
		assigned_to VARCHAR(100),
		location VARCHAR(100),
		notes TEXT,
		ip_address VARCHAR(15),
		mac_address VARCHAR(17),
		date_released DATE,
		released_by VARCHAR(100),
		finance_checked BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) UNIQUE NOT NULL,
		password VARCHAR(255),
		department VARCHAR(100),
		position VARCHAR(100),
		phone VARCHAR(20),
		location VARCHAR(100),
		is_active BOOLEAN DEFAULT TRUE,
		is_admin BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS components (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		category VARCHAR(50) NOT NULL,
		serial_number VARCHAR(100),
		manufacturer VARCHAR(100),
		model VARCHAR(100),
		purchase_date DATE,
		purchase_cost DECIMAL(10, 2),
		asset_id INTEGER REFERENCES assets(id),
		status VARCHAR(50) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS accessories (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		category VARCHAR(50) NOT NULL,
		manufacturer VARCHAR(100),
		model VARCHAR(100),
		purchase_date DATE,
		purchase_cost DECIMAL(10, 2),
		quantity INTEGER DEFAULT 1,
		quantity_available INTEGER DEFAULT 1,
		location VARCHAR(100),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS licenses (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		software VARCHAR(100) NOT NULL,
		key VARCHAR(255) NOT NULL,
		seats INTEGER DEFAULT 1,
		seats_available INTEGER DEFAULT 1,
		purchase_date DATE,
		expiration_date DATE,
		purchase_cost DECIMAL(10, 2),
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS zabbix_vms (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		ip_address VARCHAR(15),
		status VARCHAR(20) NOT NULL,
		cpu_usage DECIMAL(5, 2),
		memory_usage DECIMAL(5, 2),
		disk_usage DECIMAL(5, 2),
		os VARCHAR(100),
		last_check TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS activity_logs (
		id SERIAL PRIMARY KEY,
		user_id INTEGER REFERENCES users(id),
		action VARCHAR(100) NOT NULL,
		item_type VARCHAR(50) NOT NULL,
		item_id INTEGER NOT NULL,
		details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS bitlocker_keys (
		id SERIAL PRIMARY KEY,
		asset_id INTEGER REFERENCES assets(id),
		recovery_key VARCHAR(255) NOT NULL,
		drive_letter VARCHAR(5),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS vm_inventory (
		id SERIAL PRIMARY KEY,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		validity VARCHAR(20) NOT NULL DEFAULT 'available',
		hypervisor VARCHAR(100),
		hostname VARCHAR(100),
		host_model VARCHAR(100),
		host_ip_address VARCHAR(15),
		host_os VARCHAR(100),
		rack VARCHAR(50),
		vm_id VARCHAR(100),
		vm_name VARCHAR(100),
		vm_status VARCHAR(50),
		vm_ip_address VARCHAR(15),
		internet_access BOOLEAN DEFAULT FALSE,
		vm_os VARCHAR(100),
		vm_os_version VARCHAR(100),
		deployed_by VARCHAR(100),
		assigned_user VARCHAR(100),
		department VARCHAR(100),
		jira_ticket_number VARCHAR(50),
		remarks TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS network_settings (
		id SERIAL PRIMARY KEY,
		dns1 VARCHAR(15) NOT NULL,
		dns2 VARCHAR(15) NOT NULL,
		default_gateway VARCHAR(15),
		subnet_mask VARCHAR(15),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`INSERT INTO network_settings (id, dns1, dns2, default_gateway, subnet_mask)
		VALUES (1, '8.8.8.8', '8.8.4.4', '192.168.1.1', '255.255.255.0')
		ON CONFLICT (id) DO NOTHING`,
}

// CreateSchema runs the full DDL inside one transaction.
func CreateSchema(ctx context.Context) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		tx, err := composables.UseTx(txCtx)
		if err != nil {
			return err
		}
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(txCtx, stmt); err != nil {
				return errors.Wrap(err, "schema creation failed")
			}
		}
		return nil
	})
}
