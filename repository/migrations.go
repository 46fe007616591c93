package repository

import "database/sql"

// migrations holds the idempotent schema bootstrap, applied in order on
// every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		login_attempts INTEGER NOT NULL DEFAULT 0,
		lock_until TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS split_bill_records (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		activity_name TEXT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL,
		participants JSONB NOT NULL DEFAULT '[]',
		expenses JSONB NOT NULL DEFAULT '[]',
		additional_expenses JSONB NOT NULL DEFAULT '[]',
		payment_method_ids JSONB NOT NULL DEFAULT '[]',
		payment_method_snapshots JSONB NOT NULL DEFAULT '[]',
		summary JSONB NOT NULL,
		status TEXT NOT NULL DEFAULT 'locked',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_split_bill_records_owner
		ON split_bill_records (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS participants (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_participants_owner_name
		ON participants (user_id, LOWER(name))`,
	`CREATE TABLE IF NOT EXISTS wallets (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		method TEXT NOT NULL,
		bank_name TEXT,
		account_number TEXT,
		phone_number TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS banners (
		id UUID PRIMARY KEY,
		image TEXT NOT NULL,
		route TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		rating INTEGER NOT NULL,
		name TEXT NOT NULL,
		review TEXT NOT NULL,
		contact_permission BOOLEAN NOT NULL DEFAULT FALSE,
		email TEXT,
		phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func migrate(db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
