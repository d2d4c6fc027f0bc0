package database

import (
	"context"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

// Schema is fixed and versioned; new changes are appended, never edited in place.
var migrations = []migration{
	{
		version: 1,
		name:    "create_accounts",
		sql: `
			CREATE TABLE IF NOT EXISTS accounts (
				id UUID PRIMARY KEY,
				email TEXT NOT NULL UNIQUE,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				role TEXT NOT NULL DEFAULT 'User',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		version: 2,
		name:    "create_departments",
		sql: `
			CREATE TABLE IF NOT EXISTS departments (
				id UUID PRIMARY KEY,
				name TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		version: 3,
		name:    "create_employees",
		sql: `
			CREATE TABLE IF NOT EXISTS employees (
				id UUID PRIMARY KEY,
				employee_code TEXT NOT NULL UNIQUE,
				position TEXT NOT NULL,
				department_id UUID REFERENCES departments(id),
				hire_date DATE NOT NULL,
				is_active BOOLEAN NOT NULL DEFAULT TRUE,
				account_id UUID NOT NULL UNIQUE REFERENCES accounts(id) ON DELETE CASCADE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		version: 4,
		name:    "create_requests",
		sql: `
			CREATE TABLE IF NOT EXISTS requests (
				id UUID PRIMARY KEY,
				type TEXT NOT NULL CHECK (type IN ('equipment', 'leave', 'resource', 'other')),
				status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Approved', 'Rejected')),
				description TEXT NOT NULL,
				employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
				is_active BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		version: 5,
		name:    "create_request_items",
		sql: `
			CREATE TABLE IF NOT EXISTS request_items (
				id UUID PRIMARY KEY,
				description TEXT NOT NULL,
				quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
				request_id UUID NOT NULL REFERENCES requests(id) ON DELETE CASCADE
			)`,
	},
	{
		version: 6,
		name:    "create_workflows",
		sql: `
			CREATE TABLE IF NOT EXISTS workflows (
				id UUID PRIMARY KEY,
				employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
				type TEXT NOT NULL CHECK (type IN ('onboarding', 'offboarding', 'transfer', 'promotion')),
				status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected', 'completed')),
				start_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				end_date TIMESTAMPTZ,
				description TEXT NOT NULL DEFAULT '',
				current_step INTEGER NOT NULL DEFAULT 1 CHECK (current_step >= 1),
				total_steps INTEGER NOT NULL DEFAULT 1 CHECK (total_steps >= 1),
				metadata JSONB,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
}

// Migrate applies all pending schema migrations in order.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	var current int
	err = db.QueryRow(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := db.BeginTx(ctx)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(ctx, m.sql); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("apply migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.version, m.name); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}
	}

	return nil
}
