// pkg/db/schema.go
package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements is the idempotent DDL executed at startup.
// Balances and amounts are NUMERIC(20, 4); the CHECK constraints back the
// application-level invariants (non-negative balance, positive amount).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id              BIGSERIAL PRIMARY KEY,
		user_id         BIGINT NOT NULL UNIQUE REFERENCES users (id),
		identity_type   TEXT NOT NULL,
		identity_number TEXT NOT NULL,
		address         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bank_accounts (
		id                  BIGSERIAL PRIMARY KEY,
		user_id             BIGINT NOT NULL REFERENCES users (id),
		bank_name           TEXT NOT NULL,
		bank_account_number TEXT NOT NULL UNIQUE,
		balance             NUMERIC(20, 4) NOT NULL CHECK (balance >= 0),
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id                     BIGSERIAL PRIMARY KEY,
		amount                 NUMERIC(20, 4) NOT NULL CHECK (amount > 0),
		source_account_id      BIGINT NOT NULL REFERENCES bank_accounts (id),
		destination_account_id BIGINT NOT NULL REFERENCES bank_accounts (id),
		created_at             TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
