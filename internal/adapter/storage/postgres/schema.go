package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	address    TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	version    BIGINT NOT NULL CHECK (version > 0),
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_records_kind ON records (kind);

CREATE TABLE IF NOT EXISTS token_accounts (
	account    TEXT PRIMARY KEY,
	balance    BIGINT NOT NULL CHECK (balance >= 0),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS token_movements (
	id           UUID PRIMARY KEY,
	from_account TEXT,
	to_account   TEXT NOT NULL,
	amount       BIGINT NOT NULL CHECK (amount >= 0),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_token_movements_to ON token_movements (to_account, created_at);
`

// Migrate creates the store tables if they do not exist.
func Migrate(ctx context.Context, pool Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
