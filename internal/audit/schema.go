package audit

import (
	"context"
	"database/sql"
)

const schema = `
CREATE SCHEMA IF NOT EXISTS audit;
CREATE TABLE IF NOT EXISTS audit.verdicts (
    verdict_id  uuid PRIMARY KEY,
    pan_hash    bytea       NOT NULL,
    masked_pan  text        NOT NULL,
    network     text        NOT NULL,
    checksum    integer     NOT NULL,
    source      text        NOT NULL,
    created_at  timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS verdicts_created_at_idx ON audit.verdicts (created_at DESC);
`

// Migrate creates the audit schema when it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
