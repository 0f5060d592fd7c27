package pg

import (
	"context"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv (
	k TEXT PRIMARY KEY,
	v TEXT NOT NULL
);
`

// Migrate создаёт таблицу kv, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createKVTable)
	return err
}
