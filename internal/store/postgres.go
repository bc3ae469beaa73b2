package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend stores each snapshot as one JSONB row in store_snapshots
type PostgresBackend struct {
	pool *pgxpool.Pool
}

// NewPostgresBackend wraps a pool whose schema has already been migrated
func NewPostgresBackend(pool *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{pool: pool}
}

func (b *PostgresBackend) Load(ctx context.Context, name string) ([]byte, bool, error) {
	var data []byte
	err := b.pool.QueryRow(ctx, SQLSelectSnapshot, name).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to select snapshot %s: %w", name, err)
	}
	return data, true, nil
}

func (b *PostgresBackend) Save(ctx context.Context, name string, data []byte) error {
	if _, err := b.pool.Exec(ctx, SQLUpsertSnapshot, name, string(data)); err != nil {
		return fmt.Errorf("failed to upsert snapshot %s: %w", name, err)
	}
	return nil
}

func (b *PostgresBackend) Ping(ctx context.Context) error {
	return b.pool.Ping(ctx)
}

func (b *PostgresBackend) Close() error {
	b.pool.Close()
	return nil
}
