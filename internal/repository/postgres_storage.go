package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/port"
)

const (
	getEntrySQL = `SELECT value FROM client_storage WHERE key = $1`
	setEntrySQL = `INSERT INTO client_storage (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

type postgresStorage struct {
	q    querier
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) port.ClientStorage {
	return &postgresStorage{
		q:    pool,
		pool: pool,
	}
}

func NewPostgresWithTx(tx pgx.Tx) port.ClientStorage {
	return &postgresStorage{
		q:    tx,
		pool: nil, // use provided transaction instead
	}
}

func (r *postgresStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, fmt.Errorf("key is empty")
	}

	var value string
	err := r.q.QueryRow(ctx, getEntrySQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("q.QueryRow: %w", err)
	}

	return value, true, nil
}

func (r *postgresStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if _, err := r.q.Exec(ctx, setEntrySQL, key, value); err != nil {
		return fmt.Errorf("q.Exec: %w", err)
	}

	return nil
}

func (r *postgresStorage) SetMany(ctx context.Context, entries map[string]string) error {
	for key := range entries {
		if key == "" {
			return fmt.Errorf("key is empty")
		}
	}

	if len(entries) == 0 {
		return nil
	}

	_, err := withTx(ctx, r.pool, r.q, func(q querier) (int, error) {
		for _, key := range slices.Sorted(maps.Keys(entries)) {
			if _, err := q.Exec(ctx, setEntrySQL, key, entries[key]); err != nil {
				return 0, fmt.Errorf("q.Exec[%s]: %w", key, err)
			}
		}
		return len(entries), nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (r *postgresStorage) Ping(ctx context.Context) error {
	if r.pool != nil {
		return r.pool.Ping(ctx)
	}

	var one int
	return r.q.QueryRow(ctx, "SELECT 1").Scan(&one)
}
