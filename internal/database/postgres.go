package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"

	"github.com/TemirB/rental-cart/internal/config"
	"github.com/TemirB/rental-cart/internal/domain"
)

// Repo stores session snapshots in a single table keyed by (session_id, key).
type Repo struct {
	pool   *pgxpool.Pool
	tables config.Postgres
}

func New(pool *pgxpool.Pool, t config.Postgres) *Repo { return &Repo{pool: pool, tables: t} }

// Connect opens a pool that traces SQL through the given logger and pings it once.
func Connect(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newZapTracer(logger),
		LogLevel: tracelog.LogLevelWarn,
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

func (r *Repo) qt() string { return pgx.Identifier{r.tables.Schema, r.tables.Table}.Sanitize() }

func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `CREATE SCHEMA IF NOT EXISTS `+pgx.Identifier{r.tables.Schema}.Sanitize()); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
		  session_id TEXT NOT NULL,
		  key        TEXT NOT NULL,
		  value      JSONB NOT NULL,
		  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		  PRIMARY KEY (session_id, key)
		)
	`, r.qt()))
	return err
}

func (r *Repo) Get(ctx context.Context, session, key string) ([]byte, error) {
	var v []byte
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT value FROM %s WHERE session_id=$1 AND key=$2
	`, r.qt()), session, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Set upserts the snapshot. The value must be valid JSON.
func (r *Repo) Set(ctx context.Context, session, key string, value []byte) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (session_id, key, value, updated_at)
		VALUES ($1, $2, $3::jsonb, now())
		ON CONFLICT (session_id, key) DO UPDATE SET
		  value=EXCLUDED.value,
		  updated_at=EXCLUDED.updated_at
	`, r.qt()), session, key, string(value))
	return err
}

func (r *Repo) RecentSessions(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT session_id FROM %s
		GROUP BY session_id
		ORDER BY max(updated_at) DESC
		LIMIT $1
	`, r.qt()), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
