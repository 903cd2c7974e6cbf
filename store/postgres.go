// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS gatsp_runs (
		id              UUID PRIMARY KEY,
		instance        TEXT NOT NULL,
		cities          INTEGER NOT NULL,
		population_size INTEGER NOT NULL,
		generations     INTEGER NOT NULL,
		crossover_rate  DOUBLE PRECISION NOT NULL,
		mutation_rate   DOUBLE PRECISION NOT NULL,
		elite_count     INTEGER NOT NULL,
		seed            BIGINT NOT NULL,
		tour            JSONB NOT NULL,
		length          DOUBLE PRECISION NOT NULL,
		history         JSONB NOT NULL,
		elapsed_ns      BIGINT NOT NULL,
		optimum         DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS gatsp_runs_instance_length_idx ON gatsp_runs (instance, length)`,
	`CREATE INDEX IF NOT EXISTS gatsp_runs_created_at_idx ON gatsp_runs (created_at DESC)`,
}

const selectRun = `SELECT id::text, instance, cities, population_size, generations,
	crossover_rate, mutation_rate, elite_count, seed, tour, length, history,
	elapsed_ns, optimum, created_at FROM gatsp_runs`

// Postgres is a Store backed by PostgreSQL through the pgx driver.
type Postgres struct {
	db *sql.DB
}

var _ Store = (*Postgres)(nil)

// NewPostgres opens dsn and checks the connection.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Postgres{db: db}, nil
}

// Migrate creates the runs table and its indexes if they are missing.
func (p *Postgres) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: migrate: %w", err)
		}
	}

	return nil
}

func (p *Postgres) SaveRun(ctx context.Context, rec RunRecord) (string, error) {
	if err := validateRecord(rec); err != nil {
		return "", err
	}
	id := uuid.New()
	if rec.ID != "" {
		var err error
		if id, err = uuid.Parse(rec.ID); err != nil {
			return "", errors.Join(ErrInvalidRecord, err)
		}
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	tour, err := json.Marshal(rec.Tour)
	if err != nil {
		return "", fmt.Errorf("store: encode tour: %w", err)
	}
	history, err := json.Marshal(nonNil(rec.History))
	if err != nil {
		return "", fmt.Errorf("store: encode history: %w", err)
	}

	_, err = p.db.ExecContext(ctx, `INSERT INTO gatsp_runs (id, instance, cities,
		population_size, generations, crossover_rate, mutation_rate, elite_count, seed,
		tour, length, history, elapsed_ns, optimum, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO UPDATE SET instance=EXCLUDED.instance, cities=EXCLUDED.cities,
		population_size=EXCLUDED.population_size, generations=EXCLUDED.generations,
		crossover_rate=EXCLUDED.crossover_rate, mutation_rate=EXCLUDED.mutation_rate,
		elite_count=EXCLUDED.elite_count, seed=EXCLUDED.seed, tour=EXCLUDED.tour,
		length=EXCLUDED.length, history=EXCLUDED.history, elapsed_ns=EXCLUDED.elapsed_ns,
		optimum=EXCLUDED.optimum, created_at=EXCLUDED.created_at`,
		id, rec.Instance, rec.Cities,
		rec.Params.PopulationSize, rec.Params.Generations, rec.Params.CrossoverRate,
		rec.Params.MutationRate, rec.Params.EliteCount, rec.Params.Seed,
		string(tour), rec.Length, string(history), int64(rec.Elapsed), rec.Optimum, rec.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("store: insert run: %w", err)
	}

	return id.String(), nil
}

func (p *Postgres) GetRun(ctx context.Context, id string) (RunRecord, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return RunRecord{}, ErrNotFound
	}
	row := p.db.QueryRowContext(ctx, selectRun+` WHERE id=$1`, uid)

	return scanRun(row)
}

func (p *Postgres) ListRuns(ctx context.Context, instance string, limit int) ([]RunRecord, error) {
	var (
		query = selectRun + ` WHERE ($1 = '' OR instance = $1) ORDER BY created_at DESC`
		args  = []any{instance}
	)
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}

	return out, nil
}

func (p *Postgres) BestRun(ctx context.Context, instance string) (RunRecord, error) {
	row := p.db.QueryRowContext(ctx,
		selectRun+` WHERE instance=$1 ORDER BY length ASC, created_at ASC LIMIT 1`, instance)

	return scanRun(row)
}

// Close releases the connection pool.
func (p *Postgres) Close() error { return p.db.Close() }

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var (
		rec           RunRecord
		tour, history []byte
		elapsed       int64
	)
	err := s.Scan(&rec.ID, &rec.Instance, &rec.Cities,
		&rec.Params.PopulationSize, &rec.Params.Generations, &rec.Params.CrossoverRate,
		&rec.Params.MutationRate, &rec.Params.EliteCount, &rec.Params.Seed,
		&tour, &rec.Length, &history, &elapsed, &rec.Optimum, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, ErrNotFound
	}
	if err != nil {
		return RunRecord{}, fmt.Errorf("store: scan run: %w", err)
	}
	if err = json.Unmarshal(tour, &rec.Tour); err != nil {
		return RunRecord{}, fmt.Errorf("store: decode tour: %w", err)
	}
	if err = json.Unmarshal(history, &rec.History); err != nil {
		return RunRecord{}, fmt.Errorf("store: decode history: %w", err)
	}
	rec.Elapsed = time.Duration(elapsed)

	return rec, nil
}

func nonNil(xs []float64) []float64 {
	if xs == nil {
		return []float64{}
	}

	return xs
}
