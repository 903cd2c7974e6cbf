// SPDX-License-Identifier: MIT

// Package store keeps a history of GA runs. Memory serves single
// invocations and tests; Postgres persists runs across invocations.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/gatsp/tsp"
)

var (
	// ErrNotFound is returned when no run matches the query.
	ErrNotFound = errors.New("store: run not found")

	// ErrInvalidRecord is returned by SaveRun for records without an
	// instance name or tour.
	ErrInvalidRecord = errors.New("store: invalid run record")
)

// Params are the GA parameters a run used.
type Params struct {
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	EliteCount     int
	Seed           int64
}

// ParamsOf copies the stored fields of o.
func ParamsOf(o tsp.Options) Params {
	return Params{
		PopulationSize: o.PopulationSize,
		Generations:    o.Generations,
		CrossoverRate:  o.CrossoverRate,
		MutationRate:   o.MutationRate,
		EliteCount:     o.EliteCount,
		Seed:           o.Seed,
	}
}

// RunRecord is one finished instance run.
type RunRecord struct {
	ID       string
	Instance string
	Cities   int
	Params   Params
	Tour     tsp.Tour
	Length   float64
	History  []float64
	Elapsed  time.Duration

	// Optimum is the known optimal length; zero means unknown.
	Optimum   float64
	CreatedAt time.Time
}

// Store is the persistence interface used by the command.
type Store interface {
	// SaveRun stores rec and returns its ID. An empty ID is replaced by a
	// new UUID and a zero CreatedAt by the current time.
	SaveRun(ctx context.Context, rec RunRecord) (string, error)

	// GetRun returns the run with the given ID.
	GetRun(ctx context.Context, id string) (RunRecord, error)

	// ListRuns returns runs newest first, filtered by instance unless it is
	// empty. limit <= 0 means no limit.
	ListRuns(ctx context.Context, instance string, limit int) ([]RunRecord, error)

	// BestRun returns the shortest run recorded for instance, the earliest
	// one on ties.
	BestRun(ctx context.Context, instance string) (RunRecord, error)

	Close() error
}

func validateRecord(rec RunRecord) error {
	if rec.Instance == "" {
		return errors.Join(ErrInvalidRecord, errors.New("empty instance name"))
	}
	if len(rec.Tour) == 0 {
		return errors.Join(ErrInvalidRecord, errors.New("empty tour"))
	}

	return nil
}

func cloneRecord(rec RunRecord) RunRecord {
	rec.Tour = rec.Tour.Clone()
	rec.History = append([]float64(nil), rec.History...)

	return rec
}
