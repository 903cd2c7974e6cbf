// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/metrics"
	"github.com/katalvlaran/gatsp/report"
	"github.com/katalvlaran/gatsp/store"
	"github.com/katalvlaran/gatsp/tsp"
	"github.com/katalvlaran/gatsp/tsplib"
)

type runner struct {
	cfg   config.Config
	rec   *metrics.Recorder
	store store.Store
}

// runAll runs every configured instance in order. A failing instance is
// logged and skipped; an interrupt stops before the next instance.
func (r *runner) runAll(ctx context.Context) []report.Entry {
	var entries []report.Entry
	for i, path := range r.cfg.Instances {
		if err := ctx.Err(); err != nil {
			log.Printf("Interrupted, %d instance(s) not run", len(r.cfg.Instances)-i)
			break
		}
		log.Printf("==================== %s ====================", path)
		e, err := r.runInstance(ctx, path)
		if err != nil {
			log.Printf("Instance %s failed: %v", path, err)
			r.rec.ObserveFailure(instanceName(path, ""))
			continue
		}
		entries = append(entries, e)
	}

	return entries
}

func (r *runner) runInstance(ctx context.Context, path string) (report.Entry, error) {
	p, err := tsplib.Load(path)
	if err != nil {
		return report.Entry{}, err
	}
	var (
		name   = instanceName(path, p.Name())
		cities = len(p.Nodes())
		o      = r.cfg.Options()
		every  = r.cfg.GA.ProgressEvery
	)
	log.Printf("Instance %q loaded: %d cities, %s distances", name, cities, p.Header.EdgeWeightType)
	log.Printf("Population %d, generations %d, crossover %g, mutation %g, elite %d, seed %d",
		o.PopulationSize, o.Generations, o.CrossoverRate, o.MutationRate, o.EliteCount, o.Seed)

	o.OnNewBest = func(gen int, _ tsp.Tour, length float64) {
		log.Printf("Generation %d: new best distance = %.2f", gen+1, length)
	}
	o.OnGeneration = func(s tsp.GenerationStats) {
		r.rec.ObserveGeneration(name, s)
		if every > 0 && (s.Generation+1)%every == 0 {
			log.Printf("Generation %d: best distance = %.2f, mean = %.2f, stddev = %.2f",
				s.Generation+1, s.BestEver, s.Mean, s.StdDev)
		}
	}

	start := time.Now()
	res, err := tsp.RunWithOptions(p, o)
	if err != nil {
		return report.Entry{}, err
	}
	elapsed := time.Since(start)

	e := report.NewEntry(name, cities, res, elapsed)
	gap, known := e.Gap()
	r.rec.ObserveRun(name, res, elapsed, gap, known)

	log.Printf("Finished after %d generations in %.2f s", o.Generations, elapsed.Seconds())
	log.Printf("Best tour: %s", res.Tour)
	log.Printf("Best distance: %.2f", res.Length)
	if known {
		log.Printf("Known optimum %g, gap %.2f%%", e.Optimum, gap)
	}

	if err = r.saveOutputs(ctx, e); err != nil {
		return report.Entry{}, err
	}

	return e, nil
}

func (r *runner) saveOutputs(ctx context.Context, e report.Entry) error {
	dir := r.cfg.OutputDir
	path, err := report.SaveSummary(dir, e)
	if err != nil {
		return err
	}
	log.Printf("Result saved as %s", path)

	if path, err = report.SaveConvergence(dir, e); err != nil {
		return err
	}
	log.Printf("Convergence chart saved as %s", path)

	id, err := r.store.SaveRun(ctx, store.RunRecord{
		Instance: e.Name,
		Cities:   e.Cities,
		Params:   store.ParamsOf(r.cfg.Options()),
		Tour:     e.Result.Tour,
		Length:   e.Result.Length,
		History:  e.Result.History,
		Elapsed:  e.Elapsed,
		Optimum:  e.Optimum,
	})
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	best, err := r.store.BestRun(ctx, e.Name)
	if err == nil && best.ID != id {
		log.Printf("Run %s recorded; best on record is %.2f (run %s)", id, best.Length, best.ID)
	} else {
		log.Printf("Run %s recorded", id)
	}

	return nil
}

// instanceName prefers the NAME header and falls back to the file name
// without its extension. Directory parts are dropped: the name becomes a
// file name inside the output directory.
func instanceName(path, header string) string {
	if header != "" {
		switch name := filepath.Base(header); name {
		case ".", "..", string(filepath.Separator):
		default:
			return name
		}
	}
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
