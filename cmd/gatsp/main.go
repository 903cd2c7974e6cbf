// SPDX-License-Identifier: MIT

// Command gatsp runs the genetic algorithm on TSPLIB instances and writes a
// result summary and convergence chart per instance, an execution-time
// chart, and a Markdown report.
//
// Usage:
//
//	gatsp [-config run.toml] [flags] [instance.tsp ...]
//
// Instances given as arguments replace the configured list. Flags override
// values from the config file.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/metrics"
	"github.com/katalvlaran/gatsp/report"
	"github.com/katalvlaran/gatsp/store"
)

var (
	configPath  = flag.String("config", "", "Run config path (.toml, .yaml or .yml)")
	outputDir   = flag.String("out", "", "Output directory for results, charts and report")
	metricsFile = flag.String("metrics", "", "Prometheus textfile to write after the run")
	databaseURL = flag.String("db", "", "PostgreSQL URL for the run history")
	popSize     = flag.Int("pop", 0, "Population size")
	generations = flag.Int("gens", 0, "Number of generations")
	crossover   = flag.Float64("cx", 0, "Crossover rate in [0,1]")
	mutation    = flag.Float64("mut", 0, "Mutation rate in [0,1]")
	elite       = flag.Int("elite", 0, "Elite count")
	seed        = flag.Int64("seed", 0, "Random seed")
	progress    = flag.Int("progress", 0, "Generations between progress lines (0 = off)")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ltime)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Unable to load config: %v", err)
	}
	if err = cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if err = os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("Unable to create output directory: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to open run store: %v", err)
	}
	defer st.Close()

	r := &runner{cfg: cfg, rec: metrics.New(), store: st}
	entries := r.runAll(ctx)
	r.writeReports(entries)

	if cfg.MetricsFile != "" {
		if err = r.rec.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Printf("Metrics not written: %v", err)
		} else {
			log.Printf("Metrics written to %s", cfg.MetricsFile)
		}
	}
	if len(entries) == 0 {
		log.Printf("No instance completed")
		st.Close()
		os.Exit(1)
	}
}

// loadConfig reads the config file, if any, then applies the flags that
// were set explicitly and the positional instance list.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return config.Config{}, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutputDir = *outputDir
		case "metrics":
			cfg.MetricsFile = *metricsFile
		case "db":
			cfg.DatabaseURL = *databaseURL
		case "pop":
			cfg.GA.PopulationSize = *popSize
		case "gens":
			cfg.GA.Generations = *generations
		case "cx":
			cfg.GA.CrossoverRate = *crossover
		case "mut":
			cfg.GA.MutationRate = *mutation
		case "elite":
			cfg.GA.EliteCount = *elite
		case "seed":
			cfg.GA.Seed = *seed
		case "progress":
			cfg.GA.ProgressEvery = *progress
		}
	})
	if flag.NArg() > 0 {
		cfg.Instances = flag.Args()
	}

	return cfg, nil
}

// openStore picks PostgreSQL when a URL is configured and memory otherwise.
func openStore(ctx context.Context, dsn string) (store.Store, error) {
	if dsn == "" {
		return store.NewMemory(), nil
	}
	pg, err := store.NewPostgres(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err = pg.Migrate(ctx); err != nil {
		pg.Close()
		return nil, err
	}
	log.Printf("Recording runs in PostgreSQL")

	return pg, nil
}

func (r *runner) writeReports(entries []report.Entry) {
	dir := r.cfg.OutputDir
	if len(entries) > 1 {
		if path, err := report.SaveTiming(dir, entries); err != nil {
			log.Printf("Execution time chart not written: %v", err)
		} else {
			log.Printf("Execution time chart saved as %s", path)
		}
	}
	if len(entries) > 0 {
		if path, err := report.SaveMarkdown(dir, r.cfg.Options(), entries); err != nil {
			log.Printf("Report not written: %v", err)
		} else {
			log.Printf("Report saved as %s", path)
		}
	}
}
