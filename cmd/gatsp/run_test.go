package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/metrics"
	"github.com/katalvlaran/gatsp/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pentagon = `NAME: pentagon
TYPE: TSP
DIMENSION: 5
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 100
2 95 31
3 59 -81
4 -59 -81
5 -95 31
EOF
`

func TestInstanceName(t *testing.T) {
	assert.Equal(t, "burma14", instanceName("data/whatever.tsp", "burma14"))
	assert.Equal(t, "kroA100", instanceName("data/kroA100.tsp", ""))
	assert.Equal(t, "plain", instanceName("plain", ""))

	// a header name never leaves the output directory
	assert.Equal(t, "x", instanceName("a.tsp", "../x"))
	assert.Equal(t, "name", instanceName("a.tsp", "dir/sub/name"))
	assert.Equal(t, "a", instanceName("data/a.tsp", ".."))
	assert.Equal(t, "a", instanceName("data/a.tsp", "/"))
}

func TestRunnerRunAll(t *testing.T) {
	var (
		dir  = t.TempDir()
		good = filepath.Join(dir, "pentagon.tsp")
		bad  = filepath.Join(dir, "missing.tsp")
		ctx  = context.Background()
		mem  = store.NewMemory()
	)
	require.NoError(t, os.WriteFile(good, []byte(pentagon), 0o644))

	cfg := config.Default()
	cfg.Instances = []string{good, bad, good}
	cfg.OutputDir = dir
	cfg.GA.PopulationSize = 20
	cfg.GA.Generations = 30
	cfg.GA.ProgressEvery = 10
	require.NoError(t, cfg.Validate())

	r := &runner{cfg: cfg, rec: metrics.New(), store: mem}
	entries := r.runAll(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, "pentagon", entries[0].Name)
	assert.Equal(t, 5, entries[0].Cities)
	assert.Equal(t, entries[0].Result, entries[1].Result, "same seed, same result")
	assert.Len(t, entries[0].Result.History, 30)

	r.writeReports(entries)
	for _, name := range []string{
		"pentagon_result.txt",
		"pentagon_convergence.png",
		"execution_time.png",
		"report.md",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	runs, err := mem.ListRuns(ctx, "pentagon", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	path := filepath.Join(dir, "gatsp.prom")
	require.NoError(t, r.rec.WriteTextfile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `gatsp_runs_total{instance="missing",status="failed"} 1`)
	assert.Contains(t, string(b), `gatsp_generations_total{instance="pentagon"} 60`)
}

func TestRunnerStopsWhenCancelled(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	r := &runner{cfg: cfg, rec: metrics.New(), store: store.NewMemory()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, r.runAll(ctx))
}
