// Package gatsp solves the symmetric Travelling Salesman Problem with a
// generational genetic algorithm, and ships the tooling to run it on
// TSPLIB instances and report the outcome.
//
// What is inside?
//
//	A seeded, single-threaded GA with classic operators:
//		• Fitness 1/length over closed tours
//		• Roulette-wheel selection
//		• Order crossover (OX) and swap mutation
//		• Elitism and a per-generation convergence history
//
// Subpackages:
//
//	matrix/     dense distance tables and their validators
//	tsp/        problems, operators and the GA engine (hooks, options)
//	tsplib/     TSPLIB reader and known optimal tour lengths
//	report/     text summary, Markdown report, convergence and timing charts
//	config/     TOML/YAML run configuration
//	metrics/    Prometheus collectors and textfile export
//	store/      run history in memory or PostgreSQL
//	cmd/gatsp/  the command tying the above together
//
// Quick start:
//
//	res, err := tsp.Run(problem, tsp.WithGenerations(500), tsp.WithSeed(7))
//
//	go install github.com/katalvlaran/gatsp/cmd/gatsp@latest
//	gatsp -out results burma14.tsp kroA100.tsp
package gatsp
