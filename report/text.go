// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/gatsp/tsp"
)

// WriteSummary writes the plain-text result of one instance.
func WriteSummary(w io.Writer, e Entry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Instance: %s\n", e.Name)
	fmt.Fprintf(bw, "Cities: %d\n", e.Cities)
	fmt.Fprintf(bw, "Best tour: %s\n", e.Result.Tour)
	fmt.Fprintf(bw, "Distance: %.2f\n", e.Result.Length)
	fmt.Fprintf(bw, "Elapsed: %.2f s\n", e.Elapsed.Seconds())
	if gap, ok := e.Gap(); ok {
		fmt.Fprintf(bw, "Known optimum: %g\n", e.Optimum)
		fmt.Fprintf(bw, "Gap: %.2f%%\n", gap)
	}

	return bw.Flush()
}

// SaveSummary writes <dir>/<name>_result.txt.
func SaveSummary(dir string, e Entry) (string, error) {
	path := filepath.Join(dir, fileName(e.Name, SummarySuffix))

	return path, writeFile(path, func(w io.Writer) error { return WriteSummary(w, e) })
}

// WriteMarkdown writes a comparison report of several instances run with
// the same parameters.
func WriteMarkdown(w io.Writer, o tsp.Options, entries []Entry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "# Genetic Algorithm for the Travelling Salesman Problem\n\n")
	fmt.Fprint(bw, "## Instances\n\n")
	for _, e := range entries {
		fmt.Fprintf(bw, "- **%s**: %d cities\n", e.Name, e.Cities)
	}

	fmt.Fprint(bw, "\n## Parameters\n\n")
	fmt.Fprintf(bw, "- Population size: %d\n", o.PopulationSize)
	fmt.Fprintf(bw, "- Generations: %d\n", o.Generations)
	fmt.Fprintf(bw, "- Crossover rate: %g\n", o.CrossoverRate)
	fmt.Fprintf(bw, "- Mutation rate: %g\n", o.MutationRate)
	fmt.Fprintf(bw, "- Elite count: %d\n", o.EliteCount)
	fmt.Fprintf(bw, "- Seed: %d\n", o.Seed)

	fmt.Fprint(bw, "\n## Results\n\n")
	fmt.Fprint(bw, "| Instance | Cities | Best distance | Time (s) | Gap (%) |\n")
	fmt.Fprint(bw, "|----------|--------|---------------|----------|---------|\n")
	for _, e := range entries {
		gap := "N/A"
		if g, ok := e.Gap(); ok {
			gap = fmt.Sprintf("%.2f%%", g)
		}
		fmt.Fprintf(bw, "| %s | %d | %.2f | %.2f | %s |\n",
			e.Name, e.Cities, e.Result.Length, e.Elapsed.Seconds(), gap)
	}

	return bw.Flush()
}

// SaveMarkdown writes <dir>/report.md.
func SaveMarkdown(dir string, o tsp.Options, entries []Entry) (string, error) {
	path := filepath.Join(dir, MarkdownFile)

	return path, writeFile(path, func(w io.Writer) error { return WriteMarkdown(w, o, entries) })
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = fn(f); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return f.Close()
}

// fileName keeps only the last element of name so outputs stay in dir.
func fileName(name, suffix string) string {
	return filepath.Base(name) + suffix
}
