// SPDX-License-Identifier: MIT

package report

import (
	"time"

	"github.com/katalvlaran/gatsp/tsp"
	"github.com/katalvlaran/gatsp/tsplib"
)

// Output file names.
const (
	SummarySuffix     = "_result.txt"
	ConvergenceSuffix = "_convergence.png"
	TimingFile        = "execution_time.png"
	MarkdownFile      = "report.md"
)

// Entry is the outcome of one instance run.
type Entry struct {
	Name    string
	Cities  int
	Result  tsp.Result
	Elapsed time.Duration

	// Optimum is the known optimal length; zero means unknown.
	Optimum float64
}

// NewEntry builds an Entry and looks the optimum up in the tsplib catalogue.
func NewEntry(name string, cities int, res tsp.Result, elapsed time.Duration) Entry {
	opt, _ := tsplib.KnownOptimum(name)

	return Entry{Name: name, Cities: cities, Result: res, Elapsed: elapsed, Optimum: opt}
}

// Gap returns the percent excess over the known optimum, if there is one.
func (e Entry) Gap() (float64, bool) {
	if e.Optimum <= 0 {
		return 0, false
	}

	return tsplib.Gap(e.Result.Length, e.Optimum), true
}
