// SPDX-License-Identifier: MIT

package tsplib

// knownOptima lists published optimal tour lengths for common instances.
var knownOptima = map[string]float64{
	"burma14":   3323,
	"ulysses16": 6859,
	"ulysses22": 7013,
	"att48":     10628,
	"berlin52":  7542,
	"eil51":     426,
	"st70":      675,
	"kroA100":   21282,
	"ch150":     6528,
	"pcb442":    50778,
}

// KnownOptimum returns the optimal tour length of a named instance, if known.
func KnownOptimum(name string) (float64, bool) {
	v, ok := knownOptima[name]
	return v, ok
}

// Gap returns the relative excess of length over optimum, in percent.
func Gap(length, optimum float64) float64 {
	return (length - optimum) / optimum * 100
}
