// SPDX-License-Identifier: MIT

// Package report renders the outcome of GA runs: a plain-text summary per
// instance, a Markdown comparison of several instances, and PNG charts of
// convergence and execution time drawn with gonum/plot.
//
// File names:
//
//	<name>_result.txt        SaveSummary
//	<name>_convergence.png   SaveConvergence
//	execution_time.png       SaveTiming
//	report.md                SaveMarkdown
//
// Nothing here logs; every Save* returns the path it wrote.
package report
