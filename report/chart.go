// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when a chart would have nothing to draw.
var ErrNoData = errors.New("report: nothing to plot")

// Chart size in the saved PNG.
const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

var (
	bestColor = color.RGBA{B: 220, A: 255}
	meanColor = color.RGBA{R: 200, G: 120, A: 255}
)

// ConvergencePlot draws the best-so-far length per generation. When the
// entry carries per-generation stats the population mean is drawn too.
// Generations are numbered from 1 on the x axis.
func ConvergencePlot(e Entry) (*plot.Plot, error) {
	hist := e.Result.History
	if len(hist) == 0 {
		return nil, fmt.Errorf("%w: %s has no history", ErrNoData, e.Name)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("GA convergence for %s", e.Name)
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Best distance"
	p.Add(plotter.NewGrid())

	best := make(plotter.XYs, len(hist))
	for i, v := range hist {
		best[i].X = float64(i + 1)
		best[i].Y = v
	}
	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return nil, err
	}
	bestLine.Color = bestColor
	p.Add(bestLine)
	p.Legend.Add("best", bestLine)

	if len(e.Result.Stats) > 0 {
		mean := make(plotter.XYs, len(e.Result.Stats))
		for i, s := range e.Result.Stats {
			mean[i].X = float64(s.Generation + 1)
			mean[i].Y = s.Mean
		}
		meanLine, err := plotter.NewLine(mean)
		if err != nil {
			return nil, err
		}
		meanLine.Color = meanColor
		meanLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(meanLine)
		p.Legend.Add("mean", meanLine)
	}
	p.Legend.Top = true

	return p, nil
}

// SaveConvergence writes <dir>/<name>_convergence.png.
func SaveConvergence(dir string, e Entry) (string, error) {
	p, err := ConvergencePlot(e)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fileName(e.Name, ConvergenceSuffix))
	if err = p.Save(chartWidth, chartHeight, path); err != nil {
		return "", fmt.Errorf("report: save %s: %w", path, err)
	}

	return path, nil
}

// TimingPlot draws one bar per instance with its wall-clock time in
// seconds; the x axis names each instance with its city count.
func TimingPlot(entries []Entry) (*plot.Plot, error) {
	if len(entries) == 0 {
		return nil, ErrNoData
	}

	var (
		values = make(plotter.Values, len(entries))
		names  = make([]string, len(entries))
	)
	for i, e := range entries {
		values[i] = e.Elapsed.Seconds()
		names[i] = fmt.Sprintf("%s (%d cities)", e.Name, e.Cities)
	}

	p := plot.New()
	p.Title.Text = "Execution time per instance"
	p.Y.Label.Text = "Time (s)"
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, err
	}
	bars.Color = bestColor
	p.Add(bars)
	p.NominalX(names...)

	return p, nil
}

// SaveTiming writes <dir>/execution_time.png.
func SaveTiming(dir string, entries []Entry) (string, error) {
	p, err := TimingPlot(entries)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, TimingFile)
	if err = p.Save(chartWidth, chartHeight, path); err != nil {
		return "", fmt.Errorf("report: save %s: %w", path, err)
	}

	return path, nil
}
