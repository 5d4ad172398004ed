// Package bandplot defines the rendering-sink contract and plot options.
package bandplot

import (
	"errors"

	"github.com/qlattice/kronig/band"
)

// Sentinel errors returned by the bandplot package.
var (
	// ErrNilSink indicates that Render was handed a nil Sink.
	ErrNilSink = errors.New("bandplot: sink is nil")

	// ErrSeriesLength indicates an x/y length mismatch in AddSeries.
	ErrSeriesLength = errors.New("bandplot: series x and y must have equal length")
)

// Sink is the generic 2D rendering target the presenter produces to.
// Implementations own all drawing; the presenter only issues these calls,
// once each for the configuration methods and once per band for AddSeries.
type Sink interface {
	// AddSeries adds one labeled line series. xs and ys are aligned 1:1.
	AddSeries(xs, ys []float64, label string) error

	// SetTitle sets the figure title.
	SetTitle(title string)

	// SetAxisLabels sets the x- and y-axis labels.
	SetAxisLabels(x, y string)

	// EnableGrid turns on a light reference grid.
	EnableGrid()

	// EnableMinorTicks turns on minor tick marks between major ticks.
	EnableMinorTicks()

	// AddLegend enables a legend distinguishing the series by label.
	AddLegend()
}

// Axis labels and label/title formats of the produced figure.
const (
	// XLabel is the wavenumber axis label.
	XLabel = "k"

	// YLabel is the reduced-energy axis label (ħ²/2m = 1 units).
	YLabel = "2mE/ħ²"

	// SeriesLabelFormat produces "0-th band", "1-th band", … per band index.
	SeriesLabelFormat = "%d-th band"

	// TitleFormat produces the default title from the band count.
	TitleFormat = "Plotting of %d bands"
)

// Options configures one rendered figure.
//
// Bands – the sweep to render (band count, grid, model parameters, solver
// pass-through).
// Title – figure title; empty selects the default "Plotting of {n} bands".
type Options struct {
	Bands band.Options
	Title string
}

// DefaultOptions returns the default figure configuration: the default
// band sweep and the default title.
func DefaultOptions() Options {
	return Options{
		Bands: band.DefaultOptions(),
	}
}
