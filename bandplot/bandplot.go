package bandplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/qlattice/kronig/band"
)

// Presenter — plot assembly
//
// Description:
//
//	Render is a single-pass, call-and-return pipeline: assemble the bands,
//	push one series per band into the sink, configure axes/title/grid/
//	legend. No retries, no persistence, no partial-result salvage — the
//	first failure propagates to the caller unchanged.

// Render sweeps the bands per opts and presents them to sink.
// Series are added in band order with labels "0-th band", "1-th band", ….
func Render(sink Sink, opts Options) error {
	if sink == nil {
		return ErrNilSink
	}

	ks, bands, err := band.Sweep(opts.Bands)
	if err != nil {
		return err
	}

	for i, bd := range bands {
		if err := sink.AddSeries(ks, bd, fmt.Sprintf(SeriesLabelFormat, i)); err != nil {
			return err
		}
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf(TitleFormat, opts.Bands.NBands)
	}
	sink.SetTitle(title)
	sink.SetAxisLabels(XLabel, YLabel)
	sink.EnableMinorTicks()
	sink.EnableGrid()
	sink.AddLegend()

	return nil
}

// PlotBands renders the sweep into a fresh gonum plot and returns the
// handle for further caller customization. It does not write files or
// display windows; saving is the caller's responsibility.
func PlotBands(opts Options) (*plot.Plot, error) {
	sink := NewPlotSink()
	if err := Render(sink, opts); err != nil {
		return nil, err
	}

	return sink.Plot, nil
}

// PlotSink is the bundled Sink backed by gonum.org/v1/plot.
// The wrapped *plot.Plot is exported so callers can keep customizing the
// figure after Render returns.
type PlotSink struct {
	Plot *plot.Plot

	series int // color rotation index
}

// NewPlotSink returns a PlotSink around a fresh gonum plot.
func NewPlotSink() *PlotSink {
	return &PlotSink{Plot: plot.New()}
}

// AddSeries draws one line through (xs[i], ys[i]) and registers it with the
// legend under label. Colors rotate through the plotutil palette.
func (s *PlotSink) AddSeries(xs, ys []float64, label string) error {
	if len(xs) != len(ys) {
		return ErrSeriesLength
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(s.series)
	s.series++

	s.Plot.Add(line)
	s.Plot.Legend.Add(label, line)

	return nil
}

// SetTitle sets the figure title.
func (s *PlotSink) SetTitle(title string) { s.Plot.Title.Text = title }

// SetAxisLabels sets both axis labels.
func (s *PlotSink) SetAxisLabels(x, y string) {
	s.Plot.X.Label.Text = x
	s.Plot.Y.Label.Text = y
}

// EnableGrid adds gonum's light default grid behind the series.
func (s *PlotSink) EnableGrid() { s.Plot.Add(plotter.NewGrid()) }

// EnableMinorTicks interleaves unlabeled ticks between the major ones on
// both axes; gonum draws unlabeled ticks as minor marks.
func (s *PlotSink) EnableMinorTicks() {
	s.Plot.X.Tick.Marker = minorTicker{base: s.Plot.X.Tick.Marker}
	s.Plot.Y.Tick.Marker = minorTicker{base: s.Plot.Y.Tick.Marker}
}

// AddLegend anchors the legend to the top-left corner, clear of the bands.
func (s *PlotSink) AddLegend() {
	s.Plot.Legend.Top = true
	s.Plot.Legend.Left = true
}

// minorTicker decorates a plot.Ticker with one midpoint minor tick between
// each pair of consecutive major ticks.
type minorTicker struct {
	base plot.Ticker
}

// Ticks implements plot.Ticker.
func (t minorTicker) Ticks(min, max float64) []plot.Tick {
	ticks := t.base.Ticks(min, max)

	var majors []float64
	for _, tk := range ticks {
		if tk.Label != "" {
			majors = append(majors, tk.Value)
		}
	}
	for i := 1; i < len(majors); i++ {
		ticks = append(ticks, plot.Tick{Value: (majors[i-1] + majors[i]) / 2})
	}

	return ticks
}
