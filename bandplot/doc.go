// Package bandplot presents assembled bands to a 2D rendering sink.
//
// 🚀 What is bandplot?
//
//	The last stage of the pipeline: it sweeps the bands (via package band),
//	then feeds one (wavenumber grid, band, label) series per band into a
//	Sink — a minimal plotting abstraction of repeated AddSeries calls plus
//	axis/title/grid/legend configuration.
//
// ✨ Key features:
//   - Sink — the rendering contract; any 2D plotting backend can satisfy it
//   - PlotSink — the bundled gonum.org/v1/plot backend
//   - PlotBands — one call from defaults to a ready *plot.Plot handle,
//     returned for further caller customization (nothing is written to
//     disk and no window is opened)
//   - series are labeled "0-th band", "1-th band", … in band order
//
// ⚙️ Usage:
//
//	import "github.com/qlattice/kronig/bandplot"
//
//	p, err := bandplot.PlotBands(bandplot.DefaultOptions())
//	if err != nil { ... }
//	_ = p.Save(5*vg.Inch, 15*vg.Inch, "bands.png")
//
// Sink failures propagate unchanged: bandplot adds no recovery logic.
//
// Errors (sentinel): ErrNilSink, ErrSeriesLength; assembly errors propagate
// from the band package.
package bandplot
