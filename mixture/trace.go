package mixture

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveTrace renders the per-iteration log-likelihood trace of the fit
// as a line chart and writes it to path. The image format follows the
// file extension (.png, .pdf, .svg, ...).
//
// Errors: ErrNotFitted when the model has no trace, plus rendering and
// file errors from gonum/plot.
func (m *Model) SaveTrace(path string) error {
	if m == nil || len(m.Trace) == 0 {
		return ErrNotFitted
	}

	pts := make(plotter.XYs, 0, len(m.Trace))
	for i, ll := range m.Trace {
		pts = append(pts, plotter.XY{X: float64(i + 1), Y: ll})
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("EM log-likelihood (%s, K=%d)", m.Dist, m.K())
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "log-likelihood"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("mixture: trace line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("mixture: save trace: %w", err)
	}

	return nil
}
