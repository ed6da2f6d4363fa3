package plotter

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"StockTrend/internal/model"

	"gonum.org/v1/plot"
	gplotter "gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	seriesLabel = "Closing Price"
	dateFormat  = "2006-01-02"
)

// ErrNoData is returned when the table has no bars to draw.
var ErrNoData = errors.New("no bars to plot")

// Options controls the rendered figure.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// NewOptions converts a size in inches into Options. Non-positive sizes fall
// back to a 10x5 inch figure.
func NewOptions(title string, widthIn, heightIn float64) Options {
	if widthIn <= 0 {
		widthIn = 10
	}
	if heightIn <= 0 {
		heightIn = 5
	}
	return Options{Title: title, Width: vg.Length(widthIn) * vg.Inch, Height: vg.Length(heightIn) * vg.Inch}
}

// Render builds a closing-price line chart over time.
func Render(table *model.Table, opts Options) (*plot.Plot, error) {
	if table.Len() == 0 {
		return nil, ErrNoData
	}

	pts := make(gplotter.XYs, len(table.Bars))
	for i, b := range table.Bars {
		pts[i].X = float64(b.Time.Unix())
		pts[i].Y = b.Close
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = seriesLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: dateFormat}
	p.Add(gplotter.NewGrid())

	line, err := gplotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("closing price line: %w", err)
	}
	line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	line.Width = vg.Points(1.2)
	p.Add(line)

	p.Legend.Add(seriesLabel, line)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// WritePNG encodes the plot as PNG.
func WritePNG(w io.Writer, p *plot.Plot, opts Options) error {
	wt, err := p.WriterTo(opts.Width, opts.Height, "png")
	if err != nil {
		return fmt.Errorf("png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
