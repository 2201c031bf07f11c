package export

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrEmptySeries indicates a chart request with no samples.
var ErrEmptySeries = errors.New("export: no samples to chart")

// Series is height and velocity sampled over time.
type Series struct {
	Title      string
	Times      []float64
	Heights    []float64
	Velocities []float64
}

func (s Series) xys(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(s.Times))
	for i := range s.Times {
		pts[i].X = s.Times[i]
		if i < len(values) {
			pts[i].Y = values[i]
		}
	}
	return pts
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.Padding = vg.Points(8)
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.X.LineStyle.Width = vg.Points(1.5)
	p.Y.LineStyle.Width = vg.Points(1.5)
	p.Add(plotter.NewGrid())
}

// NewChart builds a plot of height and velocity against time.
func NewChart(s Series) (*plot.Plot, error) {
	if len(s.Times) == 0 {
		return nil, ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "y (m), v (m/s)"
	stylePlot(p)

	heightLine, err := plotter.NewLine(s.xys(s.Heights))
	if err != nil {
		return nil, fmt.Errorf("height line: %w", err)
	}
	heightLine.LineStyle.Width = vg.Points(2.5)
	heightLine.LineStyle.Color = color.RGBA{R: 0, G: 128, B: 0, A: 255}

	velocityLine, err := plotter.NewLine(s.xys(s.Velocities))
	if err != nil {
		return nil, fmt.Errorf("velocity line: %w", err)
	}
	velocityLine.LineStyle.Width = vg.Points(2.5)
	velocityLine.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}

	p.Add(heightLine, velocityLine)
	p.Legend.Add("height", heightLine)
	p.Legend.Add("velocity", velocityLine)
	p.Legend.Top = true
	return p, nil
}

// WriteChartPNG renders the chart as a PNG of widthIn x heightIn inches.
func WriteChartPNG(w io.Writer, s Series, widthIn, heightIn float64) error {
	p, err := NewChart(s)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	bw := bufio.NewWriter(w)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return bw.Flush()
}

// SaveChartPNG writes the chart to filename, creating parent directories.
func SaveChartPNG(s Series, widthIn, heightIn float64, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()

	return WriteChartPNG(f, s, widthIn, heightIn)
}
