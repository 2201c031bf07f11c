// Package scene turns a kinematic state into the geometry of the drop
// diagram: ground, ruler, ball, velocity arrow and text anchors. Coordinates
// are in meters with the ground at y=0; hosts project them to their own
// pixel or cell space with Viewport.
package scene

import (
	"fmt"
	"math"

	"github.com/san-kum/freefall/internal/freefall"
)

const (
	XMin = -1.0
	XMax = 0.6

	GroundLeft  = -0.5
	GroundRight = 0.5
	RulerX      = -0.85
	TickLength  = 0.04
	TextX       = -0.9

	minRadius    = 0.12
	maxRadius    = 0.25
	arrowGap     = 0.05
	arrowBase    = 0.18
	arrowGain    = 0.35
	minArrowMax  = 0.28
	arrowEpsilon = 1e-9
)

type Point struct {
	X, Y float64
}

type Tick struct {
	Y     float64
	Label string
}

type Arrow struct {
	Start, End Point
}

// Length is the arrow's extent along y.
func (a Arrow) Length() float64 {
	return a.Start.Y - a.End.Y
}

type Text struct {
	At    Point
	Value string
	Color string
}

// Static is the part of the diagram that depends only on the initial height.
type Static struct {
	InitialHeight float64
	YMax          float64
	RulerTop      float64
	Ticks         []Tick
	Radius        float64
}

// Frame is the full diagram at one moment.
type Frame struct {
	Static
	Ball     Point
	Arrow    Arrow
	Time     Text
	Velocity Text
	Height   Text
	Caption  Text
	Formulas []string
}

// NewStatic lays out the axes, ruler and ball size for a drop from h0.
func NewStatic(h0 float64) Static {
	top := 1.0
	if h0 > 0 {
		top = h0
	}
	n := int(math.Ceil(math.Max(h0, 1)))
	ticks := make([]Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, Tick{Y: float64(i), Label: fmt.Sprintf("%d m", i)})
	}
	return Static{
		InitialHeight: h0,
		YMax:          math.Max(1.0, h0*1.2),
		RulerTop:      top,
		Ticks:         ticks,
		Radius:        math.Max(minRadius, math.Min(maxRadius, h0*0.03)),
	}
}

// ArrowLength scales the velocity arrow so that it reaches its largest size
// at impact speed.
func ArrowLength(h0, velocity, gravity float64) float64 {
	if h0 <= 0 {
		return arrowBase
	}
	maxVisual := math.Max(minArrowMax, h0*arrowGain)
	impact := math.Sqrt(2 * gravity * h0)
	return math.Min(maxVisual, arrowBase+arrowGain*(velocity/(impact+arrowEpsilon)))
}

// Build lays out the diagram for one sample of a run.
func Build(m freefall.Model, h0 float64, s freefall.Sample) Frame {
	st := NewStatic(h0)
	y := s.State.Height
	start := Point{X: 0, Y: y - st.Radius - arrowGap}
	length := ArrowLength(h0, s.State.Velocity, m.Gravity())

	f := Frame{
		Static: st,
		Ball:   Point{X: 0, Y: y},
		Arrow:  Arrow{Start: start, End: Point{X: 0, Y: start.Y - length}},
		Time: Text{
			At:    Point{X: TextX, Y: st.YMax * 0.9},
			Value: fmt.Sprintf("t = %s s", freefall.FormatDisplay(s.State.ElapsedTime)),
			Color: "black",
		},
		Velocity: Text{
			At:    Point{X: TextX, Y: st.YMax * 0.85},
			Value: fmt.Sprintf("v = %s m/s", freefall.FormatDisplay(s.State.Velocity)),
			Color: "orange",
		},
		Height: Text{
			At:    Point{X: TextX, Y: st.YMax * 0.8},
			Value: fmt.Sprintf("y = %s m", freefall.FormatDisplay(y)),
			Color: "green",
		},
		Caption: Text{
			At:    Point{X: 0, Y: st.YMax * 0.95},
			Value: s.Phase.Narrative(),
			Color: s.Phase.Color(),
		},
	}
	if s.Trace != nil {
		f.Formulas = s.Trace.Lines()
	}
	return f
}

// Viewport maps scene coordinates onto a Width x Height grid whose origin is
// the top-left corner.
type Viewport struct {
	Width, Height int
	YMax          float64
}

func NewViewport(w, h int, st Static) Viewport {
	return Viewport{Width: w, Height: h, YMax: st.YMax}
}

// Project returns grid coordinates for p. Results may fall outside the grid.
func (v Viewport) Project(p Point) (int, int) {
	px := (p.X - XMin) / (XMax - XMin) * float64(v.Width-1)
	py := (1 - p.Y/v.YMax) * float64(v.Height-1)
	return int(math.Round(px)), int(math.Round(py))
}

// ScaleY converts a length in meters to grid rows.
func (v Viewport) ScaleY(d float64) float64 {
	return d / v.YMax * float64(v.Height-1)
}
