package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/freefall/internal/freefall"
	"github.com/san-kum/freefall/internal/sampler"
	"github.com/san-kum/freefall/internal/scene"
)

const (
	width       = 40
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var phaseStyles = map[string]lipgloss.Style{
	"blue":  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	"green": lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	"red":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

// LiveRenderer draws frames of a drop as plain text.
type LiveRenderer struct {
	out       io.Writer
	model     freefall.Model
	params    freefall.Params
	frameRate int
	clear     bool
	canvas    [][]rune
}

func NewLiveRenderer(out io.Writer, m freefall.Model, p freefall.Params, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	if frameRate < 1 {
		frameRate = 1
	}
	return &LiveRenderer{
		out:       out,
		model:     m,
		params:    p,
		frameRate: frameRate,
		clear:     true,
		canvas:    canvas,
	}
}

// SetClear controls whether each frame starts by clearing the terminal.
func (r *LiveRenderer) SetClear(on bool) { r.clear = on }

// Play renders frames at the configured rate until the last frame or until
// ctx is canceled.
func (r *LiveRenderer) Play(ctx context.Context, frames []sampler.Frame) error {
	r.Start()
	defer r.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(r.frameRate))
	defer ticker.Stop()

	for i, f := range frames {
		if err := r.Draw(f.Sample); err != nil {
			return err
		}
		if i == len(frames)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Draw renders one sample.
func (r *LiveRenderer) Draw(s freefall.Sample) error {
	f := scene.Build(r.model, r.params.InitialHeight, s)
	r.reset()
	r.drawScene(f)
	_, err := io.WriteString(r.out, r.render(f))
	return err
}

func (r *LiveRenderer) reset() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) drawScene(f scene.Frame) {
	vp := scene.NewViewport(width, height, f.Static)

	gl, gy := vp.Project(scene.Point{X: scene.GroundLeft, Y: 0})
	gr, _ := vp.Project(scene.Point{X: scene.GroundRight, Y: 0})
	for x := gl; x <= gr; x++ {
		r.set(x, gy, '=')
	}

	rx, top := vp.Project(scene.Point{X: scene.RulerX, Y: f.RulerTop})
	for y := top; y < gy; y++ {
		r.set(rx, y, '|')
	}
	for _, tk := range f.Ticks {
		_, ty := vp.Project(scene.Point{X: scene.RulerX, Y: tk.Y})
		r.set(rx+1, ty, '-')
		label := strings.TrimSuffix(tk.Label, " m")
		for i, c := range label {
			r.set(rx-len(label)+i, ty, c)
		}
	}

	sx, sy := vp.Project(f.Arrow.Start)
	_, ey := vp.Project(f.Arrow.End)
	if ey > sy {
		for y := sy; y < ey; y++ {
			r.set(sx, y, ':')
		}
		r.set(sx, ey, 'v')
	}

	bx, by := vp.Project(f.Ball)
	if by >= gy {
		by = gy - 1
	}
	r.set(bx, by, 'O')
}

func (r *LiveRenderer) render(f scene.Frame) string {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	caption := f.Caption.Value
	if st, ok := phaseStyles[f.Caption.Color]; ok {
		caption = st.Render(caption)
	}
	b.WriteString("  " + caption + "\n")
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("  %s   %s   %s\n", f.Time.Value, f.Velocity.Value, f.Height.Value))
	if r.params.ShowFormulas {
		b.WriteString("\n  Step-by-step formulas:\n")
		for _, line := range f.Formulas {
			b.WriteString("  - " + line + "\n")
		}
	}

	return b.String()
}

func (r *LiveRenderer) Start() {
	if r.clear {
		io.WriteString(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.clear {
		io.WriteString(r.out, showCursor)
	}
}
