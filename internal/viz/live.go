package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/freefall/internal/config"
	"github.com/san-kum/freefall/internal/freefall"
	"github.com/san-kum/freefall/internal/sampler"
	"github.com/san-kum/freefall/internal/scene"
)

const (
	width  = 30
	height = 20
)

type TickMsg time.Time

// Options configure a new interactive session.
type Options struct {
	Body   string
	Params freefall.Params
	Frames int
	FPS    int
	Theme  string
}

// Model contains playback state and visualization buffers.
type Model struct {
	player   *sampler.Player
	body     string
	fps      int
	canvas   *Canvas
	theme    int
	showHelp bool
}

// NewModel prepares a session parked at the release point.
func NewModel(m freefall.Model, opts Options) Model {
	fps := opts.FPS
	if fps < 1 {
		fps = config.DefaultFPS
	}
	return Model{
		player: sampler.NewPlayer(m, opts.Params, opts.Frames),
		body:   opts.Body,
		fps:    fps,
		canvas: NewCanvas(width, height),
		theme:  themeIndex(opts.Theme),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the playhead.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		p := m.player.Params()
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.player.Toggle()
		case "r":
			m.player.Release()
		case "[":
			m.player.Step(-1)
		case "]":
			m.player.Step(1)
		case "{":
			m.player.Step(-10)
		case "}":
			m.player.Step(10)
		case "h":
			p.InitialHeight = config.NextHeight(p.InitialHeight)
			m.player.Reset(p)
		case "m":
			p.Mass = config.NextMass(p.Mass)
			m.player.Reset(p)
		case "f":
			p.ShowFormulas = !p.ShowFormulas
			frame := m.player.Frame()
			m.player.Reset(p)
			m.player.Seek(frame)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.player.Tick()
		return m, m.tick()
	}
	return m, nil
}

// Current is the sample under the playhead.
func (m Model) Current() freefall.Sample {
	return m.player.Current()
}

// Player exposes the playhead for hosts and tests.
func (m Model) Player() *sampler.Player {
	return m.player
}

// Theme is the active color scheme.
func (m Model) Theme() Theme {
	return Themes[m.theme]
}

// heightHistory recomputes the height at every frame up to the playhead.
func (m Model) heightHistory() []float64 {
	fm := m.player.Model()
	p := m.player.Params()
	T := fm.FallDuration(p.InitialHeight)
	n := m.player.Frame() + 1
	hist := make([]float64, n)
	for i := range hist {
		hist[i] = fm.StateAt(p.InitialHeight, sampler.FrameTime(i, m.player.Frames(), T)).Height
	}
	return hist
}

func (m Model) velocityHistory() []float64 {
	fm := m.player.Model()
	p := m.player.Params()
	T := fm.FallDuration(p.InitialHeight)
	vel := make([]float64, m.player.Frame()+1)
	for i := range vel {
		vel[i] = fm.StateAt(p.InitialHeight, sampler.FrameTime(i, m.player.Frames(), T)).Velocity
	}
	return vel
}

// View renders the TUI interface.
func (m Model) View() string {
	th := m.Theme()
	s := m.Current()
	p := m.player.Params()
	f := scene.Build(m.player.Model(), p.InitialHeight, s)

	m.draw(f)
	canvasView := canvasStyle.Render(lipgloss.NewStyle().Foreground(th.Primary).Render(m.canvas.String()))

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("FREE FALL · %s (g = %s m/s²)",
		strings.ToUpper(m.body), freefall.FormatDisplay(m.player.Model().Gravity()))) + "\n")

	status := "READY"
	switch {
	case m.player.Running():
		status = "FALLING"
	case m.player.Done():
		status = "DONE"
	case m.player.Frame() > 0:
		status = "PAUSED"
	}
	b.WriteString(status + "\n\n")

	caption := lipgloss.NewStyle().Foreground(th.Phase[s.Phase.Color()]).Width(54)
	b.WriteString(caption.Render(f.Caption.Value) + "\n\n")

	b.WriteString(labelStyle.Render("Height h0") + valueStyle.Render(freefall.FormatDisplay(p.InitialHeight)+" m") + "\n")
	b.WriteString(labelStyle.Render("Mass") + valueStyle.Render(freefall.FormatDisplay(p.Mass)+" kg (no effect in vacuum)") + "\n")
	b.WriteString(labelStyle.Render("Time") + valueStyle.Render(strings.TrimPrefix(f.Time.Value, "t = ")) + "\n")
	b.WriteString(labelStyle.Render("Velocity") + lipgloss.NewStyle().Foreground(th.Arrow).Render(strings.TrimPrefix(f.Velocity.Value, "v = ")) + "\n")
	b.WriteString(labelStyle.Render("Height") + valueStyle.Render(strings.TrimPrefix(f.Height.Value, "y = ")) + "\n\n")

	b.WriteString(ProgressBar(m.player.Fraction(), 30) + "\n")

	if hist := m.heightHistory(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("height (m)"))
		b.WriteString(graphStyle.Render(chart) + "\n")
		b.WriteString(labelStyle.Render("velocity") + SparklineChart(m.velocityHistory(), 30) + "\n")
	}

	if p.ShowFormulas {
		b.WriteString("\n" + formulaHead.Render("Step-by-step formulas:") + "\n")
		for _, line := range f.Formulas {
			b.WriteString("- " + line + "\n")
		}
	} else {
		b.WriteString("\nFormulas hidden.\n")
	}

	b.WriteString(helpStyle.Render("─────────────────────\nSP:Release/Pause R:Restart Q:Quit\nH:Height M:Mass F:Formulas T:Theme\n[ ]:Step { }:Step×10 ?:Help"))
	statsView := statsStyle.Render(b.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Release / pause / resume ║
║  R        - Release from the top     ║
║  [ / ]    - Step one frame           ║
║  { / }    - Step ten frames          ║
║  H        - Cycle initial height     ║
║  M        - Cycle mass               ║
║  F        - Toggle formulas          ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// draw rasterizes the scene onto the braille canvas.
func (m Model) draw(f scene.Frame) {
	c := m.canvas
	c.Clear()
	cw, ch := c.Dots()
	vp := scene.NewViewport(cw, ch, f.Static)

	gl, gy := vp.Project(scene.Point{X: scene.GroundLeft, Y: 0})
	gr, _ := vp.Project(scene.Point{X: scene.GroundRight, Y: 0})
	c.DrawLine(gl, gy, gr, gy)
	c.DrawLine(gl, gy-1, gr, gy-1)

	rx, top := vp.Project(scene.Point{X: scene.RulerX, Y: f.RulerTop})
	c.DrawLine(rx, top, rx, gy)
	for _, tk := range f.Ticks {
		tx, ty := vp.Project(scene.Point{X: scene.RulerX + scene.TickLength, Y: tk.Y})
		c.DrawLine(rx, ty, tx+1, ty)
	}

	sx, sy := vp.Project(f.Arrow.Start)
	ex, ey := vp.Project(f.Arrow.End)
	c.DrawLine(sx, sy, ex, ey)
	c.DrawLine(ex, ey, ex-2, ey-2)
	c.DrawLine(ex, ey, ex+2, ey-2)

	bx, by := vp.Project(f.Ball)
	c.FillCircle(bx, by, vp.ScaleY(f.Radius))
}

// Run starts the interactive program on the terminal.
func Run(m freefall.Model, opts Options) error {
	_, err := tea.NewProgram(NewModel(m, opts), tea.WithAltScreen()).Run()
	return err
}
