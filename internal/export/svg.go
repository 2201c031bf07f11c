package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/freefall/internal/scene"
)

var svgColors = map[string]string{
	"black":  "#000000",
	"orange": "#ffa500",
	"green":  "#008000",
	"blue":   "#0000ff",
	"red":    "#ff0000",
}

// SceneSVG draws one frame of the drop diagram.
func SceneSVG(f scene.Frame, width, height int) string {
	vp := scene.NewViewport(width, height, f.Static)
	px := func(p scene.Point) (int, int) { return vp.Project(p) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<defs><marker id="head" markerWidth="8" markerHeight="8" refX="4" refY="4" orient="auto"><path d="M0,0 L8,4 L0,8 z" fill="#ffa500"/></marker></defs>
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	gx1, gy := px(scene.Point{X: scene.GroundLeft, Y: 0})
	gx2, _ := px(scene.Point{X: scene.GroundRight, Y: 0})
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#8b4513" stroke-width="6"/>
`, gx1, gy, gx2, gy))

	rx, rTop := px(scene.Point{X: scene.RulerX, Y: f.RulerTop})
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#000000" stroke-width="2"/>
`, rx, rTop, rx, gy))
	for _, tk := range f.Ticks {
		tx1, ty := px(scene.Point{X: scene.RulerX, Y: tk.Y})
		tx2, _ := px(scene.Point{X: scene.RulerX + scene.TickLength, Y: tk.Y})
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#000000" stroke-width="1"/>
<text x="%d" y="%d" font-size="8" text-anchor="end" dominant-baseline="middle">%s</text>
`, tx1, ty, tx2, ty, tx1-3, ty, html.EscapeString(tk.Label)))
	}

	bx, by := px(f.Ball)
	sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%.1f" fill="#1e90ff" stroke="#000080"/>
`, bx, by, vp.ScaleY(f.Radius)))

	ax1, ay1 := px(f.Arrow.Start)
	ax2, ay2 := px(f.Arrow.End)
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#ffa500" stroke-width="3" marker-end="url(#head)"/>
`, ax1, ay1, ax2, ay2))

	for _, t := range []scene.Text{f.Time, f.Velocity, f.Height} {
		x, y := px(t.At)
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="11" fill="%s">%s</text>
`, x, y, svgColors[t.Color], html.EscapeString(t.Value)))
	}
	cx, cy := px(f.Caption.At)
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="11" text-anchor="middle" fill="%s">%s</text>
`, cx, cy, svgColors[f.Caption.Color], html.EscapeString(f.Caption.Value)))

	sb.WriteString("</svg>")
	return sb.String()
}
