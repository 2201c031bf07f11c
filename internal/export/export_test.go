package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/freefall/internal/freefall"
	"github.com/san-kum/freefall/internal/sampler"
	"github.com/san-kum/freefall/internal/scene"
)

func TestSceneSVG(t *testing.T) {
	t.Parallel()
	m := freefall.Default()
	f := scene.Build(m, 5, m.Sample(5, 0.5, false))

	svg := SceneSVG(f, 200, 300)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `<circle`)
	assert.Contains(t, svg, "v = 4.9 m/s")
	assert.Contains(t, svg, "5 m")
	assert.Contains(t, svg, `fill="#008000">Gravity accelerates`)
	assert.Equal(t, 6, strings.Count(svg, "text-anchor=\"end\""))
}

func series(t *testing.T) Series {
	t.Helper()
	m := freefall.Default()
	times := sampler.Schedule(m, 5, 50)
	s := Series{Title: "5 m drop", Times: times}
	for _, tt := range times {
		st := m.StateAt(5, tt)
		s.Heights = append(s.Heights, st.Height)
		s.Velocities = append(s.Velocities, st.Velocity)
	}
	return s
}

func TestWriteChartPNG(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteChartPNG(&buf, series(t), 4, 3))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestSaveChartPNG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "charts", "drop.png")
	require.NoError(t, SaveChartPNG(series(t), 4, 3, path))
	assert.FileExists(t, path)
}

func TestNewChart_Empty(t *testing.T) {
	t.Parallel()

	_, err := NewChart(Series{})
	assert.ErrorIs(t, err, ErrEmptySeries)
}
