package config

import "sort"

// Bodies maps a celestial body to its surface gravity in m/s^2.
var Bodies = map[string]float64{
	"earth":   9.8,
	"moon":    1.62,
	"mars":    3.71,
	"venus":   8.87,
	"jupiter": 24.79,
}

// Presets are named starting points; gravity follows the body.
var Presets = map[string]*Config{
	"classroom": {
		Body: "earth", Gravity: 9.8, Height: 5, Mass: 1, ShowFormulas: true,
		Frames: DefaultFrames, FPS: DefaultFPS, Theme: DefaultTheme, DataDir: DefaultDataDir,
	},
	"short": {
		Body: "earth", Gravity: 9.8, Height: 1, Mass: 0.5, ShowFormulas: true,
		Frames: 60, FPS: DefaultFPS, Theme: DefaultTheme, DataDir: DefaultDataDir,
	},
	"tall": {
		Body: "earth", Gravity: 9.8, Height: 10, Mass: 5, ShowFormulas: false,
		Frames: DefaultFrames, FPS: DefaultFPS, Theme: DefaultTheme, DataDir: DefaultDataDir,
	},
	"moon": {
		Body: "moon", Gravity: 1.62, Height: 5, Mass: 1, ShowFormulas: true,
		Frames: 400, FPS: DefaultFPS, Theme: "night", DataDir: DefaultDataDir,
	},
	"jupiter": {
		Body: "jupiter", Gravity: 24.79, Height: 10, Mass: 1, ShowFormulas: true,
		Frames: DefaultFrames, FPS: DefaultFPS, Theme: DefaultTheme, DataDir: DefaultDataDir,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func BodyGravity(body string) (float64, bool) {
	g, ok := Bodies[body]
	return g, ok
}

func ListBodies() []string {
	names := make([]string, 0, len(Bodies))
	for name := range Bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
