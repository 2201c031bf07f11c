package sampler

import "github.com/san-kum/freefall/internal/freefall"

// Player is a host-side playhead over a fixed-frame schedule. It owns only
// the frame index; every frame is recomputed from the model on demand.
type Player struct {
	model   freefall.Model
	params  freefall.Params
	times   []float64
	frame   int
	running bool
}

func NewPlayer(m freefall.Model, p freefall.Params, frames int) *Player {
	if frames < 1 {
		frames = 1
	}
	return &Player{
		model:  m,
		params: p,
		times:  Schedule(m, p.InitialHeight, frames),
	}
}

// Current evaluates the model at the playhead.
func (p *Player) Current() freefall.Sample {
	return p.model.Sample(p.params.InitialHeight, p.times[p.frame], p.params.ShowFormulas)
}

func (p *Player) Params() freefall.Params { return p.params }
func (p *Player) Model() freefall.Model   { return p.model }
func (p *Player) Frame() int              { return p.frame }
func (p *Player) Frames() int             { return len(p.times) }
func (p *Player) Running() bool           { return p.running }

// Done reports whether the playhead sits on the last frame.
func (p *Player) Done() bool {
	return p.frame == len(p.times)-1
}

// Release starts the animation from the first frame.
func (p *Player) Release() {
	p.frame = 0
	p.running = true
}

func (p *Player) Toggle() {
	if !p.running && p.Done() {
		p.frame = 0
	}
	p.running = !p.running
}

// Tick advances one frame while running and stops on the last frame.
// It reports whether the playhead moved.
func (p *Player) Tick() bool {
	if !p.running {
		return false
	}
	if p.Done() {
		p.running = false
		return false
	}
	p.frame++
	if p.Done() {
		p.running = false
	}
	return true
}

// Step moves the playhead by delta frames and pauses.
func (p *Player) Step(delta int) {
	p.running = false
	p.Seek(p.frame + delta)
}

// Seek places the playhead on frame i, clamped to the schedule.
func (p *Player) Seek(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(p.times) {
		i = len(p.times) - 1
	}
	p.frame = i
}

// Reset rebuilds the schedule for new parameters and parks the playhead at
// the first frame.
func (p *Player) Reset(params freefall.Params) {
	p.params = params
	p.times = Schedule(p.model, params.InitialHeight, len(p.times))
	p.frame = 0
	p.running = false
}

// Fraction is the playhead position in [0, 1].
func (p *Player) Fraction() float64 {
	if len(p.times) <= 1 {
		return 0
	}
	return float64(p.frame) / float64(len(p.times)-1)
}
