package freefall

import "math"

// StandardGravity is the acceleration used by Default, in m/s^2.
const StandardGravity = 9.8

const (
	// releaseEpsilon is the elapsed time below which the object counts as not yet released.
	releaseEpsilon = 1e-6
	// groundEpsilon is the height above which the object counts as still falling.
	groundEpsilon = 1e-3
)

// Model holds the gravitational acceleration for a family of free-fall runs.
// The zero value uses StandardGravity.
type Model struct {
	gravity float64
}

// New returns a model with the given gravitational acceleration.
func New(gravity float64) (Model, error) {
	if math.IsNaN(gravity) || math.IsInf(gravity, 0) || gravity <= 0 {
		return Model{}, &InputError{Field: "gravity", Value: gravity, Wrapped: ErrInvalidGravity}
	}
	return Model{gravity: gravity}, nil
}

// Default returns a model using StandardGravity.
func Default() Model {
	return Model{gravity: StandardGravity}
}

// Gravity returns the acceleration in m/s^2.
func (m Model) Gravity() float64 {
	if m.gravity == 0 {
		return StandardGravity
	}
	return m.gravity
}

// Params are the user choices for one simulation run.
type Params struct {
	InitialHeight float64
	// Mass is shown to the user but has no effect on the motion.
	Mass         float64
	ShowFormulas bool
}

// Validate reports whether p lies in the model's input domain.
func (p Params) Validate() error {
	if err := checkNonNegative("initial_height", p.InitialHeight, ErrNegativeHeight); err != nil {
		return err
	}
	return checkNonNegative("mass", p.Mass, ErrNegativeMass)
}

// Validate reports whether an initial height and elapsed time lie in the
// model's input domain.
func Validate(initialHeight, elapsed float64) error {
	if err := checkNonNegative("initial_height", initialHeight, ErrNegativeHeight); err != nil {
		return err
	}
	return checkNonNegative("elapsed_time", elapsed, ErrNegativeTime)
}

func checkNonNegative(field string, v float64, negErr error) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InputError{Field: field, Value: v, Wrapped: ErrNonFinite}
	}
	if v < 0 {
		return &InputError{Field: field, Value: v, Wrapped: negErr}
	}
	return nil
}

// KinematicState is the physical state at one elapsed time.
type KinematicState struct {
	ElapsedTime  float64
	Height       float64
	Velocity     float64
	FallDuration float64
}

// FallDuration returns the time at which an object released from rest at
// initialHeight reaches the ground.
func (m Model) FallDuration(initialHeight float64) float64 {
	if initialHeight == 0 {
		return 0
	}
	return math.Sqrt(2 * initialHeight / m.Gravity())
}

// StateAt returns the state after elapsed seconds. Height is clamped at
// ground level and is exactly 0 from the fall duration on; elapsed is not
// clamped.
func (m Model) StateAt(initialHeight, elapsed float64) KinematicState {
	g := m.Gravity()
	T := m.FallDuration(initialHeight)
	height := 0.0
	if elapsed < T {
		height = math.Max(initialHeight-0.5*g*(elapsed*elapsed), 0)
	}
	return KinematicState{
		ElapsedTime:  elapsed,
		Height:       height,
		Velocity:     g * elapsed,
		FallDuration: T,
	}
}

// Sample bundles everything a host needs to draw one moment of a run.
type Sample struct {
	State KinematicState
	Phase Phase
	// Trace is nil unless formulas were requested.
	Trace *FormulaTrace
}

// Sample evaluates the model once for a host request.
func (m Model) Sample(initialHeight, elapsed float64, showFormulas bool) Sample {
	st := m.StateAt(initialHeight, elapsed)
	s := Sample{
		State: st,
		Phase: ClassifyPhase(st.ElapsedTime, st.Height),
	}
	if showFormulas {
		tr := m.FormulaTrace(initialHeight, elapsed)
		s.Trace = &tr
	}
	return s
}
