package freefall

// Phase is the narrative stage of a run.
type Phase int

const (
	// Suspended: held in place, about to be released.
	Suspended Phase = iota
	// Falling: above the ground and accelerating.
	Falling
	// Landed: on the ground after time has advanced.
	Landed
)

// ClassifyPhase tags a moment of a run. The release check runs before the
// ground check, so a run starting on the ground is Suspended at t=0.
func ClassifyPhase(elapsed, height float64) Phase {
	switch {
	case elapsed < releaseEpsilon:
		return Suspended
	case height > groundEpsilon:
		return Falling
	default:
		return Landed
	}
}

func (p Phase) String() string {
	switch p {
	case Suspended:
		return "SUSPENDED"
	case Falling:
		return "FALLING"
	case Landed:
		return "LANDED"
	default:
		return "UNKNOWN"
	}
}

// Narrative is the explanatory caption shown for the phase.
func (p Phase) Narrative() string {
	switch p {
	case Suspended:
		return "The object is suspended in the air. Get ready to release it."
	case Falling:
		return "Gravity accelerates the object: velocity increases with time."
	case Landed:
		return "The ball has reached the ground! Without air, it falls with constant acceleration."
	default:
		return ""
	}
}

// Color names the caption color: blue, green or red.
func (p Phase) Color() string {
	switch p {
	case Suspended:
		return "blue"
	case Falling:
		return "green"
	case Landed:
		return "red"
	default:
		return "black"
	}
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) (Phase, bool) {
	for _, p := range []Phase{Suspended, Falling, Landed} {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}
