package freefall

import "fmt"

// Equation is one line of a formula trace.
type Equation struct {
	Label        string
	Substitution string
}

// FormulaTrace holds the kinematic equations evaluated at one elapsed time.
// Raw values are kept untruncated; Equations carries the display strings.
type FormulaTrace struct {
	InitialVelocity float64
	Gravity         float64
	ElapsedTime     float64
	Velocity        float64
	// Term1 is vi*t and Term2 is 0.5*g*t^2; Distance is their sum.
	Term1    float64
	Term2    float64
	Distance float64
	// ReconstructedTime is (v - vi)/g.
	ReconstructedTime float64
	Equations         []Equation
}

// FormulaTrace substitutes the state at elapsed into the three kinematic
// equations used by the narrative.
func (m Model) FormulaTrace(initialHeight, elapsed float64) FormulaTrace {
	const vi = 0.0
	g := m.Gravity()
	st := m.StateAt(initialHeight, elapsed)

	tr := FormulaTrace{
		InitialVelocity: vi,
		Gravity:         g,
		ElapsedTime:     st.ElapsedTime,
		Velocity:        vi + g*elapsed,
		Term1:           vi * elapsed,
		Term2:           0.5 * g * (elapsed * elapsed),
	}
	tr.Distance = tr.Term1 + tr.Term2
	tr.ReconstructedTime = (tr.Velocity - vi) / g

	viS, gS, tS := FormatDisplay(vi), FormatDisplay(g), FormatDisplay(elapsed)
	vS := FormatDisplay(tr.Velocity)
	tr.Equations = []Equation{
		{
			Label:        "vf = vi + g t",
			Substitution: fmt.Sprintf("%s + %s·(%s) = %s m/s", viS, gS, tS, vS),
		},
		{
			Label: "y = vi·t + ½·g·t²",
			Substitution: fmt.Sprintf("%s·%s + 0.5·%s·(%s)² = %s m",
				viS, tS, gS, tS, FormatDisplay(tr.Distance)),
		},
		{
			Label:        "t = (vf - vi)/g",
			Substitution: fmt.Sprintf("(%s - %s)/%s = %s s", vS, viS, gS, FormatDisplay(tr.ReconstructedTime)),
		},
	}
	return tr
}

// Lines renders each equation as "label → substitution".
func (tr FormulaTrace) Lines() []string {
	lines := make([]string, len(tr.Equations))
	for i, eq := range tr.Equations {
		lines[i] = eq.Label + " → " + eq.Substitution
	}
	return lines
}
