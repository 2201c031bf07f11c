// Package freefall computes the state of an object dropped from rest under
// constant gravitational acceleration, without air resistance.
//
// Every operation is a pure function of its inputs:
//
//   - [Model.FallDuration]: time until the object reaches the ground
//   - [Model.StateAt]: height and velocity at an elapsed time
//   - [ClassifyPhase]: suspended, falling or landed
//   - [Model.FormulaTrace]: the kinematic equations with numbers substituted
//   - [FormatDisplay]: two-decimal truncation used for every displayed value
//
// # Example
//
//	m := freefall.Default()
//	s := m.StateAt(5, 0.5)
//	fmt.Println(freefall.FormatDisplay(s.Height)) // 3.77
//
// # Thread Safety
//
// [Model] is an immutable value. Hosts may call it from any number of
// goroutines, for example when rendering animation frames in parallel.
package freefall
