// Package core provides fundamental types and utilities for the game platform.
// It contains no Bubble Tea dependency to keep game logic pure and testable.
package core

// Span is a closed integer interval [Lo, Hi] on one axis.
type Span struct {
	Lo, Hi int
}

// Contains reports whether v lies in [Lo, Hi].
func (s Span) Contains(v int) bool {
	return v >= s.Lo && v <= s.Hi
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

