package layout

import "math"

// Unconstrained marks a container axis with no size limit.
var Unconstrained = math.Inf(1)

// isDefinite reports whether v is a usable finite size.
func isDefinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute length
	UnitPercent             // Percentage of parent's available space
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute length.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual value given the reference size.
// For UnitAuto, and for UnitPercent against an unconstrained reference,
// it returns the fallback value.
func (v Value) Resolve(reference, fallback float64) float64 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitPercent:
		if !isDefinite(reference) {
			return fallback
		}
		return reference * v.Amount / 100.0
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// definite resolves v and reports whether it produced a concrete size.
func (v Value) definite(reference float64) (float64, bool) {
	r, ok := v.offset(reference)
	if !ok {
		return 0, false
	}
	return math.Max(r, 0), true
}
