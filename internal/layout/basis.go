package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBasis is wrapped by every error returned from the Basis constructors.
var ErrInvalidBasis = errors.New("invalid flex basis")

// BasisError reports a flex basis that cannot be constructed.
type BasisError struct {
	Length   float64
	Relative bool
	Reason   string
}

func (e *BasisError) Error() string {
	kind := "fixed"
	if e.Relative {
		kind = "relative"
	}
	return fmt.Sprintf("%s flex basis %v: %s", kind, e.Length, e.Reason)
}

func (e *BasisError) Unwrap() error {
	return ErrInvalidBasis
}

// BasisKind tags which variant a Basis holds.
type BasisKind uint8

const (
	BasisAuto     BasisKind = iota // Size from content or explicit main size
	BasisFixed                     // Absolute length
	BasisRelative                  // Fraction of the container's main size
)

// Basis is the initial main size of a flex item before grow and shrink.
// The zero value is an auto basis.
type Basis struct {
	kind   BasisKind
	length float64
}

// AutoBasis returns a basis that is resolved from the item's content.
func AutoBasis() Basis {
	return Basis{}
}

// FixedBasis returns a basis of length units. The length must be finite and non-negative.
func FixedBasis(length float64) (Basis, error) {
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return Basis{}, &BasisError{Length: length, Reason: "should be a finite value"}
	}
	if length < 0 {
		return Basis{}, &BasisError{Length: length, Reason: "should be a positive value"}
	}
	return Basis{kind: BasisFixed, length: length}, nil
}

// RelativeBasis returns a basis that is a fraction of the container's main size.
// The fraction must be in [0, 1].
func RelativeBasis(fraction float64) (Basis, error) {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return Basis{}, &BasisError{Length: fraction, Relative: true, Reason: "relative length should be in [0, 1]"}
	}
	return Basis{kind: BasisRelative, length: fraction}, nil
}

// MustFixedBasis is like FixedBasis but panics on invalid input.
func MustFixedBasis(length float64) Basis {
	b, err := FixedBasis(length)
	if err != nil {
		panic(err)
	}
	return b
}

// MustRelativeBasis is like RelativeBasis but panics on invalid input.
func MustRelativeBasis(fraction float64) Basis {
	b, err := RelativeBasis(fraction)
	if err != nil {
		panic(err)
	}
	return b
}

// Kind returns which variant the basis holds.
func (b Basis) Kind() BasisKind { return b.kind }

// Length returns the fixed length or relative fraction. It is 0 for auto.
func (b Basis) Length() float64 { return b.length }

// IsAuto returns true if the basis is resolved from content.
func (b Basis) IsAuto() bool { return b.kind == BasisAuto }

func (b Basis) String() string {
	switch b.kind {
	case BasisFixed:
		return fmt.Sprintf("%g", b.length)
	case BasisRelative:
		return fmt.Sprintf("%g%%", b.length*100)
	default:
		return "auto"
	}
}

// resolve returns the basis length against a container main size.
// ok is false for auto, and for a relative basis when the container is unconstrained.
func (b Basis) resolve(containerMain float64) (size float64, ok bool) {
	switch b.kind {
	case BasisFixed:
		return b.length, true
	case BasisRelative:
		if !isDefinite(containerMain) {
			return 0, true
		}
		return b.length * containerMain, true
	default:
		return 0, false
	}
}
