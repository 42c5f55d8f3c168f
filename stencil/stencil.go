// Package stencil implements the stencil test and stencil-buffer-update
// operations of the fragment pipeline, parameterized over any integer
// stencil element type (or attach.Stencillike's struct{} no-op), grounded
// on original_source/src/stencil.rs's Stencil/StencilTest/StencilOp traits
// and enums.
package stencil

import "github.com/gogpu/softraster/attach"

// Test enumerates the comparisons a stencil test can perform between the
// incoming reference value and the value already stored in the buffer.
type Test int

const (
	// Always passes regardless of the compared values.
	Always Test = iota
	// Never passes regardless of the compared values.
	Never
	// LessThan passes when the stored value is less than the reference.
	LessThan
	// GreaterThan passes when the stored value is greater than the reference.
	GreaterThan
	// LessThanEq passes when the stored value is less than or equal to the
	// reference.
	LessThanEq
	// GreaterThanEq passes when the stored value is greater than or equal
	// to the reference.
	GreaterThanEq
	// Equal passes when the stored value equals the reference.
	Equal
	// NotEqual passes when the stored value differs from the reference.
	NotEqual
)

// Run performs the test, comparing value, the incoming reference, against
// mask, the value already stored in the buffer.
func Run[T attach.Stencillike](test Test, value, mask T) bool {
	switch any(mask).(type) {
	case struct{}:
		return true
	}
	switch test {
	case Always:
		return true
	case Never:
		return false
	case LessThan:
		return less(mask, value)
	case LessThanEq:
		return less(mask, value) || equal(mask, value)
	case GreaterThan:
		return less(value, mask)
	case GreaterThanEq:
		return less(value, mask) || equal(mask, value)
	case Equal:
		return equal(mask, value)
	case NotEqual:
		return !equal(mask, value)
	}
	return false
}

// Op enumerates the update applied to a buffer's stencil value once a
// fragment reaches a point in the pipeline where a stencil op fires.
type Op struct {
	kind opKind
	wrap bool
}

type opKind int

const (
	opKeep opKind = iota
	opInvert
	opZero
	opReplace
	opIncrement
	opDecrement
)

// Keep leaves the stored value unchanged.
var Keep = Op{kind: opKeep}

// Invert bitwise-negates the stored value.
var Invert = Op{kind: opInvert}

// ZeroOp replaces the stored value with the type's zero.
var ZeroOp = Op{kind: opZero}

// Replace overwrites the stored value with the reference value.
var Replace = Op{kind: opReplace}

// Increment increments the stored value by one, wrapping on overflow if
// wrap is true or saturating at the type's maximum otherwise.
func Increment(wrap bool) Op { return Op{kind: opIncrement, wrap: wrap} }

// Decrement decrements the stored value by one, wrapping on underflow if
// wrap is true or saturating at the type's minimum otherwise.
func Decrement(wrap bool) Op { return Op{kind: opDecrement, wrap: wrap} }

// Apply computes the new stored value given the current value and the
// reference mask (used only by Replace).
func Apply[T attach.Stencillike](op Op, value, mask T) T {
	switch any(value).(type) {
	case struct{}:
		return value
	}
	switch op.kind {
	case opKeep:
		return value
	case opInvert:
		return not(value)
	case opZero:
		return zero[T]()
	case opReplace:
		return mask
	case opIncrement:
		if op.wrap {
			return wrappingAdd(value, one[T]())
		}
		return saturatingAdd(value, one[T]())
	case opDecrement:
		if op.wrap {
			return wrappingSub(value, one[T]())
		}
		return saturatingSub(value, one[T]())
	}
	return value
}
