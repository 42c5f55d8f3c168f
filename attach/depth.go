package attach

import (
	"errors"
	"math"
)

// ErrBadCast is returned by FromScalar when a floating-point scalar cannot
// be represented in the target depth type (spec §7).
var ErrBadCast = errors.New("attach: value does not fit target depth type")

// Far returns the depth value denoting "farthest away" for D.
//
// The pipeline uses a greater-is-closer convention (spec §3, Depth
// capability): Far() seeds a freshly cleared buffer so that any real
// fragment wins the first depth comparison against it. For every integer
// and floating width this is the type's minimum representable value; for
// the no-op depth struct{} it is the (only) zero value.
func Far[D Depthlike]() D {
	var z D
	switch p := any(&z).(type) {
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *int:
		*p = math.MinInt
	case *uint8:
		*p = 0
	case *uint16:
		*p = 0
	case *uint32:
		*p = 0
	case *uint64:
		*p = 0
	case *uint:
		*p = 0
	case *float32:
		*p = -math.MaxFloat32
	case *float64:
		*p = -math.MaxFloat64
	case *struct{}:
		// no-op depth: the zero value is the only value.
	}
	return z
}

// FromScalar constructs a depth value of type D from a floating-point
// scalar produced by the vertex stage (typically sv.Position.Z/W). It fails
// with ErrBadCast when n overflows D's representable range; the conversion
// is otherwise lossy-rounding, matching the underlying numeric cast spec §7
// describes.
func FromScalar[D Depthlike, N interface{ ~float32 | ~float64 }](n N) (D, error) {
	var z D
	f := float64(n)

	switch p := any(&z).(type) {
	case *int8:
		if f < math.MinInt8 || f > math.MaxInt8 {
			return z, ErrBadCast
		}
		*p = int8(f)
	case *int16:
		if f < math.MinInt16 || f > math.MaxInt16 {
			return z, ErrBadCast
		}
		*p = int16(f)
	case *int32:
		if f < math.MinInt32 || f > math.MaxInt32 {
			return z, ErrBadCast
		}
		*p = int32(f)
	case *int64:
		if f < math.MinInt64 || f >= -math.MinInt64 {
			return z, ErrBadCast
		}
		*p = int64(f)
	case *int:
		if f < math.MinInt || f >= -float64(math.MinInt) {
			return z, ErrBadCast
		}
		*p = int(f)
	case *uint8:
		if f < 0 || f > math.MaxUint8 {
			return z, ErrBadCast
		}
		*p = uint8(f)
	case *uint16:
		if f < 0 || f > math.MaxUint16 {
			return z, ErrBadCast
		}
		*p = uint16(f)
	case *uint32:
		if f < 0 || f > math.MaxUint32 {
			return z, ErrBadCast
		}
		*p = uint32(f)
	case *uint64:
		if f < 0 || f >= 1<<64 {
			return z, ErrBadCast
		}
		*p = uint64(f)
	case *uint:
		if f < 0 || f >= -2*float64(math.MinInt) {
			return z, ErrBadCast
		}
		*p = uint(f)
	case *float32:
		if f > math.MaxFloat32 || f < -math.MaxFloat32 {
			return z, ErrBadCast
		}
		*p = float32(f)
	case *float64:
		*p = f
	case *struct{}:
		// no-op depth: nothing to store.
	}
	return z, nil
}

// Greater reports whether a is closer than b under the greater-is-closer
// depth convention (a fragment passes the depth test when its depth is
// greater than the value already stored). The no-op depth struct{} always
// reports true, so a depth-less pipeline never fails the depth test.
func Greater[D Depthlike](a, b D) bool {
	switch av := any(a).(type) {
	case int8:
		return av > any(b).(int8)
	case int16:
		return av > any(b).(int16)
	case int32:
		return av > any(b).(int32)
	case int64:
		return av > any(b).(int64)
	case int:
		return av > any(b).(int)
	case uint8:
		return av > any(b).(uint8)
	case uint16:
		return av > any(b).(uint16)
	case uint32:
		return av > any(b).(uint32)
	case uint64:
		return av > any(b).(uint64)
	case uint:
		return av > any(b).(uint)
	case float32:
		return av > any(b).(float32)
	case float64:
		return av > any(b).(float64)
	case struct{}:
		return true
	}
	return true
}
