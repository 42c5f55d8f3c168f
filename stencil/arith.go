package stencil

import (
	"math"

	"github.com/gogpu/softraster/attach"
)

// less, equal, not, zero, one, wrappingAdd/Sub, and saturatingAdd/Sub
// dispatch per concrete stencil element type via the any(&zero)-boxing
// idiom used throughout this module wherever a generic function would
// otherwise need the per-type trait impl that
// original_source/src/stencil.rs's impl_stencil! macro hand-expands for
// u8..u64, i8..i64, usize, isize.

func less[T attach.Stencillike](a, b T) bool {
	switch av := any(a).(type) {
	case int8:
		return av < any(b).(int8)
	case int16:
		return av < any(b).(int16)
	case int32:
		return av < any(b).(int32)
	case int64:
		return av < any(b).(int64)
	case int:
		return av < any(b).(int)
	case uint8:
		return av < any(b).(uint8)
	case uint16:
		return av < any(b).(uint16)
	case uint32:
		return av < any(b).(uint32)
	case uint64:
		return av < any(b).(uint64)
	case uint:
		return av < any(b).(uint)
	}
	return false
}

func equal[T attach.Stencillike](a, b T) bool {
	return any(a) == any(b)
}

func not[T attach.Stencillike](v T) T {
	var z T
	switch p := any(&z).(type) {
	case *int8:
		*p = ^any(v).(int8)
	case *int16:
		*p = ^any(v).(int16)
	case *int32:
		*p = ^any(v).(int32)
	case *int64:
		*p = ^any(v).(int64)
	case *int:
		*p = ^any(v).(int)
	case *uint8:
		*p = ^any(v).(uint8)
	case *uint16:
		*p = ^any(v).(uint16)
	case *uint32:
		*p = ^any(v).(uint32)
	case *uint64:
		*p = ^any(v).(uint64)
	case *uint:
		*p = ^any(v).(uint)
	}
	return z
}

func zero[T attach.Stencillike]() T {
	var z T
	return z
}

func one[T attach.Stencillike]() T {
	var z T
	switch p := any(&z).(type) {
	case *int8:
		*p = 1
	case *int16:
		*p = 1
	case *int32:
		*p = 1
	case *int64:
		*p = 1
	case *int:
		*p = 1
	case *uint8:
		*p = 1
	case *uint16:
		*p = 1
	case *uint32:
		*p = 1
	case *uint64:
		*p = 1
	case *uint:
		*p = 1
	}
	return z
}

func wrappingAdd[T attach.Stencillike](a, b T) T {
	var z T
	switch p := any(&z).(type) {
	case *int8:
		*p = any(a).(int8) + any(b).(int8)
	case *int16:
		*p = any(a).(int16) + any(b).(int16)
	case *int32:
		*p = any(a).(int32) + any(b).(int32)
	case *int64:
		*p = any(a).(int64) + any(b).(int64)
	case *int:
		*p = any(a).(int) + any(b).(int)
	case *uint8:
		*p = any(a).(uint8) + any(b).(uint8)
	case *uint16:
		*p = any(a).(uint16) + any(b).(uint16)
	case *uint32:
		*p = any(a).(uint32) + any(b).(uint32)
	case *uint64:
		*p = any(a).(uint64) + any(b).(uint64)
	case *uint:
		*p = any(a).(uint) + any(b).(uint)
	}
	return z
}

func wrappingSub[T attach.Stencillike](a, b T) T {
	var z T
	switch p := any(&z).(type) {
	case *int8:
		*p = any(a).(int8) - any(b).(int8)
	case *int16:
		*p = any(a).(int16) - any(b).(int16)
	case *int32:
		*p = any(a).(int32) - any(b).(int32)
	case *int64:
		*p = any(a).(int64) - any(b).(int64)
	case *int:
		*p = any(a).(int) - any(b).(int)
	case *uint8:
		*p = any(a).(uint8) - any(b).(uint8)
	case *uint16:
		*p = any(a).(uint16) - any(b).(uint16)
	case *uint32:
		*p = any(a).(uint32) - any(b).(uint32)
	case *uint64:
		*p = any(a).(uint64) - any(b).(uint64)
	case *uint:
		*p = any(a).(uint) - any(b).(uint)
	}
	return z
}

func saturatingAdd[T attach.Stencillike](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		return saturateSigned(int64(av)+int64(any(b).(int8)), -128, 127).(T)
	case int16:
		return saturateSigned(int64(av)+int64(any(b).(int16)), -32768, 32767).(T)
	case int32:
		return saturateSigned(int64(av)+int64(any(b).(int32)), -2147483648, 2147483647).(T)
	case uint8:
		sum := uint64(av) + uint64(any(b).(uint8))
		if sum > 255 {
			sum = 255
		}
		return any(uint8(sum)).(T)
	case uint16:
		sum := uint64(av) + uint64(any(b).(uint16))
		if sum > 65535 {
			sum = 65535
		}
		return any(uint16(sum)).(T)
	case uint32:
		sum := uint64(av) + uint64(any(b).(uint32))
		if sum > 4294967295 {
			sum = 4294967295
		}
		return any(uint32(sum)).(T)
	case uint64:
		sum := av + any(b).(uint64)
		if sum < av {
			sum = ^uint64(0)
		}
		return any(sum).(T)
	case int64:
		bv := any(b).(int64)
		sum := av + bv
		switch {
		case bv > 0 && sum < av:
			sum = math.MaxInt64
		case bv < 0 && sum > av:
			sum = math.MinInt64
		}
		return any(sum).(T)
	case uint:
		sum := av + any(b).(uint)
		if sum < av {
			sum = ^uint(0)
		}
		return any(sum).(T)
	case int:
		bv := any(b).(int)
		sum := av + bv
		switch {
		case bv > 0 && sum < av:
			sum = math.MaxInt
		case bv < 0 && sum > av:
			sum = math.MinInt
		}
		return any(sum).(T)
	}
	var z T
	return z
}

func saturatingSub[T attach.Stencillike](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		return saturateSigned(int64(av)-int64(any(b).(int8)), -128, 127).(T)
	case int16:
		return saturateSigned(int64(av)-int64(any(b).(int16)), -32768, 32767).(T)
	case int32:
		return saturateSigned(int64(av)-int64(any(b).(int32)), -2147483648, 2147483647).(T)
	case uint8:
		bv := any(b).(uint8)
		if bv >= av {
			return any(uint8(0)).(T)
		}
		return any(av - bv).(T)
	case uint16:
		bv := any(b).(uint16)
		if bv >= av {
			return any(uint16(0)).(T)
		}
		return any(av - bv).(T)
	case uint32:
		bv := any(b).(uint32)
		if bv >= av {
			return any(uint32(0)).(T)
		}
		return any(av - bv).(T)
	case uint64:
		bv := any(b).(uint64)
		if bv >= av {
			return any(uint64(0)).(T)
		}
		return any(av - bv).(T)
	case uint:
		bv := any(b).(uint)
		if bv >= av {
			return any(uint(0)).(T)
		}
		return any(av - bv).(T)
	case int64:
		bv := any(b).(int64)
		diff := av - bv
		switch {
		case bv > 0 && diff > av:
			diff = math.MinInt64
		case bv < 0 && diff < av:
			diff = math.MaxInt64
		}
		return any(diff).(T)
	case int:
		bv := any(b).(int)
		diff := av - bv
		switch {
		case bv > 0 && diff > av:
			diff = math.MinInt
		case bv < 0 && diff < av:
			diff = math.MaxInt
		}
		return any(diff).(T)
	}
	var z T
	return z
}

func saturateSigned(v, lo, hi int64) any {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	switch hi {
	case 127:
		return int8(v)
	case 32767:
		return int16(v)
	case 2147483647:
		return int32(v)
	}
	return v
}
