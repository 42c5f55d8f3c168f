package attach

// Color is the capability contract a framebuffer's color attachment type
// must satisfy: it can report and rebuild its own alpha channel and scale
// itself by a coverage/blend factor. C is the concrete color type itself
// (RGBA[T], Luma[T], ...); A is the scalar type its alpha channel is
// expressed in. This mirrors `original_source/src/image/color.rs`'s
// `Color` trait (`alpha`, `with_alpha`, `mul_alpha`) without the macro that
// generates one impl per concrete color struct there: Go generics let one
// set of methods serve every instantiation of RGBA[T]/Luma[T]/etc.
type Color[C any, A Numeric] interface {
	// Alpha returns the color's alpha channel, or the channel type's unit
	// value (full opacity) for a color with no alpha channel.
	Alpha() A
	// WithAlpha returns a copy of the color with its alpha channel replaced.
	// Colors with no alpha channel ignore the argument and return
	// themselves unchanged.
	WithAlpha(a A) C
	// MulAlpha returns a copy of the color with every channel, including
	// alpha, scaled by factor (a value in [0,1] expressed in A's own
	// range), implementing premultiplication for blending.
	MulAlpha(factor A) C
}

// unit returns the "fully opaque" / multiplicative-identity value for a
// Numeric channel type: 1 for floating types, the maximum representable
// value for integer types. Grounds color premultiplication math the same
// way regardless of whether the channel is a float in [0,1] or an integer
// in [0,max].
func unit[T Numeric]() T {
	var z T
	switch p := any(&z).(type) {
	case *uint8:
		*p = 255
	case *uint16:
		*p = 65535
	case *uint32:
		*p = 4294967295
	case *uint64:
		*p = 18446744073709551615
	case *uint:
		*p = ^uint(0)
	case *int8:
		*p = 127
	case *int16:
		*p = 32767
	case *int32:
		*p = 2147483647
	case *int64:
		*p = 9223372036854775807
	case *int:
		*p = int(^uint(0) >> 1)
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	}
	return z
}

// scaleChannel multiplies a channel value by factor/unit, rounding to the
// nearest representable value for integer channel types.
func scaleChannel[T Numeric](value, factor T) T {
	switch any(value).(type) {
	case float32, float64:
		return value * factor / unit[T]()
	default:
		vf := float64(toFloat(value))
		ff := float64(toFloat(factor))
		uf := float64(toFloat(unit[T]()))
		return fromFloat[T](vf * ff / uf)
	}
}

func toFloat[T Numeric](v T) float64 {
	switch x := any(v).(type) {
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case uint:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return 0
}

func fromFloat[T Numeric](f float64) T {
	var z T
	switch p := any(&z).(type) {
	case *int8:
		*p = int8(f + 0.5)
	case *int16:
		*p = int16(f + 0.5)
	case *int32:
		*p = int32(f + 0.5)
	case *int64:
		*p = int64(f + 0.5)
	case *int:
		*p = int(f + 0.5)
	case *uint8:
		*p = uint8(f + 0.5)
	case *uint16:
		*p = uint16(f + 0.5)
	case *uint32:
		*p = uint32(f + 0.5)
	case *uint64:
		*p = uint64(f + 0.5)
	case *uint:
		*p = uint(f + 0.5)
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	}
	return z
}

// RGBA is a 4-channel color with alpha, the Go analogue of
// `original_source/src/image/color.rs`'s `Rgba<T>`.
type RGBA[T Numeric] struct {
	R, G, B, A T
}

// Alpha returns the alpha channel.
func (c RGBA[T]) Alpha() T { return c.A }

// WithAlpha returns a copy with the alpha channel replaced.
func (c RGBA[T]) WithAlpha(a T) RGBA[T] { c.A = a; return c }

// MulAlpha returns a copy with every channel, including alpha, scaled by
// factor.
func (c RGBA[T]) MulAlpha(factor T) RGBA[T] {
	return RGBA[T]{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
		A: scaleChannel(c.A, factor),
	}
}

// RGB is a 3-channel color with no alpha; its Alpha is always the unit
// (fully opaque) value and WithAlpha is a no-op, matching `Rgb<T>`'s
// alpha-less impl in the original source.
type RGB[T Numeric] struct {
	R, G, B T
}

// Alpha returns the channel type's unit value: RGB has no alpha channel.
func (c RGB[T]) Alpha() T { return unit[T]() }

// WithAlpha returns c unchanged: RGB has no alpha channel to replace.
func (c RGB[T]) WithAlpha(T) RGB[T] { return c }

// MulAlpha returns a copy with every channel scaled by factor.
func (c RGB[T]) MulAlpha(factor T) RGB[T] {
	return RGB[T]{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

// Luma is a single-channel grayscale color with no alpha.
type Luma[T Numeric] struct {
	L T
}

// Alpha returns the channel type's unit value: Luma has no alpha channel.
func (c Luma[T]) Alpha() T { return unit[T]() }

// WithAlpha returns c unchanged: Luma has no alpha channel to replace.
func (c Luma[T]) WithAlpha(T) Luma[T] { return c }

// MulAlpha returns a copy with the luma channel scaled by factor.
func (c Luma[T]) MulAlpha(factor T) Luma[T] {
	return Luma[T]{L: scaleChannel(c.L, factor)}
}

// LumaA is a grayscale color with an explicit alpha channel.
type LumaA[T Numeric] struct {
	L, A T
}

// Alpha returns the alpha channel.
func (c LumaA[T]) Alpha() T { return c.A }

// WithAlpha returns a copy with the alpha channel replaced.
func (c LumaA[T]) WithAlpha(a T) LumaA[T] { c.A = a; return c }

// MulAlpha returns a copy with both channels scaled by factor.
func (c LumaA[T]) MulAlpha(factor T) LumaA[T] {
	return LumaA[T]{
		L: scaleChannel(c.L, factor),
		A: scaleChannel(c.A, factor),
	}
}
