// Package attach defines the Color, Depth, and Stencil capability
// contracts a framebuffer's per-pixel attachment types must satisfy:
// Numeric/Depthlike/Stencillike constrain which concrete types may fill
// each role, and Color[C,A] constrains premultiplied-alpha channel
// arithmetic. It is the Go analogue of
// `original_source/src/framebuffer/attachments/` and
// `original_source/src/image/color.rs`: rather than re-deriving the
// source's per-type trait impl macros, the numeric primitives are
// parameterized generically (see geometry.Scalar for the same choice on
// vertex scalars), matching the "preserve via the target language's
// parametric-polymorphism facility" option in spec §9's design notes.
// Color, Depth, and Stencil attachment types are supplied directly as
// separate type parameters to framebuffer.Writer and Stage rather than
// bundled into a shared struct (spec §9's "two distinct framebuffer type
// families" resolution, see DESIGN.md).
package attach

import "golang.org/x/exp/constraints"

// Numeric is the set of scalar types usable as a color channel, depth, or
// stencil element: every signed/unsigned integer width and both floating
// widths, mirroring the widths `original_source/src/stencil.rs`'s
// `impl_stencil!` and `framebuffer/attachments/depth.rs`'s
// `impl_depth_primitives!` macros enumerate by hand.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Depthlike is the set of types usable as a Depth attachment: any Numeric
// scalar, or the empty struct standing in for Rust's `()` no-op attachment
// (spec §3, Depth capability: "`()` is a valid no-op depth").
type Depthlike interface {
	Numeric | ~struct{}
}

// Stencillike is the set of types usable as a Stencil attachment: any
// integer width (stencil values are bitmask-like; floating types have no
// meaningful bitwise-not, matching the original's `impl_stencil!` list
// which never includes f32/f64), or the empty struct no-op.
type Stencillike interface {
	constraints.Integer | ~struct{}
}
