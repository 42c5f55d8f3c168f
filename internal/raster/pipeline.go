package raster

import (
	"github.com/gogpu/softraster/attach"
	"github.com/gogpu/softraster/blend"
	"github.com/gogpu/softraster/framebuffer"
	"github.com/gogpu/softraster/geometry"
	"github.com/gogpu/softraster/stencil"
)

// visit runs the per-pixel pipeline against one covered pixel: stencil
// test, depth test, fragment invocation, blend, write-back. Every exit
// path applies the stencil op against the cell's stored value before
// returning; only a fragment that survives every test additionally
// writes color and depth. Grounded on original_source/src/fragment.rs's
// `Pipeline::run_fragment`.
func visit[S geometry.Scalar, K geometry.Interpolatable[S], C any, D attach.Depthlike, St attach.Stencillike, U any](
	fb framebuffer.Writer[C, D, St],
	args Arguments[St],
	index uint32,
	sv geometry.ScreenVertex[S, K],
	depth float64,
	coverageAlpha float64,
	fragmentFn Func[S, K, C, U],
	uniforms U,
	blendOp blend.Blend[C],
) {
	stored := fb.UncheckedStencil(index)

	if !stencil.Run(args.StencilTest, args.StencilValue, stored) {
		fb.UncheckedSetStencil(index, stencil.Apply(args.StencilOp, stored, args.StencilValue))
		return
	}

	d, err := attach.FromScalar[D](depth)
	if err != nil {
		// A depth value the target type cannot represent can never be
		// "closer" than whatever is already stored.
		fb.UncheckedSetStencil(index, stencil.Apply(args.StencilOp, stored, args.StencilValue))
		return
	}

	storedDepth := fb.UncheckedDepth(index)
	if !attach.Greater(d, storedDepth) {
		fb.UncheckedSetStencil(index, stencil.Apply(args.StencilOp, stored, args.StencilValue))
		return
	}

	frag := fragmentFn(sv, uniforms)
	if frag.IsDiscard() {
		fb.UncheckedSetStencil(index, stencil.Apply(args.StencilOp, stored, args.StencilValue))
		return
	}

	blended := blendOp.Blend(frag.Value(), fb.UncheckedColor(index), coverageAlpha)
	fb.UncheckedSetColor(index, blended)
	fb.UncheckedSetDepth(index, d)
	fb.UncheckedSetStencil(index, stencil.Apply(args.StencilOp, stored, args.StencilValue))
}
