// Package blend implements the compositing step of the fragment pipeline
// (spec §4.8 step 4), grounded on gogpu-gg's internal/blend source-over
// compositing, generalized from a single fixed gg.RGBA type to both an
// integer premultiplied-alpha path (uint8 channels, reusing this
// package's fast div255 math) and a floating straight-alpha path (float64
// channels, a direct port of gg's own division-based sourceOver formula).
package blend

import "github.com/gogpu/softraster/attach"

// Blend is the compositing contract the fragment pipeline invokes once
// per visited pixel: given the fragment's source color, the color already
// stored in the framebuffer, and a coverage alpha (1 for triangles and
// points, the Xiaolin Wu coverage weight for antialiased lines), produce
// the color to write back.
type Blend[C any] interface {
	Blend(src, dst C, coverageAlpha float64) C
}

// SourceOverU8 performs premultiplied-alpha source-over compositing on
// attach.RGBA[uint8] colors: S + D*(1-Sa). Source-over is the default
// compositing operator (spec §4.8 names no other), matching gg's internal
// blend package default mode.
type SourceOverU8 struct{}

// Blend composites src over dst, scaling every channel of the
// premultiplied src (alpha included) by coverageAlpha first.
func (SourceOverU8) Blend(src, dst attach.RGBA[uint8], coverageAlpha float64) attach.RGBA[uint8] {
	coverage := scaleAlphaU8(255, coverageAlpha)
	premult := src.MulAlpha(coverage)
	invA := inv255(premult.A)
	return attach.RGBA[uint8]{
		R: addClamp(premult.R, mulDiv255(dst.R, invA)),
		G: addClamp(premult.G, mulDiv255(dst.G, invA)),
		B: addClamp(premult.B, mulDiv255(dst.B, invA)),
		A: addClamp(premult.A, mulDiv255(dst.A, invA)),
	}
}

func scaleAlphaU8(a uint8, coverageAlpha float64) uint8 {
	scaled := float64(a) * coverageAlpha
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled + 0.5)
}

// SourceOverF64 performs straight-alpha (non-premultiplied) source-over
// compositing on attach.RGBA[float64] colors with channels in [0,1], a
// direct generalization of gg's own sourceOver formula:
//
//	outA = srcA + dstA*(1-srcA)
//	outC = (srcC*srcA + dstC*dstA*(1-srcA)) / outA
type SourceOverF64 struct{}

// Blend composites src over dst, scaling src's alpha channel by
// coverageAlpha first.
func (SourceOverF64) Blend(src, dst attach.RGBA[float64], coverageAlpha float64) attach.RGBA[float64] {
	srcA := src.A * coverageAlpha
	dstA := dst.A
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return attach.RGBA[float64]{}
	}

	return attach.RGBA[float64]{
		R: (src.R*srcA + dst.R*dstA*invSrcA) / outA,
		G: (src.G*srcA + dst.G*dstA*invSrcA) / outA,
		B: (src.B*srcA + dst.B*dstA*invSrcA) / outA,
		A: outA,
	}
}
