package blend

import (
	"testing"

	"github.com/gogpu/softraster/attach"
)

func TestSourceOverU8FullyOpaqueSourceReplacesDestination(t *testing.T) {
	src := attach.RGBA[uint8]{R: 10, G: 20, B: 30, A: 255}
	dst := attach.RGBA[uint8]{R: 200, G: 200, B: 200, A: 255}

	got := (SourceOverU8{}).Blend(src, dst, 1.0)
	if got.R != 10 || got.G != 20 || got.B != 30 || got.A != 255 {
		t.Errorf("Blend(opaque src, dst, 1.0) = %+v, want %+v", got, src)
	}
}

func TestSourceOverU8ZeroCoverageKeepsDestination(t *testing.T) {
	src := attach.RGBA[uint8]{R: 255, G: 0, B: 0, A: 255}
	dst := attach.RGBA[uint8]{R: 0, G: 255, B: 0, A: 255}

	got := (SourceOverU8{}).Blend(src, dst, 0.0)
	if got != dst {
		t.Errorf("Blend(src, dst, 0.0) = %+v, want dst %+v unchanged", got, dst)
	}
}

func TestSourceOverU8HalfCoverageBlends(t *testing.T) {
	src := attach.RGBA[uint8]{R: 255, G: 0, B: 0, A: 255}
	dst := attach.RGBA[uint8]{R: 0, G: 0, B: 0, A: 255}

	got := (SourceOverU8{}).Blend(src, dst, 0.5)
	if got.R < 120 || got.R > 135 {
		t.Errorf("Blend(src, dst, 0.5).R = %d, want roughly half of 255", got.R)
	}
}

func TestSourceOverF64FullyOpaqueSourceReplacesDestination(t *testing.T) {
	src := attach.RGBA[float64]{R: 1, G: 0, B: 0, A: 1}
	dst := attach.RGBA[float64]{R: 0, G: 0, B: 1, A: 1}

	got := (SourceOverF64{}).Blend(src, dst, 1.0)
	if got != src {
		t.Errorf("Blend(opaque src, dst, 1.0) = %+v, want %+v", got, src)
	}
}

func TestSourceOverF64TransparentSourceLeavesDestination(t *testing.T) {
	src := attach.RGBA[float64]{R: 1, G: 1, B: 1, A: 0}
	dst := attach.RGBA[float64]{R: 0.2, G: 0.3, B: 0.4, A: 1}

	got := (SourceOverF64{}).Blend(src, dst, 1.0)
	if got != dst {
		t.Errorf("Blend(transparent src, dst, 1.0) = %+v, want unchanged dst %+v", got, dst)
	}
}

func TestBlendInterfaceSatisfaction(t *testing.T) {
	var _ Blend[attach.RGBA[uint8]] = SourceOverU8{}
	var _ Blend[attach.RGBA[float64]] = SourceOverF64{}
}
