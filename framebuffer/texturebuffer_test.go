package framebuffer

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/softraster/attach"
	"github.com/gogpu/softraster/geometry"
)

func TestTextureBufferPlaneScatterGather(t *testing.T) {
	dims := geometry.NewDimensions(2, 2)
	tb, err := NewTextureBuffer[attach.RGBA[uint8], float32, uint8](dims, []PlaneSpec{
		{Name: "albedo", Format: gputypes.TextureFormatRGBA8Unorm},
		{Name: "emissive", Format: gputypes.TextureFormatRGBA8Unorm},
	})
	if err != nil {
		t.Fatalf("NewTextureBuffer: %v", err)
	}

	coord := geometry.NewCoordinate(1, 1)
	idx := coord.Index(dims)
	values := []attach.RGBA[uint8]{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 1, G: 2, B: 3, A: 255},
	}
	tb.UncheckedSetColor(idx, values)

	got := tb.UncheckedColor(idx)
	if len(got) != 2 || got[0] != values[0] || got[1] != values[1] {
		t.Fatalf("UncheckedColor(%d) = %+v, want %+v", idx, got, values)
	}

	albedo, err := tb.Plane("albedo")
	if err != nil {
		t.Fatalf("Plane(albedo): %v", err)
	}
	if got := albedo.UncheckedColor(idx); got != values[0] {
		t.Errorf("albedo plane at %d = %+v, want %+v", idx, got, values[0])
	}
	if got := albedo.Format(); got != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("albedo.Format() = %v, want RGBA8Unorm", got)
	}
}

func TestTextureBufferDuplicatePlaneNameRejected(t *testing.T) {
	dims := geometry.NewDimensions(2, 2)
	_, err := NewTextureBuffer[attach.RGBA[uint8], float32, uint8](dims, []PlaneSpec{
		{Name: "color"},
		{Name: "color"},
	})
	if err == nil {
		t.Fatal("NewTextureBuffer with duplicate plane names: want error, got nil")
	}
}

func TestTextureBufferUnknownPlane(t *testing.T) {
	dims := geometry.NewDimensions(2, 2)
	tb, err := NewTextureBuffer[attach.RGBA[uint8], float32, uint8](dims, []PlaneSpec{{Name: "color"}})
	if err != nil {
		t.Fatalf("NewTextureBuffer: %v", err)
	}
	if _, err := tb.Plane("missing"); !errors.Is(err, ErrPlaneNotFound) {
		t.Errorf("Plane(missing) err = %v, want ErrPlaneNotFound", err)
	}
}

func TestTextureBufferClear(t *testing.T) {
	dims := geometry.NewDimensions(3, 3)
	tb, err := NewTextureBuffer[attach.RGBA[uint8], float32, uint8](dims, []PlaneSpec{{Name: "color"}})
	if err != nil {
		t.Fatalf("NewTextureBuffer: %v", err)
	}
	clearColor := attach.RGBA[uint8]{R: 1, G: 2, B: 3, A: 4}
	tb.Clear([]attach.RGBA[uint8]{clearColor})

	for i := uint32(0); i < dims.Area(); i++ {
		if got := tb.UncheckedColor(i); got[0] != clearColor {
			t.Fatalf("cell %d color = %+v, want %+v", i, got[0], clearColor)
		}
		if got := tb.UncheckedStencil(i); got != 0 {
			t.Fatalf("cell %d stencil = %v, want 0", i, got)
		}
	}
}

func TestRGBAF32TextureReadyInstantiation(t *testing.T) {
	tb, err := NewRGBAF32Texture(geometry.NewDimensions(4, 4))
	if err != nil {
		t.Fatalf("NewRGBAF32Texture: %v", err)
	}
	if names := tb.PlaneNames(); len(names) != 1 || names[0] != "color" {
		t.Errorf("PlaneNames() = %v, want [\"color\"]", names)
	}
}
