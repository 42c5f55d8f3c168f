package stencil

import (
	"math"
	"testing"
)

func TestRunComparisons(t *testing.T) {
	tests := []struct {
		name       string
		test       Test
		value      uint8
		mask       uint8
		wantResult bool
	}{
		{"Always passes regardless", Always, 5, 10, true},
		{"Never fails regardless", Never, 5, 5, false},
		{"LessThan stored<ref", LessThan, 10, 5, true},
		{"LessThan stored==ref", LessThan, 5, 5, false},
		{"LessThanEq stored==ref", LessThanEq, 5, 5, true},
		{"GreaterThan stored>ref", GreaterThan, 5, 10, true},
		{"GreaterThanEq stored==ref", GreaterThanEq, 5, 5, true},
		{"Equal match", Equal, 7, 7, true},
		{"Equal mismatch", Equal, 7, 8, false},
		{"NotEqual mismatch", NotEqual, 7, 8, true},
		{"NotEqual match", NotEqual, 7, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Run(tt.test, tt.value, tt.mask); got != tt.wantResult {
				t.Errorf("Run(%v, value=%d, mask=%d) = %v, want %v", tt.test, tt.value, tt.mask, got, tt.wantResult)
			}
		})
	}
}

func TestRunNoOpStencilAlwaysPasses(t *testing.T) {
	tests := []Test{Always, Never, LessThan, Equal, NotEqual}
	for _, test := range tests {
		if !Run(test, struct{}{}, struct{}{}) {
			t.Errorf("Run(%v, struct{}{}, struct{}{}) = false, want true (no-op stencil always passes)", test)
		}
	}
}

func TestApplyKeep(t *testing.T) {
	if got := Apply[uint8](Keep, 42, 99); got != 42 {
		t.Errorf("Apply(Keep, 42, 99) = %d, want 42", got)
	}
}

func TestApplyZero(t *testing.T) {
	if got := Apply[uint8](ZeroOp, 42, 99); got != 0 {
		t.Errorf("Apply(Zero, 42, 99) = %d, want 0", got)
	}
}

func TestApplyReplace(t *testing.T) {
	if got := Apply[uint8](Replace, 42, 99); got != 99 {
		t.Errorf("Apply(Replace, 42, 99) = %d, want 99", got)
	}
}

func TestApplyInvert(t *testing.T) {
	if got := Apply[uint8](Invert, 0x0F, 0); got != 0xF0 {
		t.Errorf("Apply(Invert, 0x0F, 0) = %#x, want 0xf0", got)
	}
}

func TestApplyIncrementWrap(t *testing.T) {
	if got := Apply[uint8](Increment(true), 255, 0); got != 0 {
		t.Errorf("Apply(Increment(wrap), 255, 0) = %d, want 0", got)
	}
}

func TestApplyIncrementSaturate(t *testing.T) {
	if got := Apply[uint8](Increment(false), 255, 0); got != 255 {
		t.Errorf("Apply(Increment(no wrap), 255, 0) = %d, want 255", got)
	}
}

func TestApplyDecrementWrap(t *testing.T) {
	if got := Apply[uint8](Decrement(true), 0, 0); got != 255 {
		t.Errorf("Apply(Decrement(wrap), 0, 0) = %d, want 255", got)
	}
}

func TestApplyDecrementSaturate(t *testing.T) {
	if got := Apply[uint8](Decrement(false), 0, 0); got != 0 {
		t.Errorf("Apply(Decrement(no wrap), 0, 0) = %d, want 0", got)
	}
}

func TestApplyDecrementSaturateInt64Min(t *testing.T) {
	if got := Apply[int64](Decrement(false), math.MinInt64, 0); got != math.MinInt64 {
		t.Errorf("Apply(Decrement(no wrap), MinInt64, 0) = %d, want MinInt64 (saturated, not wrapped to MaxInt64)", got)
	}
}

func TestApplyIncrementSaturateInt64Max(t *testing.T) {
	if got := Apply[int64](Increment(false), math.MaxInt64, 0); got != math.MaxInt64 {
		t.Errorf("Apply(Increment(no wrap), MaxInt64, 0) = %d, want MaxInt64 (saturated, not wrapped to MinInt64)", got)
	}
}

func TestApplyDecrementSaturateIntMin(t *testing.T) {
	if got := Apply[int](Decrement(false), math.MinInt, 0); got != math.MinInt {
		t.Errorf("Apply(Decrement(no wrap), MinInt, 0) = %d, want MinInt", got)
	}
}

func TestSaturatingSubNegativeOperandOverflowsHigh(t *testing.T) {
	if got := saturatingSub(int64(math.MaxInt64-1), int64(-10)); got != math.MaxInt64 {
		t.Errorf("saturatingSub(MaxInt64-1, -10) = %d, want MaxInt64", got)
	}
}

func TestSaturatingAddNegativeOperandUnderflowsLow(t *testing.T) {
	if got := saturatingAdd(int64(math.MinInt64+1), int64(-10)); got != math.MinInt64 {
		t.Errorf("saturatingAdd(MinInt64+1, -10) = %d, want MinInt64", got)
	}
}

func TestApplyNoOpStencil(t *testing.T) {
	ops := []Op{Keep, Invert, ZeroOp, Replace, Increment(true), Decrement(false)}
	for _, op := range ops {
		if got := Apply(op, struct{}{}, struct{}{}); got != (struct{}{}) {
			t.Errorf("Apply(%v, struct{}{}, struct{}{}) = %v, want struct{}{}", op, got)
		}
	}
}

func TestGenericConfig(t *testing.T) {
	cfg := NewGenericConfig(Replace, Equal)
	if cfg.GetOp() != Replace {
		t.Errorf("GetOp() = %v, want Replace", cfg.GetOp())
	}
	if cfg.GetTest() != Equal {
		t.Errorf("GetTest() = %v, want Equal", cfg.GetTest())
	}
}

func TestDisabledConfig(t *testing.T) {
	if Disabled.GetOp() != Keep {
		t.Errorf("Disabled.GetOp() = %v, want Keep", Disabled.GetOp())
	}
	if Disabled.GetTest() != Always {
		t.Errorf("Disabled.GetTest() = %v, want Always", Disabled.GetTest())
	}
}
