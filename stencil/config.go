package stencil

// Config is a stateful stencil configuration: the operation to apply and
// the test to run against a fragment. Grounded on
// original_source/src/stencil.rs's StencilConfig trait.
type Config interface {
	GetOp() Op
	GetTest() Test
}

// GenericConfig is a Config that simply stores the Op/Test pair, the Go
// analogue of original_source's GenericStencilConfig: a concrete
// implementation callers can use directly instead of hand-rolling a
// bespoke Config type per draw call.
type GenericConfig struct {
	ConfiguredOp   Op
	ConfiguredTest Test
}

// GetOp returns the configured operation.
func (c GenericConfig) GetOp() Op { return c.ConfiguredOp }

// GetTest returns the configured test.
func (c GenericConfig) GetTest() Test { return c.ConfiguredTest }

// NewGenericConfig builds a GenericConfig, defaulting unset fields the
// way original_source's Default impl for GenericStencilConfig does: op
// Keep, test Always.
func NewGenericConfig(op Op, test Test) GenericConfig {
	return GenericConfig{ConfiguredOp: op, ConfiguredTest: test}
}

// disabled is the Config equivalent of original_source's `impl
// StencilConfig for ()`: stencil testing is always-pass, stencil writes
// are always a no-op.
type disabled struct{}

// GetOp always returns Keep.
func (disabled) GetOp() Op { return Keep }

// GetTest always returns Always.
func (disabled) GetTest() Test { return Always }

// Disabled is the Config to use when a draw call performs no stencil
// testing at all.
var Disabled Config = disabled{}
