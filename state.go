package stencil

// Facing identifies the winding-order class of a rasterized primitive.
// Clockwise primitives are commonly front-facing and counter-clockwise
// back-facing, but the assignment belongs to the consuming pipeline.
type Facing int

const (
	// FacingClockwise selects the clockwise-winding bundle of a State.
	FacingClockwise Facing = iota

	// FacingCounterClockwise selects the counter-clockwise bundle.
	FacingCounterClockwise
)

// String returns the facing name.
func (f Facing) String() string {
	switch f {
	case FacingClockwise:
		return "Clockwise"
	case FacingCounterClockwise:
		return "CounterClockwise"
	default:
		return "Unknown"
	}
}

// FaceState is the stencil configuration for one winding-order class:
// the comparison, its operands, and the three per-outcome update
// operations.
type FaceState struct {
	// Test decides pass/fail of the stencil test.
	Test Test

	// Reference is the left operand of the comparison and the value
	// written by OperationReplace.
	Reference uint32

	// CompareMask is applied to both Reference and the stored value
	// before the comparison.
	CompareMask uint32

	// FailOp runs when the stencil test fails.
	FailOp Operation

	// DepthFailOp runs when the stencil test passes but the depth test
	// fails.
	DepthFailOp Operation

	// PassOp runs when both the stencil and depth tests pass.
	PassOp Operation

	// WriteMask restricts which bits of the stored value any of the
	// three operations may modify.
	WriteMask uint32
}

// State is a complete per-draw-call stencil configuration: one FaceState
// per winding-order class. The two bundles are independent; no invariant
// couples them.
//
// State has value semantics. Copy it freely, and treat a State as
// immutable once it has been shared with a backend or another goroutine.
type State struct {
	// Clockwise configures stencil testing for clockwise-winding
	// primitives.
	Clockwise FaceState

	// CounterClockwise configures stencil testing for
	// counter-clockwise-winding primitives.
	CounterClockwise FaceState
}

// Default returns the configuration that effectively disables stencil
// testing: every fragment passes, no operation modifies the buffer, and
// the masks cover the full default 8-bit format (FormatS8). Widen the
// masks explicitly for wider formats.
func Default() State {
	face := FaceState{
		Test:        TestAlwaysPass,
		Reference:   0,
		CompareMask: FormatS8.Mask(),
		FailOp:      OperationKeep,
		DepthFailOp: OperationKeep,
		PassOp:      OperationKeep,
		WriteMask:   FormatS8.Mask(),
	}
	return State{Clockwise: face, CounterClockwise: face}
}

// New returns Default() with the given options applied, in order.
func New(opts ...Option) State {
	s := Default()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Face returns the bundle for the given facing. Unknown facings return the
// clockwise bundle.
func (s State) Face(facing Facing) FaceState {
	if facing == FacingCounterClockwise {
		return s.CounterClockwise
	}
	return s.Clockwise
}
