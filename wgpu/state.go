package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/stencil"
)

// Translation errors. Translate wraps these with field context; callers
// match with errors.Is.
var (
	// ErrNoStencilComponent reports a texture format without a stencil
	// aspect.
	ErrNoStencilComponent = errors.New("wgpu: texture format has no stencil component")

	// ErrAsymmetricMasks reports per-face compare or write masks that
	// differ between facings. WebGPU carries one read mask and one write
	// mask shared by both faces, so such a State cannot be expressed.
	ErrAsymmetricMasks = errors.New("wgpu: per-face masks differ, WebGPU shares masks across faces")

	// ErrAsymmetricReference reports per-face reference values that
	// differ between facings. WebGPU sets a single reference per render
	// pass (SetStencilReference), shared by both faces.
	ErrAsymmetricReference = errors.New("wgpu: per-face references differ, WebGPU shares the reference across faces")
)

// CompareFunction maps a stencil test to the WebGPU compare function.
// WebGPU compares reference-first, the same operand order as
// [stencil.Test.Evaluate], so the mapping is direct with no operand swap.
func CompareFunction(t stencil.Test) gputypes.CompareFunction {
	switch t {
	case stencil.TestAlwaysPass:
		return gputypes.CompareFunctionAlways
	case stencil.TestAlwaysFail:
		return gputypes.CompareFunctionNever
	case stencil.TestIfEqual:
		return gputypes.CompareFunctionEqual
	case stencil.TestIfNotEqual:
		return gputypes.CompareFunctionNotEqual
	case stencil.TestIfLess:
		return gputypes.CompareFunctionLess
	case stencil.TestIfLessOrEqual:
		return gputypes.CompareFunctionLessEqual
	case stencil.TestIfMore:
		return gputypes.CompareFunctionGreater
	case stencil.TestIfMoreOrEqual:
		return gputypes.CompareFunctionGreaterEqual
	default:
		return gputypes.CompareFunctionNever
	}
}

// Operation maps a stencil operation to its HAL equivalent. Increment and
// Decrement map to the clamping variants, matching their saturating
// semantics; the wrapping variants have no counterpart in this model.
func Operation(op stencil.Operation) hal.StencilOperation {
	switch op {
	case stencil.OperationKeep:
		return hal.StencilOperationKeep
	case stencil.OperationZero:
		return hal.StencilOperationZero
	case stencil.OperationReplace:
		return hal.StencilOperationReplace
	case stencil.OperationIncrement:
		return hal.StencilOperationIncrementClamp
	case stencil.OperationDecrement:
		return hal.StencilOperationDecrementClamp
	case stencil.OperationInvert:
		return hal.StencilOperationInvert
	default:
		return hal.StencilOperationKeep
	}
}

// FaceState maps one winding-order bundle to a HAL stencil face descriptor.
// The per-face masks and reference are not part of the face descriptor in
// WebGPU; Translate lifts them to the shared descriptor fields.
func FaceState(fs stencil.FaceState) hal.StencilFaceState {
	return hal.StencilFaceState{
		Compare:     CompareFunction(fs.Test),
		FailOp:      Operation(fs.FailOp),
		DepthFailOp: Operation(fs.DepthFailOp),
		PassOp:      Operation(fs.PassOp),
	}
}

// StencilBits reports the stencil component width of a texture format, and
// whether the format has a stencil component at all.
func StencilBits(format gputypes.TextureFormat) (stencil.Format, bool) {
	switch format {
	case gputypes.TextureFormatStencil8,
		gputypes.TextureFormatDepth24PlusStencil8:
		return stencil.FormatS8, true
	default:
		return 0, false
	}
}

// Config carries the backend context needed to translate a stencil.State
// into a depth/stencil descriptor.
type Config struct {
	// Format is the depth/stencil attachment format. It must have a
	// stencil component.
	Format gputypes.TextureFormat

	// FrontFace is the pipeline's front-face winding. It decides which
	// of the two State bundles becomes StencilFront. The zero value is
	// counter-clockwise, the WebGPU default.
	FrontFace gputypes.FrontFace

	// DepthCompare is the depth test function. Leave zero to disable
	// depth testing (CompareFunctionAlways).
	DepthCompare gputypes.CompareFunction

	// DepthWriteEnabled enables depth writes.
	DepthWriteEnabled bool
}

// Translate builds the HAL depth/stencil descriptor for s.
//
// The State is validated against the stencil width of cfg.Format via
// [stencil.State.CheckBounds]; out-of-range references and masks are
// rejected, never truncated. Because WebGPU shares the read mask, write
// mask, and reference value between faces, the two bundles must agree on
// them or Translate fails.
//
// The returned reference is not part of the descriptor; set it on the
// render pass via SetStencilReference before drawing.
func Translate(s stencil.State, cfg Config) (desc *hal.DepthStencilState, reference uint32, err error) {
	f, ok := StencilBits(cfg.Format)
	if !ok {
		return nil, 0, fmt.Errorf("translate stencil state: format %v: %w",
			cfg.Format, ErrNoStencilComponent)
	}
	if err := s.CheckBounds(f); err != nil {
		stencil.Logger().Warn("wgpu: stencil state rejected", "err", err)
		return nil, 0, fmt.Errorf("translate stencil state: %w", err)
	}

	cw, ccw := s.Clockwise, s.CounterClockwise
	if cw.CompareMask != ccw.CompareMask || cw.WriteMask != ccw.WriteMask {
		return nil, 0, fmt.Errorf("translate stencil state: %w", ErrAsymmetricMasks)
	}
	if cw.Reference != ccw.Reference {
		return nil, 0, fmt.Errorf("translate stencil state: %w", ErrAsymmetricReference)
	}

	front, back := ccw, cw
	if cfg.FrontFace == gputypes.FrontFaceCW {
		front, back = cw, ccw
	}

	depthCompare := cfg.DepthCompare
	if depthCompare == gputypes.CompareFunction(0) {
		depthCompare = gputypes.CompareFunctionAlways
	}

	desc = &hal.DepthStencilState{
		Format:            cfg.Format,
		DepthWriteEnabled: cfg.DepthWriteEnabled,
		DepthCompare:      depthCompare,
		StencilFront:      FaceState(front),
		StencilBack:       FaceState(back),
		StencilReadMask:   cw.CompareMask,
		StencilWriteMask:  cw.WriteMask,
	}
	stencil.Logger().Debug("wgpu: stencil state translated",
		"format", f.String(),
		"front", front.Test.String(),
		"back", back.Test.String(),
		"reference", cw.Reference)
	return desc, cw.Reference, nil
}
