// Package stencil models per-draw-call GPU stencil state for the GoGPU
// ecosystem.
//
// # Overview
//
// The stencil test is a per-fragment comparison between a masked reference
// value and the masked value stored in the stencil buffer. Depending on the
// outcome of the stencil test and the depth test, one of three configured
// operations updates the buffer. This package provides a typed,
// backend-agnostic description of that state, split into two independent
// bundles: one for clockwise-winding primitives and one for
// counter-clockwise.
//
// # Quick Start
//
//	import "github.com/gogpu/stencil"
//
//	// Pass where stencil == 1, increment on depth pass.
//	s := stencil.New(
//	    stencil.WithTest(stencil.TestIfEqual),
//	    stencil.WithReference(1),
//	    stencil.WithOperations(stencil.OperationKeep, stencil.OperationKeep,
//	        stencil.OperationIncrement),
//	)
//
//	// A backend translates it at draw time, e.g. via the wgpu subpackage:
//	desc, ref, err := wgpu.Translate(s, wgpu.Config{
//	    Format: gputypes.TextureFormatDepth24PlusStencil8,
//	})
//
// # Architecture
//
// The package is organized into:
//   - Value model: Test, Operation, FaceState, State, Format
//   - Pure primitives: Test.Evaluate, Operation.Apply, State.Sample
//   - Software reference: Buffer, a CPU stencil buffer for testing backends
//   - Translation: the wgpu subpackage maps State onto hal.DepthStencilState
//
// # Concurrency
//
// A State is a plain value. Build it, then share it: concurrent readers need
// no synchronization as long as no goroutine mutates a State that has
// already been published. Buffer is not synchronized; confine it to one
// goroutine or serialize access externally.
//
// # Validation
//
// Construction never validates bit-width bounds, because the stencil buffer
// format is chosen by the backend. Backends call State.CheckBounds with the
// format in use before programming GPU state; out-of-range references and
// masks are rejected, never silently truncated.
package stencil

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
