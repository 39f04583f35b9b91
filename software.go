package stencil

// Software reference implementation of the stencil pipeline stage. Backends
// and tests use it to predict what a GPU will do with a given State; it is
// not a rasterizer and knows nothing about geometry.

// Sample executes one stencil pipeline stage step for a single buffer
// sample: it masks the operands, evaluates the configured test for the
// given facing, selects the per-outcome operation using depthPassed, and
// applies it under the write mask.
//
// stored is the current buffer value and must be within f's bit width.
// The returned pass reports whether the fragment survives the stencil
// test; next is the buffer value after the selected operation.
func (s State) Sample(facing Facing, stored uint32, depthPassed bool, f Format) (pass bool, next uint32) {
	fs := s.Face(facing)
	formatMask := f.Mask()
	compareMask := fs.CompareMask & formatMask

	pass = fs.Test.Evaluate(fs.Reference&compareMask, stored&compareMask)

	op := fs.FailOp
	if pass {
		if depthPassed {
			op = fs.PassOp
		} else {
			op = fs.DepthFailOp
		}
	}
	next = op.Apply(stored, fs.Reference&formatMask, fs.WriteMask&formatMask, f.MaxValue())
	return pass, next
}

// Buffer is a CPU stencil buffer. It mirrors what the stencil attachment
// of a render pass would hold, letting tests run a State sample-by-sample
// without a GPU.
//
// Buffer is not synchronized; confine it to one goroutine or serialize
// access externally.
type Buffer struct {
	width  int
	height int
	format Format
	values []uint32
}

// NewBuffer creates a cleared stencil buffer with the given dimensions and
// format. Width and height must be positive.
func NewBuffer(width, height int, format Format) *Buffer {
	if width <= 0 || height <= 0 {
		return nil
	}
	Logger().Debug("stencil: buffer allocated",
		"width", width, "height", height, "format", format.String())
	return &Buffer{
		width:  width,
		height: height,
		format: format,
		values: make([]uint32, width*height),
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) { return b.width, b.height }

// Format returns the buffer's stencil format.
func (b *Buffer) Format() Format { return b.format }

// Clear sets every sample to v, truncated to the buffer format.
func (b *Buffer) Clear(v uint32) {
	v &= b.format.Mask()
	for i := range b.values {
		b.values[i] = v
	}
}

// At returns the sample at (x, y). Out-of-bounds coordinates return 0.
func (b *Buffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.values[y*b.width+x]
}

// Set stores v at (x, y), truncated to the buffer format. Out-of-bounds
// coordinates are ignored.
func (b *Buffer) Set(x, y int, v uint32) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.values[y*b.width+x] = v & b.format.Mask()
}

// Apply runs one Sample step of s against the sample at (x, y) and stores
// the updated value back. It reports whether the fragment passed the
// stencil test. Out-of-bounds coordinates leave the buffer unchanged and
// fail.
func (b *Buffer) Apply(s State, facing Facing, x, y int, depthPassed bool) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	pass, next := s.Sample(facing, b.At(x, y), depthPassed, b.format)
	b.Set(x, y, next)
	return pass
}
