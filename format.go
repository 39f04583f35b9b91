package stencil

// Format describes the bit width of a stencil buffer. The width bounds
// every reference value and mask in a State and the saturation ceiling of
// OperationIncrement and OperationInvert.
//
// The zero value is FormatS8, the width of every WebGPU stencil format and
// by far the most common on GPUs. The narrower and wider widths exist for
// backends over APIs with legacy stencil-index renderbuffer formats.
type Format int

const (
	// FormatS8 is an 8-bit stencil buffer (e.g. Stencil8,
	// Depth24PlusStencil8). This is the default.
	FormatS8 Format = iota

	// FormatS1 is a 1-bit stencil buffer.
	FormatS1

	// FormatS4 is a 4-bit stencil buffer.
	FormatS4

	// FormatS16 is a 16-bit stencil buffer.
	FormatS16
)

// Bits returns the stencil bit width. Unknown formats report 8 bits.
func (f Format) Bits() int {
	switch f {
	case FormatS1:
		return 1
	case FormatS4:
		return 4
	case FormatS16:
		return 16
	default:
		return 8
	}
}

// MaxValue returns the largest value representable in the format.
func (f Format) MaxValue() uint32 {
	return 1<<uint(f.Bits()) - 1
}

// Mask returns the bitmask covering every bit of the format. It equals
// MaxValue and exists for call sites where the mask reading is clearer.
func (f Format) Mask() uint32 {
	return f.MaxValue()
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatS8:
		return "S8"
	case FormatS1:
		return "S1"
	case FormatS4:
		return "S4"
	case FormatS16:
		return "S16"
	default:
		return "Unknown"
	}
}
