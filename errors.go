package stencil

import (
	"errors"
	"fmt"
)

// Configuration errors reported by CheckBounds. Backends wrap these with
// their own context; callers match with errors.Is.
var (
	// ErrReferenceOutOfRange reports a reference value wider than the
	// stencil buffer format.
	ErrReferenceOutOfRange = errors.New("stencil: reference value exceeds format bit width")

	// ErrCompareMaskOutOfRange reports a compare mask wider than the
	// stencil buffer format.
	ErrCompareMaskOutOfRange = errors.New("stencil: compare mask exceeds format bit width")

	// ErrWriteMaskOutOfRange reports a write mask wider than the stencil
	// buffer format.
	ErrWriteMaskOutOfRange = errors.New("stencil: write mask exceeds format bit width")
)

// CheckBounds verifies that every reference value and mask in s fits the
// bit width of f. A State never validates itself at construction time
// because the buffer format is backend context; backends call CheckBounds
// at the point the configuration is consumed and must refuse to program
// GPU state from a State that fails it. Out-of-range fields are rejected,
// never truncated: dropping stencil bits silently would render wrong.
func (s State) CheckBounds(f Format) error {
	if err := s.Clockwise.checkBounds(f, FacingClockwise); err != nil {
		return err
	}
	return s.CounterClockwise.checkBounds(f, FacingCounterClockwise)
}

func (fs FaceState) checkBounds(f Format, facing Facing) error {
	maxValue := f.MaxValue()
	if fs.Reference > maxValue {
		return fmt.Errorf("%v reference 0x%X does not fit %v: %w",
			facing, fs.Reference, f, ErrReferenceOutOfRange)
	}
	if fs.CompareMask > maxValue {
		return fmt.Errorf("%v compare mask 0x%X does not fit %v: %w",
			facing, fs.CompareMask, f, ErrCompareMaskOutOfRange)
	}
	if fs.WriteMask > maxValue {
		return fmt.Errorf("%v write mask 0x%X does not fit %v: %w",
			facing, fs.WriteMask, f, ErrWriteMaskOutOfRange)
	}
	return nil
}
