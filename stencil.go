package stencil

// Test selects the comparison used to decide whether a fragment passes the
// stencil test. The test evaluates
//
//	(reference & compareMask)  CMP  (stored & compareMask)
//
// with the reference value as the left operand, CMP named by the variant,
// and stored the current stencil buffer value.
type Test int

const (
	// TestAlwaysPass accepts every fragment without comparing.
	// This is the default and effectively disables stencil testing.
	TestAlwaysPass Test = iota

	// TestAlwaysFail rejects every fragment without comparing.
	TestAlwaysFail

	// TestIfEqual passes when the masked reference equals the masked
	// stored value.
	TestIfEqual

	// TestIfNotEqual passes when the masked operands differ.
	TestIfNotEqual

	// TestIfLess passes when the masked reference is less than the
	// masked stored value.
	TestIfLess

	// TestIfLessOrEqual passes when the masked reference is less than or
	// equal to the masked stored value.
	TestIfLessOrEqual

	// TestIfMore passes when the masked reference is greater than the
	// masked stored value.
	TestIfMore

	// TestIfMoreOrEqual passes when the masked reference is greater than
	// or equal to the masked stored value.
	TestIfMoreOrEqual
)

// String returns the test name.
func (t Test) String() string {
	switch t {
	case TestAlwaysPass:
		return "AlwaysPass"
	case TestAlwaysFail:
		return "AlwaysFail"
	case TestIfEqual:
		return "IfEqual"
	case TestIfNotEqual:
		return "IfNotEqual"
	case TestIfLess:
		return "IfLess"
	case TestIfLessOrEqual:
		return "IfLessOrEqual"
	case TestIfMore:
		return "IfMore"
	case TestIfMoreOrEqual:
		return "IfMoreOrEqual"
	default:
		return "Unknown"
	}
}

// Operation selects how the stencil buffer is updated after the stencil and
// depth tests. A State carries three operations per facing direction, one
// for each outcome: stencil fail, stencil pass but depth fail, both pass.
type Operation int

const (
	// OperationKeep leaves the stored value unchanged. This is the default.
	OperationKeep Operation = iota

	// OperationZero sets the stored value to 0.
	OperationZero

	// OperationReplace sets the stored value to the configured reference.
	OperationReplace

	// OperationIncrement adds 1 to the stored value, saturating at the
	// maximum representable value for the buffer format.
	OperationIncrement

	// OperationDecrement subtracts 1 from the stored value, saturating at 0.
	OperationDecrement

	// OperationInvert replaces the stored value with its bitwise
	// complement, bounded to the buffer format's bit width.
	OperationInvert
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OperationKeep:
		return "Keep"
	case OperationZero:
		return "Zero"
	case OperationReplace:
		return "Replace"
	case OperationIncrement:
		return "Increment"
	case OperationDecrement:
		return "Decrement"
	case OperationInvert:
		return "Invert"
	default:
		return "Unknown"
	}
}
