package stencil

// Evaluate reports whether a fragment passes the stencil test. Both operands
// must already be masked with the configured compare mask; the reference
// value is the left operand of the comparison.
//
// Evaluate is a total function: it never fails and has no side effects.
// Unknown variants fail, matching TestAlwaysFail.
func (t Test) Evaluate(refMasked, storedMasked uint32) bool {
	switch t {
	case TestAlwaysPass:
		return true
	case TestAlwaysFail:
		return false
	case TestIfEqual:
		return refMasked == storedMasked
	case TestIfNotEqual:
		return refMasked != storedMasked
	case TestIfLess:
		return refMasked < storedMasked
	case TestIfLessOrEqual:
		return refMasked <= storedMasked
	case TestIfMore:
		return refMasked > storedMasked
	case TestIfMoreOrEqual:
		return refMasked >= storedMasked
	default:
		return false
	}
}

// Apply computes the next stencil buffer value for one sample. current is
// the stored value, reference the configured reference value, and maxValue
// the largest value representable in the buffer format (Format.MaxValue).
// Only bits set in writeMask may differ between current and the result.
//
// Increment and Decrement saturate at maxValue and 0 rather than wrapping,
// and Invert is bounded to maxValue. Apply is a total function; unknown
// variants keep the stored value, matching OperationKeep.
func (op Operation) Apply(current, reference, writeMask, maxValue uint32) uint32 {
	var next uint32
	switch op {
	case OperationKeep:
		return current
	case OperationZero:
		next = 0
	case OperationReplace:
		next = reference
	case OperationIncrement:
		if current >= maxValue {
			next = maxValue
		} else {
			next = current + 1
		}
	case OperationDecrement:
		if current == 0 {
			next = 0
		} else {
			next = current - 1
		}
	case OperationInvert:
		next = ^current & maxValue
	default:
		return current
	}
	return (current &^ writeMask) | (next & writeMask)
}
