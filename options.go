package stencil

// Option configures a State during construction with New.
// Most options apply to both winding-order bundles; use WithClockwise or
// WithCounterClockwise to configure one bundle on its own.
//
// Example:
//
//	// Write 1 into the stencil buffer wherever a fragment lands.
//	s := stencil.New(
//	    stencil.WithReference(1),
//	    stencil.WithOperations(stencil.OperationKeep, stencil.OperationKeep,
//	        stencil.OperationReplace),
//	)
type Option func(*State)

// WithTest sets the stencil test for both facings.
func WithTest(t Test) Option {
	return func(s *State) {
		s.Clockwise.Test = t
		s.CounterClockwise.Test = t
	}
}

// WithReference sets the reference value for both facings.
func WithReference(ref uint32) Option {
	return func(s *State) {
		s.Clockwise.Reference = ref
		s.CounterClockwise.Reference = ref
	}
}

// WithCompareMask sets the compare mask for both facings.
func WithCompareMask(mask uint32) Option {
	return func(s *State) {
		s.Clockwise.CompareMask = mask
		s.CounterClockwise.CompareMask = mask
	}
}

// WithWriteMask sets the write mask for both facings.
func WithWriteMask(mask uint32) Option {
	return func(s *State) {
		s.Clockwise.WriteMask = mask
		s.CounterClockwise.WriteMask = mask
	}
}

// WithOperations sets the three per-outcome operations for both facings:
// fail runs on stencil fail, depthFail on stencil pass but depth fail,
// pass when both tests pass.
func WithOperations(fail, depthFail, pass Operation) Option {
	return func(s *State) {
		for _, face := range []*FaceState{&s.Clockwise, &s.CounterClockwise} {
			face.FailOp = fail
			face.DepthFailOp = depthFail
			face.PassOp = pass
		}
	}
}

// WithClockwise replaces the clockwise bundle.
func WithClockwise(face FaceState) Option {
	return func(s *State) {
		s.Clockwise = face
	}
}

// WithCounterClockwise replaces the counter-clockwise bundle.
func WithCounterClockwise(face FaceState) Option {
	return func(s *State) {
		s.CounterClockwise = face
	}
}
