package stencil

import "testing"

func TestDefaultDisablesStencilTesting(t *testing.T) {
	s := Default()
	for _, facing := range []Facing{FacingClockwise, FacingCounterClockwise} {
		fs := s.Face(facing)
		if fs.Test != TestAlwaysPass {
			t.Errorf("%v Test = %v, want AlwaysPass", facing, fs.Test)
		}
		if fs.Reference != 0 {
			t.Errorf("%v Reference = %d, want 0", facing, fs.Reference)
		}
		if fs.CompareMask != 0xFF {
			t.Errorf("%v CompareMask = 0x%X, want 0xFF", facing, fs.CompareMask)
		}
		if fs.WriteMask != 0xFF {
			t.Errorf("%v WriteMask = 0x%X, want 0xFF", facing, fs.WriteMask)
		}
		for _, op := range []Operation{fs.FailOp, fs.DepthFailOp, fs.PassOp} {
			if op != OperationKeep {
				t.Errorf("%v operation = %v, want Keep", facing, op)
			}
		}
	}
}

func TestDefaultLeavesBufferUntouched(t *testing.T) {
	// The default configuration must pass every fragment and never
	// modify the stored value, for both facings and both depth outcomes.
	s := Default()
	for _, facing := range []Facing{FacingClockwise, FacingCounterClockwise} {
		for _, depthPassed := range []bool{true, false} {
			for _, stored := range []uint32{0, 1, 0x7F, 0xFF} {
				pass, next := s.Sample(facing, stored, depthPassed, FormatS8)
				if !pass {
					t.Errorf("default %v stored=%d: pass = false, want true", facing, stored)
				}
				if next != stored {
					t.Errorf("default %v stored=%d: next = %d, want unchanged", facing, stored, next)
				}
			}
		}
	}
}

func TestFaceSelection(t *testing.T) {
	s := Default()
	s.Clockwise.Reference = 1
	s.CounterClockwise.Reference = 2

	if got := s.Face(FacingClockwise).Reference; got != 1 {
		t.Errorf("Face(Clockwise).Reference = %d, want 1", got)
	}
	if got := s.Face(FacingCounterClockwise).Reference; got != 2 {
		t.Errorf("Face(CounterClockwise).Reference = %d, want 2", got)
	}
	// Unknown facings fall back to the clockwise bundle.
	if got := s.Face(Facing(99)).Reference; got != 1 {
		t.Errorf("Face(unknown).Reference = %d, want 1", got)
	}
}

func TestFacingString(t *testing.T) {
	tests := []struct {
		name   string
		facing Facing
		want   string
	}{
		{"Clockwise", FacingClockwise, "Clockwise"},
		{"CounterClockwise", FacingCounterClockwise, "CounterClockwise"},
		{"Unknown", Facing(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.facing.String(); got != tt.want {
				t.Errorf("Facing(%d).String() = %q, want %q", tt.facing, got, tt.want)
			}
		})
	}
}

func TestStateIsAValue(t *testing.T) {
	// Copies are independent: mutating one never affects the other.
	a := New(WithReference(5))
	b := a
	b.Clockwise.Reference = 9

	if a.Clockwise.Reference != 5 {
		t.Errorf("copy mutation leaked: a.Clockwise.Reference = %d, want 5", a.Clockwise.Reference)
	}
	if b.CounterClockwise.Reference != 5 {
		t.Errorf("b.CounterClockwise.Reference = %d, want 5", b.CounterClockwise.Reference)
	}
}
