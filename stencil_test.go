package stencil

import "testing"

func TestTestString(t *testing.T) {
	tests := []struct {
		name string
		test Test
		want string
	}{
		{"AlwaysPass", TestAlwaysPass, "AlwaysPass"},
		{"AlwaysFail", TestAlwaysFail, "AlwaysFail"},
		{"IfEqual", TestIfEqual, "IfEqual"},
		{"IfNotEqual", TestIfNotEqual, "IfNotEqual"},
		{"IfLess", TestIfLess, "IfLess"},
		{"IfLessOrEqual", TestIfLessOrEqual, "IfLessOrEqual"},
		{"IfMore", TestIfMore, "IfMore"},
		{"IfMoreOrEqual", TestIfMoreOrEqual, "IfMoreOrEqual"},
		{"Unknown", Test(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.test.String(); got != tt.want {
				t.Errorf("Test(%d).String() = %q, want %q", tt.test, got, tt.want)
			}
		})
	}
}

func TestOperationString(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want string
	}{
		{"Keep", OperationKeep, "Keep"},
		{"Zero", OperationZero, "Zero"},
		{"Replace", OperationReplace, "Replace"},
		{"Increment", OperationIncrement, "Increment"},
		{"Decrement", OperationDecrement, "Decrement"},
		{"Invert", OperationInvert, "Invert"},
		{"Unknown", Operation(99), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("Operation(%d).String() = %q, want %q", tt.op, got, tt.want)
			}
		})
	}
}

func TestZeroValuesDisableStencilTesting(t *testing.T) {
	// The zero values of Test and Operation are AlwaysPass and Keep, so a
	// zero FaceState passes everything and never writes.
	var fs FaceState
	if fs.Test != TestAlwaysPass {
		t.Errorf("zero Test = %v, want AlwaysPass", fs.Test)
	}
	for _, op := range []Operation{fs.FailOp, fs.DepthFailOp, fs.PassOp} {
		if op != OperationKeep {
			t.Errorf("zero Operation = %v, want Keep", op)
		}
	}
}
