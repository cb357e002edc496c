package value

import "testing"

func TestNumeric(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{2.0, 2, true},
		{float32(1.5), 1.5, true},
		{3, 3, true},
		{int64(-7), -7, true},
		{uint8(255), 255, true},
		{Number{Val: 4}, 4, true},
		{"x", 0, false},
		{true, 0, false},
		{nil, 0, false},
		{[]any{1}, 0, false},
	}

	for _, tt := range tests {
		got, ok := Numeric(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Numeric(%v): expected (%v, %v), got (%v, %v)", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestFromAny(t *testing.T) {
	if v := FromAny(nil); !v.IsNone() {
		t.Errorf("expected None for nil, got %q", v.String())
	}
	if v := FromAny("text"); !v.IsNone() {
		t.Errorf("expected None for non-numeric, got %q", v.String())
	}

	if n, ok := FromAny(2.5).(Number); !ok || n.Val != 2.5 {
		t.Errorf("expected Number 2.5, got %v", FromAny(2.5))
	}

	// Values pass through untouched.
	seq := Sequence{Items: []Value{Number{Val: 1}}}
	if got := FromAny(seq); got.String() != seq.String() {
		t.Errorf("expected sequence passthrough, got %v", got)
	}

	// Bare binary functions become anonymous host operations.
	fn := func(x, y Value) (Value, error) { return x, nil }
	h, ok := FromAny(fn).(HostOp)
	if !ok {
		t.Fatalf("expected HostOp, got %T", FromAny(fn))
	}
	if h.Fn == nil {
		t.Error("host operation lost its function")
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{None{}, ""},
		{Number{Val: 2}, "2"},
		{Number{Val: -1.5}, "-1.5"},
		{Sequence{}, "[]"},
		{Sequence{Items: []Value{Number{Val: 1}, Number{Val: 3}}}, "[1 3]"},
		{HostOp{Name: "add"}, "op:add"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestIsNone(t *testing.T) {
	if !(None{}).IsNone() {
		t.Error("None must report IsNone")
	}
	for _, v := range []Value{Number{}, Sequence{}, HostOp{Name: "x"}} {
		if v.IsNone() {
			t.Errorf("%T must not report IsNone", v)
		}
	}
}
