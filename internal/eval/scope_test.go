package eval

import (
	"testing"

	"nickandperla.net/tael/internal/value"
)

func TestScopeGetUnbound(t *testing.T) {
	s := NewScope()
	if v := s.Get("missing"); !v.IsNone() {
		t.Errorf("expected None for unbound name, got %q", v.String())
	}
	if s.Has("missing") {
		t.Error("Has reported an unbound name")
	}
}

func TestScopeChildSnapshot(t *testing.T) {
	parent := NewScope()
	parent.Set("a", value.Number{Val: 1})

	child := parent.Child(nil)
	wantNumber(t, child.Get("a"), 1)

	// Child mutations stay in the child.
	child.Set("b", value.Number{Val: 2})
	if parent.Has("b") {
		t.Error("child binding leaked into parent")
	}

	// The snapshot is one-time: later parent mutations are invisible.
	parent.Set("c", value.Number{Val: 3})
	if child.Has("c") {
		t.Error("child saw a parent mutation made after the snapshot")
	}

	// Rebinding in the child shadows without touching the parent.
	child.Set("a", value.Number{Val: 9})
	wantNumber(t, parent.Get("a"), 1)
}

func TestScopeChildOverlay(t *testing.T) {
	parent := NewScope()
	parent.Set("x", value.Number{Val: 1})

	child := parent.Child(map[string]any{"x": 10, "y": 2.5})
	wantNumber(t, child.Get("x"), 10)
	wantNumber(t, child.Get("y"), 2.5)
	wantNumber(t, parent.Get("x"), 1)
}

func TestScopeOverlayConversion(t *testing.T) {
	child := NewScope().Child(map[string]any{
		"op": func(x, y value.Value) (value.Value, error) { return x, nil },
		"n":  3,
	})

	if _, ok := child.Get("op").(value.HostOp); !ok {
		t.Errorf("expected host operation, got %T", child.Get("op"))
	}
	wantNumber(t, child.Get("n"), 3)
}
