// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package value defines tael runtime values.
package value

import (
	"strconv"
	"strings"
)

// Value is the interface all runtime values implement.
type Value interface {
	// String returns the printable representation of the value.
	String() string
	// IsNone returns true if this is the "no value" marker.
	IsNone() bool
}

// None marks the absence of a value. It is distinct from every domain
// value, zero included: block and array evaluation filter on it.
type None struct{}

func (None) String() string { return "" }
func (None) IsNone() bool   { return true }

// Number is a numeric value. All tael literals are numeric.
type Number struct {
	Val float64
}

func (n Number) String() string { return strconv.FormatFloat(n.Val, 'f', -1, 64) }
func (n Number) IsNone() bool   { return false }

// Sequence is the ordered collection an array node produces. Undefined
// elements are dropped during construction, never stored as holes.
type Sequence struct {
	Items []Value
}

func (s Sequence) String() string {
	parts := make([]string, len(s.Items))
	for i, item := range s.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
func (s Sequence) IsNone() bool { return false }

// HostOp is a callable supplied from outside the DSL via the bindings
// mapping. Application is binary: exactly two operands, either of which
// may be None when the call site supplied fewer arguments.
type HostOp struct {
	Name string
	Fn   func(x, y Value) (Value, error)
}

func (h HostOp) String() string { return "op:" + h.Name }
func (h HostOp) IsNone() bool   { return false }

// Numeric reports whether v is one of the numeric types a decoded
// program document can carry, returning its float64 form.
func Numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case Number:
		return x.Val, true
	}
	return 0, false
}

// FromAny converts a host-supplied binding into a Value. Values pass
// through, Go numbers become Number, and bare binary functions become
// anonymous host operations. Anything else binds as None.
func FromAny(v any) Value {
	if v == nil {
		return None{}
	}
	if val, ok := v.(Value); ok {
		return val
	}
	if fn, ok := v.(func(x, y Value) (Value, error)); ok {
		return HostOp{Name: "anonymous", Fn: fn}
	}
	if f, ok := Numeric(v); ok {
		return Number{Val: f}
	}
	return None{}
}
