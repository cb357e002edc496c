// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"
	"math"

	"nickandperla.net/tael/internal/value"
)

// DefaultBindings returns the standard host operations injected into
// the root scope unless the caller opts out. The language has no
// operation syntax of its own, so arithmetic arrives this way.
func DefaultBindings() map[string]any {
	ops := []value.HostOp{
		numericOp("add", func(a, b float64) (float64, error) { return a + b, nil }),
		numericOp("sub", func(a, b float64) (float64, error) { return a - b, nil }),
		numericOp("mul", func(a, b float64) (float64, error) { return a * b, nil }),
		numericOp("div", func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return a / b, nil
		}),
		numericOp("mod", func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return math.Mod(a, b), nil
		}),
		numericOp("pow", func(a, b float64) (float64, error) { return math.Pow(a, b), nil }),
		numericOp("min", func(a, b float64) (float64, error) { return math.Min(a, b), nil }),
		numericOp("max", func(a, b float64) (float64, error) { return math.Max(a, b), nil }),
	}

	bindings := make(map[string]any, len(ops))
	for _, op := range ops {
		bindings[op.Name] = op
	}
	return bindings
}

// numericOp wraps a float function as a host operation that insists on
// two defined numeric operands.
func numericOp(name string, fn func(a, b float64) (float64, error)) value.HostOp {
	return value.HostOp{
		Name: name,
		Fn: func(x, y value.Value) (value.Value, error) {
			a, ok := asNumber(x)
			if !ok {
				return nil, fmt.Errorf("%s: first operand is not a number", name)
			}
			b, ok := asNumber(y)
			if !ok {
				return nil, fmt.Errorf("%s: second operand is not a number", name)
			}
			f, err := fn(a, b)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return value.Number{Val: f}, nil
		},
	}
}

func asNumber(v value.Value) (float64, bool) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, false
	}
	return n.Val, true
}
