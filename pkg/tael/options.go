// Package tael provides the public API for the tael evaluator.
package tael

import (
	"fmt"
	"io"

	"nickandperla.net/tael/internal/ast"
	"nickandperla.net/tael/internal/eval"
	"nickandperla.net/tael/internal/store"
	"nickandperla.net/tael/internal/value"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithSQLiteStore configures SQLite persistence at the given path.
func WithSQLiteStore(path string) Option {
	return func(r *Runtime) {
		s, err := store.NewSQLite(path)
		if err == nil {
			r.store = s
		}
	}
}

// WithMemoryStore configures an in-memory store (for testing).
func WithMemoryStore() Option {
	return func(r *Runtime) {
		r.store = store.NewMemory()
	}
}

// WithStore configures a custom store.
func WithStore(s Store) Option {
	return func(r *Runtime) {
		r.store = s
	}
}

// WithDiagnosticSink routes evaluation diagnostics to sink.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(r *Runtime) {
		r.sink = sink
	}
}

// WithDiagnostics writes evaluation diagnostics to w, one per line.
func WithDiagnostics(w io.Writer) Option {
	return func(r *Runtime) {
		r.sink = func(d Diagnostic) {
			fmt.Fprintf(w, "%s\n", d)
		}
	}
}

// WithBinding injects a single root binding (a value or host operation)
// under name. Program documents may still override it.
func WithBinding(name string, v any) Option {
	return func(r *Runtime) {
		r.bindings[name] = v
	}
}

// WithBindings injects root bindings, overriding defaults on collision.
func WithBindings(bindings map[string]any) Option {
	return func(r *Runtime) {
		for k, v := range bindings {
			r.bindings[k] = v
		}
	}
}

// WithHostOp binds a named binary host operation.
func WithHostOp(name string, fn func(x, y Value) (Value, error)) Option {
	return func(r *Runtime) {
		r.bindings[name] = value.HostOp{Name: name, Fn: fn}
	}
}

// WithNoDefaults skips installing the default host operations.
func WithNoDefaults() Option {
	return func(r *Runtime) {
		r.noDefaults = true
	}
}

// Node is one tael syntax tree node.
type Node = ast.Node

// NodeID identifies a node for result extraction.
type NodeID = ast.NodeID

// Shape tags a node with its evaluation rule.
type Shape = ast.Shape

// Program is a decoded program document.
type Program = ast.Program

// Value is a tael runtime value.
type Value = value.Value

// Number is a numeric value.
type Number = value.Number

// Sequence is an ordered collection of values.
type Sequence = value.Sequence

// HostOp is a host-supplied binary operation.
type HostOp = value.HostOp

// None marks the absence of a value.
type None = value.None

// Diagnostic records one contained evaluation failure.
type Diagnostic = eval.Diagnostic

// DiagnosticSink receives contained evaluation failures.
type DiagnosticSink = eval.DiagnosticSink

// Store interface for custom stores.
type Store = store.Store

// The recognized node shapes.
const (
	Literal    = ast.Literal
	Identifier = ast.Identifier
	Assignment = ast.Assignment
	Function   = ast.Function
	Array      = ast.Array
	Block      = ast.Block
)

// DecodeJSON reads a program document from r.
func DecodeJSON(r io.Reader) (*Program, error) {
	return ast.DecodeJSON(r)
}

// DecodeYAML reads a YAML program document from r.
func DecodeYAML(r io.Reader) (*Program, error) {
	return ast.DecodeYAML(r)
}
