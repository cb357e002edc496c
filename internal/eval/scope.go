// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import "nickandperla.net/tael/internal/value"

// Scope is one lexical scope: a mapping from name to value. Only the
// block (or driver) that created a scope inserts into it, and
// evaluation is single-threaded, so scopes carry no locking.
type Scope struct {
	vars map[string]value.Value
}

// NewScope creates a new empty scope.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]value.Value)}
}

// Get resolves a name. Returns None if unbound; an unbound name is not
// an error, it contributes no value.
func (s *Scope) Get(name string) value.Value {
	if v, ok := s.vars[name]; ok {
		return v
	}
	return value.None{}
}

// Set binds a name in this scope.
func (s *Scope) Set(name string, v value.Value) {
	s.vars[name] = v
}

// Has reports whether the name is bound in this scope.
func (s *Scope) Has(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Child derives a block scope: a one-time snapshot of this scope
// overlaid with the block's own declared bindings. The copy is taken
// when the block begins; later mutations on either side are invisible
// to the other.
func (s *Scope) Child(overlay map[string]any) *Scope {
	child := NewScope()
	for k, v := range s.vars {
		child.vars[k] = v
	}
	for k, v := range overlay {
		child.vars[k] = value.FromAny(v)
	}
	return child
}
