// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package ast defines the tael syntax tree.
package ast

// Shape tags a node with its evaluation rule.
type Shape string

// The recognized shapes. The set is open: a node carrying any other
// shape stays representable and evaluates to no value.
const (
	Literal    Shape = "Literal"
	Identifier Shape = "Identifier"
	Assignment Shape = "Assignment"
	Function   Shape = "Function"
	Array      Shape = "Array"
	Block      Shape = "Block"
)

// NodeID identifies a node for result extraction. Ids are opaque and
// only need to be unique among the nodes a caller asks about.
type NodeID string

// Node is one syntax tree node. Shape selects which fields are
// meaningful; fields irrelevant to a shape are simply unused.
type Node struct {
	ID    NodeID
	Shape Shape

	// Value is the Literal payload. Expected numeric; the evaluator
	// rejects everything else.
	Value any
	// Name is the Identifier or Assignment target, and the name a
	// Function callee node is resolved by.
	Name string
	// Operand is the Assignment right-hand side. On the wire it is the
	// node's "value" key; see decode.go.
	Operand *Node
	// Callee and Args belong to Function nodes.
	Callee *Node
	Args   []*Node
	// Nodes holds Array and Block children.
	Nodes []*Node
	// Bindings seeds a Block's own scope.
	Bindings map[string]any
}

// Program is a decoded program document: the top-level nodes plus the
// root bindings that inject host operations and seed values.
type Program struct {
	Nodes    []*Node        `json:"nodes" yaml:"nodes"`
	Bindings map[string]any `json:"bindings" yaml:"bindings"`
}
