package ast

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeJSON reads a program document from r.
func DecodeJSON(r io.Reader) (*Program, error) {
	var p Program
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	return &p, nil
}

// DecodeYAML reads a YAML program document from r.
func DecodeYAML(r io.Reader) (*Program, error) {
	var p Program
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	return &p, nil
}

// UnmarshalJSON decodes a node. The "value" key is shape dependent (a
// nested node for Assignment, a scalar for Literal) so it is captured
// raw and resolved once the shape is known.
func (n *Node) UnmarshalJSON(data []byte) error {
	var w struct {
		ID       NodeID          `json:"id"`
		Shape    Shape           `json:"shape"`
		Value    json.RawMessage `json:"value"`
		Name     string          `json:"name"`
		Callee   *Node           `json:"callee"`
		Args     []*Node         `json:"args"`
		Nodes    []*Node         `json:"nodes"`
		Bindings map[string]any  `json:"bindings"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	n.ID = w.ID
	n.Shape = w.Shape
	n.Name = w.Name
	n.Callee = w.Callee
	n.Args = w.Args
	n.Nodes = w.Nodes
	n.Bindings = w.Bindings
	if len(w.Value) == 0 || string(w.Value) == "null" {
		return nil
	}
	if w.Shape == Assignment {
		n.Operand = new(Node)
		return json.Unmarshal(w.Value, n.Operand)
	}
	return json.Unmarshal(w.Value, &n.Value)
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML documents.
func (n *Node) UnmarshalYAML(node *yaml.Node) error {
	var w struct {
		ID       NodeID         `yaml:"id"`
		Shape    Shape          `yaml:"shape"`
		Value    yaml.Node      `yaml:"value"`
		Name     string         `yaml:"name"`
		Callee   *Node          `yaml:"callee"`
		Args     []*Node        `yaml:"args"`
		Nodes    []*Node        `yaml:"nodes"`
		Bindings map[string]any `yaml:"bindings"`
	}
	if err := node.Decode(&w); err != nil {
		return err
	}
	n.ID = w.ID
	n.Shape = w.Shape
	n.Name = w.Name
	n.Callee = w.Callee
	n.Args = w.Args
	n.Nodes = w.Nodes
	n.Bindings = w.Bindings
	if w.Value.IsZero() {
		return nil
	}
	if w.Shape == Assignment {
		n.Operand = new(Node)
		return w.Value.Decode(n.Operand)
	}
	return w.Value.Decode(&n.Value)
}

// UnmarshalJSON accepts ids written as strings or numbers, so documents
// like interestIds=[2] and nodes with numeric ids decode unchanged.
func (id *NodeID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = NodeID(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("node id must be a string or number: %w", err)
	}
	*id = NodeID(num.String())
	return nil
}

// UnmarshalYAML accepts any scalar id.
func (id *NodeID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("node id must be a scalar, got %v", node.Kind)
	}
	*id = NodeID(node.Value)
	return nil
}
