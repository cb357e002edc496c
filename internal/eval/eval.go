// Package eval implements the tael evaluator.
package eval

import (
	"fmt"
	"os"

	"nickandperla.net/tael/internal/ast"
	"nickandperla.net/tael/internal/value"
)

// Evaluator walks tael syntax trees. Evaluation is synchronous and
// recursion depth tracks AST depth; pathologically deep trees exhaust
// the stack rather than erroring.
type Evaluator struct {
	diag DiagnosticSink
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithDiagnosticSink routes contained failures to sink instead of stderr.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(e *Evaluator) { e.diag = sink }
}

// New creates a new Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		diag: func(d Diagnostic) {
			fmt.Fprintf(os.Stderr, "tael: %s\n", d)
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates each top-level node of prog in order against the shared
// root scope and collects the values of the requested ids. Ids whose
// node produced no defined value are omitted, not reported as failures.
func (e *Evaluator) Run(prog *ast.Program, interest []ast.NodeID) map[ast.NodeID]value.Value {
	root := NewScope()
	for name, v := range prog.Bindings {
		root.Set(name, value.FromAny(v))
	}
	return e.RunScope(prog.Nodes, root, interest)
}

// RunScope evaluates top-level nodes against an existing root scope.
// The root behaves as a block: assignments are legal and visible to
// later top-level siblings.
func (e *Evaluator) RunScope(nodes []*ast.Node, root *Scope, interest []ast.NodeID) map[ast.NodeID]value.Value {
	want := make(map[ast.NodeID]bool, len(interest))
	for _, id := range interest {
		want[id] = true
	}

	parent := &ast.Node{Shape: ast.Block, Nodes: nodes}
	results := make(map[ast.NodeID]value.Value)
	for _, n := range nodes {
		v := e.Evaluate(n, parent, root)
		if want[n.ID] && !v.IsNone() {
			results[n.ID] = v
		}
	}
	return results
}

// Evaluate dispatches node to its shape evaluator. Any failure from a
// sub-evaluator stops here: it is reported through the diagnostic sink
// and converted to None, so a malformed sub-node degrades its containing
// expression instead of aborting the run.
func (e *Evaluator) Evaluate(node, parent *ast.Node, scope *Scope) value.Value {
	if node == nil {
		return value.None{}
	}
	v, err := e.dispatch(node, parent, scope)
	if err != nil {
		e.diag(Diagnostic{NodeID: node.ID, Shape: node.Shape, Err: err})
		return value.None{}
	}
	if v == nil {
		return value.None{}
	}
	return v
}

func (e *Evaluator) dispatch(node, parent *ast.Node, scope *Scope) (value.Value, error) {
	switch node.Shape {
	case ast.Literal:
		return evalLiteral(node)
	case ast.Identifier:
		return scope.Get(node.Name), nil
	case ast.Assignment:
		return e.evalAssignment(node, parent, scope)
	case ast.Function:
		return e.evalFunction(node, scope)
	case ast.Array:
		return e.evalArray(node, scope), nil
	case ast.Block:
		return e.evalBlock(node, scope), nil
	default:
		// Unrecognized shapes are a valid state: no value, no error.
		return value.None{}, nil
	}
}

// evalLiteral returns the node's numeric payload.
func evalLiteral(node *ast.Node) (value.Value, error) {
	f, ok := value.Numeric(node.Value)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrTypeMismatch, node.Value)
	}
	return value.Number{Val: f}, nil
}

// evalAssignment binds the evaluated right-hand side into the current
// scope. Legal only directly inside a block (the program root counts);
// anywhere else, argument lists and arrays included, the position is
// rejected. A right-hand side that produces no value binds nothing.
func (e *Evaluator) evalAssignment(node, parent *ast.Node, scope *Scope) (value.Value, error) {
	if parent == nil || parent.Shape != ast.Block {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPosition, node.Name)
	}
	v := e.Evaluate(node.Operand, node, scope)
	if v.IsNone() {
		return value.None{}, nil
	}
	scope.Set(node.Name, v)
	return v, nil
}

// evalFunction applies a host operation to the first two evaluated
// arguments. Arguments evaluate left to right in the caller's scope;
// they do not get a child scope. The language is binary-operation
// oriented: arity past two is ignored and missing operands pass through
// as None for the operation itself to reject or tolerate.
func (e *Evaluator) evalFunction(node *ast.Node, scope *Scope) (value.Value, error) {
	args := make([]value.Value, len(node.Args))
	for i, a := range node.Args {
		args[i] = e.Evaluate(a, node, scope)
	}

	var name string
	if node.Callee != nil {
		name = node.Callee.Name
	}
	op, ok := scope.Get(name).(value.HostOp)
	if !ok || op.Fn == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotAFunction, name)
	}

	x, y := value.Value(value.None{}), value.Value(value.None{})
	if len(args) > 0 {
		x = args[0]
	}
	if len(args) > 1 {
		y = args[1]
	}
	res, err := op.Fn(x, y)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrOperation, name, err)
	}
	if res == nil {
		return value.None{}, nil
	}
	return res, nil
}

// evalBlock runs children in order inside a child scope derived from a
// snapshot of the enclosing scope overlaid with the block's own
// bindings. The same child scope threads through every child, so
// earlier assignments are visible to later siblings. The block yields
// the last defined child value; a child producing None does not
// overwrite the tracker. A block with nothing defined yields zero.
func (e *Evaluator) evalBlock(node *ast.Node, scope *Scope) value.Value {
	child := scope.Child(node.Bindings)
	var last value.Value
	for _, n := range node.Nodes {
		if v := e.Evaluate(n, node, child); !v.IsNone() {
			last = v
		}
	}
	if last == nil {
		return value.Number{}
	}
	return last
}

// evalArray evaluates children in the given scope, unmodified, and
// collects the defined results in order. None results are dropped.
func (e *Evaluator) evalArray(node *ast.Node, scope *Scope) value.Value {
	items := make([]value.Value, 0, len(node.Nodes))
	for _, n := range node.Nodes {
		if v := e.Evaluate(n, node, scope); !v.IsNone() {
			items = append(items, v)
		}
	}
	return value.Sequence{Items: items}
}
