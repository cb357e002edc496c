package eval

import (
	"errors"
	"fmt"

	"nickandperla.net/tael/internal/ast"
)

// Error kinds. Each is local to a single node's evaluation and is
// contained at the nearest dispatch boundary: it becomes a diagnostic
// plus a None result, never an unwound failure.
var (
	// ErrTypeMismatch reports a literal whose value is not numeric.
	ErrTypeMismatch = errors.New("value is not numeric")
	// ErrInvalidPosition reports an assignment outside a block.
	ErrInvalidPosition = errors.New("assignment outside a block")
	// ErrNotAFunction reports a callee bound to a non-invocable value.
	ErrNotAFunction = errors.New("callee is not invocable")
	// ErrOperation wraps a failure raised by an invoked host operation.
	ErrOperation = errors.New("host operation failed")
)

// Diagnostic records one contained evaluation failure.
type Diagnostic struct {
	NodeID ast.NodeID
	Shape  ast.Shape
	Err    error
}

func (d Diagnostic) String() string {
	id := string(d.NodeID)
	if id == "" {
		id = "?"
	}
	return fmt.Sprintf("node %s (%s): %v", id, d.Shape, d.Err)
}

// DiagnosticSink receives contained evaluation failures.
type DiagnosticSink func(Diagnostic)
