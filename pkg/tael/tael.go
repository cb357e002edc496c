package tael

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"nickandperla.net/tael/internal/ast"
	"nickandperla.net/tael/internal/eval"
	"nickandperla.net/tael/internal/store"
	"nickandperla.net/tael/internal/value"
)

// Runtime is the tael evaluator runtime.
type Runtime struct {
	evaluator  *eval.Evaluator
	store      store.Store
	sink       eval.DiagnosticSink
	bindings   map[string]any
	noDefaults bool

	// REPL session state, created on first Eval.
	session       *eval.Scope
	sessionParent *ast.Node
}

// New creates a new tael runtime with the given options.
func New(opts ...Option) *Runtime {
	r := &Runtime{bindings: make(map[string]any)}
	for _, opt := range opts {
		opt(r)
	}

	evalOpts := []eval.Option{}
	if r.sink != nil {
		evalOpts = append(evalOpts, eval.WithDiagnosticSink(r.sink))
	}
	r.evaluator = eval.New(evalOpts...)

	return r
}

// rootBindings layers caller bindings over the default host operations
// (unless disabled), and the program's own bindings over both.
func (r *Runtime) rootBindings(prog *ast.Program) map[string]any {
	merged := make(map[string]any)
	if !r.noDefaults {
		for k, v := range eval.DefaultBindings() {
			merged[k] = v
		}
	}
	for k, v := range r.bindings {
		merged[k] = v
	}
	if prog != nil {
		for k, v := range prog.Bindings {
			merged[k] = v
		}
	}
	return merged
}

// Run evaluates prog and returns the values of the requested ids.
func (r *Runtime) Run(prog *Program, interest []NodeID) map[NodeID]Value {
	merged := &ast.Program{Nodes: prog.Nodes, Bindings: r.rootBindings(prog)}
	return r.evaluator.Run(merged, interest)
}

// RunReader decodes a JSON program document from reader and runs it.
func (r *Runtime) RunReader(reader io.Reader, interest []NodeID) (map[NodeID]Value, error) {
	prog, err := ast.DecodeJSON(reader)
	if err != nil {
		return nil, err
	}
	return r.Run(prog, interest), nil
}

// RunFile runs a program file. The extension picks the format:
// .yaml and .yml decode as YAML, everything else as JSON.
func (r *Runtime) RunFile(path string, interest []NodeID) (map[NodeID]Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var prog *ast.Program
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		prog, err = ast.DecodeYAML(f)
	default:
		prog, err = ast.DecodeJSON(f)
	}
	if err != nil {
		return nil, err
	}
	return r.Run(prog, interest), nil
}

// SaveProgram persists a JSON program source under name. The source is
// decoded first so the store never holds documents that cannot run.
func (r *Runtime) SaveProgram(name, source string) error {
	if r.store == nil {
		return fmt.Errorf("no store configured")
	}
	if _, err := ast.DecodeJSON(strings.NewReader(source)); err != nil {
		return err
	}
	return r.store.Put(name, source)
}

// SaveProgramFile persists the contents of a JSON program file under name.
func (r *Runtime) SaveProgramFile(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return r.SaveProgram(name, string(data))
}

// RunStored loads a saved program by name and runs it.
func (r *Runtime) RunStored(name string, interest []NodeID) (map[NodeID]Value, error) {
	if r.store == nil {
		return nil, fmt.Errorf("no store configured")
	}
	source, err := r.store.Get(name)
	if err != nil {
		return nil, err
	}
	if source == "" {
		return nil, fmt.Errorf("program %q not found", name)
	}
	return r.RunReader(strings.NewReader(source), interest)
}

// Eval evaluates a single node against the runtime's session scope. The
// session behaves like one long-running block: assignments are legal
// and stay bound across calls. Used by the REPL.
func (r *Runtime) Eval(node *Node) Value {
	if r.session == nil {
		r.session = eval.NewScope()
		for k, v := range r.rootBindings(nil) {
			r.session.Set(k, value.FromAny(v))
		}
		r.sessionParent = &ast.Node{Shape: ast.Block}
	}
	return r.evaluator.Evaluate(node, r.sessionParent, r.session)
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}
