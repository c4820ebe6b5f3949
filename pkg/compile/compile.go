// Package compile walks parsed view documents and constructs the live
// widget tree: components with cascaded defaults, named colors and images,
// property and group bindings, and container layouts.
//
// The whole pipeline is single-threaded and must run on the thread that
// owns the widget toolkit. All registries live in a per-compilation
// Context; bindings and their listeners outlive the Context by reference
// from the constructed widgets and the event bus.
package compile

import (
	"github.com/chazu/bowerbird/pkg/ast"
	"github.com/chazu/bowerbird/pkg/bind"
	"github.com/chazu/bowerbird/pkg/event"
	"github.com/chazu/bowerbird/pkg/parser"
	"github.com/chazu/bowerbird/pkg/widget"
)

// Result is the outcome of one compilation. Root is nil unless the parse
// was clean: a partially constructed tree must never be presented to the
// user. Adapters is the event-dispatch registration table produced as a
// side effect of construction.
type Result struct {
	Root        *widget.Widget
	Clean       bool
	Diagnostics []Diagnostic
	Adapters    map[string]*event.Adapter
}

// Err folds the semantic diagnostics into a single error, or nil when the
// compilation was clean.
func (r *Result) Err() error {
	if r.Clean {
		return nil
	}
	ds := &diagnostics{unclean: true, list: r.Diagnostics}
	return ds.err()
}

// Widget returns a constructed widget by its declared name, nil when the
// name was never constructed.
func (r *Result) Widget(name string) *widget.Widget {
	if a, ok := r.Adapters[name]; ok {
		return a.Target
	}
	return nil
}

// Compile parses and walks a view source. Structural errors and hard
// binding failures (a wrongly typed value read from external state) are
// returned as an error; semantic problems accumulate on the Result.
func Compile(src string, env *Environment) (*Result, error) {
	doc, err := parser.ParseSource(src)
	if err != nil {
		return nil, err
	}
	return CompileDocument(doc, env)
}

// CompileDocument walks an already parsed document.
func CompileDocument(doc *ast.Document, env *Environment) (*Result, error) {
	if env == nil {
		env = NewEnvironment()
	}
	fillEnvironment(env)

	cp := &compiler{
		env:        env,
		ctx:        NewContext(env),
		imageWraps: make(map[string]*widget.Widget),
		placed:     make(map[*widget.Widget]*widget.Widget),
	}
	if err := cp.walk(doc); err != nil {
		return nil, err
	}

	res := &Result{
		Clean:       cp.ctx.diags.clean(),
		Diagnostics: cp.ctx.diags.list,
		Adapters:    cp.ctx.adapters,
	}
	if res.Clean {
		res.Root = cp.root()
	}
	return res, nil
}

// fillEnvironment backfills the collaborators an application left unset.
func fillEnvironment(env *Environment) {
	std := NewEnvironment()
	if env.Bus == nil {
		env.Bus = std.Bus
	}
	if env.Converter == nil {
		env.Converter = std.Converter
	}
	if env.Engine == nil {
		env.Engine = std.Engine
	}
	if env.Log == nil {
		env.Log = std.Log
	}
}

// compiler drives one walk over the statement tree.
type compiler struct {
	env        *Environment
	ctx        *Context
	cocoons    []*bind.Cocoon
	groups     []*bind.GroupCocoon
	imageWraps map[string]*widget.Widget
	placed     map[*widget.Widget]*widget.Widget // child -> current container
}

// walk processes statements strictly in declaration order. Semantic
// problems are accumulated so one pass reports every independent error;
// hard binding failures abort.
func (cp *compiler) walk(doc *ast.Document) error {
	for _, stmt := range doc.Stmts {
		var err error
		switch s := stmt.(type) {
		case *ast.ComponentsStmt:
			cp.walkComponents(s)
		case *ast.DefaultsStmt:
			cp.walkDefaults(s)
		case *ast.ColorsStmt:
			cp.walkColors(s)
		case *ast.ImagesStmt:
			cp.walkImages(s)
		case *ast.BindStmt:
			err = cp.walkBind(s)
		case *ast.LayoutStmt:
			cp.walkLayout(s)
		case *ast.InvokeStmt:
			cp.walkInvoke(s)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// root picks the produced root widget: the first declared frame-like
// widget, or failing that the first declared visual widget.
func (cp *compiler) root() *widget.Widget {
	if cp.ctx.rootFrame != nil {
		return cp.ctx.rootFrame
	}
	return cp.ctx.rootWidget
}
