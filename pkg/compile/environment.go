package compile

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"

	"github.com/chazu/bowerbird/pkg/accessor"
	"github.com/chazu/bowerbird/pkg/bind"
	"github.com/chazu/bowerbird/pkg/event"
	"github.com/chazu/bowerbird/pkg/widget"
)

// ResourceResolver resolves an image resource name to a concrete location,
// performing any platform-qualified fallback. Resolution is an external
// collaborator's job; the compiler invokes it by name and extension only.
type ResourceResolver interface {
	Resolve(name string) (string, error)
}

// MethodCaller lets a subject or bean expose invokable methods without
// reflection. Invoke statements prefer this interface on the root object.
type MethodCaller interface {
	Call(method string) error
}

// ComponentFactory constructs widgets for aliases the built-in vocabulary
// does not cover, or replaces construction wholesale. Returning a nil
// widget with a nil error delegates back to the registered alias table.
type ComponentFactory interface {
	Construct(alias, name string) (*widget.Widget, error)
}

// Environment carries the external collaborators one compilation consumes.
// The zero value is not usable; construct with NewEnvironment and fill in
// the subjects, beans and configuration of the hosting application.
type Environment struct {
	// Subject is the primary subject expressions are rooted at by default.
	Subject interface{}
	// Secondary is the secondary subject, selected with (secondary).
	Secondary interface{}
	// Beans resolves named external beans. May be nil.
	Beans accessor.BeanLookup
	// Config resolves %{...} placeholder keys. May be nil.
	Config accessor.ConfigLookup
	// Bus dispatches refresh triggers and carries the event-adapter
	// registrations the compiler produces.
	Bus *event.Bus
	// Converter coerces literals and accessor values into property types.
	Converter bind.Converter
	// Engine evaluates embedded ={...} expressions.
	Engine accessor.ExprEngine
	// Resources resolves image resource names. May be nil; names then
	// pass through unresolved.
	Resources ResourceResolver
	// Factory, when set, constructs widgets before the alias table is
	// consulted.
	Factory ComponentFactory
	// Log receives compilation diagnostics.
	Log *slog.Logger
}

// NewEnvironment returns an environment with the standard converter, the
// built-in expression engine, a fresh event bus, and stderr logging.
func NewEnvironment() *Environment {
	return &Environment{
		Bus:       event.NewBus(),
		Converter: StdConverter{},
		Engine:    accessor.SimpleEngine{},
		Log:       slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// beanLookup returns the bean resolver, failing cleanly when none is set.
func (e *Environment) beanLookup() accessor.BeanLookup {
	if e.Beans != nil {
		return e.Beans
	}
	return func(name string) (interface{}, error) {
		return nil, fmt.Errorf("no bean lookup installed (bean %q)", name)
	}
}

// invoke locates a zero-argument method by name on root and calls it,
// ignoring any result. Roots implementing MethodCaller are preferred;
// otherwise an exported method is located dynamically.
func (e *Environment) invoke(root interface{}, method string) error {
	if root == nil {
		return fmt.Errorf("invoke %s: nil root", method)
	}
	if mc, ok := root.(MethodCaller); ok {
		return mc.Call(method)
	}

	mv := reflect.ValueOf(root).MethodByName(exportedName(method))
	if !mv.IsValid() || mv.Type().NumIn() != 0 {
		return fmt.Errorf("invoke %s: no such method on %T", method, root)
	}
	mv.Call(nil)
	return nil
}
