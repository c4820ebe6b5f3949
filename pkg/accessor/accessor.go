// Package accessor provides a uniform read/write/subscribe handle over the
// three expression forms of the view language: plain property paths,
// embedded sub-language expressions, and configuration placeholders.
//
// An accessor is rooted at an already-resolved object (primary subject,
// secondary subject, a named bean, or nothing at all); root selection is
// the compiler's job. Get evaluates the current value, Set writes through
// the path when it is writable and silently does nothing otherwise, and
// Subscribe attaches a callback to a named refresh trigger.
package accessor

import "fmt"

// Accessor is the unified handle over a rooted expression.
type Accessor interface {
	// Get evaluates the expression's current value.
	Get() (interface{}, error)
	// Set writes a value through the expression. Writing through a
	// non-writable expression is a no-op, not an error.
	Set(value interface{}) error
	// Writable reports whether Set reaches the underlying state.
	Writable() bool
	// Subscribe registers cb to run whenever the named trigger fires.
	Subscribe(trigger string, cb func())
}

// Subscriber registers callbacks under named events. *event.Bus satisfies
// this.
type Subscriber interface {
	Subscribe(name string, cb func())
}

// BeanLookup resolves a named external bean.
type BeanLookup func(name string) (interface{}, error)

// ConfigLookup resolves a configuration placeholder key.
type ConfigLookup func(key string) (interface{}, bool)

// PropertySource lets external objects expose named properties without
// reflection. Path traversal prefers this interface when a step's value
// implements it.
type PropertySource interface {
	GetProperty(name string) (interface{}, bool)
	SetProperty(name string, value interface{}) error
}

// pathAccessor reads and writes a dotted property path from a root object.
type pathAccessor struct {
	root interface{}
	segs []string
	bus  Subscriber
}

// NewPath builds an accessor over a dotted property path rooted at root.
func NewPath(root interface{}, path string, bus Subscriber) Accessor {
	return &pathAccessor{root: root, segs: splitPath(path), bus: bus}
}

func (a *pathAccessor) Get() (interface{}, error) {
	cur := a.root
	for _, seg := range a.segs {
		next, err := getStep(cur, seg)
		if err != nil {
			return nil, fmt.Errorf("path %v: %w", a.segs, err)
		}
		cur = next
	}
	return cur, nil
}

func (a *pathAccessor) Set(value interface{}) error {
	if len(a.segs) == 0 {
		return nil
	}
	parent := a.root
	for _, seg := range a.segs[:len(a.segs)-1] {
		next, err := getStep(parent, seg)
		if err != nil {
			return fmt.Errorf("path %v: %w", a.segs, err)
		}
		parent = next
	}
	last := a.segs[len(a.segs)-1]
	if !writableStep(parent, last) {
		return nil
	}
	if err := setStep(parent, last, value); err != nil {
		return fmt.Errorf("path %v: %w", a.segs, err)
	}
	return nil
}

func (a *pathAccessor) Writable() bool {
	if len(a.segs) == 0 {
		return false
	}
	parent := a.root
	for _, seg := range a.segs[:len(a.segs)-1] {
		next, err := getStep(parent, seg)
		if err != nil {
			return false
		}
		parent = next
	}
	return writableStep(parent, a.segs[len(a.segs)-1])
}

func (a *pathAccessor) Subscribe(trigger string, cb func()) {
	if a.bus != nil {
		a.bus.Subscribe(trigger, cb)
	}
}

// exprAccessor evaluates an embedded sub-language expression. Expressions
// are read-only.
type exprAccessor struct {
	engine ExprEngine
	text   string
	root   interface{}
	beans  BeanLookup
	bus    Subscriber
}

// NewExpr builds an accessor over an embedded expression evaluated by the
// given engine against root and the bean context.
func NewExpr(engine ExprEngine, text string, root interface{}, beans BeanLookup, bus Subscriber) Accessor {
	return &exprAccessor{engine: engine, text: text, root: root, beans: beans, bus: bus}
}

func (a *exprAccessor) Get() (interface{}, error) {
	return a.engine.Eval(a.text, a.root, a.beans)
}

func (a *exprAccessor) Set(interface{}) error { return nil }

func (a *exprAccessor) Writable() bool { return false }

func (a *exprAccessor) Subscribe(trigger string, cb func()) {
	if a.bus != nil {
		a.bus.Subscribe(trigger, cb)
	}
}

// configAccessor resolves a configuration placeholder key. Placeholders
// are read-only.
type configAccessor struct {
	lookup ConfigLookup
	key    string
	bus    Subscriber
}

// NewConfig builds an accessor over a configuration placeholder.
func NewConfig(lookup ConfigLookup, key string, bus Subscriber) Accessor {
	return &configAccessor{lookup: lookup, key: key, bus: bus}
}

func (a *configAccessor) Get() (interface{}, error) {
	if a.lookup == nil {
		return nil, fmt.Errorf("no configuration lookup installed (placeholder %q)", a.key)
	}
	v, ok := a.lookup(a.key)
	if !ok {
		return nil, fmt.Errorf("configuration key %q not found", a.key)
	}
	return v, nil
}

func (a *configAccessor) Set(interface{}) error { return nil }

func (a *configAccessor) Writable() bool { return false }

func (a *configAccessor) Subscribe(trigger string, cb func()) {
	if a.bus != nil {
		a.bus.Subscribe(trigger, cb)
	}
}
