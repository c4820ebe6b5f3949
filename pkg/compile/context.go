package compile

import (
	"fmt"

	"github.com/chazu/bowerbird/pkg/ast"
	"github.com/chazu/bowerbird/pkg/event"
	"github.com/chazu/bowerbird/pkg/widget"
)

// ElementDefinition maps an alias to a widget kind and its constructor.
// External factories may register additional aliases before compilation.
type ElementDefinition struct {
	Kind *widget.Kind
	New  func(name string) *widget.Widget
}

// defaultEntry is one recorded defaults clause: an ordered predicate over
// kinds plus the property map to apply. All matching entries apply
// cumulatively to every instance constructed after the entry was recorded.
type defaultEntry struct {
	alias string
	match func(*widget.Kind) bool
	props []ast.Prop
}

// Context is the per-compilation symbol table: the write-once component
// registry, the alias table, the ordered default entries, and the adapter
// registrations produced as a side effect of construction. A fresh Context
// is created for every compilation and discarded with it; never share one
// across compilations.
type Context struct {
	env      *Environment
	aliases  map[string]ElementDefinition
	registry map[string]interface{}
	defaults []defaultEntry
	adapters map[string]*event.Adapter
	diags    *diagnostics

	rootFrame  *widget.Widget // first declared frame-like widget
	rootWidget *widget.Widget // first declared visual widget
}

// NewContext creates a compilation context over the given environment,
// pre-seeded with the standard widget vocabulary and the predefined
// border and color values.
func NewContext(env *Environment) *Context {
	c := &Context{
		env:      env,
		aliases:  make(map[string]ElementDefinition),
		registry: make(map[string]interface{}),
		adapters: make(map[string]*event.Adapter),
		diags:    &diagnostics{log: env.Log},
	}
	for _, k := range widget.StandardKinds() {
		kind := k
		c.aliases[kind.Name] = ElementDefinition{
			Kind: kind,
			New:  func(name string) *widget.Widget { return widget.New(kind, name) },
		}
	}

	// Predefined values available to every document.
	c.Predefine("etchedBorder", widget.NewBorder(widget.BorderEtched))
	c.Predefine("loweredBorder", widget.NewBorder(widget.BorderLowered))
	c.Predefine("raisedBorder", widget.NewBorder(widget.BorderRaised))
	c.Predefine("emptyBorder", widget.NewBorder(widget.BorderEmpty))
	c.Predefine("black", widget.NewColor(0, 0, 0))
	c.Predefine("white", widget.NewColor(255, 255, 255))
	c.Predefine("red", widget.NewColor(255, 0, 0))
	c.Predefine("green", widget.NewColor(0, 255, 0))
	c.Predefine("blue", widget.NewColor(0, 0, 255))
	c.Predefine("gray", widget.NewColor(128, 128, 128))
	return c
}

// RegisterAlias adds or replaces an alias definition. Third-party widget
// sets register their aliases here before the walk.
func (c *Context) RegisterAlias(alias string, def ElementDefinition) {
	c.aliases[alias] = def
}

// Predefine registers a literal predefined value (standard borders,
// well-known colors) under a name, silently keeping an existing entry.
func (c *Context) Predefine(name string, value interface{}) {
	if _, exists := c.registry[name]; !exists {
		c.registry[name] = value
	}
}

// Lookup resolves a declared name to its registered instance.
func (c *Context) Lookup(name string) (interface{}, bool) {
	v, ok := c.registry[name]
	return v, ok
}

// register adds a name to the write-once registry. A redeclaration is
// ignored with a diagnostic and reported as false.
func (c *Context) register(pos ast.Pos, stmt, name string, value interface{}) bool {
	if _, exists := c.registry[name]; exists {
		c.diags.notef(pos, stmt, "name %q already declared, redeclaration ignored", name)
		return false
	}
	c.registry[name] = value
	return true
}

// construct resolves an alias and builds a named widget instance,
// registering it for event dispatch. Defaults recorded so far are applied
// before the caller assigns explicit properties; defaults declared later
// never apply retroactively.
func (c *Context) construct(alias, name string) (*widget.Widget, error) {
	if c.env.Factory != nil {
		w, err := c.env.Factory.Construct(alias, name)
		if err != nil {
			return nil, err
		}
		if w != nil {
			c.finishConstruct(name, w)
			return w, nil
		}
	}

	def, ok := c.aliases[alias]
	if !ok {
		return nil, fmt.Errorf("unknown alias %q", alias)
	}
	w := def.New(name)
	c.finishConstruct(name, w)
	return w, nil
}

func (c *Context) finishConstruct(name string, w *widget.Widget) {
	c.adapters[name] = event.NewAdapter(c.env.Bus, name, w)
	c.applyDefaults(w)

	if w.Is(widget.CapFrame) && c.rootFrame == nil {
		c.rootFrame = w
	}
	if w.Is(widget.CapVisual) && c.rootWidget == nil {
		c.rootWidget = w
	}
}

// recordDefault appends a defaults clause. The predicate matches either
// the exact kind name or, for the capability pseudo-classes, every kind
// carrying the capability.
func (c *Context) recordDefault(alias string, props []ast.Prop) error {
	if caps, ok := capabilityClass(alias); ok {
		c.defaults = append(c.defaults, defaultEntry{
			alias: alias,
			match: func(k *widget.Kind) bool { return k.Caps.Has(caps) },
			props: props,
		})
		return nil
	}
	if def, ok := c.aliases[alias]; ok {
		kindName := def.Kind.Name
		c.defaults = append(c.defaults, defaultEntry{
			alias: alias,
			match: func(k *widget.Kind) bool { return k.Name == kindName },
			props: props,
		})
		return nil
	}
	return fmt.Errorf("unknown alias %q", alias)
}

// capabilityClass maps the pseudo-class aliases usable in defaults
// statements to capability sets, standing in for class-hierarchy
// assignability.
func capabilityClass(alias string) (widget.Caps, bool) {
	switch alias {
	case "Visual":
		return widget.CapVisual, true
	case "Container":
		return widget.CapContainer, true
	case "Selectable":
		return widget.CapSelectable, true
	case "Text":
		return widget.CapText, true
	}
	return 0, false
}

// applyDefaults applies every matching default entry, in declaration
// order, to a freshly constructed widget. A value that does not convert
// is skipped with a diagnostic; the remaining defaults still apply.
func (c *Context) applyDefaults(w *widget.Widget) {
	for _, entry := range c.defaults {
		if !entry.match(w.Kind()) {
			continue
		}
		for _, p := range entry.props {
			if err := c.assignLiteral(w, p.Key, p.Value); err != nil {
				c.diags.addf(p.Value.At, "defaults", "%s default %q: %v", entry.alias, p.Key, err)
			}
		}
	}
}

// assignLiteral converts a source literal to a property's declared type
// and assigns it. Name references resolve through the registry first.
func (c *Context) assignLiteral(w *widget.Widget, key string, lit ast.Literal) error {
	pt, ok := w.PropertyType(key)
	if !ok {
		return fmt.Errorf("unknown property %q on %s", key, w.Kind().Name)
	}
	value := lit.Value()
	if lit.Kind == ast.NameLit {
		ref, found := c.Lookup(lit.Str)
		if !found {
			return fmt.Errorf("reference to undeclared name %q", lit.Str)
		}
		value = ref
	}
	cv, err := c.env.Converter.Convert(value, pt)
	if err != nil {
		return err
	}
	return w.SetProperty(key, cv)
}
