// Package widget provides the toolkit-agnostic widget model the view
// compiler constructs: widget kinds with explicit property tables,
// containers with layout managers, and the color/image/border/group
// pseudo-entities.
//
// There is no reflection here. Every kind carries an explicit table of
// property definitions (see props_gen.go, produced by cmd/propgen), and all
// property access goes through that table. Rendering is out of scope; a
// Widget is the live model a host toolkit adapter would paint from.
package widget

import (
	"fmt"
	"sort"
)

// Caps is a capability bitset describing what a kind can do.
type Caps uint32

const (
	// CapVisual marks concrete visual widgets (bind targets).
	CapVisual Caps = 1 << iota
	// CapContainer marks widgets that hold children and accept layouts.
	CapContainer
	// CapFrame marks top-level frame-like widgets; a layout statement
	// targeting one applies to its content area.
	CapFrame
	// CapSelectable marks widgets with exclusive-selection semantics
	// (check boxes, radio buttons, toggles) usable in choice groups.
	CapSelectable
	// CapText marks widgets carrying user-editable text.
	CapText
)

// Has reports whether all capabilities in f are present.
func (c Caps) Has(f Caps) bool { return c&f == f }

// Kind describes a widget class: its name, capabilities and property table.
// Kinds are immutable once registered; widgets share them.
type Kind struct {
	Name  string
	Caps  Caps
	Props map[string]PropDef
}

// PropNames returns the kind's property names in sorted order.
func (k *Kind) PropNames() []string {
	names := make([]string, 0, len(k.Props))
	for n := range k.Props {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ChangeListener observes property mutations on a widget. It runs
// synchronously on the thread performing the mutation.
type ChangeListener func(prop string, value interface{})

// Widget is a live instance of a Kind. Widgets are not safe for concurrent
// use; construction and mutation belong to the thread that owns the view.
type Widget struct {
	name      string
	kind      *Kind
	props     map[string]interface{}
	logical   interface{} // logical value for group/selection binding
	children  []*Widget
	layout    Layout
	listeners []ChangeListener
}

// New constructs a widget of the given kind, seeded with the kind's
// declared property defaults. The name is fixed for the widget's lifetime.
func New(kind *Kind, name string) *Widget {
	w := &Widget{
		name:  name,
		kind:  kind,
		props: make(map[string]interface{}, len(kind.Props)),
	}
	for pn, def := range kind.Props {
		if def.Default != nil {
			w.props[pn] = def.Default
		}
	}
	return w
}

// Name returns the declared name the widget was constructed with.
func (w *Widget) Name() string { return w.name }

// Kind returns the widget's kind descriptor.
func (w *Widget) Kind() *Kind { return w.kind }

// Is reports whether the widget's kind has all capabilities in f.
func (w *Widget) Is(f Caps) bool { return w.kind.Caps.Has(f) }

// Property returns the current value of a property, or false if the kind
// does not define it. The reserved "name" property reads the declared name.
func (w *Widget) Property(name string) (interface{}, bool) {
	if name == "name" {
		return w.name, true
	}
	def, ok := w.kind.Props[name]
	if !ok {
		return nil, false
	}
	if v, ok := w.props[name]; ok {
		return v, true
	}
	return zeroOf(def.Type), true
}

// PropertyType returns the declared type of a property.
func (w *Widget) PropertyType(name string) (PropType, bool) {
	if name == "name" {
		return TypeString, true
	}
	def, ok := w.kind.Props[name]
	if !ok {
		return 0, false
	}
	return def.Type, true
}

// Settable reports whether the property exists and is runtime-writable.
// The reserved "name" property is never writable.
func (w *Widget) Settable(name string) bool {
	if name == "name" {
		return false
	}
	def, ok := w.kind.Props[name]
	return ok && def.Writable
}

// SetProperty assigns a property value. The value must already have the
// property's declared type; conversion is the caller's concern. Listeners
// fire only when the stored value actually changes.
func (w *Widget) SetProperty(name string, value interface{}) error {
	if !w.Settable(name) {
		return fmt.Errorf("widget %q (%s): property %q is not settable", w.name, w.kind.Name, name)
	}
	def := w.kind.Props[name]
	if !def.Type.Accepts(value) {
		return fmt.Errorf("widget %q (%s): property %q wants %s, got %T",
			w.name, w.kind.Name, name, def.Type, value)
	}
	old, had := w.props[name]
	if had && old == value {
		return nil
	}
	w.props[name] = value
	for _, fn := range w.listeners {
		fn(name, value)
	}
	return nil
}

// OnChange registers a change listener. Listeners stay attached for the
// life of the widget; there is no removal at this layer.
func (w *Widget) OnChange(fn ChangeListener) {
	w.listeners = append(w.listeners, fn)
}

// LogicalValue returns the widget's logical value, used by group binding
// to decide which member a scalar selection corresponds to.
func (w *Widget) LogicalValue() interface{} { return w.logical }

// SetLogicalValue records the widget's logical value. This is the reserved
// "value" key of a component declaration, not a widget property.
func (w *Widget) SetLogicalValue(v interface{}) { w.logical = v }

// Selected reads the "selected" property of a selectable widget.
func (w *Widget) Selected() bool {
	v, ok := w.Property("selected")
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// SetSelected writes the "selected" property of a selectable widget.
func (w *Widget) SetSelected(sel bool) error {
	return w.SetProperty("selected", sel)
}

// Children returns the widget's children in layout order.
func (w *Widget) Children() []*Widget { return w.children }

// Layout returns the container's current layout manager, if any.
func (w *Widget) Layout() Layout { return w.layout }

// SetLayout replaces the container's layout manager and re-populates its
// children from the manager's ordering. A second call discards the prior
// arrangement entirely; managers are never merged.
func (w *Widget) SetLayout(l Layout) error {
	if !w.Is(CapContainer) {
		return fmt.Errorf("widget %q (%s) is not a container", w.name, w.kind.Name)
	}
	w.layout = l
	w.children = l.Widgets()
	return nil
}

// ContentTarget returns the widget whose children a layout statement
// populates. For frame-like widgets this is the content area; the model
// keeps the frame node itself as the content area so the frame's children
// are the laid-out components.
func (w *Widget) ContentTarget() *Widget { return w }

// String implements fmt.Stringer for diagnostics.
func (w *Widget) String() string {
	return fmt.Sprintf("%s(%s)", w.kind.Name, w.name)
}
