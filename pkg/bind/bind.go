// Package bind implements the property binding engine. A Cocoon negotiates
// the allowed direction for one widget property, performs the initial
// model-to-widget synchronization, re-reads on named refresh triggers, and
// pushes widget changes back into the accessor.
//
// Cycle safety uses two guards: a binding is a small state machine (idle or
// propagating, with re-entrant propagation dropped), and a widget-side
// change is pushed into the accessor only when the two values are unequal.
package bind

import (
	"fmt"

	"github.com/chazu/bowerbird/pkg/accessor"
	"github.com/chazu/bowerbird/pkg/widget"
)

// Converter is the conversion surface the engine needs: coercion of an
// accessor value into a widget property type.
type Converter interface {
	Convert(value interface{}, target widget.PropType) (interface{}, error)
	CanConvert(value interface{}, target widget.PropType) bool
}

// Direction is the negotiated data-flow direction of a binding.
type Direction int

const (
	// None: the property cannot be bound; nothing is wired.
	None Direction = iota
	// Bidirectional: model-to-widget sync plus widget-to-model push-back.
	Bidirectional
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Bidirectional {
		return "bidirectional"
	}
	return "none"
}

// AllowedDirection derives the binding direction for a widget property:
// bidirectional when the property is runtime-writable and is not the
// reserved "name" property, otherwise none.
func AllowedDirection(w *widget.Widget, prop string) Direction {
	if prop == "name" || !w.Settable(prop) {
		return None
	}
	return Bidirectional
}

// propagation state, re-entrant attempts while propagating are dropped
type state int

const (
	idle state = iota
	propagating
)

// Cocoon is one wired property binding. It stays alive by reference from
// the widget's listeners and the accessor's subscriptions for the life of
// the view.
type Cocoon struct {
	w    *widget.Widget
	prop string
	acc  accessor.Accessor
	conv Converter
	dir  Direction
	st   state
}

// Wire negotiates and installs a binding of one widget property to an
// accessor. A None direction wires nothing and is not an error. The
// initial synchronization happens here, exactly once, before any listener
// can fire; a conversion failure at this point is a hard error.
func Wire(w *widget.Widget, prop string, acc accessor.Accessor, conv Converter, triggers []string) (*Cocoon, error) {
	c := &Cocoon{
		w:    w,
		prop: prop,
		acc:  acc,
		conv: conv,
		dir:  AllowedDirection(w, prop),
	}
	if c.dir == None {
		return c, nil
	}

	if err := c.Refresh(); err != nil {
		return nil, err
	}

	for _, trigger := range triggers {
		acc.Subscribe(trigger, func() {
			// Trigger refreshes run for the life of the view; a stale
			// accessor read at that point has nothing to report back to.
			_ = c.Refresh()
		})
	}

	w.OnChange(c.widgetChanged)
	return c, nil
}

// Direction returns the negotiated direction.
func (c *Cocoon) Direction() Direction { return c.dir }

// Refresh re-reads the accessor, converts to the property type and assigns
// the widget. This is the model-to-widget half of the binding.
func (c *Cocoon) Refresh() error {
	if c.st == propagating {
		return nil
	}
	c.st = propagating
	defer func() { c.st = idle }()

	v, err := c.acc.Get()
	if err != nil {
		return fmt.Errorf("binding %s.%s: %w", c.w.Name(), c.prop, err)
	}
	pt, _ := c.w.PropertyType(c.prop)
	cv, err := c.conv.Convert(v, pt)
	if err != nil {
		return fmt.Errorf("binding %s.%s: %w", c.w.Name(), c.prop, err)
	}
	return c.w.SetProperty(c.prop, cv)
}

// widgetChanged is the widget-to-model half. The equality check against
// the accessor's current value is the cycle breaker: pushing an
// already-equal value is suppressed.
func (c *Cocoon) widgetChanged(prop string, value interface{}) {
	if prop != c.prop || c.st == propagating {
		return
	}
	c.st = propagating
	defer func() { c.st = idle }()

	av, err := c.acc.Get()
	if err == nil && c.valuesEqual(av, value) {
		return
	}
	_ = c.acc.Set(value)
}

// valuesEqual compares an accessor value with a widget value, coercing the
// accessor side to the widget property's type first so that e.g. an int64
// model field equals an int widget property.
func (c *Cocoon) valuesEqual(av, wv interface{}) bool {
	pt, ok := c.w.PropertyType(c.prop)
	if ok && c.conv != nil {
		if cv, err := c.conv.Convert(av, pt); err == nil {
			return widget.EqualValues(cv, wv)
		}
	}
	return widget.EqualValues(av, wv)
}
