// Package event implements named-event dispatch between application code
// and bound views. A Bus maps event names to subscribed callbacks; firing
// an event invokes the callbacks synchronously, in subscription order.
//
// The bus is confined to the thread that owns the view (the same thread
// widgets are mutated on) and performs no locking of its own.
package event

import (
	"sort"

	"github.com/google/uuid"

	"github.com/chazu/bowerbird/pkg/widget"
)

// Callback is invoked when a subscribed event fires. It is an alias so a
// *Bus satisfies subscriber interfaces declared over plain func().
type Callback = func()

// Subscriber is the consumed interface: anything that can register a
// callback under an event name. *Bus is the standard implementation.
type Subscriber interface {
	Subscribe(name string, cb Callback)
}

// Bus is the standard in-process dispatcher.
type Bus struct {
	subs map[string][]Callback
}

// NewBus creates an empty dispatcher.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]Callback)}
}

// Subscribe registers a callback for a named event. A callback stays
// registered for the life of the bus.
func (b *Bus) Subscribe(name string, cb Callback) {
	if cb == nil {
		return
	}
	b.subs[name] = append(b.subs[name], cb)
}

// Fire invokes all callbacks registered under the given name. Callbacks
// run synchronously on the calling thread; firing an unknown name is a
// no-op.
func (b *Bus) Fire(name string) {
	for _, cb := range b.subs[name] {
		cb()
	}
}

// Events returns the subscribed event names, sorted.
func (b *Bus) Events() []string {
	names := make([]string, 0, len(b.subs))
	for n := range b.subs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Adapter makes a constructed widget event-capable: property changes on
// the widget are republished on the bus as "<declared name>.<property>"
// events, so application code can observe the live view by name.
type Adapter struct {
	ID     string // unique registration id
	Name   string // the widget's declared name
	Target *widget.Widget
}

// NewAdapter wires a widget onto the bus and returns its registration.
func NewAdapter(bus *Bus, name string, w *widget.Widget) *Adapter {
	a := &Adapter{
		ID:     uuid.NewString(),
		Name:   name,
		Target: w,
	}
	w.OnChange(func(prop string, _ interface{}) {
		bus.Fire(name + "." + prop)
	})
	return a
}
