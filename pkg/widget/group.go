package widget

import "fmt"

// Group is an ordered collection of components treated as one unit for
// binding or layout. A group is valid for choice binding only when every
// member is selectable; any arrangeable members make a valid layout group.
type Group struct {
	Name    string
	Members []*Widget
}

// NewGroup builds a group over the given members, in declared order.
func NewGroup(name string, members []*Widget) *Group {
	return &Group{Name: name, Members: members}
}

// Selectable reports whether every member carries the selectable
// capability, making the group usable for exclusive-choice binding.
func (g *Group) Selectable() bool {
	for _, m := range g.Members {
		if !m.Is(CapSelectable) {
			return false
		}
	}
	return true
}

// Select makes the member with the given logical value the sole selected
// member, deselecting all others. Members whose logical value does not
// match are deselected even if the value matches no member at all.
// Matching uses the same loose scalar comparison as the binding engine,
// so Select(5) finds a member whose logical value is int64(5).
func (g *Group) Select(logical interface{}) {
	for _, m := range g.Members {
		_ = m.SetSelected(EqualValues(m.LogicalValue(), logical))
	}
}

// SelectedValue returns the logical value of the first selected member,
// or nil when no member is selected.
func (g *Group) SelectedValue() interface{} {
	for _, m := range g.Members {
		if m.Selected() {
			return m.LogicalValue()
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (g *Group) String() string {
	return fmt.Sprintf("group %q (%d members)", g.Name, len(g.Members))
}
