package bind

import (
	"fmt"

	"github.com/chazu/bowerbird/pkg/accessor"
	"github.com/chazu/bowerbird/pkg/widget"
)

// GroupCocoon binds a selectable group to a scalar accessor: a member is
// selected iff its logical value equals the accessor's current value, and
// selecting a member writes that member's logical value back. The cocoon
// doubles as the exclusive-choice coordinator, deselecting siblings when a
// member becomes selected.
type GroupCocoon struct {
	grp *widget.Group
	acc accessor.Accessor
	st  state
}

// WireGroup installs a group binding. Every member must be selectable;
// the walker validates that before delegating here. Initial selection
// state is synchronized once, before any listener can fire.
func WireGroup(grp *widget.Group, acc accessor.Accessor, triggers []string) (*GroupCocoon, error) {
	for _, m := range grp.Members {
		if !m.Is(widget.CapSelectable) {
			return nil, fmt.Errorf("group %q: member %s is not selectable", grp.Name, m)
		}
	}

	c := &GroupCocoon{grp: grp, acc: acc}
	if err := c.Refresh(); err != nil {
		return nil, err
	}

	for _, trigger := range triggers {
		acc.Subscribe(trigger, func() {
			_ = c.Refresh()
		})
	}

	for _, m := range grp.Members {
		member := m
		member.OnChange(func(prop string, value interface{}) {
			c.memberChanged(member, prop, value)
		})
	}
	return c, nil
}

// Refresh re-reads the accessor and reapplies the selection across all
// members.
func (c *GroupCocoon) Refresh() error {
	if c.st == propagating {
		return nil
	}
	c.st = propagating
	defer func() { c.st = idle }()

	v, err := c.acc.Get()
	if err != nil {
		return fmt.Errorf("group binding %q: %w", c.grp.Name, err)
	}
	for _, m := range c.grp.Members {
		if err := m.SetSelected(widget.EqualValues(m.LogicalValue(), v)); err != nil {
			return fmt.Errorf("group binding %q: %w", c.grp.Name, err)
		}
	}
	return nil
}

// memberChanged pushes a newly selected member's logical value into the
// accessor and deselects the other members. Deselection events and
// re-entrant propagation are dropped.
func (c *GroupCocoon) memberChanged(member *widget.Widget, prop string, value interface{}) {
	if prop != "selected" || c.st == propagating {
		return
	}
	sel, _ := value.(bool)
	if !sel {
		return
	}

	c.st = propagating
	defer func() { c.st = idle }()

	for _, m := range c.grp.Members {
		if m != member {
			_ = m.SetSelected(false)
		}
	}

	av, err := c.acc.Get()
	if err == nil && widget.EqualValues(av, member.LogicalValue()) {
		return
	}
	_ = c.acc.Set(member.LogicalValue())
}
