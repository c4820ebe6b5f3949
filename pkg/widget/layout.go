package widget

import "fmt"

// Layout is a container arrangement. A manager owns its children's order;
// installing one on a container replaces whatever was there before.
type Layout interface {
	// Style returns the layout style name (flow, box, border, grid).
	Style() string
	// Widgets returns the managed widgets in arrangement order.
	Widgets() []*Widget
}

// FlowLayout appends components in declaration order.
type FlowLayout struct {
	Items []*Widget
}

// Style implements Layout.
func (*FlowLayout) Style() string { return "flow" }

// Widgets implements Layout.
func (l *FlowLayout) Widgets() []*Widget { return l.Items }

// Axis is the major axis of a box layout.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Dim is a width/height pair for box pseudo-elements.
type Dim struct {
	W, H int
}

// Filler is a box pseudo-element with independently optional minimum,
// preferred and maximum sizes.
type Filler struct {
	Min, Pref, Max *Dim
}

// BoxItem is one slot of a box layout: a real widget, or exactly one of
// the glue/rigid/filler pseudo-elements.
type BoxItem struct {
	Widget *Widget
	Glue   bool
	Rigid  *Dim
	Filler *Filler
}

// BoxLayout appends components and pseudo-elements along one axis.
type BoxLayout struct {
	Axis  Axis
	Items []BoxItem
}

// Style implements Layout.
func (*BoxLayout) Style() string { return "box" }

// Widgets implements Layout.
func (l *BoxLayout) Widgets() []*Widget {
	var ws []*Widget
	for _, it := range l.Items {
		if it.Widget != nil {
			ws = append(ws, it.Widget)
		}
	}
	return ws
}

// BorderSlot is a compass position of a border layout.
type BorderSlot string

const (
	North  BorderSlot = "north"
	South  BorderSlot = "south"
	East   BorderSlot = "east"
	West   BorderSlot = "west"
	Center BorderSlot = "center"
)

// borderOrder fixes the child order a border layout produces.
var borderOrder = []BorderSlot{North, South, East, West, Center}

// BorderLayout places at most one child per compass position.
type BorderLayout struct {
	Slots map[BorderSlot]*Widget
}

// NewBorderLayout builds an empty border layout.
func NewBorderLayout() *BorderLayout {
	return &BorderLayout{Slots: make(map[BorderSlot]*Widget)}
}

// Set places a child at a compass position. Each position holds exactly
// one child; a second assignment is an error.
func (l *BorderLayout) Set(slot BorderSlot, w *Widget) error {
	switch slot {
	case North, South, East, West, Center:
	default:
		return fmt.Errorf("unknown border position %q", slot)
	}
	if _, taken := l.Slots[slot]; taken {
		return fmt.Errorf("border position %q already occupied", slot)
	}
	l.Slots[slot] = w
	return nil
}

// Style implements Layout.
func (*BorderLayout) Style() string { return "border" }

// Widgets implements Layout.
func (l *BorderLayout) Widgets() []*Widget {
	var ws []*Widget
	for _, slot := range borderOrder {
		if w := l.Slots[slot]; w != nil {
			ws = append(ws, w)
		}
	}
	return ws
}

// GridCell is one element of a grid layout: a widget plus optional
// modifier key/values and an optional cell anchor.
type GridCell struct {
	Widget *Widget
	X, Y   int  // cell anchor
	Anchor bool // true when X/Y were given explicitly
	Mods   map[string]interface{}
}

// GridLayout places components into cells with per-cell modifiers.
type GridLayout struct {
	Opts  map[string]interface{} // container-level options (rows, cols, gap)
	Cells []GridCell
}

// Style implements Layout.
func (*GridLayout) Style() string { return "grid" }

// Widgets implements Layout.
func (l *GridLayout) Widgets() []*Widget {
	var ws []*Widget
	for _, c := range l.Cells {
		if c.Widget != nil {
			ws = append(ws, c.Widget)
		}
	}
	return ws
}
