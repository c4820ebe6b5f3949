package compile

import (
	"github.com/chazu/bowerbird/pkg/ast"
	"github.com/chazu/bowerbird/pkg/event"
	"github.com/chazu/bowerbird/pkg/widget"
)

// walkLayout installs a layout manager on each targeted container. The
// target must be an already declared container widget; installing a second
// layout on the same target replaces the first arrangement entirely.
func (cp *compiler) walkLayout(stmt *ast.LayoutStmt) {
	for _, decl := range stmt.Decls {
		target, ok := cp.layoutTarget(decl)
		if !ok {
			continue
		}

		var l widget.Layout
		var built bool
		switch decl.Style {
		case "flowLayout":
			l, built = cp.buildFlow(decl)
		case "boxLayout":
			l, built = cp.buildBox(decl)
		case "borderLayout":
			l, built = cp.buildBorder(decl)
		case "gridLayout":
			l, built = cp.buildGrid(decl)
		default:
			cp.ctx.diags.addf(decl.At, "layout", "unknown layout style %q", decl.Style)
			continue
		}
		if !built {
			continue
		}
		content := target.ContentTarget()
		children := l.Widgets()
		if !cp.checkContainment(decl, content, children) {
			continue
		}
		for _, old := range content.Children() {
			delete(cp.placed, old)
		}
		if err := content.SetLayout(l); err != nil {
			cp.ctx.diags.addf(decl.At, "layout", "%s: %v", decl.Target, err)
			continue
		}
		for _, c := range children {
			cp.placed[c] = content
		}
	}
}

// checkContainment rejects arrangements that would make the widget tree
// stop being a tree: a container placed inside itself or under one of its
// own descendants, and a widget already parented under a different
// container. Re-targeting the same container replaces its arrangement and
// is allowed.
func (cp *compiler) checkContainment(decl ast.LayoutDecl, content *widget.Widget, children []*widget.Widget) bool {
	ok := true
	for _, c := range children {
		if c == content {
			cp.ctx.diags.addf(decl.At, "layout", "%q cannot be placed inside itself", decl.Target)
			ok = false
			continue
		}
		if subtreeContains(c, content) {
			cp.ctx.diags.addf(decl.At, "layout", "%q contains %q and cannot become its child", c.Name(), decl.Target)
			ok = false
			continue
		}
		if prev, had := cp.placed[c]; had && prev != content {
			cp.ctx.diags.addf(decl.At, "layout", "%q is already placed under %q", c.Name(), prev.Name())
			ok = false
		}
	}
	return ok
}

// subtreeContains reports whether target appears in the tree rooted at w.
func subtreeContains(w, target *widget.Widget) bool {
	if w == target {
		return true
	}
	for _, c := range w.Children() {
		if subtreeContains(c, target) {
			return true
		}
	}
	return false
}

// layoutTarget resolves a layout clause's container.
func (cp *compiler) layoutTarget(decl ast.LayoutDecl) (*widget.Widget, bool) {
	v, ok := cp.ctx.Lookup(decl.Target)
	if !ok {
		cp.ctx.diags.addf(decl.At, "layout", "reference to undeclared component %q", decl.Target)
		return nil, false
	}
	w, ok := v.(*widget.Widget)
	if !ok || !w.Is(widget.CapContainer) {
		cp.ctx.diags.addf(decl.At, "layout", "%q is not a container", decl.Target)
		return nil, false
	}
	return w, true
}

// buildFlow collects bare child references in declaration order. Groups
// expand inline into their members.
func (cp *compiler) buildFlow(decl ast.LayoutDecl) (widget.Layout, bool) {
	l := &widget.FlowLayout{}
	ok := true
	for _, it := range decl.Items {
		if it.IsKV() || it.IsCall() || it.Name == "" {
			cp.ctx.diags.addf(it.At, "layout", "flowLayout takes bare component references")
			ok = false
			continue
		}
		ws, found := cp.childWidgets(it.At, it.Name)
		if !found {
			ok = false
			continue
		}
		l.Items = append(l.Items, ws...)
	}
	return l, ok
}

// buildBox collects children and pseudo-elements along one axis. An
// optional leading "vertical" or "horizontal" keyword selects the axis;
// the default is horizontal.
func (cp *compiler) buildBox(decl ast.LayoutDecl) (widget.Layout, bool) {
	l := &widget.BoxLayout{Axis: widget.Horizontal}
	ok := true
	for i, it := range decl.Items {
		if it.IsKV() {
			cp.ctx.diags.addf(it.At, "layout", "boxLayout takes no key=value items")
			ok = false
			continue
		}
		if i == 0 && !it.IsCall() && (it.Name == "vertical" || it.Name == "horizontal") {
			if it.Name == "vertical" {
				l.Axis = widget.Vertical
			}
			continue
		}

		switch it.Name {
		case "glue":
			l.Items = append(l.Items, widget.BoxItem{Glue: true})
		case "rigid":
			d, derr := rigidDim(it)
			if derr != "" {
				cp.ctx.diags.addf(it.At, "layout", "%s", derr)
				ok = false
				continue
			}
			l.Items = append(l.Items, widget.BoxItem{Rigid: d})
		case "filler":
			f, ferr := fillerSizes(it)
			if ferr != "" {
				cp.ctx.diags.addf(it.At, "layout", "%s", ferr)
				ok = false
				continue
			}
			l.Items = append(l.Items, widget.BoxItem{Filler: f})
		default:
			if it.IsCall() {
				cp.ctx.diags.addf(it.At, "layout", "unknown box element %q", it.Name)
				ok = false
				continue
			}
			ws, found := cp.childWidgets(it.At, it.Name)
			if !found {
				ok = false
				continue
			}
			for _, w := range ws {
				l.Items = append(l.Items, widget.BoxItem{Widget: w})
			}
		}
	}
	return l, ok
}

// rigidDim reads the two integer arguments of a rigid(w, h) element.
func rigidDim(it ast.LayoutItem) (*widget.Dim, string) {
	if len(it.Args) != 2 || len(it.KV) != 0 ||
		it.Args[0].Kind != ast.IntLit || it.Args[1].Kind != ast.IntLit {
		return nil, "rigid wants two integer arguments"
	}
	return &widget.Dim{W: int(it.Args[0].Int), H: int(it.Args[1].Int)}, ""
}

// fillerSizes reads the key=value size arguments of a filler element:
// minWidth/minHeight, prefWidth/prefHeight, maxWidth/maxHeight.
func fillerSizes(it ast.LayoutItem) (*widget.Filler, string) {
	if len(it.Args) != 0 {
		return nil, "filler takes key=value size arguments only"
	}
	f := &widget.Filler{}
	dim := func(d **widget.Dim) *widget.Dim {
		if *d == nil {
			*d = &widget.Dim{}
		}
		return *d
	}
	for _, p := range it.KV {
		if p.Value.Kind != ast.IntLit {
			return nil, "filler size " + p.Key + " wants an integer"
		}
		n := int(p.Value.Int)
		switch p.Key {
		case "minWidth":
			dim(&f.Min).W = n
		case "minHeight":
			dim(&f.Min).H = n
		case "prefWidth":
			dim(&f.Pref).W = n
		case "prefHeight":
			dim(&f.Pref).H = n
		case "maxWidth":
			dim(&f.Max).W = n
		case "maxHeight":
			dim(&f.Max).H = n
		default:
			return nil, "unknown filler size " + p.Key
		}
	}
	return f, ""
}

// buildBorder places one child per compass position from the clause's
// key=value items.
func (cp *compiler) buildBorder(decl ast.LayoutDecl) (widget.Layout, bool) {
	l := widget.NewBorderLayout()
	ok := true
	for _, it := range decl.Items {
		if !it.IsKV() || it.Value == nil || it.Value.Kind != ast.NameLit {
			cp.ctx.diags.addf(it.At, "layout", "borderLayout takes position=component items")
			ok = false
			continue
		}
		child, found := cp.childWidget(it.At, it.Value.Str)
		if !found {
			ok = false
			continue
		}
		if err := l.Set(widget.BorderSlot(it.Key), child); err != nil {
			cp.ctx.diags.addf(it.At, "layout", "%v", err)
			ok = false
		}
	}
	return l, ok
}

// buildGrid reads container options from key=value items and cells from
// named items: a bare name places the component at the next free cell,
// a call form carries the x/y anchor and any per-cell modifiers.
func (cp *compiler) buildGrid(decl ast.LayoutDecl) (widget.Layout, bool) {
	l := &widget.GridLayout{Opts: make(map[string]interface{})}
	ok := true
	for _, it := range decl.Items {
		if it.IsKV() {
			l.Opts[it.Key] = it.Value.Value()
			continue
		}
		if it.Name == "" || len(it.Args) != 0 {
			cp.ctx.diags.addf(it.At, "layout", "gridLayout takes option=value items and cell references")
			ok = false
			continue
		}

		w, found := cp.childWidget(it.At, it.Name)
		if !found {
			ok = false
			continue
		}
		cell := widget.GridCell{Widget: w}
		var anchorX, anchorY bool
		for _, p := range it.KV {
			switch p.Key {
			case "x":
				if p.Value.Kind != ast.IntLit {
					cp.ctx.diags.addf(p.Value.At, "layout", "cell anchor x wants an integer")
					ok = false
					continue
				}
				cell.X = int(p.Value.Int)
				anchorX = true
			case "y":
				if p.Value.Kind != ast.IntLit {
					cp.ctx.diags.addf(p.Value.At, "layout", "cell anchor y wants an integer")
					ok = false
					continue
				}
				cell.Y = int(p.Value.Int)
				anchorY = true
			default:
				if cell.Mods == nil {
					cell.Mods = make(map[string]interface{})
				}
				cell.Mods[p.Key] = p.Value.Value()
			}
		}
		cell.Anchor = anchorX && anchorY
		l.Cells = append(l.Cells, cell)
	}
	return l, ok
}

// childWidget resolves a layout child name to a single widget for
// one-widget slots (a border position, a grid cell). Images wrap in a
// label; a whole group wraps in a synthetic flow panel.
func (cp *compiler) childWidget(at ast.Pos, name string) (*widget.Widget, bool) {
	v, ok := cp.ctx.Lookup(name)
	if !ok {
		cp.ctx.diags.addf(at, "layout", "reference to undeclared component %q", name)
		return nil, false
	}
	switch c := v.(type) {
	case *widget.Widget:
		return c, true
	case *widget.Image:
		return cp.wrapImage(name, c), true
	case *widget.Group:
		panel := widget.New(widget.KindByName("Panel"), name+".group")
		panel.SetLayout(&widget.FlowLayout{Items: c.Members})
		return panel, true
	}
	cp.ctx.diags.addf(at, "layout", "%q cannot appear in a layout", name)
	return nil, false
}

// childWidgets resolves a layout child name for multi-widget contexts
// (flow and box children). A group expands inline into its members.
func (cp *compiler) childWidgets(at ast.Pos, name string) ([]*widget.Widget, bool) {
	v, ok := cp.ctx.Lookup(name)
	if !ok {
		cp.ctx.diags.addf(at, "layout", "reference to undeclared component %q", name)
		return nil, false
	}
	if g, isGroup := v.(*widget.Group); isGroup {
		return g.Members, true
	}
	w, found := cp.childWidget(at, name)
	if !found {
		return nil, false
	}
	return []*widget.Widget{w}, true
}

// wrapImage promotes a named image into a label widget showing it, so an
// image may be placed directly in a layout. The wrapper is constructed
// once per name and reused, and registers for event dispatch under the
// image's declared name.
func (cp *compiler) wrapImage(name string, img *widget.Image) *widget.Widget {
	if w, ok := cp.imageWraps[name]; ok {
		return w
	}
	lbl := widget.New(widget.KindByName("Label"), name)
	lbl.SetProperty("icon", img)
	cp.ctx.adapters[name] = event.NewAdapter(cp.env.Bus, name, lbl)
	cp.imageWraps[name] = lbl
	return lbl
}
