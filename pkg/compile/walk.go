package compile

import (
	"github.com/google/uuid"

	"github.com/chazu/bowerbird/pkg/accessor"
	"github.com/chazu/bowerbird/pkg/ast"
	"github.com/chazu/bowerbird/pkg/bind"
	"github.com/chazu/bowerbird/pkg/widget"
)

// walkComponents constructs and registers each declared component: resolve
// the alias, construct seeded with the declared name, apply matching
// defaults, then assign the explicit properties. The reserved "value" key
// sets the instance's logical value instead of a widget property.
func (cp *compiler) walkComponents(stmt *ast.ComponentsStmt) {
	for _, decl := range stmt.Decls {
		if _, exists := cp.ctx.Lookup(decl.Name); exists {
			cp.ctx.diags.notef(decl.At, "components", "name %q already declared, redeclaration ignored", decl.Name)
			continue
		}

		w, err := cp.ctx.construct(decl.Alias, decl.Name)
		if err != nil {
			cp.ctx.diags.addf(decl.At, "components", "%v", err)
			continue
		}
		cp.ctx.registry[decl.Name] = w

		for _, p := range decl.Props {
			if p.Key == "value" {
				w.SetLogicalValue(p.Value.Value())
				continue
			}
			if err := cp.ctx.assignLiteral(w, p.Key, p.Value); err != nil {
				cp.ctx.diags.addf(p.Value.At, "components", "%s.%s: %v", decl.Name, p.Key, err)
			}
		}
	}
}

// walkDefaults records class defaults. Defaults apply only to instances
// constructed after this statement; nothing is retroactive.
func (cp *compiler) walkDefaults(stmt *ast.DefaultsStmt) {
	for _, entry := range stmt.Entries {
		if err := cp.ctx.recordDefault(entry.Alias, entry.Props); err != nil {
			cp.ctx.diags.addf(entry.At, "defaults", "%v", err)
		}
	}
}

// walkColors constructs named colors and line borders.
func (cp *compiler) walkColors(stmt *ast.ColorsStmt) {
	for _, decl := range stmt.Decls {
		v, err := cp.buildColor(decl)
		if err != nil {
			cp.ctx.diags.addf(decl.At, "colors", "%s: %v", decl.Name, err)
			continue
		}
		cp.ctx.register(decl.At, "colors", decl.Name, v)
	}
}

// walkImages constructs named images from resource names or URLs.
// Resource names go through the environment's resolver when one is
// installed; the resolver owns platform-qualified fallback.
func (cp *compiler) walkImages(stmt *ast.ImagesStmt) {
	for _, decl := range stmt.Decls {
		img, err := cp.buildImage(decl)
		if err != nil {
			cp.ctx.diags.addf(decl.At, "images", "%s: %v", decl.Name, err)
			continue
		}
		cp.ctx.register(decl.At, "images", decl.Name, img)
	}
}

// walkBind resolves each clause into an accessor and delegates to the
// binding engine. Unknown names are semantic errors; a conversion failure
// against live external state is a hard error and aborts the walk.
func (cp *compiler) walkBind(stmt *ast.BindStmt) error {
	for _, decl := range stmt.Decls {
		acc, ok := cp.buildAccessor(decl)
		if !ok {
			continue
		}
		if decl.IsGroup() {
			if err := cp.bindGroup(decl, acc); err != nil {
				return err
			}
			continue
		}
		if err := cp.bindSingle(decl, acc); err != nil {
			return err
		}
	}
	return nil
}

// buildAccessor resolves a bind clause's root and expression form into an
// accessor. Returns ok=false (with a diagnostic) when resolution fails.
func (cp *compiler) buildAccessor(decl ast.BindDecl) (accessor.Accessor, bool) {
	var root interface{}
	switch decl.Root.Kind {
	case ast.PrimaryRoot:
		root = cp.env.Subject
	case ast.SecondaryRoot:
		root = cp.env.Secondary
	case ast.BeanRoot:
		bean, err := cp.env.beanLookup()(decl.Root.Bean)
		if err != nil {
			cp.ctx.diags.addf(decl.At, "bind", "%v", err)
			return nil, false
		}
		root = bean
	case ast.NoRoot:
		root = nil
	}

	switch decl.Expr.Form {
	case ast.PathExpr:
		if decl.Root.Kind == ast.NoRoot {
			cp.ctx.diags.addf(decl.At, "bind", "path expression %q needs a root object", decl.Expr.Text)
			return nil, false
		}
		return accessor.NewPath(root, decl.Expr.Text, cp.env.Bus), true
	case ast.EmbeddedExpr:
		return accessor.NewExpr(cp.env.Engine, decl.Expr.Text, root, cp.env.beanLookup(), cp.env.Bus), true
	case ast.PlaceholderExpr:
		return accessor.NewConfig(cp.env.Config, decl.Expr.Text, cp.env.Bus), true
	}
	cp.ctx.diags.addf(decl.At, "bind", "unsupported expression form %q", decl.Expr.Form)
	return nil, false
}

// bindSingle wires one component property. The component must already be
// declared and must be a concrete visual widget.
func (cp *compiler) bindSingle(decl ast.BindDecl, acc accessor.Accessor) error {
	v, ok := cp.ctx.Lookup(decl.Component)
	if !ok {
		cp.ctx.diags.addf(decl.At, "bind", "reference to undeclared component %q", decl.Component)
		return nil
	}
	w, ok := v.(*widget.Widget)
	if !ok || !w.Is(widget.CapVisual) {
		cp.ctx.diags.addf(decl.At, "bind", "%q is not a bindable widget", decl.Component)
		return nil
	}
	if _, ok := w.PropertyType(decl.Property); !ok {
		cp.ctx.diags.addf(decl.At, "bind", "widget %q has no property %q", decl.Component, decl.Property)
		return nil
	}

	cocoon, err := bind.Wire(w, decl.Property, acc, cp.env.Converter, decl.Triggers)
	if err != nil {
		return err
	}
	cp.cocoons = append(cp.cocoons, cocoon)
	return nil
}

// bindGroup wires a group clause. All members must exist, be widgets and
// be selectable; a named all-selectable group is also registered for
// later layout reuse.
func (cp *compiler) bindGroup(decl ast.BindDecl, acc accessor.Accessor) error {
	members := make([]*widget.Widget, 0, len(decl.Members))
	for _, name := range decl.Members {
		v, ok := cp.ctx.Lookup(name)
		if !ok {
			cp.ctx.diags.addf(decl.At, "bind", "group member %q not found", name)
			return nil
		}
		w, ok := v.(*widget.Widget)
		if !ok || !w.Is(widget.CapVisual) {
			cp.ctx.diags.addf(decl.At, "bind", "group member %q is not a widget", name)
			return nil
		}
		if !w.Is(widget.CapSelectable) {
			cp.ctx.diags.addf(decl.At, "bind", "group member %q is not selectable", name)
			return nil
		}
		members = append(members, w)
	}

	name := decl.GroupName
	if name == "" {
		name = uuid.NewString()
	}
	grp := widget.NewGroup(name, members)
	if decl.GroupName != "" {
		cp.ctx.register(decl.At, "bind", decl.GroupName, grp)
	}

	gc, err := bind.WireGroup(grp, acc, decl.Triggers)
	if err != nil {
		return err
	}
	cp.groups = append(cp.groups, gc)
	return nil
}

// walkInvoke resolves the root object and calls the named method,
// discarding any result.
func (cp *compiler) walkInvoke(stmt *ast.InvokeStmt) {
	var root interface{}
	switch stmt.Root.Kind {
	case ast.PrimaryRoot:
		root = cp.env.Subject
	case ast.SecondaryRoot:
		root = cp.env.Secondary
	case ast.BeanRoot:
		bean, err := cp.env.beanLookup()(stmt.Root.Bean)
		if err != nil {
			cp.ctx.diags.addf(stmt.At, "invoke", "%v", err)
			return
		}
		root = bean
	case ast.NoRoot:
		cp.ctx.diags.addf(stmt.At, "invoke", "invoke %s: a root object is required", stmt.Method)
		return
	}
	if err := cp.env.invoke(root, stmt.Method); err != nil {
		cp.ctx.diags.addf(stmt.At, "invoke", "%v", err)
	}
}
