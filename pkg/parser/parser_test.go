package parser

import (
	"testing"

	"github.com/chazu/bowerbird/pkg/ast"
)

// parse is a test helper that fails on any structural error.
func parse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc, err := ParseSource(src)
	if err != nil {
		t.Fatalf("ParseSource(%q) error = %v", src, err)
	}
	return doc
}

// TestParseComponents tests component declarations with and without
// property lists.
func TestParseComponents(t *testing.T) {
	doc := parse(t, `components {
		f: Frame(title="App", width=400);
		ok: Button(text="OK");
		box: Panel();
	}`)

	if len(doc.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(doc.Stmts))
	}
	stmt, ok := doc.Stmts[0].(*ast.ComponentsStmt)
	if !ok {
		t.Fatalf("expected *ast.ComponentsStmt, got %T", doc.Stmts[0])
	}
	if len(stmt.Decls) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(stmt.Decls))
	}

	f := stmt.Decls[0]
	if f.Name != "f" || f.Alias != "Frame" || len(f.Props) != 2 {
		t.Errorf("decl 0 = %+v, want f: Frame with 2 props", f)
	}
	if f.Props[0].Key != "title" || f.Props[0].Value.Kind != ast.StringLit || f.Props[0].Value.Str != "App" {
		t.Errorf("title prop = %+v", f.Props[0])
	}
	if f.Props[1].Key != "width" || f.Props[1].Value.Kind != ast.IntLit || f.Props[1].Value.Int != 400 {
		t.Errorf("width prop = %+v", f.Props[1])
	}
	if box := stmt.Decls[2]; box.Name != "box" || len(box.Props) != 0 {
		t.Errorf("decl 2 = %+v, want box with empty props", box)
	}
}

// TestParseDefaults tests class-level defaults entries.
func TestParseDefaults(t *testing.T) {
	doc := parse(t, `defaults { Button(opaque=false); Visual(enabled=true); }`)

	stmt, ok := doc.Stmts[0].(*ast.DefaultsStmt)
	if !ok {
		t.Fatalf("expected *ast.DefaultsStmt, got %T", doc.Stmts[0])
	}
	if len(stmt.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(stmt.Entries))
	}
	if stmt.Entries[0].Alias != "Button" || stmt.Entries[1].Alias != "Visual" {
		t.Errorf("aliases = %q, %q", stmt.Entries[0].Alias, stmt.Entries[1].Alias)
	}
	if v := stmt.Entries[0].Props[0].Value; v.Kind != ast.BoolLit || v.Bool != false {
		t.Errorf("opaque default = %+v", v)
	}
}

// TestParseColors tests constructor, channel and packed color forms.
func TestParseColors(t *testing.T) {
	doc := parse(t, `colors {
		warn: rgb(255, 160, 0);
		ink: 0x202020;
		edge: line(warn);
	}`)

	stmt, ok := doc.Stmts[0].(*ast.ColorsStmt)
	if !ok {
		t.Fatalf("expected *ast.ColorsStmt, got %T", doc.Stmts[0])
	}
	if len(stmt.Decls) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(stmt.Decls))
	}

	warn := stmt.Decls[0]
	if warn.Ctor != "rgb" || len(warn.Args) != 3 || warn.Args[0].Int != 255 {
		t.Errorf("warn = %+v", warn)
	}
	ink := stmt.Decls[1]
	if ink.Ctor != "" || len(ink.Args) != 1 || ink.Args[0].Int != 0x202020 {
		t.Errorf("ink = %+v", ink)
	}
	edge := stmt.Decls[2]
	if edge.Ctor != "line" || edge.Args[0].Kind != ast.NameLit || edge.Args[0].Str != "warn" {
		t.Errorf("edge = %+v", edge)
	}
}

// TestParseImages tests resource and url image constructors.
func TestParseImages(t *testing.T) {
	doc := parse(t, `images { logo: resource("logo.png"); remote: url("http://x/y.png"); }`)

	stmt, ok := doc.Stmts[0].(*ast.ImagesStmt)
	if !ok {
		t.Fatalf("expected *ast.ImagesStmt, got %T", doc.Stmts[0])
	}
	if stmt.Decls[0].Ctor != "resource" || stmt.Decls[0].Args[0].Str != "logo.png" {
		t.Errorf("logo = %+v", stmt.Decls[0])
	}
	if stmt.Decls[1].Ctor != "url" || stmt.Decls[1].Args[0].Str != "http://x/y.png" {
		t.Errorf("remote = %+v", stmt.Decls[1])
	}
}

// TestParseBind tests the bind clause forms: target shapes, expression
// forms, root selectors and trigger lists.
func TestParseBind(t *testing.T) {
	doc := parse(t, `bind {
		title.text: person.name;
		level.value: volume (secondary) [save, reload];
		total.text: ={ amount * rate } (bean calc);
		hint.text: %{app.hint} (none);
		choice(r1, r2): severity;
		(a, b): mode;
	}`)

	stmt, ok := doc.Stmts[0].(*ast.BindStmt)
	if !ok {
		t.Fatalf("expected *ast.BindStmt, got %T", doc.Stmts[0])
	}
	if len(stmt.Decls) != 6 {
		t.Fatalf("expected 6 declarations, got %d", len(stmt.Decls))
	}

	d := stmt.Decls[0]
	if d.Component != "title" || d.Property != "text" {
		t.Errorf("decl 0 target = %q.%q", d.Component, d.Property)
	}
	if d.Expr.Form != ast.PathExpr || d.Expr.Text != "person.name" {
		t.Errorf("decl 0 expr = %+v", d.Expr)
	}
	if d.Root.Kind != ast.PrimaryRoot {
		t.Errorf("decl 0 root = %+v, want default primary", d.Root)
	}

	d = stmt.Decls[1]
	if d.Root.Kind != ast.SecondaryRoot {
		t.Errorf("decl 1 root = %+v", d.Root)
	}
	if len(d.Triggers) != 2 || d.Triggers[0] != "save" || d.Triggers[1] != "reload" {
		t.Errorf("decl 1 triggers = %v", d.Triggers)
	}

	d = stmt.Decls[2]
	if d.Expr.Form != ast.EmbeddedExpr || d.Expr.Text != "amount * rate" {
		t.Errorf("decl 2 expr = %+v", d.Expr)
	}
	if d.Root.Kind != ast.BeanRoot || d.Root.Bean != "calc" {
		t.Errorf("decl 2 root = %+v", d.Root)
	}

	d = stmt.Decls[3]
	if d.Expr.Form != ast.PlaceholderExpr || d.Expr.Text != "app.hint" {
		t.Errorf("decl 3 expr = %+v", d.Expr)
	}
	if d.Root.Kind != ast.NoRoot {
		t.Errorf("decl 3 root = %+v", d.Root)
	}

	d = stmt.Decls[4]
	if !d.IsGroup() || d.GroupName != "choice" || len(d.Members) != 2 {
		t.Errorf("decl 4 = %+v, want named group of 2", d)
	}

	d = stmt.Decls[5]
	if !d.IsGroup() || d.GroupName != "" || len(d.Members) != 2 {
		t.Errorf("decl 5 = %+v, want anonymous group of 2", d)
	}
}

// TestParseLayout tests the layout item forms across the four styles.
func TestParseLayout(t *testing.T) {
	doc := parse(t, `layout {
		f: borderLayout(north=bar, center=body);
		body: boxLayout(vertical, a, glue, rigid(4, 4), filler(minWidth=2), b);
		bar: flowLayout(x, y);
		grid: gridLayout(cols=2, a(x=0, y=0), b(x=1, y=0, fill=true));
	}`)

	stmt, ok := doc.Stmts[0].(*ast.LayoutStmt)
	if !ok {
		t.Fatalf("expected *ast.LayoutStmt, got %T", doc.Stmts[0])
	}
	if len(stmt.Decls) != 4 {
		t.Fatalf("expected 4 declarations, got %d", len(stmt.Decls))
	}

	border := stmt.Decls[0]
	if border.Target != "f" || border.Style != "borderLayout" {
		t.Errorf("border decl = %+v", border)
	}
	if it := border.Items[0]; !it.IsKV() || it.Key != "north" || it.Value.Str != "bar" {
		t.Errorf("border item 0 = %+v", it)
	}

	box := stmt.Decls[1]
	if len(box.Items) != 6 {
		t.Fatalf("box items = %d, want 6", len(box.Items))
	}
	if it := box.Items[0]; it.Name != "vertical" || it.IsCall() || it.IsKV() {
		t.Errorf("box item 0 = %+v, want bare axis keyword", it)
	}
	if it := box.Items[2]; it.Name != "glue" || it.IsCall() {
		t.Errorf("box item 2 = %+v, want bare glue", it)
	}
	if it := box.Items[3]; it.Name != "rigid" || len(it.Args) != 2 || it.Args[0].Int != 4 {
		t.Errorf("box item 3 = %+v, want rigid(4, 4)", it)
	}
	if it := box.Items[4]; it.Name != "filler" || len(it.KV) != 1 || it.KV[0].Key != "minWidth" {
		t.Errorf("box item 4 = %+v, want filler(minWidth=2)", it)
	}

	grid := stmt.Decls[3]
	if it := grid.Items[0]; !it.IsKV() || it.Key != "cols" || it.Value.Int != 2 {
		t.Errorf("grid item 0 = %+v", it)
	}
	if it := grid.Items[2]; it.Name != "b" || len(it.KV) != 3 {
		t.Errorf("grid item 2 = %+v, want cell with 3 modifiers", it)
	}
}

// TestParseInvoke tests the invoke statement with and without a root.
func TestParseInvoke(t *testing.T) {
	doc := parse(t, `invoke reload (bean controller); invoke start;`)

	if len(doc.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(doc.Stmts))
	}
	first := doc.Stmts[0].(*ast.InvokeStmt)
	if first.Method != "reload" || first.Root.Kind != ast.BeanRoot || first.Root.Bean != "controller" {
		t.Errorf("first invoke = %+v", first)
	}
	second := doc.Stmts[1].(*ast.InvokeStmt)
	if second.Method != "start" || second.Root.Kind != ast.PrimaryRoot {
		t.Errorf("second invoke = %+v", second)
	}
}

// TestParseLiterals tests literal handling inside property lists.
func TestParseLiterals(t *testing.T) {
	doc := parse(t, `components {
		w: Frame(width=400, value=0.5, visible=true, title="Hi", background=ink, packed=0xFF8800, offset=-2);
	}`)

	props := doc.Stmts[0].(*ast.ComponentsStmt).Decls[0].Props
	want := []struct {
		kind ast.LiteralKind
		v    interface{}
	}{
		{ast.IntLit, int64(400)},
		{ast.FloatLit, 0.5},
		{ast.BoolLit, true},
		{ast.StringLit, "Hi"},
		{ast.NameLit, "ink"},
		{ast.IntLit, int64(0xFF8800)},
		{ast.IntLit, int64(-2)},
	}
	if len(props) != len(want) {
		t.Fatalf("expected %d props, got %d", len(want), len(props))
	}
	for i, w := range want {
		if props[i].Value.Kind != w.kind {
			t.Errorf("prop %d kind = %s, want %s", i, props[i].Value.Kind, w.kind)
		}
		if got := props[i].Value.Value(); got != w.v {
			t.Errorf("prop %d value = %v (%T), want %v (%T)", i, got, got, w.v, w.v)
		}
	}
}

// TestParse_DocumentOrder tests that statements are kept in source order.
func TestParse_DocumentOrder(t *testing.T) {
	doc := parse(t, `
		colors { ink: 0x202020; }
		components { l: Label(); }
		bind { l.text: name; }
		layout { l: flowLayout(); }
	`)

	wantTypes := []string{"*ast.ColorsStmt", "*ast.ComponentsStmt", "*ast.BindStmt", "*ast.LayoutStmt"}
	if len(doc.Stmts) != len(wantTypes) {
		t.Fatalf("expected %d statements, got %d", len(wantTypes), len(doc.Stmts))
	}
	switch doc.Stmts[0].(type) {
	case *ast.ColorsStmt:
	default:
		t.Errorf("statement 0 = %T, want *ast.ColorsStmt", doc.Stmts[0])
	}
	switch doc.Stmts[3].(type) {
	case *ast.LayoutStmt:
	default:
		t.Errorf("statement 3 = %T, want *ast.LayoutStmt", doc.Stmts[3])
	}
}

// TestParse_Errors tests inputs the parser must reject outright.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown keyword", input: "widgets { a: Button(); }"},
		{name: "missing brace", input: "components a: Button(); }"},
		{name: "missing semicolon", input: "components { a: Button() }"},
		{name: "missing colon", input: "components { a Button(); }"},
		{name: "bad bind target", input: "bind { onlyname: x; }"},
		{name: "unknown root selector", input: "bind { a.text: x (tertiary); }"},
		{name: "empty trigger list", input: "bind { a.text: x []; }"},
		{name: "unterminated statement", input: "components { a: Button();"},
		{name: "statement not an ident", input: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSource(tt.input); err == nil {
				t.Fatalf("ParseSource(%q) expected error, got none", tt.input)
			}
		})
	}
}
