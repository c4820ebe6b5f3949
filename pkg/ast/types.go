// Package ast defines the statement tree for the bowerbird view language.
//
// A view source compiles to a Document: a flat, ordered list of statements.
// The walker in pkg/compile processes statements strictly in declaration
// order, so a name must be introduced (components, colors, images) before a
// later bind or layout statement may reference it.
package ast

// Pos is a position in the source file.
type Pos struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Document is a fully parsed view source.
type Document struct {
	Stmts []Stmt `json:"stmts"`
}

// Stmt is implemented by all top-level statement nodes.
type Stmt interface {
	stmtNode()
	Pos() Pos
}

// LiteralKind discriminates the literal value forms of the language.
type LiteralKind string

const (
	IntLit    LiteralKind = "int"
	FloatLit  LiteralKind = "float"
	BoolLit   LiteralKind = "bool"
	StringLit LiteralKind = "string"
	NameLit   LiteralKind = "name" // bare identifier: a reference to a declared name
)

// Literal is a literal value or a bare name reference.
type Literal struct {
	Kind  LiteralKind `json:"kind"`
	Str   string      `json:"str,omitempty"`   // StringLit and NameLit payload
	Int   int64       `json:"int,omitempty"`   // IntLit payload
	Float float64     `json:"float,omitempty"` // FloatLit payload
	Bool  bool        `json:"bool,omitempty"`  // BoolLit payload
	At    Pos         `json:"at"`
}

// Value returns the literal payload as an interface value.
// NameLit returns the referenced name as a string.
func (l Literal) Value() interface{} {
	switch l.Kind {
	case IntLit:
		return l.Int
	case FloatLit:
		return l.Float
	case BoolLit:
		return l.Bool
	default:
		return l.Str
	}
}

// Prop is a key=value pair inside a component, defaults or layout clause.
type Prop struct {
	Key   string  `json:"key"`
	Value Literal `json:"value"`
}

// ComponentsStmt declares and constructs named components:
//
//	components { ok: Button(text="OK"); ... }
type ComponentsStmt struct {
	Decls []ComponentDecl `json:"decls"`
	At    Pos             `json:"at"`
}

func (*ComponentsStmt) stmtNode() {}

// Pos returns the statement position.
func (s *ComponentsStmt) Pos() Pos { return s.At }

// ComponentDecl is one name: Alias(props...) declaration.
type ComponentDecl struct {
	Name  string `json:"name"`
	Alias string `json:"alias"`
	Props []Prop `json:"props,omitempty"`
	At    Pos    `json:"at"`
}

// DefaultsStmt records class-level property defaults:
//
//	defaults { Button(opaque=false); ... }
type DefaultsStmt struct {
	Entries []DefaultEntry `json:"entries"`
	At      Pos            `json:"at"`
}

func (*DefaultsStmt) stmtNode() {}

// Pos returns the statement position.
func (s *DefaultsStmt) Pos() Pos { return s.At }

// DefaultEntry is one Alias(props...) defaults clause. Values are literals
// only; expressions are not allowed in defaults.
type DefaultEntry struct {
	Alias string `json:"alias"`
	Props []Prop `json:"props"`
	At    Pos    `json:"at"`
}

// ExprForm discriminates the three expression grammars an accessor supports.
type ExprForm string

const (
	PathExpr        ExprForm = "path"        // plain property path: person.name
	EmbeddedExpr    ExprForm = "embedded"    // ={ ... } sub-language expression
	PlaceholderExpr ExprForm = "placeholder" // %{ ... } configuration lookup
)

// ExprRef is the textual expression of a bind clause, tagged with its form.
type ExprRef struct {
	Form ExprForm `json:"form"`
	Text string   `json:"text"`
	At   Pos      `json:"at"`
}

// RootKind selects the object an expression is evaluated against.
type RootKind string

const (
	PrimaryRoot   RootKind = "primary"   // the active primary subject (default)
	SecondaryRoot RootKind = "secondary" // the active secondary subject
	BeanRoot      RootKind = "bean"      // a named external bean
	NoRoot        RootKind = "none"      // literal-only expressions
)

// RootRef names the root object of an expression or invoke statement.
type RootRef struct {
	Kind RootKind `json:"kind"`
	Bean string   `json:"bean,omitempty"` // set when Kind == BeanRoot
}

// BindStmt wires component properties to external state:
//
//	bind {
//	    onOff.selected: active [refresh];
//	    level(r1, r2, r3): severity (secondary);
//	}
type BindStmt struct {
	Decls []BindDecl `json:"decls"`
	At    Pos        `json:"at"`
}

func (*BindStmt) stmtNode() {}

// Pos returns the statement position.
func (s *BindStmt) Pos() Pos { return s.At }

// BindDecl is a single binding clause. Either Component/Property are set
// (single-target form) or Members is non-empty (group form, with GroupName
// optionally naming the group for later layout reuse).
type BindDecl struct {
	Component string   `json:"component,omitempty"`
	Property  string   `json:"property,omitempty"`
	GroupName string   `json:"groupName,omitempty"`
	Members   []string `json:"members,omitempty"`
	Expr      ExprRef  `json:"expr"`
	Root      RootRef  `json:"root"`
	Triggers  []string `json:"triggers,omitempty"`
	At        Pos      `json:"at"`
}

// IsGroup reports whether the clause uses the group-target form.
func (d *BindDecl) IsGroup() bool { return len(d.Members) > 0 }

// ResourceDecl is one declaration inside a colors or images statement.
// Ctor is the constructor name (rgb, resource, url, font); a bare packed
// literal such as 0xFF8800 leaves Ctor empty with the literal as sole arg.
type ResourceDecl struct {
	Name string    `json:"name"`
	Ctor string    `json:"ctor,omitempty"`
	Args []Literal `json:"args,omitempty"`
	At   Pos       `json:"at"`
}

// ColorsStmt declares named colors and borders:
//
//	colors { warn: rgb(255, 160, 0); ink: 0x202020; }
type ColorsStmt struct {
	Decls []ResourceDecl `json:"decls"`
	At    Pos            `json:"at"`
}

func (*ColorsStmt) stmtNode() {}

// Pos returns the statement position.
func (s *ColorsStmt) Pos() Pos { return s.At }

// ImagesStmt declares named images:
//
//	images { logo: resource("logo.png"); remote: url("http://..."); }
type ImagesStmt struct {
	Decls []ResourceDecl `json:"decls"`
	At    Pos            `json:"at"`
}

func (*ImagesStmt) stmtNode() {}

// Pos returns the statement position.
func (s *ImagesStmt) Pos() Pos { return s.At }

// LayoutStmt arranges declared components inside containers:
//
//	layout { f: borderLayout(north=toolbar, center=body); }
type LayoutStmt struct {
	Decls []LayoutDecl `json:"decls"`
	At    Pos          `json:"at"`
}

func (*LayoutStmt) stmtNode() {}

// Pos returns the statement position.
func (s *LayoutStmt) Pos() Pos { return s.At }

// LayoutDecl targets one container with one layout style.
type LayoutDecl struct {
	Target string       `json:"target"`
	Style  string       `json:"style"`
	Items  []LayoutItem `json:"items,omitempty"`
	At     Pos          `json:"at"`
}

// LayoutItem is one argument of a layout clause. Exactly one of the forms
// applies:
//
//	Key != ""            key=value item (border slot, container option)
//	Name, no Args/KV     bare reference (flow/box child, box axis keyword)
//	Name with Args/KV    call item: pseudo-element (glue, rigid(4,4)) or a
//	                     grid cell with modifiers (b(x=1, y=0))
type LayoutItem struct {
	Key   string    `json:"key,omitempty"`
	Value *Literal  `json:"value,omitempty"`
	Name  string    `json:"name,omitempty"`
	Args  []Literal `json:"args,omitempty"`
	KV    []Prop    `json:"kv,omitempty"`
	At    Pos       `json:"at"`
}

// IsKV reports whether the item is a key=value item.
func (it *LayoutItem) IsKV() bool { return it.Key != "" }

// IsCall reports whether the item carries call arguments.
func (it *LayoutItem) IsCall() bool { return len(it.Args) > 0 || len(it.KV) > 0 }

// InvokeStmt calls a named zero-or-more-argument method on a root object and
// discards the result:
//
//	invoke reload (bean controller);
type InvokeStmt struct {
	Method string  `json:"method"`
	Root   RootRef `json:"root"`
	At     Pos     `json:"at"`
}

func (*InvokeStmt) stmtNode() {}

// Pos returns the statement position.
func (s *InvokeStmt) Pos() Pos { return s.At }
