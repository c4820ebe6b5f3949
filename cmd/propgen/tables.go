package main

// propSpec describes one property of a widget kind. typ names a PropType
// identifier in pkg/widget; def is the default value, nil when the zero
// value applies.
type propSpec struct {
	name string
	typ  string
	def  interface{}
}

// kindSpec describes one widget kind. The alias is snake_case and renders
// to the CamelCase kind name; extra properties override a shared property
// of the same name.
type kindSpec struct {
	alias string
	caps  []string
	extra []propSpec
}

// commonProps are the visual properties every kind carries.
var commonProps = []propSpec{
	{name: "background", typ: "TypeColor"},
	{name: "border", typ: "TypeBorder"},
	{name: "enabled", typ: "TypeBool", def: true},
	{name: "foreground", typ: "TypeColor"},
	{name: "height", typ: "TypeInt"},
	{name: "opaque", typ: "TypeBool", def: true},
	{name: "tooltip", typ: "TypeString"},
	{name: "visible", typ: "TypeBool", def: true},
	{name: "width", typ: "TypeInt"},
}

// kinds is the built-in widget vocabulary. Labels, check boxes and radio
// buttons are transparent by default, so they re-declare opaque without a
// default.
var kinds = []kindSpec{
	{
		alias: "frame",
		caps:  []string{"Visual", "Container", "Frame"},
		extra: []propSpec{
			{name: "resizable", typ: "TypeBool", def: true},
			{name: "title", typ: "TypeString"},
		},
	},
	{
		alias: "panel",
		caps:  []string{"Visual", "Container"},
	},
	{
		alias: "label",
		caps:  []string{"Visual"},
		extra: []propSpec{
			{name: "alignment", typ: "TypeString", def: "left"},
			{name: "icon", typ: "TypeIcon"},
			{name: "opaque", typ: "TypeBool"},
			{name: "text", typ: "TypeString"},
		},
	},
	{
		alias: "button",
		caps:  []string{"Visual"},
		extra: []propSpec{
			{name: "icon", typ: "TypeIcon"},
			{name: "text", typ: "TypeString"},
		},
	},
	{
		alias: "toggle_button",
		caps:  []string{"Visual", "Selectable"},
		extra: []propSpec{
			{name: "icon", typ: "TypeIcon"},
			{name: "selected", typ: "TypeBool"},
			{name: "text", typ: "TypeString"},
		},
	},
	{
		alias: "check_box",
		caps:  []string{"Visual", "Selectable"},
		extra: []propSpec{
			{name: "opaque", typ: "TypeBool"},
			{name: "selected", typ: "TypeBool"},
			{name: "text", typ: "TypeString"},
		},
	},
	{
		alias: "radio_button",
		caps:  []string{"Visual", "Selectable"},
		extra: []propSpec{
			{name: "opaque", typ: "TypeBool"},
			{name: "selected", typ: "TypeBool"},
			{name: "text", typ: "TypeString"},
		},
	},
	{
		alias: "text_field",
		caps:  []string{"Visual", "Text"},
		extra: []propSpec{
			{name: "columns", typ: "TypeInt"},
			{name: "editable", typ: "TypeBool", def: true},
			{name: "text", typ: "TypeString"},
		},
	},
	{
		alias: "text_area",
		caps:  []string{"Visual", "Text"},
		extra: []propSpec{
			{name: "columns", typ: "TypeInt"},
			{name: "editable", typ: "TypeBool", def: true},
			{name: "rows", typ: "TypeInt"},
			{name: "text", typ: "TypeString"},
		},
	},
	{
		alias: "slider",
		caps:  []string{"Visual"},
		extra: []propSpec{
			{name: "maximum", typ: "TypeInt", def: 100},
			{name: "minimum", typ: "TypeInt"},
			{name: "value", typ: "TypeInt"},
		},
	},
	{
		alias: "combo_box",
		caps:  []string{"Visual"},
		extra: []propSpec{
			{name: "editable", typ: "TypeBool"},
			{name: "selected", typ: "TypeString"},
		},
	},
	{
		alias: "list",
		caps:  []string{"Visual"},
		extra: []propSpec{
			{name: "selected", typ: "TypeString"},
		},
	},
}

// props merges the shared properties with the kind's own, the kind's
// winning on a name collision, and returns them sorted by name.
func (k kindSpec) props() []propSpec {
	merged := make(map[string]propSpec, len(commonProps)+len(k.extra))
	for _, p := range commonProps {
		merged[p.name] = p
	}
	for _, p := range k.extra {
		merged[p.name] = p
	}
	out := make([]propSpec, 0, len(merged))
	for _, p := range merged {
		out = append(out, p)
	}
	sortProps(out)
	return out
}

func sortProps(ps []propSpec) {
	for i := 1; i < len(ps); i++ {
		for j := i; j > 0 && ps[j].name < ps[j-1].name; j-- {
			ps[j], ps[j-1] = ps[j-1], ps[j]
		}
	}
}
