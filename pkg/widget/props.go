package widget

// PropType is the declared value type of a widget property. Conversion of
// source literals into these types is the conversion service's job; the
// widget model only checks that an assigned value already matches.
type PropType int

const (
	TypeString PropType = iota + 1
	TypeInt
	TypeFloat
	TypeBool
	TypeColor
	TypeIcon
	TypeBorder
)

// String returns the type name used in diagnostics.
func (t PropType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeColor:
		return "color"
	case TypeIcon:
		return "icon"
	case TypeBorder:
		return "border"
	}
	return "unknown"
}

// Accepts reports whether a runtime value matches the property type.
func (t PropType) Accepts(v interface{}) bool {
	if v == nil {
		return t == TypeColor || t == TypeIcon || t == TypeBorder
	}
	switch t {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeInt:
		_, ok := v.(int)
		return ok
	case TypeFloat:
		_, ok := v.(float64)
		return ok
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeColor:
		_, ok := v.(*Color)
		return ok
	case TypeIcon:
		_, ok := v.(*Image)
		return ok
	case TypeBorder:
		_, ok := v.(*Border)
		return ok
	}
	return false
}

// zeroOf returns the zero value read from an unset property.
func zeroOf(t PropType) interface{} {
	switch t {
	case TypeString:
		return ""
	case TypeInt:
		return 0
	case TypeFloat:
		return 0.0
	case TypeBool:
		return false
	}
	return nil
}

// PropDef describes one property in a kind's table.
type PropDef struct {
	Name     string
	Type     PropType
	Default  interface{}
	Writable bool
}
