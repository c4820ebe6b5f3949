package compile

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chazu/bowerbird/pkg/widget"
)

// StdConverter is the built-in conversion service: it coerces source
// literals and accessor values into widget property types. Hosts with a
// richer type system (a DI container's conversion service) can install
// their own bind.Converter on the Environment instead.
type StdConverter struct{}

// Convert implements bind.Converter.
func (StdConverter) Convert(value interface{}, target widget.PropType) (interface{}, error) {
	switch target {
	case widget.TypeString:
		switch v := value.(type) {
		case string:
			return v, nil
		case nil:
			return "", nil
		default:
			return fmt.Sprint(v), nil
		}

	case widget.TypeInt:
		switch v := value.(type) {
		case int:
			return v, nil
		case int32:
			return int(v), nil
		case int64:
			return int(v), nil
		case float64:
			return int(v), nil
		case float32:
			return int(v), nil
		case bool:
			if v {
				return 1, nil
			}
			return 0, nil
		case string:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
			if err != nil {
				return nil, fmt.Errorf("cannot convert %q to int", v)
			}
			return int(n), nil
		}

	case widget.TypeFloat:
		switch v := value.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("cannot convert %q to float", v)
			}
			return f, nil
		}

	case widget.TypeBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("cannot convert %q to bool", v)
			}
			return b, nil
		case int:
			return v != 0, nil
		case int64:
			return v != 0, nil
		}

	case widget.TypeColor:
		switch v := value.(type) {
		case *widget.Color:
			return v, nil
		case nil:
			return (*widget.Color)(nil), nil
		case int64:
			return widget.UnpackColor(v), nil
		case int:
			return widget.UnpackColor(int64(v)), nil
		}

	case widget.TypeIcon:
		switch v := value.(type) {
		case *widget.Image:
			return v, nil
		case nil:
			return (*widget.Image)(nil), nil
		case string:
			return widget.NewResourceImage(v), nil
		}

	case widget.TypeBorder:
		switch v := value.(type) {
		case *widget.Border:
			return v, nil
		case nil:
			return (*widget.Border)(nil), nil
		}
	}

	return nil, fmt.Errorf("cannot convert %T to %s", value, target)
}

// CanConvert implements bind.Converter.
func (c StdConverter) CanConvert(value interface{}, target widget.PropType) bool {
	_, err := c.Convert(value, target)
	return err == nil
}

// exportedName upper-cases the first rune, reaching exported Go methods
// from source-level lowercase names.
func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
