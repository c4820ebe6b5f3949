package accessor

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Path traversal over arbitrary application state. A step prefers, in
// order: the PropertySource interface, string-keyed maps, exported struct
// fields, and finally zero-argument getter methods. Property names are
// matched case-insensitively on the first rune, so the path segment "name"
// reaches the exported field Name.

func splitPath(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// exported upper-cases the first rune of a segment to reach exported
// struct fields and methods.
func exported(seg string) string {
	r, size := utf8.DecodeRuneInString(seg)
	if r == utf8.RuneError {
		return seg
	}
	return string(unicode.ToUpper(r)) + seg[size:]
}

func getStep(obj interface{}, seg string) (interface{}, error) {
	if obj == nil {
		return nil, fmt.Errorf("cannot read %q from nil", seg)
	}

	if src, ok := obj.(PropertySource); ok {
		if v, ok := src.GetProperty(seg); ok {
			return v, nil
		}
		return nil, fmt.Errorf("no property %q", seg)
	}

	if m, ok := obj.(map[string]interface{}); ok {
		if v, ok := m[seg]; ok {
			return v, nil
		}
		return nil, fmt.Errorf("no key %q", seg)
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("cannot read %q from nil pointer", seg)
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		if f := v.FieldByName(exported(seg)); f.IsValid() {
			return f.Interface(), nil
		}
	}

	// Zero-argument getter method, on the value or its pointer.
	mv := reflect.ValueOf(obj).MethodByName(exported(seg))
	if mv.IsValid() && mv.Type().NumIn() == 0 && mv.Type().NumOut() >= 1 {
		return mv.Call(nil)[0].Interface(), nil
	}

	return nil, fmt.Errorf("no readable property %q on %T", seg, obj)
}

func writableStep(obj interface{}, seg string) bool {
	if obj == nil {
		return false
	}
	if _, ok := obj.(PropertySource); ok {
		return true
	}
	if _, ok := obj.(map[string]interface{}); ok {
		return true
	}

	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		f := v.Elem().FieldByName(exported(seg))
		if f.IsValid() && f.CanSet() {
			return true
		}
	}

	// SetX(value) setter method.
	mv := reflect.ValueOf(obj).MethodByName("Set" + exported(seg))
	return mv.IsValid() && mv.Type().NumIn() == 1
}

func setStep(obj interface{}, seg string, value interface{}) error {
	if src, ok := obj.(PropertySource); ok {
		return src.SetProperty(seg, value)
	}
	if m, ok := obj.(map[string]interface{}); ok {
		m[seg] = value
		return nil
	}

	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		f := v.Elem().FieldByName(exported(seg))
		if f.IsValid() && f.CanSet() {
			return assign(f, value, seg)
		}
	}

	mv := reflect.ValueOf(obj).MethodByName("Set" + exported(seg))
	if mv.IsValid() && mv.Type().NumIn() == 1 {
		av := reflect.ValueOf(value)
		in := mv.Type().In(0)
		if !av.IsValid() {
			av = reflect.Zero(in)
		} else if av.Type() != in {
			if !av.Type().ConvertibleTo(in) {
				return fmt.Errorf("cannot assign %T to %q (wants %s)", value, seg, in)
			}
			av = av.Convert(in)
		}
		mv.Call([]reflect.Value{av})
		return nil
	}

	return fmt.Errorf("no writable property %q on %T", seg, obj)
}

func assign(f reflect.Value, value interface{}, seg string) error {
	av := reflect.ValueOf(value)
	if !av.IsValid() {
		f.Set(reflect.Zero(f.Type()))
		return nil
	}
	if av.Type() != f.Type() {
		if !av.Type().ConvertibleTo(f.Type()) {
			return fmt.Errorf("cannot assign %T to %q (wants %s)", value, seg, f.Type())
		}
		av = av.Convert(f.Type())
	}
	f.Set(av)
	return nil
}
