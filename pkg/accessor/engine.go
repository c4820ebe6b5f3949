package accessor

import (
	"fmt"
	"strconv"
	"strings"
)

// ExprEngine evaluates embedded sub-language expressions against a root
// object and the bean context. Richer engines can be installed on the
// compilation environment; SimpleEngine is the built-in default.
type ExprEngine interface {
	Eval(expr string, root interface{}, beans BeanLookup) (interface{}, error)
}

// SimpleEngine evaluates a small expression language: quoted string,
// integer, float and boolean literals, dotted property paths (resolved
// against the root first, then as bean.path), and concatenation of terms
// with +. Multi-term results are joined as strings.
type SimpleEngine struct{}

// Eval implements ExprEngine.
func (SimpleEngine) Eval(expr string, root interface{}, beans BeanLookup) (interface{}, error) {
	terms := splitTerms(expr)
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty expression")
	}

	if len(terms) == 1 {
		return evalTerm(terms[0], root, beans)
	}

	var sb strings.Builder
	for _, t := range terms {
		v, err := evalTerm(t, root, beans)
		if err != nil {
			return nil, err
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String(), nil
}

// splitTerms splits on top-level + signs, respecting quoted strings.
func splitTerms(expr string) []string {
	var terms []string
	var cur strings.Builder
	var quote byte
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case quote != 0:
			cur.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
			cur.WriteByte(c)
		case c == '+':
			terms = append(terms, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" || len(terms) > 0 {
		terms = append(terms, s)
	}
	return terms
}

func evalTerm(term string, root interface{}, beans BeanLookup) (interface{}, error) {
	if term == "" {
		return nil, fmt.Errorf("empty term")
	}

	// Quoted string literal
	if len(term) >= 2 {
		if (term[0] == '\'' && term[len(term)-1] == '\'') ||
			(term[0] == '"' && term[len(term)-1] == '"') {
			return term[1 : len(term)-1], nil
		}
	}

	// Boolean literal
	if term == "true" {
		return true, nil
	}
	if term == "false" {
		return false, nil
	}

	// Numeric literal
	if i, err := strconv.ParseInt(term, 0, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(term, 64); err == nil {
		return f, nil
	}

	// Property path rooted at the subject
	if root != nil {
		if v, err := NewPath(root, term, nil).Get(); err == nil {
			return v, nil
		}
	}

	// bean.path form: first segment names a bean
	if beans != nil {
		segs := splitPath(term)
		if len(segs) > 0 {
			bean, err := beans(segs[0])
			if err == nil {
				if len(segs) == 1 {
					return bean, nil
				}
				return NewPath(bean, strings.Join(segs[1:], "."), nil).Get()
			}
		}
	}

	return nil, fmt.Errorf("cannot evaluate term %q", term)
}
