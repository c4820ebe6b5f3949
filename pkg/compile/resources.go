package compile

import (
	"fmt"

	"github.com/chazu/bowerbird/pkg/ast"
	"github.com/chazu/bowerbird/pkg/widget"
)

// buildColor constructs a color (or line border) from a colors-statement
// declaration: integer or float channel values, a bit-packed literal, or
// a line() border over an existing color.
func (cp *compiler) buildColor(decl ast.ResourceDecl) (interface{}, error) {
	switch decl.Ctor {
	case "":
		if len(decl.Args) != 1 || decl.Args[0].Kind != ast.IntLit {
			return nil, fmt.Errorf("a packed color wants one integer literal")
		}
		return widget.UnpackColor(decl.Args[0].Int), nil

	case "rgb", "rgba":
		want := 3
		if decl.Ctor == "rgba" {
			want = 4
		}
		if len(decl.Args) != want {
			return nil, fmt.Errorf("%s wants %d channel values, got %d", decl.Ctor, want, len(decl.Args))
		}
		ch, err := channelValues(decl.Args)
		if err != nil {
			return nil, err
		}
		if want == 4 {
			return widget.NewColorAlpha(ch[0], ch[1], ch[2], ch[3]), nil
		}
		return widget.NewColor(ch[0], ch[1], ch[2]), nil

	case "line":
		if len(decl.Args) != 1 {
			return nil, fmt.Errorf("line wants one color argument")
		}
		arg := decl.Args[0]
		switch arg.Kind {
		case ast.IntLit:
			return widget.NewLineBorder(widget.UnpackColor(arg.Int)), nil
		case ast.NameLit:
			v, ok := cp.ctx.Lookup(arg.Str)
			if !ok {
				return nil, fmt.Errorf("reference to undeclared name %q", arg.Str)
			}
			c, ok := v.(*widget.Color)
			if !ok {
				return nil, fmt.Errorf("%q is not a color", arg.Str)
			}
			return widget.NewLineBorder(c), nil
		default:
			return nil, fmt.Errorf("line wants a color name or packed literal")
		}

	default:
		return nil, fmt.Errorf("unknown color constructor %q", decl.Ctor)
	}
}

// channelValues normalizes channel literals: integers pass through,
// floats are treated as 0..1 and scaled to 0..255.
func channelValues(args []ast.Literal) ([]int, error) {
	ch := make([]int, len(args))
	for i, a := range args {
		switch a.Kind {
		case ast.IntLit:
			ch[i] = int(a.Int)
		case ast.FloatLit:
			ch[i] = int(a.Float*255 + 0.5)
		default:
			return nil, fmt.Errorf("channel %d: expected a numeric literal", i)
		}
		if ch[i] < 0 || ch[i] > 255 {
			return nil, fmt.Errorf("channel %d: value %d out of range", i, ch[i])
		}
	}
	return ch, nil
}

// buildImage constructs an image from a resource name or URL.
func (cp *compiler) buildImage(decl ast.ResourceDecl) (*widget.Image, error) {
	if len(decl.Args) != 1 || decl.Args[0].Kind != ast.StringLit {
		return nil, fmt.Errorf("%s wants one string argument", decl.Ctor)
	}
	arg := decl.Args[0].Str

	switch decl.Ctor {
	case "resource":
		if cp.env.Resources != nil {
			resolved, err := cp.env.Resources.Resolve(arg)
			if err != nil {
				return nil, fmt.Errorf("resource %q: %w", arg, err)
			}
			arg = resolved
		}
		return widget.NewResourceImage(arg), nil
	case "url":
		return widget.NewURLImage(arg), nil
	default:
		return nil, fmt.Errorf("unknown image constructor %q", decl.Ctor)
	}
}
