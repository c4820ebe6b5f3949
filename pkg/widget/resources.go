package widget

import "fmt"

// Color is an RGBA color. Colors are registered in the component registry
// under their declared name and assigned to color-typed properties.
type Color struct {
	R, G, B, A uint8
}

// NewColor builds a color from integer channel values (0-255). Alpha
// defaults to opaque.
func NewColor(r, g, b int) *Color {
	return &Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xFF}
}

// NewColorAlpha builds a color from integer channel values including alpha.
func NewColorAlpha(r, g, b, a int) *Color {
	return &Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// UnpackColor decodes a bit-packed literal. Values above 0xFFFFFF carry
// their alpha in the top byte (0xAARRGGBB); smaller values are opaque
// 0xRRGGBB.
func UnpackColor(packed int64) *Color {
	c := &Color{
		R: uint8(packed >> 16),
		G: uint8(packed >> 8),
		B: uint8(packed),
		A: 0xFF,
	}
	if uint64(packed) > 0xFFFFFF {
		c.A = uint8(packed >> 24)
	}
	return c
}

// Packed returns the color as 0xAARRGGBB.
func (c *Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// String implements fmt.Stringer.
func (c *Color) String() string {
	return fmt.Sprintf("#%08X", c.Packed())
}

// Image is a named image resource. Resolution of resource names against a
// subject's resource scope (including platform-qualified fallback) is an
// external collaborator's job; the model records where the image came from.
type Image struct {
	Source string // resource name or URL text
	URL    bool   // true when Source is a URL rather than a resource name
}

// NewResourceImage references an image by resource name.
func NewResourceImage(name string) *Image {
	return &Image{Source: name}
}

// NewURLImage references an image by URL.
func NewURLImage(url string) *Image {
	return &Image{Source: url, URL: true}
}

// String implements fmt.Stringer.
func (i *Image) String() string {
	if i.URL {
		return "url(" + i.Source + ")"
	}
	return "resource(" + i.Source + ")"
}

// BorderStyle enumerates the standard border styles predefined in every
// compilation context.
type BorderStyle string

const (
	BorderEtched  BorderStyle = "etched"
	BorderLowered BorderStyle = "lowered"
	BorderRaised  BorderStyle = "raised"
	BorderEmpty   BorderStyle = "empty"
	BorderLine    BorderStyle = "line"
)

// Border is a border resource assignable to border-typed properties.
type Border struct {
	Style BorderStyle
	Color *Color // line borders only
}

// NewBorder builds a border of the given style.
func NewBorder(style BorderStyle) *Border {
	return &Border{Style: style}
}

// NewLineBorder builds a line border with the given color.
func NewLineBorder(c *Color) *Border {
	return &Border{Style: BorderLine, Color: c}
}

// String implements fmt.Stringer.
func (b *Border) String() string {
	if b.Style == BorderLine && b.Color != nil {
		return fmt.Sprintf("line(%s)", b.Color)
	}
	return string(b.Style)
}
