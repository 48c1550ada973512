package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/stage2d/vmath"
)

// Color is a normalized RGBA color with channels in [0, 1]
type Color struct {
	R, G, B, A float64
}

// Predefined colors
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
	ColorClear = Color{0, 0, 0, 0}
)

// Clamped returns the color with every channel clamped to [0, 1]
func (c Color) Clamped() Color {
	return Color{
		R: vmath.Clamp(c.R, 0, 1),
		G: vmath.Clamp(c.G, 0, 1),
		B: vmath.Clamp(c.B, 0, 1),
		A: vmath.Clamp(c.A, 0, 1),
	}
}

// Over alpha-composites c over the given background, producing the
// opaque color a terminal cell can actually display
func (c Color) Over(background Color) Color {
	cc := c.Clamped()
	bg := colorful.Color{R: background.R, G: background.G, B: background.B}
	fg := colorful.Color{R: cc.R, G: cc.G, B: cc.B}
	out := bg.BlendRgb(fg, cc.A)
	return Color{R: out.R, G: out.G, B: out.B, A: 1}
}

// TCell converts the color to a tcell RGB color, compositing any
// transparency against the background first
func (c Color) TCell(background Color) tcell.Color {
	out := c.Over(background)
	r, g, b := colorful.Color{R: out.R, G: out.G, B: out.B}.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
