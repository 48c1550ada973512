package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/stage2d/engine"
)

// Renderer draws the world onto a tcell screen, one cell per world
// unit. Sprites become solid blocks of background color; rotation has
// no cell-grid representation and is ignored.
type Renderer struct {
	screen     tcell.Screen
	camera     *Camera
	background Color
}

// NewRenderer wraps an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:     screen,
		camera:     NewCamera(float64(w), float64(h)),
		background: ColorBlack,
	}
}

// Camera returns the renderer's camera
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// SetBackground sets the clear color used for empty cells and as the
// compositing base for translucent sprites
func (r *Renderer) SetBackground(c Color) {
	r.background = c
}

// Resize updates the camera viewport after a terminal resize event
func (r *Renderer) Resize(width, height int) {
	r.camera.SetViewportSize(float64(width), float64(height))
}

// Frame clears the screen, draws every entity carrying a transform
// and a sprite, overlays the HUD line, and presents the result
func (r *Renderer) Frame(w *engine.World, hud string) {
	bg := r.background.TCell(ColorBlack)
	r.screen.Fill(' ', tcell.StyleDefault.Background(bg))

	screenW, screenH := r.screen.Size()
	for _, e := range w.Entities() {
		tf, ok := engine.Get[engine.Transform](w, e)
		if !ok {
			continue
		}
		sp, ok := engine.Get[engine.Sprite](w, e)
		if !ok {
			continue
		}
		r.drawSprite(tf, sp, screenW, screenH)
	}

	if hud != "" {
		r.drawText(0, 0, hud, screenW)
	}
	r.screen.Show()
}

func (r *Renderer) drawSprite(tf engine.Transform, sp engine.Sprite, screenW, screenH int) {
	pos := r.camera.WorldToScreen(tf.X, tf.Y)
	width := int(sp.Width * tf.ScaleX)
	height := int(sp.Height * tf.ScaleY)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	color := Color{R: sp.R, G: sp.G, B: sp.B, A: sp.A}.TCell(r.background)
	style := tcell.StyleDefault.Background(color)

	x0 := int(pos.X)
	y0 := int(pos.Y)
	for y := y0; y < y0+height; y++ {
		if y < 0 || y >= screenH {
			continue
		}
		for x := x0; x < x0+width; x++ {
			if x < 0 || x >= screenW {
				continue
			}
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawText(x, y int, text string, screenW int) {
	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(r.background.TCell(ColorBlack))
	col := x
	for _, ch := range text {
		if col >= screenW {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
