// Package input collects terminal events into per-frame keyboard and
// mouse state that game code polls each update.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Key identifies a keyboard key. Printable keys carry their rune in
// Ch with Code set to tcell.KeyRune; special keys carry Code only.
type Key struct {
	Code tcell.Key
	Ch   rune
}

// KeyOf builds the identity for a printable key
func KeyOf(ch rune) Key {
	return Key{Code: tcell.KeyRune, Ch: ch}
}

// Collector accumulates events between frames and exposes held,
// just-pressed and just-released queries. Terminals report key
// presses only, so a key counts as held exactly for the frame its
// event arrived in.
type Collector struct {
	pressed     map[Key]bool
	prevPressed map[Key]bool

	mouseX, mouseY int
	buttons        tcell.ButtonMask
	prevButtons    tcell.ButtonMask
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{
		pressed:     make(map[Key]bool),
		prevPressed: make(map[Key]bool),
	}
}

// Feed records a terminal event. Non-input events are ignored.
func (c *Collector) Feed(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		c.pressed[keyFromEvent(e)] = true
	case *tcell.EventMouse:
		c.mouseX, c.mouseY = e.Position()
		c.buttons = e.Buttons()
	}
}

// BeginFrame rotates the current state into the previous frame and
// clears the incoming key set. Call once per frame after game logic
// has consumed the state.
func (c *Collector) BeginFrame() {
	c.prevPressed, c.pressed = c.pressed, c.prevPressed
	clear(c.pressed)
	c.prevButtons = c.buttons
}

// IsKeyPressed reports whether the key arrived this frame
func (c *Collector) IsKeyPressed(k Key) bool {
	return c.pressed[k]
}

// IsKeyJustPressed reports whether the key arrived this frame but not
// the previous one
func (c *Collector) IsKeyJustPressed(k Key) bool {
	return c.pressed[k] && !c.prevPressed[k]
}

// IsKeyJustReleased reports whether the key arrived the previous
// frame but not this one
func (c *Collector) IsKeyJustReleased(k Key) bool {
	return !c.pressed[k] && c.prevPressed[k]
}

// MousePosition returns the last reported mouse cell coordinates
func (c *Collector) MousePosition() (int, int) {
	return c.mouseX, c.mouseY
}

// IsMouseButtonPressed reports whether the button is currently down
func (c *Collector) IsMouseButtonPressed(b tcell.ButtonMask) bool {
	return c.buttons&b != 0
}

// IsMouseButtonJustPressed reports whether the button went down since
// the previous frame
func (c *Collector) IsMouseButtonJustPressed(b tcell.ButtonMask) bool {
	return c.buttons&b != 0 && c.prevButtons&b == 0
}

// IsMouseButtonJustReleased reports whether the button came up since
// the previous frame
func (c *Collector) IsMouseButtonJustReleased(b tcell.ButtonMask) bool {
	return c.buttons&b == 0 && c.prevButtons&b != 0
}

func keyFromEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Code: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Code: e.Key()}
}
