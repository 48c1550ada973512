package engine

// NoTexture marks a sprite drawn with its flat color only
const NoTexture = -1

// Transform holds an entity's position, rotation and non-uniform scale
type Transform struct {
	X, Y           float64
	Rotation       float64 // radians
	ScaleX, ScaleY float64
}

// NewTransform creates a transform at (x, y) with no rotation and unit scale
func NewTransform(x, y float64) Transform {
	return Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

func (Transform) Kind() ComponentKind { return KindTransform }

// Sprite holds an entity's renderable quad: extents, an RGBA color
// with channels in [0,1], and an optional texture handle
type Sprite struct {
	Width, Height float64
	R, G, B, A    float64
	TextureID     int
}

// NewSprite creates an untextured opaque white sprite
func NewSprite(width, height float64) Sprite {
	return Sprite{
		Width:     width,
		Height:    height,
		R:         1,
		G:         1,
		B:         1,
		A:         1,
		TextureID: NoTexture,
	}
}

// WithColor returns a copy of the sprite with the given color
func (s Sprite) WithColor(r, g, b, a float64) Sprite {
	s.R, s.G, s.B, s.A = r, g, b, a
	return s
}

func (Sprite) Kind() ComponentKind { return KindSprite }

// Velocity holds an entity's linear velocity in units per second
type Velocity struct {
	X, Y float64
}

func (Velocity) Kind() ComponentKind { return KindVelocity }
