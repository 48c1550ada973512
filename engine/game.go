package engine

import (
	"github.com/lixenwraith/stage2d/physics"
)

// Game is the host embedding boundary: it aggregates the ECS world,
// the physics world and the frame clock, and exposes the narrow
// sprite-handle surface a host driver calls. Rendering, input and
// audio are downstream consumers wired by the host; they read the
// World but never feed back into it here.
type Game struct {
	World   *World
	Physics *physics.World
	Clock   *Clock

	Width, Height int

	sprites      map[uint32]Entity
	nextSpriteID uint32
}

// Config carries host-tunable engine parameters
type Config struct {
	Width, Height int
	Gravity       float64
}

// DefaultConfig returns the standard engine parameters for a host
// surface of the given dimensions
func DefaultConfig(width, height int) Config {
	return Config{
		Width:   width,
		Height:  height,
		Gravity: physics.DefaultGravity,
	}
}

// NewGame creates a game with fresh world state for a host surface of
// the given dimensions
func NewGame(width, height int) *Game {
	return NewGameWithConfig(DefaultConfig(width, height))
}

// NewGameWithConfig creates a game from explicit parameters
func NewGameWithConfig(cfg Config) *Game {
	return &Game{
		World:        NewWorld(),
		Physics:      physics.NewWorldWithGravity(cfg.Gravity),
		Clock:        NewClock(),
		Width:        cfg.Width,
		Height:       cfg.Height,
		sprites:      make(map[uint32]Entity),
		nextSpriteID: 1,
	}
}

// Update advances one frame: the clock records dt, the physics world
// consumes it into fixed steps, and the ECS world runs its systems
func (g *Game) Update(dt float64) {
	g.Clock.Tick(dt)
	g.Physics.Update(dt)
	g.World.Update(dt)
}

// Resize records a new host surface size
func (g *Game) Resize(width, height int) {
	g.Width = width
	g.Height = height
}

// CreateSprite creates a sprite entity and returns an opaque handle
// for hosts that do not track entities directly
func (g *Game) CreateSprite(x, y, width, height float64) uint32 {
	id := g.nextSpriteID
	g.nextSpriteID++
	g.sprites[id] = g.World.CreateSpriteEntity(x, y, width, height)
	return id
}

// SpriteEntity resolves a sprite handle to its entity, or NoEntity
func (g *Game) SpriteEntity(id uint32) Entity {
	e, ok := g.sprites[id]
	if !ok {
		return NoEntity
	}
	return e
}

// SetSpritePosition moves a sprite by handle. No-op on unknown handles.
func (g *Game) SetSpritePosition(id uint32, x, y float64) {
	if e, ok := g.sprites[id]; ok {
		g.World.SetPosition(e, x, y)
	}
}

// SetSpriteColor recolors a sprite by handle. No-op on unknown handles.
func (g *Game) SetSpriteColor(id uint32, r, gc, b, a float64) {
	if e, ok := g.sprites[id]; ok {
		g.World.SetColor(e, r, gc, b, a)
	}
}
