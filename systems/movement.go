// Package systems holds the per-frame logic units registered with the
// ECS world.
package systems

import (
	"github.com/lixenwraith/stage2d/engine"
)

// Movement advances every entity's transform by its velocity. It is
// the canonical consumer of the Velocity component; entities without
// one are untouched.
type Movement struct{}

// NewMovement creates the movement system
func NewMovement() *Movement {
	return &Movement{}
}

// Update applies velocity * dt to each entity holding both a
// Transform and a Velocity
func (m *Movement) Update(w *engine.World, dt float64) {
	for _, e := range w.Entities() {
		vel, ok := engine.Get[engine.Velocity](w, e)
		if !ok {
			continue
		}
		engine.Mutate(w, e, func(t *engine.Transform) {
			t.X += vel.X * dt
			t.Y += vel.Y * dt
		})
	}
}
