package physics

import "math"

// RigidBody holds per-body mass, velocity, acceleration and material
// state. Forces accumulate into acceleration and are consumed by the
// next Integrate call; they do not persist across steps.
type RigidBody struct {
	Mass           float64
	VelX, VelY     float64
	AccelX, AccelY float64
	Static         bool
	Bounciness     float64
	Friction       float64
}

// NewRigidBody creates a dynamic body with the given mass and default
// material coefficients
func NewRigidBody(mass float64) *RigidBody {
	return &RigidBody{
		Mass:       mass,
		Bounciness: 0.8,
		Friction:   0.1,
	}
}

// NewStaticBody creates an immovable body with infinite effective
// mass. Static bodies ignore forces and skip integration.
func NewStaticBody() *RigidBody {
	return &RigidBody{
		Mass:       math.Inf(1),
		Static:     true,
		Bounciness: 0,
		Friction:   1,
	}
}

// ApplyForce accumulates a force into the body's acceleration.
// No-op for static bodies and non-positive mass.
func (b *RigidBody) ApplyForce(fx, fy float64) {
	if b.Static || b.Mass <= 0 {
		return
	}
	b.AccelX += fx / b.Mass
	b.AccelY += fy / b.Mass
}

// Integrate advances velocity by semi-implicit Euler and applies
// linear damping: v *= (1 - friction*dt). The damping is linear, not
// exponential decay; friction*dt > 1 is a caller-responsibility bound.
// Acceleration resets to zero afterward. Static bodies skip entirely.
func (b *RigidBody) Integrate(dt float64) {
	if b.Static {
		return
	}
	b.VelX += b.AccelX * dt
	b.VelY += b.AccelY * dt

	damping := 1 - b.Friction*dt
	b.VelX *= damping
	b.VelY *= damping

	b.AccelX = 0
	b.AccelY = 0
}
