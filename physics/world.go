package physics

// Default simulation parameters
const (
	DefaultGravity  = -9.8
	DefaultTimeStep = 1.0 / 60.0

	// Residual frame time beyond this is dropped so a long stall
	// cannot queue an unbounded number of catch-up steps.
	maxAccumulation = 0.25
)

// Handle identifies a body registered with a World
type Handle int

// CollisionHandler receives each resolved pair during a physics step
type CollisionHandler func(a, b Handle, c Collision)

// World owns the global physics parameters, the fixed-timestep
// accumulator, and the set of simulated bodies with their bounds.
// The accumulator persists across Update calls so no frame time is
// lost or gained between frames.
type World struct {
	gravity     float64
	timeStep    float64
	accumulator float64
	detector    *Detector

	bodies    []*RigidBody
	bounds    []AABB
	onCollide CollisionHandler
}

// NewWorld creates a physics world with standard gravity and a 60Hz step
func NewWorld() *World {
	return NewWorldWithGravity(DefaultGravity)
}

// NewWorldWithGravity creates a physics world with the given gravity
func NewWorldWithGravity(gravity float64) *World {
	return &World{
		gravity:  gravity,
		timeStep: DefaultTimeStep,
		detector: NewDetector(),
	}
}

// SetGravity replaces the gravity scalar
func (w *World) SetGravity(gravity float64) {
	w.gravity = gravity
}

// Gravity returns the gravity scalar
func (w *World) Gravity() float64 {
	return w.gravity
}

// TimeStep returns the fixed step size in seconds
func (w *World) TimeStep() float64 {
	return w.timeStep
}

// Residual returns the accumulated frame time not yet consumed by a
// full step; always less than one TimeStep after Update returns
func (w *World) Residual() float64 {
	return w.accumulator
}

// SetCollisionHandler installs a callback invoked once per resolved
// pair during each step. Pass nil to remove.
func (w *World) SetCollisionHandler(fn CollisionHandler) {
	w.onCollide = fn
}

// AddBody registers a body with its initial bounds and returns its handle
func (w *World) AddBody(body *RigidBody, box AABB) Handle {
	w.bodies = append(w.bodies, body)
	w.bounds = append(w.bounds, box)
	return Handle(len(w.bodies) - 1)
}

// Body returns the registered body for a handle
func (w *World) Body(h Handle) *RigidBody {
	return w.bodies[h]
}

// Bounds returns the current bounds of a registered body
func (w *World) Bounds(h Handle) AABB {
	return w.bounds[h]
}

// BodyCount returns the number of registered bodies
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Update accumulates variable frame time and runs zero or more fixed
// physics steps. Simulation rate stays decoupled from frame rate:
// each step always advances exactly TimeStep seconds.
func (w *World) Update(dt float64) {
	w.accumulator += dt
	if w.accumulator > maxAccumulation {
		w.accumulator = maxAccumulation
	}
	for w.accumulator >= w.timeStep {
		w.step(w.timeStep)
		w.accumulator -= w.timeStep
	}
}

// step advances all dynamic bodies by dt, then detects and resolves
// collisions over the body set pairwise
func (w *World) step(dt float64) {
	for i, b := range w.bodies {
		if b.Static {
			continue
		}
		b.ApplyForce(0, w.gravity*b.Mass)
		b.Integrate(dt)
		w.bounds[i].X += b.VelX * dt
		w.bounds[i].Y += b.VelY * dt
	}

	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			if w.bodies[i].Static && w.bodies[j].Static {
				continue
			}
			c, ok := ResolveAABB(w.bounds[i], w.bounds[j])
			if !ok {
				continue
			}
			w.separate(i, j, c)
			if w.onCollide != nil {
				w.onCollide(Handle(i), Handle(j), c)
			}
		}
	}
}

// separate pushes the dynamic side(s) of a pair out along the
// minimum-translation vector and bounces velocity along the normal
func (w *World) separate(i, j int, c Collision) {
	a, b := w.bodies[i], w.bodies[j]

	switch {
	case b.Static:
		w.bounds[i].X += c.PenetrationX
		w.bounds[i].Y += c.PenetrationY
	case a.Static:
		w.bounds[j].X -= c.PenetrationX
		w.bounds[j].Y -= c.PenetrationY
	default:
		w.bounds[i].X += c.PenetrationX / 2
		w.bounds[i].Y += c.PenetrationY / 2
		w.bounds[j].X -= c.PenetrationX / 2
		w.bounds[j].Y -= c.PenetrationY / 2
	}

	e := max(a.Bounciness, b.Bounciness)
	bounce(a, c.NormalX, c.NormalY, e)
	bounce(b, -c.NormalX, -c.NormalY, e)
}

// bounce reflects the velocity component moving against the contact
// normal, scaled by the restitution coefficient
func bounce(b *RigidBody, nx, ny, e float64) {
	if b.Static {
		return
	}
	vn := b.VelX*nx + b.VelY*ny
	if vn >= 0 {
		return
	}
	b.VelX -= (1 + e) * vn * nx
	b.VelY -= (1 + e) * vn * ny
}

// CheckCollision is a pass-through to the detector's AABB test
func (w *World) CheckCollision(a, b AABB) bool {
	return w.detector.AABBVsAABB(a, b)
}

// PointInAABB is a pass-through to the detector's containment test
func (w *World) PointInAABB(px, py float64, box AABB) bool {
	return w.detector.PointInAABB(px, py, box)
}

// Raycast is a pass-through to the detector's ray-AABB test
func (w *World) Raycast(rayX, rayY, rayDX, rayDY float64, box AABB) (float64, bool) {
	return w.detector.RayVsAABB(rayX, rayY, rayDX, rayDY, box)
}
