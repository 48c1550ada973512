package engine

// Clock tracks per-frame elapsed time and a one-second-window FPS
// average. The host driver supplies elapsed seconds; the clock keeps
// no wall-time source of its own.
type Clock struct {
	delta    float64
	fps      float64
	frames   int
	fpsTimer float64
}

// NewClock creates a frame clock with a nominal 60 FPS reading until
// the first window completes
func NewClock() *Clock {
	return &Clock{fps: 60}
}

// Tick records one frame of dt elapsed seconds
func (c *Clock) Tick(dt float64) {
	c.delta = dt
	c.frames++
	c.fpsTimer += dt

	if c.fpsTimer >= 1 {
		c.fps = float64(c.frames) / c.fpsTimer
		c.frames = 0
		c.fpsTimer = 0
	}
}

// Delta returns the last frame's elapsed seconds
func (c *Clock) Delta() float64 {
	return c.delta
}

// FPS returns the most recent one-second frame-rate average
func (c *Clock) FPS() float64 {
	return c.fps
}
