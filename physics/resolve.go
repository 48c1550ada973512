package physics

// Collision describes how to separate one intersecting AABB pair:
// the penetration vector pushes a out of b, the normal is the unit
// separation direction (axis-aligned), and the contact point lies on
// a's face along that normal.
type Collision struct {
	PenetrationX, PenetrationY float64
	NormalX, NormalY           float64
	ContactX, ContactY         float64
}

// ResolveAABB computes the minimum-translation separation for two
// intersecting boxes. Separation happens on a single axis: the one
// with the strictly smaller overlap, Y winning ties. The normal points
// from b's center toward a's center along that axis; ties resolve to
// the positive direction. Returns ok=false when the boxes do not
// intersect.
func ResolveAABB(a, b AABB) (Collision, bool) {
	if !a.Intersects(b) {
		return Collision{}, false
	}

	xOverlap := min(a.MaxX()-b.MinX(), b.MaxX()-a.MinX())
	yOverlap := min(a.MaxY()-b.MinY(), b.MaxY()-a.MinY())

	if xOverlap < yOverlap {
		normalX := 1.0
		if a.CenterX() < b.CenterX() {
			normalX = -1.0
		}
		contactX := a.MinX()
		if normalX > 0 {
			contactX = a.MaxX()
		}
		return Collision{
			PenetrationX: xOverlap * normalX,
			NormalX:      normalX,
			ContactX:     contactX,
			ContactY:     a.CenterY(),
		}, true
	}

	normalY := 1.0
	if a.CenterY() < b.CenterY() {
		normalY = -1.0
	}
	contactY := a.MinY()
	if normalY > 0 {
		contactY = a.MaxY()
	}
	return Collision{
		PenetrationY: yOverlap * normalY,
		NormalY:      normalY,
		ContactX:     a.CenterX(),
		ContactY:     contactY,
	}, true
}
