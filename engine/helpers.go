package engine

// CreateSpriteEntity creates an entity with a Transform at (x, y) and
// an untextured white Sprite of the given extents
func (w *World) CreateSpriteEntity(x, y, width, height float64) Entity {
	e := w.CreateEntity()
	w.AddComponent(e, NewTransform(x, y))
	w.AddComponent(e, NewSprite(width, height))
	return e
}

// SetPosition moves the entity's transform. No-op if the entity has none.
func (w *World) SetPosition(e Entity, x, y float64) {
	Mutate(w, e, func(t *Transform) {
		t.X = x
		t.Y = y
	})
}

// SetColor recolors the entity's sprite. No-op if the entity has none.
func (w *World) SetColor(e Entity, r, g, b, a float64) {
	Mutate(w, e, func(s *Sprite) {
		s.R, s.G, s.B, s.A = r, g, b, a
	})
}
