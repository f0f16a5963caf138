package game

// Bullet is a projectile fired by the base or by an enemy
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Width  float64
	Height float64

	// FromPlayer is true for base-fired bullets, false for enemy bullets
	FromPlayer bool

	Damage int
}

// Update advances the bullet one tick
func (b *Bullet) Update() {
	b.X += b.VX
	b.Y += b.VY
}

// Outside reports whether the bullet has left the play area expanded by
// margin units on every side
func (b *Bullet) Outside(playWidth, playHeight, margin float64) bool {
	return b.X+b.Width < -margin ||
		b.X > playWidth+margin ||
		b.Y+b.Height < -margin ||
		b.Y > playHeight+margin
}
