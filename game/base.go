package game

// Base is the player-controlled defender. It sits at a fixed horizontal
// position on the left edge of the play area and moves vertically.
type Base struct {
	X, Y   float64
	Width  float64
	Height float64

	Health    int
	MaxHealth int

	// Speed is vertical movement per move call, in units
	Speed float64

	// playHeight bounds vertical movement
	playHeight float64
}

// NewBase creates the base centered vertically in the play area
func NewBase(cfg Config) *Base {
	return &Base{
		X:          cfg.BaseX,
		Y:          cfg.PlayHeight/2 - cfg.BaseHeight/2,
		Width:      cfg.BaseWidth,
		Height:     cfg.BaseHeight,
		Health:     cfg.BaseMaxHealth,
		MaxHealth:  cfg.BaseMaxHealth,
		Speed:      cfg.BaseSpeed,
		playHeight: cfg.PlayHeight,
	}
}

// MoveUp moves the base toward the top of the play area, clamped at the edge
func (b *Base) MoveUp() {
	b.Y -= b.Speed
	if b.Y < 0 {
		b.Y = 0
	}
}

// MoveDown moves the base toward the bottom of the play area, clamped at the edge
func (b *Base) MoveDown() {
	b.Y += b.Speed
	if b.Y > b.playHeight-b.Height {
		b.Y = b.playHeight - b.Height
	}
}

// TakeDamage subtracts health, clamping at zero
func (b *Base) TakeDamage(amount int) {
	b.Health -= amount
	if b.Health < 0 {
		b.Health = 0
	}
}

// Alive reports whether the base still has health left
func (b *Base) Alive() bool {
	return b.Health > 0
}

// Center returns the center point of the base, used as the aim target for
// enemy shots and as the spawn point for player bullets
func (b *Base) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}
