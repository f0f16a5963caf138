package game

import (
	"math"
	"time"
)

// Enemy is an adversary instance built from an archetype config. Enemies
// spawn at the right edge of the play area and travel left toward the base.
type Enemy struct {
	Type   EnemyType
	X, Y   float64
	Width  float64
	Height float64

	Health int
	Speed  float64

	CanShoot       bool
	ShootInterval  time.Duration
	LastShot       time.Time
	BulletsPerShot int
	BulletSpeed    float64

	cfg Config
}

// NewEnemy builds an enemy from an archetype config at the given position.
// now seeds the shot timer so a shooter does not fire on its first tick.
func NewEnemy(tc EnemyTypeConfig, x, y float64, now time.Time, cfg Config) *Enemy {
	bulletSpeed := tc.BulletSpeed
	if bulletSpeed == 0 {
		bulletSpeed = DefaultBulletSpeed
	}
	bulletsPerShot := tc.BulletsPerShot
	if bulletsPerShot == 0 {
		bulletsPerShot = 1
	}
	return &Enemy{
		Type:           tc.Type,
		X:              x,
		Y:              y,
		Width:          tc.Width,
		Height:         tc.Height,
		Health:         tc.Health,
		Speed:          tc.Speed,
		CanShoot:       tc.CanShoot,
		ShootInterval:  tc.ShootInterval,
		LastShot:       now,
		BulletsPerShot: bulletsPerShot,
		BulletSpeed:    bulletSpeed,
		cfg:            cfg,
	}
}

// Update advances the enemy one tick along its travel axis
func (e *Enemy) Update() {
	e.X -= e.Speed
}

// ReadyToShoot reports whether the enemy's shot timer has elapsed
func (e *Enemy) ReadyToShoot(now time.Time) bool {
	if !e.CanShoot {
		return false
	}
	return now.Sub(e.LastShot) >= e.ShootInterval
}

// Shoot records the shot time and returns the volley aimed at the target
// point. Each bullet travels in a straight line at the archetype's bullet
// speed; volleys of more than one bullet fan out vertically around the
// target.
func (e *Enemy) Shoot(now time.Time, targetX, targetY float64) []*Bullet {
	e.LastShot = now

	const volleySpread = 40.0

	cx := e.X + e.Width/2
	cy := e.Y + e.Height/2

	bullets := make([]*Bullet, 0, e.BulletsPerShot)
	for i := 0; i < e.BulletsPerShot; i++ {
		offset := (float64(i) - float64(e.BulletsPerShot-1)/2) * volleySpread
		dx := targetX - cx
		dy := targetY + offset - cy
		dist := math.Hypot(dx, dy)
		vx := -e.BulletSpeed
		vy := 0.0
		if dist > 0 {
			vx = dx / dist * e.BulletSpeed
			vy = dy / dist * e.BulletSpeed
		}
		bullets = append(bullets, &Bullet{
			X:          cx,
			Y:          cy,
			VX:         vx,
			VY:         vy,
			Width:      e.cfg.EnemyBulletWidth,
			Height:     e.cfg.EnemyBulletHeight,
			FromPlayer: false,
			Damage:     e.cfg.EnemyBulletDamage,
		})
	}
	return bullets
}

// TakeDamage subtracts health; health may go negative, Alive covers both
func (e *Enemy) TakeDamage(amount int) {
	e.Health -= amount
}

// Alive reports whether the enemy still has health left
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Offscreen reports whether the enemy has fully exited the play area on its
// travel axis
func (e *Enemy) Offscreen() bool {
	return e.X+e.Width < 0
}
