package game

// Axis-aligned bounding-box tests. Touching edges count as overlapping;
// the closed comparisons below are the single place that decides this.

func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax <= bx+bw && ax+aw >= bx &&
		ay <= by+bh && ay+ah >= by
}

// BulletHitsEnemy reports whether a bullet's box overlaps an enemy's box
func BulletHitsEnemy(b *Bullet, e *Enemy) bool {
	return rectsOverlap(b.X, b.Y, b.Width, b.Height, e.X, e.Y, e.Width, e.Height)
}

// BulletHitsBase reports whether a bullet's box overlaps the base's box
func BulletHitsBase(b *Bullet, base *Base) bool {
	return rectsOverlap(b.X, b.Y, b.Width, b.Height, base.X, base.Y, base.Width, base.Height)
}

// EnemyTouchesBase reports whether an enemy's box overlaps the base's box,
// used for melee contact
func EnemyTouchesBase(e *Enemy, base *Base) bool {
	return rectsOverlap(e.X, e.Y, e.Width, e.Height, base.X, base.Y, base.Width, base.Height)
}
