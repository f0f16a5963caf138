package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletHitsEnemy(t *testing.T) {
	enemy := &Enemy{X: 100, Y: 100, Width: 30, Height: 30}

	tests := []struct {
		name   string
		bullet *Bullet
		want   bool
	}{
		{"inside", &Bullet{X: 110, Y: 110, Width: 12, Height: 4}, true},
		{"overlapping left edge", &Bullet{X: 90, Y: 110, Width: 12, Height: 4}, true},
		{"touching left edge", &Bullet{X: 88, Y: 110, Width: 12, Height: 4}, true},
		{"touching bottom edge", &Bullet{X: 110, Y: 130, Width: 12, Height: 4}, true},
		{"one unit short", &Bullet{X: 87, Y: 110, Width: 12, Height: 4}, false},
		{"past the right edge", &Bullet{X: 131, Y: 110, Width: 12, Height: 4}, false},
		{"aligned on x but above", &Bullet{X: 110, Y: 50, Width: 12, Height: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BulletHitsEnemy(tt.bullet, enemy))
		})
	}
}

func TestBulletHitsBase(t *testing.T) {
	base := &Base{X: 40, Y: 270, Width: 60, Height: 60}

	assert.True(t, BulletHitsBase(&Bullet{X: 50, Y: 280, Width: 10, Height: 10}, base))
	assert.True(t, BulletHitsBase(&Bullet{X: 100, Y: 280, Width: 10, Height: 10}, base),
		"touching edges count as overlap")
	assert.False(t, BulletHitsBase(&Bullet{X: 101, Y: 280, Width: 10, Height: 10}, base))
}

func TestEnemyTouchesBase(t *testing.T) {
	base := &Base{X: 40, Y: 270, Width: 60, Height: 60}

	assert.True(t, EnemyTouchesBase(&Enemy{X: 80, Y: 300, Width: 30, Height: 30}, base))
	assert.True(t, EnemyTouchesBase(&Enemy{X: 100, Y: 300, Width: 30, Height: 30}, base),
		"touching edges count as overlap")
	assert.False(t, EnemyTouchesBase(&Enemy{X: 200, Y: 300, Width: 30, Height: 30}, base))
	assert.False(t, EnemyTouchesBase(&Enemy{X: 80, Y: 331, Width: 30, Height: 30}, base))
}
