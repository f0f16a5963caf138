package game

import (
	"math/rand"
	"time"
)

// EnemyFactory instantiates enemies from a per-wave archetype table. The
// table is supplied at construction so callers (and tests) control the
// available archetypes; it is never read from package state.
type EnemyFactory struct {
	table map[int][]EnemyTypeConfig
	cfg   Config
	rng   *rand.Rand
}

// NewEnemyFactory creates a factory over the given wave table
func NewEnemyFactory(table map[int][]EnemyTypeConfig, cfg Config, rng *rand.Rand) *EnemyFactory {
	return &EnemyFactory{
		table: table,
		cfg:   cfg,
		rng:   rng,
	}
}

// TypesForWave returns the archetypes available for a wave, in table order.
// Unknown waves yield nil.
func (f *EnemyFactory) TypesForWave(wave int) []EnemyTypeConfig {
	return f.table[wave]
}

// SpawnRandom instantiates a uniformly random archetype for the wave at the
// right edge of the play area, with a random vertical position. Returns nil
// for waves with no archetypes.
func (f *EnemyFactory) SpawnRandom(wave int, now time.Time) *Enemy {
	types := f.table[wave]
	if len(types) == 0 {
		return nil
	}
	tc := types[f.rng.Intn(len(types))]
	return f.spawn(tc, now)
}

// SpawnType instantiates a specific archetype for the wave. Returns nil if
// the archetype does not belong to that wave.
func (f *EnemyFactory) SpawnType(wave int, enemyType EnemyType, now time.Time) *Enemy {
	for _, tc := range f.table[wave] {
		if tc.Type == enemyType {
			return f.spawn(tc, now)
		}
	}
	return nil
}

func (f *EnemyFactory) spawn(tc EnemyTypeConfig, now time.Time) *Enemy {
	x := f.cfg.PlayWidth
	y := f.rng.Float64() * (f.cfg.PlayHeight - tc.Height)
	return NewEnemy(tc, x, y, now, f.cfg)
}
