package game

import (
	"math/rand"
	"time"
)

// Outcome discriminates how a finished game ended. The terminal flag alone
// cannot tell a wave-3 survival from a defeat at wave 3, so the engine
// records which one happened.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// GameState is the externally visible snapshot of the simulation
type GameState struct {
	Score     int
	Wave      int
	Health    int
	MaxHealth int
	GameOver  bool
	Paused    bool
	Outcome   Outcome

	WaveStart    time.Time
	WaveDuration time.Duration
}

// Engine owns all live entities and advances the simulation one tick per
// Advance call. It holds no internal timer: the caller supplies the
// timestamp, so behavior is a function of state plus time. The engine is
// not internally synchronized; the caller interleaves Advance and action
// calls on a single logical thread.
type Engine struct {
	cfg     Config
	rng     *rand.Rand
	factory *EnemyFactory

	base    *Base
	enemies []*Enemy
	bullets []*Bullet

	state         GameState
	lastSpawn     time.Time
	spawnInterval time.Duration
}

// NewEngine creates an engine at wave 1 with full health, using now as the
// wave-start timestamp
func NewEngine(cfg Config, table map[int][]EnemyTypeConfig, rng *rand.Rand, now time.Time) *Engine {
	e := &Engine{
		cfg:     cfg,
		rng:     rng,
		factory: NewEnemyFactory(table, cfg, rng),
	}
	e.init(now)
	return e
}

func (e *Engine) init(now time.Time) {
	e.base = NewBase(e.cfg)
	e.enemies = nil
	e.bullets = nil
	e.state = GameState{
		Score:        0,
		Wave:         1,
		Health:       e.cfg.BaseMaxHealth,
		MaxHealth:    e.cfg.BaseMaxHealth,
		WaveStart:    now,
		WaveDuration: e.cfg.WaveDurations[0],
	}
	e.lastSpawn = now
	e.spawnInterval = e.nextSpawnInterval()
}

// Base returns the defender entity for rendering
func (e *Engine) Base() *Base {
	return e.base
}

// Enemies returns the live enemy collection for rendering
func (e *Engine) Enemies() []*Enemy {
	return e.enemies
}

// Bullets returns the live bullet collection for rendering
func (e *Engine) Bullets() []*Bullet {
	return e.bullets
}

// State returns a copy of the game state snapshot
func (e *Engine) State() GameState {
	return e.state
}

// nextSpawnInterval implements the monotone difficulty ramp. It is
// recomputed after every spawn, not once per wave.
func (e *Engine) nextSpawnInterval() time.Duration {
	interval := e.cfg.SpawnIntervalBase - time.Duration(e.state.Wave-1)*e.cfg.SpawnIntervalStep
	if interval < e.cfg.SpawnIntervalMin {
		interval = e.cfg.SpawnIntervalMin
	}
	return interval
}

// Advance runs one simulation tick at the given timestamp. It is a no-op
// while paused or after game over.
func (e *Engine) Advance(now time.Time) {
	if e.state.Paused || e.state.GameOver {
		return
	}

	// Wave duration check. A transition consumes the whole tick.
	if now.Sub(e.state.WaveStart) >= e.state.WaveDuration {
		e.advanceWave(now)
		return
	}

	// Spawn check
	if now.Sub(e.lastSpawn) >= e.spawnInterval {
		if enemy := e.factory.SpawnRandom(e.state.Wave, now); enemy != nil {
			e.enemies = append(e.enemies, enemy)
		}
		e.lastSpawn = now
		e.spawnInterval = e.nextSpawnInterval()
	}

	e.updateEnemies(now)
	e.updateBullets()
	e.pruneEnemies()
	e.resolvePlayerBullets()
	e.resolveEnemyBullets()

	e.state.Health = e.base.Health
}

// updateEnemies moves every enemy, collects their shots, and resolves melee
// contact. A melee enemy that reaches the base deals a fixed hit and is
// removed in the same tick regardless of its remaining health.
func (e *Engine) updateEnemies(now time.Time) {
	targetX, targetY := e.base.Center()

	survivors := make([]*Enemy, 0, len(e.enemies))
	for _, enemy := range e.enemies {
		enemy.Update()

		if enemy.ReadyToShoot(now) {
			e.bullets = append(e.bullets, enemy.Shoot(now, targetX, targetY)...)
		}

		if !enemy.CanShoot && EnemyTouchesBase(enemy, e.base) {
			e.base.TakeDamage(e.cfg.MeleeDamage)
			if !e.base.Alive() {
				e.state.GameOver = true
				e.state.Outcome = OutcomeDefeat
			}
			continue
		}

		survivors = append(survivors, enemy)
	}
	e.enemies = survivors
}

// updateBullets integrates bullet positions and culls bullets outside the
// play area expanded by the configured margin
func (e *Engine) updateBullets() {
	kept := make([]*Bullet, 0, len(e.bullets))
	for _, b := range e.bullets {
		b.Update()
		if b.Outside(e.cfg.PlayWidth, e.cfg.PlayHeight, e.cfg.BulletMargin) {
			continue
		}
		kept = append(kept, b)
	}
	e.bullets = kept
}

// pruneEnemies drops enemies that exited the play bounds without being
// destroyed. No score is awarded for these.
func (e *Engine) pruneEnemies() {
	kept := make([]*Enemy, 0, len(e.enemies))
	for _, enemy := range e.enemies {
		if enemy.Offscreen() {
			continue
		}
		kept = append(kept, enemy)
	}
	e.enemies = kept
}

// resolvePlayerBullets tests each player bullet against the live enemies.
// A bullet resolves against at most one enemy: the first match consumes it.
// Kills score ScorePerKill times the current wave.
func (e *Engine) resolvePlayerBullets() {
	keptBullets := make([]*Bullet, 0, len(e.bullets))
	for _, b := range e.bullets {
		if !b.FromPlayer {
			keptBullets = append(keptBullets, b)
			continue
		}

		hit := false
		for _, enemy := range e.enemies {
			if !enemy.Alive() {
				continue
			}
			if BulletHitsEnemy(b, enemy) {
				enemy.TakeDamage(b.Damage)
				if !enemy.Alive() {
					e.state.Score += e.cfg.ScorePerKill * e.state.Wave
				}
				hit = true
				break
			}
		}
		if !hit {
			keptBullets = append(keptBullets, b)
		}
	}
	e.bullets = keptBullets

	keptEnemies := make([]*Enemy, 0, len(e.enemies))
	for _, enemy := range e.enemies {
		if !enemy.Alive() {
			continue
		}
		keptEnemies = append(keptEnemies, enemy)
	}
	e.enemies = keptEnemies
}

// resolveEnemyBullets tests each enemy bullet against the base. A hit
// consumes the bullet; the game ends in defeat when health reaches zero.
func (e *Engine) resolveEnemyBullets() {
	kept := make([]*Bullet, 0, len(e.bullets))
	for _, b := range e.bullets {
		if b.FromPlayer {
			kept = append(kept, b)
			continue
		}
		if BulletHitsBase(b, e.base) {
			e.base.TakeDamage(b.Damage)
			if !e.base.Alive() {
				e.state.GameOver = true
				e.state.Outcome = OutcomeDefeat
			}
			continue
		}
		kept = append(kept, b)
	}
	e.bullets = kept
}

// advanceWave clears the field and starts the next wave, or ends the game
// in victory when wave 3 runs out
func (e *Engine) advanceWave(now time.Time) {
	if e.state.Wave < 3 {
		e.state.Wave++
		e.enemies = nil
		e.bullets = nil
		e.state.WaveStart = now
		e.state.WaveDuration = e.cfg.WaveDurations[e.state.Wave-1]
		e.lastSpawn = now
		e.spawnInterval = e.nextSpawnInterval()
		return
	}
	e.state.GameOver = true
	e.state.Outcome = OutcomeVictory
}

// Fire constructs a player bullet at the base's center with a fixed forward
// velocity. The engine accepts every call; rate limiting belongs to the
// input layer.
func (e *Engine) Fire() {
	cx, cy := e.base.Center()
	e.bullets = append(e.bullets, &Bullet{
		X:          cx,
		Y:          cy - e.cfg.PlayerBulletHeight/2,
		VX:         e.cfg.PlayerBulletSpeed,
		VY:         0,
		Width:      e.cfg.PlayerBulletWidth,
		Height:     e.cfg.PlayerBulletHeight,
		FromPlayer: true,
		Damage:     e.cfg.PlayerBulletDamage,
	})
}

// MoveUp moves the base toward the top edge
func (e *Engine) MoveUp() {
	e.base.MoveUp()
}

// MoveDown moves the base toward the bottom edge
func (e *Engine) MoveDown() {
	e.base.MoveDown()
}

// TogglePause flips the pause flag. Pausing a finished game has no effect.
func (e *Engine) TogglePause() {
	if e.state.GameOver {
		return
	}
	e.state.Paused = !e.state.Paused
}

// Reset reinitializes the defender, clears all entities, and restarts at
// wave 1 with now as the fresh wave-start timestamp
func (e *Engine) Reset(now time.Time) {
	e.init(now)
}
