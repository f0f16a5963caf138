package game

import "time"

// Config holds simulation and window configuration
type Config struct {
	// PlayWidth is the width of the play area in world units
	PlayWidth float64

	// PlayHeight is the height of the play area in world units
	PlayHeight float64

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// BaseWidth is the width of the player base
	BaseWidth float64

	// BaseHeight is the height of the player base
	BaseHeight float64

	// BaseX is the fixed horizontal position of the base's left edge
	BaseX float64

	// BaseSpeed is how far the base moves per move call, in units
	BaseSpeed float64

	// BaseMaxHealth is the base's starting and maximum health
	BaseMaxHealth int

	// PlayerBulletSpeed is the forward speed of a player bullet in units per tick
	PlayerBulletSpeed float64

	// PlayerBulletDamage is the damage dealt by a player bullet
	PlayerBulletDamage int

	// PlayerBulletWidth and PlayerBulletHeight are the player bullet hitbox size
	PlayerBulletWidth  float64
	PlayerBulletHeight float64

	// EnemyBulletDamage is the damage dealt by an enemy bullet to the base
	EnemyBulletDamage int

	// EnemyBulletWidth and EnemyBulletHeight are the enemy bullet hitbox size
	EnemyBulletWidth  float64
	EnemyBulletHeight float64

	// MeleeDamage is the fixed damage a melee enemy deals on contact with the base
	MeleeDamage int

	// BulletMargin is how far outside the play area a bullet may travel
	// before it is culled, in units
	BulletMargin float64

	// WaveDurations holds the lengths of waves 1..3
	WaveDurations [3]time.Duration

	// SpawnIntervalBase is the spawn interval before per-wave reduction
	SpawnIntervalBase time.Duration

	// SpawnIntervalStep is how much the spawn interval shrinks per wave
	SpawnIntervalStep time.Duration

	// SpawnIntervalMin is the floor for the spawn interval
	SpawnIntervalMin time.Duration

	// ScorePerKill is multiplied by the current wave for each enemy
	// destroyed by a player bullet
	ScorePerKill int

	// FireCooldown is the minimum time between player shots, enforced by
	// the input layer (the engine itself accepts every Fire call)
	FireCooldown time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		PlayWidth:          800.0,
		PlayHeight:         600.0,
		ScreenWidth:        800,
		ScreenHeight:       600,
		BaseWidth:          60.0,
		BaseHeight:         60.0,
		BaseX:              40.0,
		BaseSpeed:          6.0,
		BaseMaxHealth:      100,
		PlayerBulletSpeed:  8.0,
		PlayerBulletDamage: 10,
		PlayerBulletWidth:  12.0,
		PlayerBulletHeight: 4.0,
		EnemyBulletDamage:  10,
		EnemyBulletWidth:   10.0,
		EnemyBulletHeight:  10.0,
		MeleeDamage:        5,
		BulletMargin:       50.0,
		WaveDurations: [3]time.Duration{
			30 * time.Second,
			60 * time.Second,
			40 * time.Second,
		},
		SpawnIntervalBase: 2000 * time.Millisecond,
		SpawnIntervalStep: 200 * time.Millisecond,
		SpawnIntervalMin:  800 * time.Millisecond,
		ScorePerKill:      10,
		FireCooldown:      350 * time.Millisecond,
	}
}
