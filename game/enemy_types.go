package game

import (
	"image/color"
	"time"
)

// EnemyType identifies an enemy archetype
type EnemyType int

const (
	// Wave 1: melee tier, damage on contact only
	EnemyTypeScout EnemyType = iota
	EnemyTypeRaider
	EnemyTypeBruiser

	// Wave 2: shooters
	EnemyTypeInterceptor
	EnemyTypeGunner
	EnemyTypeBomber

	// Wave 3: heavy shooters
	EnemyTypeCruiser
	EnemyTypeMothership
)

// String returns the archetype name, used for sprite lookup and logging
func (t EnemyType) String() string {
	switch t {
	case EnemyTypeScout:
		return "scout"
	case EnemyTypeRaider:
		return "raider"
	case EnemyTypeBruiser:
		return "bruiser"
	case EnemyTypeInterceptor:
		return "interceptor"
	case EnemyTypeGunner:
		return "gunner"
	case EnemyTypeBomber:
		return "bomber"
	case EnemyTypeCruiser:
		return "cruiser"
	case EnemyTypeMothership:
		return "mothership"
	default:
		return "unknown"
	}
}

// EnemyTypeConfig holds the static data for one enemy archetype
type EnemyTypeConfig struct {
	Type   EnemyType
	Health int

	// Speed is movement along the travel axis in units per tick
	Speed float64

	// Sprite is the asset key for this archetype
	Sprite string

	Width  float64
	Height float64

	// Color is the placeholder color used when no sprite is loaded
	Color color.RGBA

	CanShoot      bool
	ShootInterval time.Duration

	// BulletsPerShot is the number of bullets per volley; 0 means 1
	BulletsPerShot int

	// BulletSpeed in units per tick; 0 means DefaultBulletSpeed
	BulletSpeed float64
}

// DefaultBulletSpeed is used when an archetype leaves BulletSpeed unset
const DefaultBulletSpeed = 4.0

// DefaultWaveTable returns the per-wave archetype tables. Wave 1 is the
// melee tier; waves 2 and 3 shoot at fixed intervals with more health and
// size but less speed. The table is passed to the EnemyFactory at
// construction rather than read from a package global so tests can supply
// their own.
func DefaultWaveTable() map[int][]EnemyTypeConfig {
	return map[int][]EnemyTypeConfig{
		1: {
			{
				Type:   EnemyTypeScout,
				Health: 10,
				Speed:  3.0,
				Sprite: "scout",
				Width:  30.0,
				Height: 30.0,
				Color:  color.RGBA{120, 220, 120, 255},
			},
			{
				Type:   EnemyTypeRaider,
				Health: 20,
				Speed:  2.5,
				Sprite: "raider",
				Width:  35.0,
				Height: 35.0,
				Color:  color.RGBA{80, 200, 170, 255},
			},
			{
				Type:   EnemyTypeBruiser,
				Health: 30,
				Speed:  2.0,
				Sprite: "bruiser",
				Width:  40.0,
				Height: 40.0,
				Color:  color.RGBA{60, 170, 220, 255},
			},
		},
		2: {
			{
				Type:          EnemyTypeInterceptor,
				Health:        25,
				Speed:         2.2,
				Sprite:        "interceptor",
				Width:         35.0,
				Height:        35.0,
				Color:         color.RGBA{230, 200, 80, 255},
				CanShoot:      true,
				ShootInterval: 1500 * time.Millisecond,
			},
			{
				Type:          EnemyTypeGunner,
				Health:        35,
				Speed:         1.8,
				Sprite:        "gunner",
				Width:         42.0,
				Height:        42.0,
				Color:         color.RGBA{230, 150, 60, 255},
				CanShoot:      true,
				ShootInterval: 2000 * time.Millisecond,
			},
			{
				Type:           EnemyTypeBomber,
				Health:         50,
				Speed:          1.4,
				Sprite:         "bomber",
				Width:          52.0,
				Height:         52.0,
				Color:          color.RGBA{220, 90, 60, 255},
				CanShoot:       true,
				ShootInterval:  2500 * time.Millisecond,
				BulletsPerShot: 2,
			},
		},
		3: {
			{
				Type:          EnemyTypeCruiser,
				Health:        80,
				Speed:         1.2,
				Sprite:        "cruiser",
				Width:         64.0,
				Height:        64.0,
				Color:         color.RGBA{200, 70, 160, 255},
				CanShoot:      true,
				ShootInterval: 1800 * time.Millisecond,
				BulletSpeed:   5.0,
			},
			{
				Type:           EnemyTypeMothership,
				Health:         150,
				Speed:          0.8,
				Sprite:         "mothership",
				Width:          96.0,
				Height:         96.0,
				Color:          color.RGBA{170, 60, 220, 255},
				CanShoot:       true,
				ShootInterval:  1200 * time.Millisecond,
				BulletsPerShot: 3,
				BulletSpeed:    5.0,
			},
		},
	}
}
