// Package runner implements the lane-runner simulation core: run state,
// the game state machine, the world object registry and spawner, the
// collision resolver and the letter/quiz subsystem.
//
// The package contains pure logic. Presentation layers drive it through
// Engine operations and drain typed events after every tick.
package runner

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Status is the mode of the state machine.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusShop
	StatusQuiz
	StatusFeedback
	StatusGameOver
	StatusVictory
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "Menu"
	case StatusPlaying:
		return "Playing"
	case StatusShop:
		return "Shop"
	case StatusQuiz:
		return "Quiz"
	case StatusFeedback:
		return "Feedback"
	case StatusGameOver:
		return "GameOver"
	case StatusVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// InRun reports whether the status belongs to an ongoing run.
func (s Status) InRun() bool {
	switch s {
	case StatusPlaying, StatusShop, StatusQuiz, StatusFeedback:
		return true
	default:
		return false
	}
}

// ObjectType identifies the kind of a world object.
type ObjectType int

const (
	ObjectObstacle ObjectType = iota
	ObjectGem
	ObjectLetter
	ObjectShopPortal
	ObjectEnemy
	ObjectProjectile
	ObjectHazardGate
)

// String returns the name of the object type.
func (t ObjectType) String() string {
	switch t {
	case ObjectObstacle:
		return "Obstacle"
	case ObjectGem:
		return "Gem"
	case ObjectLetter:
		return "Letter"
	case ObjectShopPortal:
		return "ShopPortal"
	case ObjectEnemy:
		return "Enemy"
	case ObjectProjectile:
		return "Projectile"
	case ObjectHazardGate:
		return "HazardGate"
	default:
		return "Unknown"
	}
}

// IsDamageSource reports whether contact with the object hurts the player.
func (t ObjectType) IsDamageSource() bool {
	switch t {
	case ObjectObstacle, ObjectEnemy, ObjectProjectile, ObjectHazardGate:
		return true
	default:
		return false
	}
}

// HitLabel is the feedback label shown when the object hits the player.
func (t ObjectType) HitLabel() string {
	switch t {
	case ObjectEnemy:
		return "IMPÔTS !"
	case ObjectProjectile:
		return "DETTE !"
	case ObjectObstacle:
		return "OBSTACLE !"
	default:
		return "DANGER !"
	}
}

// Phase is the lifecycle tag of a world object.
type Phase int

const (
	PhaseSpawned  Phase = iota // Created at the horizon, not yet advanced
	PhaseActive                // Advancing and eligible for interaction
	PhaseResolved              // Outcome decided this tick; removed at the end of the tick
	PhaseRemoved               // Dropped from the registry
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSpawned:
		return "Spawned"
	case PhaseActive:
		return "Active"
	case PhaseResolved:
		return "Resolved"
	case PhaseRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Resolution records how a resolved object was consumed.
type Resolution int

const (
	ResolutionNone Resolution = iota
	ResolutionCollected
	ResolutionHit
	ResolutionConsumed
)

// String returns the name of the resolution.
func (r Resolution) String() string {
	switch r {
	case ResolutionNone:
		return "None"
	case ResolutionCollected:
		return "Collected"
	case ResolutionHit:
		return "Hit"
	case ResolutionConsumed:
		return "Consumed"
	default:
		return "Unknown"
	}
}

// WeaponState is the one-shot fire latch of an enemy.
type WeaponState int

const (
	WeaponNone  WeaponState = iota // Object cannot fire
	WeaponArmed                    // Enemy will fire once in range
	WeaponSpent                    // Enemy has fired
)

// WorldObject is a spawned entity on the track.
// Position axes: X is the lateral lane offset, Y the height above ground and
// Z the distance to the player. Objects ahead of the player have Z < 0 and
// Z grows as they approach.
type WorldObject struct {
	ID          uuid.UUID
	Type        ObjectType
	Pos         mgl64.Vec3
	Phase       Phase
	Resolution  Resolution
	Value       rune // Letter glyph
	TargetIndex int  // Letter position in the target word
	Points      int  // Gem reward
	Weapon      WeaponState
}

// Active reports whether the object can still interact with the player.
func (o *WorldObject) Active() bool {
	return o.Phase == PhaseSpawned || o.Phase == PhaseActive
}

// resolve marks the object as resolved with the given outcome.
func (o *WorldObject) resolve(r Resolution) {
	o.Phase = PhaseResolved
	o.Resolution = r
}

// Lane returns the lane index nearest to the object's X for the given width.
func (o *WorldObject) Lane(laneWidth float64) int {
	if laneWidth <= 0 {
		return 0
	}
	x := o.Pos.X() / laneWidth
	if x < 0 {
		return -int(-x + 0.5)
	}
	return int(x + 0.5)
}

// Inventory holds the power-ups owned during a run.
type Inventory struct {
	DoubleJump      bool
	Immortality     bool // Owned, not necessarily active
	Magnet          bool
	ScoreMultiplier int // 1 or 2, applied to gems only
}

// ItemKind names a shop item.
type ItemKind string

const (
	ItemDoubleJump ItemKind = "DOUBLE_JUMP"
	ItemImmortal   ItemKind = "IMMORTAL"
	ItemMagnet     ItemKind = "MAGNET"
	ItemMultiplier ItemKind = "MULTIPLIER"
)

// Owned reports whether the inventory already holds the item's effect.
func (inv Inventory) Owned(kind ItemKind) bool {
	switch kind {
	case ItemDoubleJump:
		return inv.DoubleJump
	case ItemImmortal:
		return inv.Immortality
	case ItemMagnet:
		return inv.Magnet
	case ItemMultiplier:
		return inv.ScoreMultiplier >= 2
	default:
		return false
	}
}
