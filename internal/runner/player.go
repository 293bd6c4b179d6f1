package runner

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/word-runner/internal/config"
	"github.com/vovakirdan/word-runner/internal/core"
)

// Player is the runner's lateral and vertical state. The player always sits
// at z = 0; the world scrolls toward it.
type Player struct {
	Lane      int     // Target lane
	X         float64 // Interpolated lateral position
	Y         float64 // Height of the feet above ground
	VelocityY float64
	Jumps     int // Jumps performed since leaving the ground
	Airborne  bool
}

// Pos returns the player position in world space.
func (p Player) Pos() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, 0}
}

// playerBody integrates lane interpolation and the jump arc.
type playerBody struct {
	Player
	physics   config.RunnerPhysics
	laneWidth float64
	maxLane   int
}

func newPlayerBody(physics config.RunnerPhysics, world config.RunnerWorld) *playerBody {
	return &playerBody{
		physics:   physics,
		laneWidth: world.LaneWidth,
		maxLane:   world.LaneCount / 2,
	}
}

func (b *playerBody) reset() {
	b.Player = Player{}
}

// shiftLane moves the target lane by one step in the direction's sign.
func (b *playerBody) shiftLane(dir int) bool {
	switch {
	case dir < 0 && b.Lane > -b.maxLane:
		b.Lane--
		return true
	case dir > 0 && b.Lane < b.maxLane:
		b.Lane++
		return true
	default:
		return false
	}
}

// jump starts a jump from the ground, or a second one in the air when the
// double jump is owned. Returns the jump count, or 0 when refused.
func (b *playerBody) jump(doubleJump bool) int {
	maxJumps := 1
	if doubleJump {
		maxJumps = 2
	}

	if !b.Airborne {
		b.Airborne = true
		b.Jumps = 1
		b.VelocityY = b.physics.JumpVelocity
		return b.Jumps
	}
	if b.Jumps < maxJumps {
		b.Jumps++
		b.VelocityY = b.physics.JumpVelocity
		return b.Jumps
	}
	return 0
}

// integrate advances the player by dt seconds.
func (b *playerBody) integrate(dt float64) {
	targetX := float64(b.Lane) * b.laneWidth
	t := b.physics.LaneShift * dt
	if t > 1 {
		t = 1
	}
	b.X = core.Lerp(b.X, targetX, t)

	if b.Airborne {
		b.Y += b.VelocityY * dt
		b.VelocityY -= b.physics.Gravity * dt
		if b.Y <= 0 {
			b.Y = 0
			b.VelocityY = 0
			b.Jumps = 0
			b.Airborne = false
		}
	}
}
