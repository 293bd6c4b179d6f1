package runner

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/word-runner/internal/core"
)

// Feedback labels.
const (
	labelGain   = "GAIN"
	labelLetter = "DOSSIER"
)

// feedbackLift raises floating labels above the object that produced them.
var feedbackLift = mgl64.Vec3{0, 1, 0}

// advance moves every object, applies the magnet and enemy fire, and
// resolves interactions. Objects fired this tick join the world afterwards.
func (e *Engine) advance(moved, step, f float64) {
	projectileSpeed := e.difficulty.ProjectileSpeed(f)
	trigger := e.difficulty.FireTrigger(f)
	collect := e.cfg.Collect
	combat := e.cfg.Combat

	var fired []*WorldObject
	for _, o := range e.world.objects {
		prevZ := o.Pos.Z()

		dz := moved
		if o.Type == ObjectProjectile {
			dz += projectileSpeed * step
		}
		o.Pos[2] += dz

		if o.Phase == PhaseSpawned {
			o.Phase = PhaseActive
		}
		if !o.Active() {
			continue
		}

		if e.inventory.Magnet && o.Type == ObjectGem {
			o.Pos[0] = core.Lerp(o.Pos.X(), e.player.X, math.Min(1, collect.MagnetLerp*step))
			o.Pos[2] += collect.MagnetPull * step
		}

		if o.Type == ObjectEnemy && o.Weapon == WeaponArmed && o.Pos.Z() > trigger {
			o.Weapon = WeaponSpent
			pos := mgl64.Vec3{o.Pos.X() + combat.FireOffsetX, combat.FireHeight, o.Pos.Z() + 1}
			fired = append(fired, e.spawner.newObjectAt(ObjectProjectile, pos))
		}

		// A letter or portal may have left Playing earlier in this tick
		if e.status == StatusPlaying {
			e.resolve(o, prevZ)
		}
	}

	for _, p := range fired {
		e.world.Add(p)
	}
}

// resolve tests one active object against the player.
func (e *Engine) resolve(o *WorldObject, prevZ float64) {
	c := e.cfg.Combat
	p := e.player.Pos()
	z := o.Pos.Z()

	if o.Type == ObjectShopPortal {
		if math.Abs(z-p.Z()) < c.PortalReach {
			o.resolve(ResolutionConsumed)
			e.OpenShop()
		}
		return
	}

	// Just-passed band: discrete ticks can skip an exact crossing
	inBand := prevZ < p.Z()+c.ZWindow && z > p.Z()-c.ZWindow
	if !inBand || math.Abs(o.Pos.X()-p.X()) >= c.HitRadius {
		return
	}

	if o.Type.IsDamageSource() {
		e.resolveDamage(o, p)
		return
	}
	e.resolveCollect(o, p)
}

func (e *Engine) resolveDamage(o *WorldObject, p mgl64.Vec3) {
	c := e.cfg.Combat

	switch o.Type {
	case ObjectObstacle:
		if p.Y() > c.ObstacleClearance {
			return
		}
	case ObjectProjectile:
		if p.Y() > c.ProjectileClearance {
			return
		}
	case ObjectHazardGate:
		if e.ImmortalityActive() {
			return
		}
	}

	o.resolve(ResolutionHit)
	e.events.push(Event{Kind: EventHit, Pos: o.Pos, Color: core.ColorDanger, ObjectType: o.Type})
	e.events.push(Event{
		Kind:       EventFeedback,
		Pos:        o.Pos.Add(feedbackLift),
		Color:      core.ColorDanger,
		Label:      o.Type.HitLabel(),
		Value:      -e.cfg.Scoring.HitPenalty,
		ObjectType: o.Type,
	})
	if o.Type == ObjectProjectile {
		e.events.push(Event{Kind: EventExplosion, Pos: o.Pos, Color: core.ColorDanger, ObjectType: o.Type})
	}
	e.TakeDamage()
}

func (e *Engine) resolveCollect(o *WorldObject, p mgl64.Vec3) {
	collect := e.cfg.Collect

	dy := math.Abs(o.Pos.Y() - (p.Y() + collect.BodyOffset))
	inRange := dy < collect.VerticalRange ||
		(e.inventory.Magnet && o.Type == ObjectGem && dy < collect.MagnetRange)
	if !inRange {
		return
	}

	o.resolve(ResolutionCollected)
	e.events.push(Event{Kind: EventCollect, Pos: o.Pos, Color: core.ColorGold, ObjectType: o.Type, Value: o.Points})

	switch o.Type {
	case ObjectGem:
		e.events.push(Event{
			Kind: EventFeedback, Pos: o.Pos.Add(feedbackLift), Color: core.ColorGold,
			Label: labelGain, Value: o.Points, ObjectType: o.Type,
		})
		e.events.push(Event{Kind: EventBurst, Pos: o.Pos, Color: core.ColorGold, ObjectType: o.Type})
		e.CollectGem(o.Points)
	case ObjectLetter:
		e.events.push(Event{
			Kind: EventFeedback, Pos: o.Pos.Add(feedbackLift), Color: core.ColorLetter,
			Label: labelLetter, ObjectType: o.Type,
		})
		e.events.push(Event{Kind: EventBurst, Pos: o.Pos, Color: core.ColorGold, ObjectType: o.Type})
		e.EncounterLetter(o.TargetIndex)
	}
}
