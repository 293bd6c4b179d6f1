package config

import "math"

// DifficultyModel converts distance traveled in the current run into a
// normalized difficulty factor and the spawn/combat parameters derived from it.
// Every distance-driven decision in the engine goes through this type.
type DifficultyModel struct {
	cfg          DifficultyConfig
	combat       RunnerCombat
	spawn        SpawnWeights
	initialLevel float64
}

// NewDifficultyModel creates a difficulty model for the given runner config.
func NewDifficultyModel(cfg RunnerConfig) *DifficultyModel {
	return &DifficultyModel{
		cfg:          cfg.Difficulty,
		combat:       cfg.Combat,
		spawn:        cfg.Spawn,
		initialLevel: clampF(cfg.Difficulty.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyModel) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyModel) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyModel) IsEnabled() bool {
	return d.cfg.Enabled
}

// Factor returns the difficulty factor in [0, 1] for a run distance.
// With initial level 0 this is clamp(distance / ramp, 0, 1).
func (d *DifficultyModel) Factor(distance float64) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}

	ramp := d.cfg.RampDistance
	if ramp <= 0 {
		ramp = 1 // Prevent division by zero
	}
	progress := clampF(distance/ramp, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ProjectileSpeed returns the extra forward speed of enemy projectiles.
func (d *DifficultyModel) ProjectileSpeed(f float64) float64 {
	return d.combat.ProjectileSpeed + f*d.combat.ProjectileSpeedGain
}

// RowGap returns the distance between successive spawn rows.
// The world gets denser as difficulty rises.
func (d *DifficultyModel) RowGap(f float64) float64 {
	maxGap := d.cfg.Scaling.MaxRowGap
	minGap := d.cfg.Scaling.MinRowGap
	return math.Max(minGap, maxGap-f*(maxGap-minGap))
}

// FireTrigger returns the z an armed enemy must pass before it fires.
// Higher difficulty means a more negative threshold, i.e. firing from further away.
func (d *DifficultyModel) FireTrigger(f float64) float64 {
	return d.combat.FireTrigger - f*d.combat.FireTriggerGain
}

// EmptyRowChance returns the probability that a spawn row is left empty.
func (d *DifficultyModel) EmptyRowChance(f float64) float64 {
	return math.Max(0, d.spawn.EmptyRow-f)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
