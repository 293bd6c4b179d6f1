// Package config provides YAML-based runner configuration loading and the
// distance-driven difficulty model.
package config

// RunnerConfig contains all tunables of the runner simulation.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	World      RunnerWorld      `yaml:"world"`
	Combat     RunnerCombat     `yaml:"combat"`
	Collect    RunnerCollect    `yaml:"collect"`
	Scoring    RunnerScoring    `yaml:"scoring"`
	Powerups   RunnerPowerups   `yaml:"powerups"`
	Spawn      SpawnWeights     `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines forward motion and the jump integrator.
type RunnerPhysics struct {
	BaseSpeed    float64 `yaml:"base_speed"`    // Forward speed at run start (units/s)
	MaxSpeed     float64 `yaml:"max_speed"`     // Forward speed cap
	Acceleration float64 `yaml:"acceleration"`  // Speed gained per second while playing
	MaxStep      float64 `yaml:"max_step"`      // Upper bound on a tick's dt (seconds)
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration (units/s²)
	JumpVelocity float64 `yaml:"jump_velocity"` // Initial upward velocity of a jump
	LaneShift    float64 `yaml:"lane_shift"`    // Lateral interpolation rate toward the target lane (1/s)
}

// RunnerWorld defines the corridor and spawn cadence.
type RunnerWorld struct {
	LaneCount      int     `yaml:"lane_count"`
	LaneWidth      float64 `yaml:"lane_width"`
	SpawnDistance  float64 `yaml:"spawn_distance"`  // Horizon: rows spawn while furthest z > -spawn_distance
	RemoveDistance float64 `yaml:"remove_distance"` // Objects behind the player past this z are removed
	InitialHorizon float64 `yaml:"initial_horizon"` // furthestZ used when the track is empty
	LetterInterval float64 `yaml:"letter_interval"` // Distance between letter spawns
	ShopInterval   float64 `yaml:"shop_interval"`   // Distance between shop portals (0 disables)
}

// RunnerCombat defines damage sources, dodge clearances and enemy fire.
type RunnerCombat struct {
	HitRadius           float64 `yaml:"hit_radius"`           // Lateral tolerance for contact
	ZWindow             float64 `yaml:"z_window"`             // Half-width of the just-passed band around the player
	ObstacleClearance   float64 `yaml:"obstacle_clearance"`   // Player height that clears an obstacle
	ProjectileClearance float64 `yaml:"projectile_clearance"` // Player height that clears a projectile
	ProjectileSpeed     float64 `yaml:"projectile_speed"`     // Base projectile speed at difficulty 0
	ProjectileSpeedGain float64 `yaml:"projectile_speed_gain"`
	FireTrigger         float64 `yaml:"fire_trigger"`      // Enemy fires once z passes this value at difficulty 0
	FireTriggerGain     float64 `yaml:"fire_trigger_gain"` // Extra range at full difficulty (subtracted)
	FireOffsetX         float64 `yaml:"fire_offset_x"`
	FireHeight          float64 `yaml:"fire_height"`
	PortalReach         float64 `yaml:"portal_reach"`  // Forward proximity that triggers a shop portal
	Invincibility       float64 `yaml:"invincibility"` // Seconds of damage immunity after a hit
}

// RunnerCollect defines collectible pickup tolerances and the magnet.
type RunnerCollect struct {
	VerticalRange float64 `yaml:"vertical_range"`
	MagnetRange   float64 `yaml:"magnet_range"`
	MagnetLerp    float64 `yaml:"magnet_lerp"` // Lateral pull rate (1/s)
	MagnetPull    float64 `yaml:"magnet_pull"` // Extra forward speed of attracted gems
	BodyOffset    float64 `yaml:"body_offset"` // Player centre height above feet
	GemPoints     int     `yaml:"gem_points"`
}

// RunnerScoring defines fixed score rewards and penalties.
type RunnerScoring struct {
	HitPenalty      int `yaml:"hit_penalty"`
	WrongPenalty    int `yaml:"wrong_penalty"`
	LetterBonus     int `yaml:"letter_bonus"`
	CompletionBonus int `yaml:"completion_bonus"`
}

// RunnerPowerups defines shop prices and timed power durations.
type RunnerPowerups struct {
	ImmortalityDuration float64 `yaml:"immortality_duration"` // Seconds
	DoubleJumpCost      int     `yaml:"double_jump_cost"`
	ImmortalCost        int     `yaml:"immortal_cost"`
	MagnetCost          int     `yaml:"magnet_cost"`
	MultiplierCost      int     `yaml:"multiplier_cost"`
}

// SpawnWeights is the weighted-choice table for a non-letter, non-empty row.
// Weights are relative; the default keeps 15% gems and splits danger 50/50.
type SpawnWeights struct {
	Gem        float64 `yaml:"gem"`
	Enemy      float64 `yaml:"enemy"`
	Obstacle   float64 `yaml:"obstacle"`
	HazardGate float64 `yaml:"hazard_gate"`
	EmptyRow   float64 `yaml:"empty_row"` // Empty-row chance at difficulty 0
}

// DifficultyConfig defines the difficulty progression.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	RampDistance float64       `yaml:"ramp_distance"` // Distance at which max difficulty is reached
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the row-gap range driven by difficulty.
type ScalingConfig struct {
	MaxRowGap float64 `yaml:"max_row_gap"` // Gap between rows at difficulty 0
	MinRowGap float64 `yaml:"min_row_gap"` // Gap floor at full difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty or unknown strings
// return "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ShopPrice returns the configured price for a shop item kind name.
func (p RunnerPowerups) ShopPrice(kind string) (int, bool) {
	switch kind {
	case "DOUBLE_JUMP":
		return p.DoubleJumpCost, true
	case "IMMORTAL":
		return p.ImmortalCost, true
	case "MAGNET":
		return p.MagnetCost, true
	case "MULTIPLIER":
		return p.MultiplierCost, true
	default:
		return 0, false
	}
}
