package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hard-coded runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			BaseSpeed:    22.5,
			MaxSpeed:     60,
			Acceleration: 0.5,
			MaxStep:      0.05,
			Gravity:      50,
			JumpVelocity: 16,
			LaneShift:    15,
		},
		World: RunnerWorld{
			LaneCount:      3,
			LaneWidth:      2.2,
			SpawnDistance:  120,
			RemoveDistance: 20,
			InitialHorizon: -20,
			LetterInterval: 140,
			ShopInterval:   900,
		},
		Combat: RunnerCombat{
			HitRadius:           0.9,
			ZWindow:             2.0,
			ObstacleClearance:   1.0,
			ProjectileClearance: 2.0,
			ProjectileSpeed:     25,
			ProjectileSpeedGain: 25,
			FireTrigger:         -80,
			FireTriggerGain:     30,
			FireOffsetX:         -0.4,
			FireHeight:          1.8,
			PortalReach:         2.0,
			Invincibility:       1.5,
		},
		Collect: RunnerCollect{
			VerticalRange: 2.0,
			MagnetRange:   4.0,
			MagnetLerp:    5.0,
			MagnetPull:    5.0,
			BodyOffset:    0.9,
			GemPoints:     100,
		},
		Scoring: RunnerScoring{
			HitPenalty:      500,
			WrongPenalty:    200,
			LetterBonus:     500,
			CompletionBonus: 5000,
		},
		Powerups: RunnerPowerups{
			ImmortalityDuration: 5,
			DoubleJumpCost:      1000,
			ImmortalCost:        2000,
			MagnetCost:          1500,
			MultiplierCost:      3000,
		},
		Spawn: SpawnWeights{
			Gem:        0.15,
			Enemy:      0.425,
			Obstacle:   0.425,
			HazardGate: 0,
			EmptyRow:   0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			RampDistance: 2000,
			Scaling: ScalingConfig{
				MaxRowGap: 16,
				MinRowGap: 8,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default runner YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
