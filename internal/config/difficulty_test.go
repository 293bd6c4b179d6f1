package config

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyFactor(t *testing.T) {
	d := NewDifficultyModel(DefaultRunnerConfig())

	tests := []struct {
		distance float64
		expected float64
	}{
		{0, 0},
		{500, 0.25},
		{1000, 0.5},
		{1999, 0.9995},
		{2000, 1},
		{5000, 1},
		{-10, 0},
	}

	for _, tc := range tests {
		got := d.Factor(tc.distance)
		if !almostEqual(got, tc.expected) {
			t.Errorf("Factor(%v) = %v, expected %v", tc.distance, got, tc.expected)
		}
	}
}

func TestDifficultyFactorMonotonic(t *testing.T) {
	d := NewDifficultyModel(DefaultRunnerConfig())

	prev := d.Factor(0)
	for dist := 0.0; dist <= 3000; dist += 7.5 {
		f := d.Factor(dist)
		if f < prev {
			t.Fatalf("Factor decreased at distance %v: %v < %v", dist, f, prev)
		}
		prev = f
	}
}

func TestDifficultyDerived(t *testing.T) {
	d := NewDifficultyModel(DefaultRunnerConfig())

	tests := []struct {
		name                           string
		f                              float64
		gap, projectile, trigger, skip float64
	}{
		{"start", 0, 16, 25, -80, 0.1},
		{"midway", 0.5, 12, 37.5, -95, 0},
		{"early", 0.05, 15.6, 26.25, -81.5, 0.05},
		{"max", 1, 8, 50, -110, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.RowGap(tc.f); !almostEqual(got, tc.gap) {
				t.Errorf("RowGap(%v) = %v, expected %v", tc.f, got, tc.gap)
			}
			if got := d.ProjectileSpeed(tc.f); !almostEqual(got, tc.projectile) {
				t.Errorf("ProjectileSpeed(%v) = %v, expected %v", tc.f, got, tc.projectile)
			}
			if got := d.FireTrigger(tc.f); !almostEqual(got, tc.trigger) {
				t.Errorf("FireTrigger(%v) = %v, expected %v", tc.f, got, tc.trigger)
			}
			if got := d.EmptyRowChance(tc.f); !almostEqual(got, tc.skip) {
				t.Errorf("EmptyRowChance(%v) = %v, expected %v", tc.f, got, tc.skip)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyNormal)
	d := NewDifficultyModel(cfg)

	if got := d.Factor(0); !almostEqual(got, 0.3) {
		t.Errorf("normal preset Factor(0) = %v, expected 0.3", got)
	}
	if got := d.Factor(2000); !almostEqual(got, 1) {
		t.Errorf("normal preset Factor(2000) = %v, expected 1", got)
	}

	fixed := DefaultRunnerConfig()
	ApplyRunnerPreset(&fixed, DifficultyFixed)
	df := NewDifficultyModel(fixed)
	if df.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if got := df.Factor(10000); got != 0 {
		t.Errorf("fixed preset Factor = %v, expected initial level 0", got)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown presets should map to the empty preset")
	}
}
