package config

import "testing"

func TestLoadThresholdDefaults(t *testing.T) {
	cfg := Load()

	th := cfg.Quiz.Thresholds
	if th.ClearTopScore != 2 {
		t.Errorf("ClearTopScore = %v, want 2", th.ClearTopScore)
	}
	if th.ClearGap != 1 {
		t.Errorf("ClearGap = %v, want 1", th.ClearGap)
	}
	if th.BlendFraction != 0.25 {
		t.Errorf("BlendFraction = %v, want 0.25", th.BlendFraction)
	}
	if th.StrongConfidence != 0.70 {
		t.Errorf("StrongConfidence = %v, want 0.70", th.StrongConfidence)
	}
	if th.ModerateConfidence != 0.55 {
		t.Errorf("ModerateConfidence = %v, want 0.55", th.ModerateConfidence)
	}
	if th.MaxForkRounds != 2 {
		t.Errorf("MaxForkRounds = %v, want 2", th.MaxForkRounds)
	}
	if th.MaxCorrections != 2 {
		t.Errorf("MaxCorrections = %v, want 2", th.MaxCorrections)
	}
}

func TestLoadThresholdOverrides(t *testing.T) {
	t.Setenv("QUIZ_CLEAR_TOP_SCORE", "3")
	t.Setenv("QUIZ_BLEND_FRACTION", "0.4")
	t.Setenv("QUIZ_MAX_FORK_ROUNDS", "1")

	cfg := Load()

	th := cfg.Quiz.Thresholds
	if th.ClearTopScore != 3 {
		t.Errorf("ClearTopScore = %v, want 3", th.ClearTopScore)
	}
	if th.BlendFraction != 0.4 {
		t.Errorf("BlendFraction = %v, want 0.4", th.BlendFraction)
	}
	if th.MaxForkRounds != 1 {
		t.Errorf("MaxForkRounds = %v, want 1", th.MaxForkRounds)
	}
	// Untouched knobs keep their defaults.
	if th.PairGap != 1 {
		t.Errorf("PairGap = %v, want 1", th.PairGap)
	}
}

func TestLoadThresholdBadValueFallsBack(t *testing.T) {
	t.Setenv("QUIZ_BLEND_FRACTION", "not-a-number")

	cfg := Load()
	if cfg.Quiz.Thresholds.BlendFraction != 0.25 {
		t.Errorf("BlendFraction = %v, want default 0.25", cfg.Quiz.Thresholds.BlendFraction)
	}
}
