package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSkillQuest(defaultSkillQuestYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSkillQuestConfig() {
		t.Errorf("embedded YAML and DefaultSkillQuestConfig differ:\n yaml: %+v\n code: %+v", cfg, DefaultSkillQuestConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultSkillQuestConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "physics:\n  gravity: 0.5\npickup:\n  radius: 40\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSkillQuest(path)
	if err != nil {
		t.Fatalf("LoadSkillQuest() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Pickup.Radius != 40 {
		t.Errorf("Pickup.Radius = %v, expected 40", cfg.Pickup.Radius)
	}
	// Untouched keys keep defaults
	if cfg.Physics.JumpImpulse != -15 || cfg.Player.SpawnX != 100 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg.Physics)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSkillQuest(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSkillQuest(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  jump_impulse: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSkillQuest(invalid)
	if err == nil || !strings.Contains(err.Error(), "jump_impulse") {
		t.Errorf("positive jump impulse should be rejected, got %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultSkillQuestConfig()
	cfg.Canvas.Width = 0
	cfg.Pickup.Radius = -1
	cfg.Input.HoldTicks = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"canvas.width", "pickup.radius", "hold_ticks"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		seconds  float64
		rate     int
		expected int
	}{
		{1.5, 60, 90},
		{1.5, 30, 45},
		{0, 60, 0},
		{1, 0, 60}, // zero rate falls back to 60
	}

	for _, tc := range tests {
		if got := Ticks(tc.seconds, tc.rate); got != tc.expected {
			t.Errorf("Ticks(%v, %d) = %d, expected %d", tc.seconds, tc.rate, got, tc.expected)
		}
	}
}

func TestPresets(t *testing.T) {
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}

	easy := DefaultSkillQuestConfig()
	ApplySkillQuestPreset(&easy, DifficultyEasy)
	if easy.Pickup.Radius <= 25 {
		t.Errorf("easy should widen the pickup radius, got %v", easy.Pickup.Radius)
	}

	hard := DefaultSkillQuestConfig()
	ApplySkillQuestPreset(&hard, DifficultyHard)
	if hard.Pickup.Radius >= 25 || hard.Physics.MoveSpeed >= 5 {
		t.Errorf("hard should shrink radius and speed, got %+v", hard)
	}

	normal := DefaultSkillQuestConfig()
	ApplySkillQuestPreset(&normal, DifficultyNormal)
	if normal != DefaultSkillQuestConfig() {
		t.Error("normal should keep defaults")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path.db")
	if err != nil || got != "/abs/path.db" {
		t.Errorf("absolute path should be unchanged, got %q, %v", got, err)
	}

	got, err = ExpandHome("~/scores.db")
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if strings.HasPrefix(got, "~") || !strings.HasSuffix(got, "scores.db") {
		t.Errorf("ExpandHome(~/scores.db) = %q", got)
	}
}
