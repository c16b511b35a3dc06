package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and logs.
const AppDir = ".skillquest"

// LoadSkillQuest loads SkillQuest configuration.
// Search order: customPath -> ~/.skillquest/configs/skillquest.yaml ->
// ./configs/skillquest.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep default values.
func LoadSkillQuest(customPath string) (SkillQuestConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSkillQuestConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSkillQuest(data)
		if err != nil {
			return DefaultSkillQuestConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "skillquest.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSkillQuest(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/skillquest.yaml"); err == nil {
		if cfg, err := parseSkillQuest(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSkillQuest(defaultSkillQuestYAML)
	if err != nil {
		return DefaultSkillQuestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSkillQuest overlays YAML onto the defaults and validates the result.
func parseSkillQuest(data []byte) (SkillQuestConfig, error) {
	cfg := DefaultSkillQuestConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserPath joins elem under ~/.skillquest, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
