package gui

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// settingsKey is the gdata item holding window settings.
const settingsKey = "settings"

// Settings are the desktop preferences kept between launches.
type Settings struct {
	Fullscreen bool   `json:"fullscreen"`
	LastLevel  int    `json:"lastLevel"`
	LastGame   string `json:"lastGame,omitempty"`
}

// ItemStore is the subset of *gdata.Manager the settings use.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// SettingsStore loads and saves Settings through gdata.
type SettingsStore struct {
	items ItemStore
}

// OpenSettings opens the per-user data directory for appName.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("gui: opening settings storage: %w", err)
	}
	return &SettingsStore{items: m}, nil
}

// NewSettingsStore wraps an existing item store.
func NewSettingsStore(items ItemStore) *SettingsStore {
	return &SettingsStore{items: items}
}

// Load returns the saved settings, or zero settings when none exist yet.
func (s *SettingsStore) Load() (Settings, error) {
	var out Settings
	if s == nil || s.items == nil {
		return out, nil
	}
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		return out, fmt.Errorf("gui: loading settings: %w", err)
	}
	if data == nil {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return Settings{}, fmt.Errorf("gui: parsing settings: %w", err)
	}
	return out, nil
}

// Save writes the settings.
func (s *SettingsStore) Save(st Settings) error {
	if s == nil || s.items == nil {
		return nil
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("gui: encoding settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("gui: saving settings: %w", err)
	}
	return nil
}
