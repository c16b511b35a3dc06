package gui

import (
	"errors"
	"testing"
)

// memItems is an in-memory ItemStore.
type memItems struct {
	data    map[string][]byte
	loadErr error
}

func newMemItems() *memItems {
	return &memItems{data: map[string][]byte{}}
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	m.data[key] = data
	return nil
}

func TestSettingsRoundTrip(t *testing.T) {
	items := newMemItems()
	store := NewSettingsStore(items)

	want := Settings{Fullscreen: true, LastLevel: 3, LastGame: "skillquest"}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestSettingsLoadEmpty(t *testing.T) {
	got, err := NewSettingsStore(newMemItems()).Load()
	if err != nil || got != (Settings{}) {
		t.Errorf("Load with no data = %+v, %v", got, err)
	}

	var nilStore *SettingsStore
	if _, err := nilStore.Load(); err != nil {
		t.Errorf("nil store Load: %v", err)
	}
	if err := nilStore.Save(Settings{LastLevel: 2}); err != nil {
		t.Errorf("nil store Save: %v", err)
	}
}

func TestSettingsLoadErrors(t *testing.T) {
	items := newMemItems()
	items.data[settingsKey] = []byte("{not json")
	if _, err := NewSettingsStore(items).Load(); err == nil {
		t.Error("expected a parse error")
	}

	boom := errors.New("disk gone")
	items = newMemItems()
	items.loadErr = boom
	if _, err := NewSettingsStore(items).Load(); !errors.Is(err, boom) {
		t.Errorf("Load error = %v, want wrapped %v", err, boom)
	}
}
