// Package settings persists viewer state across runs: the last selected
// preset and the viewer toggles. Storage goes through gdata, so the data
// lands in the platform's per-user application directory; when no storage
// manager is available the package degrades to in-memory defaults.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings is the persisted viewer state.
type ViewerSettings struct {
	// LastPreset is the name of the preset selected when the viewer quit.
	LastPreset string `yaml:"lastPreset"`

	// AutoPlay restarts the emitter automatically after switching presets.
	AutoPlay bool `yaml:"autoPlay"`

	// ShowHelp displays the key binding overlay.
	ShowHelp bool `yaml:"showHelp"`
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{
		AutoPlay: true,
		ShowHelp: true,
	}
}

// Storage path constants.
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// Manager loads and saves viewer settings through gdata.
type Manager struct {
	gdataManager *gdata.Manager // nil enables the in-memory degraded mode
	settings     *ViewerSettings
}

// NewManager creates a settings manager and loads any previously saved
// settings. A nil gdataManager is allowed: settings then live only in
// memory. A load failure is not fatal; defaults apply.
func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load settings: %v (using defaults)", err)
	}
	return m
}

// Load reads settings from storage. Missing storage or a missing settings
// entry falls back to defaults without error.
func (m *Manager) Load() error {
	if m.gdataManager == nil {
		m.settings = DefaultSettings()
		return nil
	}
	if !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = DefaultSettings()
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded ViewerSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	m.settings = &loaded
	return nil
}

// Save writes the current settings to storage. In degraded mode Save is a
// silent no-op.
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings returns the current in-memory settings. Mutations become
// persistent on the next Save.
func (m *Manager) Settings() *ViewerSettings {
	return m.settings
}
