package config

import (
	"log"
	"sync"

	"snakegame/game/engine"
)

// Manager handles game configuration loading and caching. A load
// failure is never fatal: the built-in defaults are used instead so the
// game can always start.
type Manager struct {
	path    string
	mu      sync.RWMutex
	current *engine.Config
}

// NewManager creates a configuration manager for the given settings file.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Load reads the settings file, falling back to the built-in defaults
// when the file is missing or malformed. The result is cached.
func (m *Manager) Load() *engine.Config {
	m.mu.Lock()
	defer m.mu.Unlock()

	config, err := engine.LoadConfig(m.path)
	if err != nil {
		log.Printf("error loading config %s: %v (using defaults)", m.path, err)
		config = engine.DefaultConfig()
	}

	m.current = config
	return config
}

// Current returns the cached configuration, loading it on first use.
func (m *Manager) Current() *engine.Config {
	m.mu.RLock()
	current := m.current
	m.mu.RUnlock()

	if current != nil {
		return current
	}
	return m.Load()
}

// Reload discards the cached configuration and loads it again.
func (m *Manager) Reload() *engine.Config {
	return m.Load()
}
