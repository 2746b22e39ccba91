// Package storage persists the two cross-run integers — top score and
// lifetime coin total — through gdata's per-platform app data dirs.
package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	scoresObject   = "scores"
	scoresProperty = "global"
)

// scoreData is the persisted payload.
type scoreData struct {
	TopScore   int `yaml:"topScore"`
	TotalCoins int `yaml:"totalCoins"`
}

// Manager loads and saves persistent score data. A nil gdata manager
// puts it in degraded mode: values live in memory for the session and
// writes are dropped silently, never surfacing to the simulation.
type Manager struct {
	gdataManager *gdata.Manager
	data         scoreData
}

// Open creates a Manager for the given app name. Storage failure is not
// fatal; the returned Manager degrades to memory-only.
func Open(appName string) *Manager {
	m := &Manager{}

	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[storage] open failed: %v (scores will not persist)", err)
		return m
	}
	m.gdataManager = gm

	if err := m.Load(); err != nil {
		log.Printf("[storage] load failed: %v (starting from zero)", err)
	}
	return m
}

// Load reads persisted values. Missing or malformed data defaults to
// zero.
func (m *Manager) Load() error {
	if m.gdataManager == nil {
		return nil
	}

	if !m.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		m.data = scoreData{}
		return nil
	}

	raw, err := m.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		m.data = scoreData{}
		return fmt.Errorf("load scores: %w", err)
	}

	var loaded scoreData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		m.data = scoreData{}
		return fmt.Errorf("decode scores: %w", err)
	}

	// Persisted values are monotonic non-negative; discard corruption
	if loaded.TopScore < 0 {
		loaded.TopScore = 0
	}
	if loaded.TotalCoins < 0 {
		loaded.TotalCoins = 0
	}
	m.data = loaded
	return nil
}

// TopScore returns the best score across runs
func (m *Manager) TopScore() int {
	return m.data.TopScore
}

// TotalCoins returns the lifetime coin total
func (m *Manager) TotalCoins() int {
	return m.data.TotalCoins
}

// RecordRun folds a finished run into the persisted totals. It reports
// whether the run set a new top score.
func (m *Manager) RecordRun(score, coins int) bool {
	newRecord := score > m.data.TopScore
	if newRecord {
		m.data.TopScore = score
	}
	if coins > 0 {
		m.data.TotalCoins += coins
	}

	if err := m.save(); err != nil {
		log.Printf("[storage] save failed: %v", err)
	}
	return newRecord
}

// ResetTopScore forces the persisted top score back to zero. The
// lifetime coin total is untouched.
func (m *Manager) ResetTopScore() {
	m.data.TopScore = 0
	if err := m.save(); err != nil {
		log.Printf("[storage] save failed: %v", err)
	}
}

func (m *Manager) save() error {
	if m.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(&m.data)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(scoresObject, scoresProperty, raw); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}
