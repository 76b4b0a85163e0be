// Package quota tracks daily YouTube API quota usage.
package quota

import (
	"sync"
	"time"
)

// Manager accounts quota units charged against the daily YouTube API limit.
// Usage resets at the start of each UTC day, matching the API's quota window.
type Manager struct {
	mu               sync.Mutex
	used             int
	day              time.Time
	dailyLimit       int
	thresholdPercent int
	now              func() time.Time
}

// NewManager creates a quota manager. Charging stops once usage crosses
// thresholdPercent of dailyLimit, leaving headroom for retries.
func NewManager(dailyLimit, thresholdPercent int) *Manager {
	if dailyLimit <= 0 {
		dailyLimit = 10000 // YouTube API v3 default
	}
	if thresholdPercent <= 0 || thresholdPercent > 100 {
		thresholdPercent = 90
	}

	return &Manager{
		dailyLimit:       dailyLimit,
		thresholdPercent: thresholdPercent,
		now:              time.Now,
	}
}

// Available reports whether required units can be spent without crossing the
// threshold.
func (m *Manager) Available(required int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollover()
	return m.used+required <= m.threshold()
}

// Charge records spent quota units.
func (m *Manager) Charge(units int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollover()
	m.used += units
}

// Used returns the units charged in the current UTC day.
func (m *Manager) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollover()
	return m.used
}

func (m *Manager) threshold() int {
	return (m.dailyLimit * m.thresholdPercent) / 100
}

// rollover resets usage when the UTC day has changed. Callers must hold mu.
func (m *Manager) rollover() {
	today := m.now().UTC().Truncate(24 * time.Hour)
	if !today.Equal(m.day) {
		m.day = today
		m.used = 0
	}
}
