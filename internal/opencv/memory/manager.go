// Package memory accounts for native Mat allocations so leaks surface in
// the logs instead of the process footprint.
package memory

import (
	"sync"

	"github.com/Wayne-Ayers-Creech/VennDiagram/internal/logger"
)

// Manager implements safe.MemoryTracker and keeps running allocation
// statistics for the shutdown report.
type Manager struct {
	mu     sync.Mutex
	logger logger.Logger
	live   map[uint64]int64
	stats  Stats
}

// Stats is a snapshot of allocation accounting.
type Stats struct {
	Allocations   int64
	Deallocations int64
	LiveMats      int64
	LiveBytes     int64
}

// NewManager creates an allocation tracker
func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger: log,
		live:   make(map[uint64]int64),
	}
}

// TrackAllocation records a new Mat
func (m *Manager) TrackAllocation(id uint64, size int64, tag string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.live[id] = size
	m.stats.Allocations++
	m.stats.LiveMats++
	m.stats.LiveBytes += size

	m.logger.Debug("MemoryManager", "mat allocated", map[string]interface{}{
		"id":    id,
		"bytes": size,
		"tag":   tag,
	})
}

// TrackDeallocation records a Mat release
func (m *Manager) TrackDeallocation(id uint64, tag string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	size, known := m.live[id]
	if !known {
		m.logger.Warning("MemoryManager", "releasing untracked mat", map[string]interface{}{
			"id":  id,
			"tag": tag,
		})
		return
	}

	delete(m.live, id)
	m.stats.Deallocations++
	m.stats.LiveMats--
	m.stats.LiveBytes -= size
}

// GetStats returns a copy of the current statistics
func (m *Manager) GetStats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Shutdown logs anything still outstanding. Mats are owned by their
// creators; this is reporting, not reclamation.
func (m *Manager) Shutdown() {
	stats := m.GetStats()
	if stats.LiveMats > 0 {
		m.logger.Warning("MemoryManager", "mats still live at shutdown", map[string]interface{}{
			"live_mats":  stats.LiveMats,
			"live_bytes": stats.LiveBytes,
		})
		return
	}
	m.logger.Info("MemoryManager", "all mats released", map[string]interface{}{
		"allocations": stats.Allocations,
	})
}
