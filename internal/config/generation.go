package config

import (
	"math"
	"sync"

	"heightmap/internal/terrain"
)

// GenerationSettings holds process-wide generation defaults
type GenerationSettings struct {
	mu          sync.RWMutex
	size        int
	decay       float64
	useHashRand bool
}

var globalGenerationSettings = &GenerationSettings{
	size:  129,                  // 2^7+1
	decay: terrain.DefaultDecay, // 0.55
}

// GetSize returns the default grid size
func GetSize() int {
	globalGenerationSettings.mu.RLock()
	defer globalGenerationSettings.mu.RUnlock()
	return globalGenerationSettings.size
}

// SetSize sets the default grid size. Sizes that are not 2^k+1 are ignored.
func SetSize(size int) bool {
	if terrain.ValidateDimension(size) != nil {
		return false
	}
	globalGenerationSettings.mu.Lock()
	defer globalGenerationSettings.mu.Unlock()
	globalGenerationSettings.size = size
	return true
}

// GetDecay returns the default amplitude decay
func GetDecay() float64 {
	globalGenerationSettings.mu.RLock()
	defer globalGenerationSettings.mu.RUnlock()
	return globalGenerationSettings.decay
}

// SetDecay sets the default amplitude decay, clamped into [0.01, 0.99]
func SetDecay(decay float64) {
	if math.IsNaN(decay) {
		return
	}
	if decay < 0.01 {
		decay = 0.01
	}
	if decay > 0.99 {
		decay = 0.99
	}
	globalGenerationSettings.mu.Lock()
	defer globalGenerationSettings.mu.Unlock()
	globalGenerationSettings.decay = decay
}

// GetUseHashRand returns whether seeds build counter-based hash sources
func GetUseHashRand() bool {
	globalGenerationSettings.mu.RLock()
	defer globalGenerationSettings.mu.RUnlock()
	return globalGenerationSettings.useHashRand
}

// SetUseHashRand selects the source constructor
func SetUseHashRand(enabled bool) {
	globalGenerationSettings.mu.Lock()
	defer globalGenerationSettings.mu.Unlock()
	globalGenerationSettings.useHashRand = enabled
}

// SourceFactory returns the constructor matching the current setting
func SourceFactory() func(int64) terrain.Source {
	if GetUseHashRand() {
		return terrain.NewHashSource
	}
	return terrain.NewSource
}
