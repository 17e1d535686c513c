package cache

import (
	"sync"
	"time"
)

type recordingMetrics struct {
	mu     sync.Mutex
	hits   map[string]int
	misses map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{hits: map[string]int{}, misses: map[string]int{}}
}

func (m *recordingMetrics) CacheHit(layer, category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits[layer+"/"+category]++
}

func (m *recordingMetrics) CacheMiss(layer, category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses[layer+"/"+category]++
}

func (m *recordingMetrics) ProviderRequest(string, string)                 {}
func (m *recordingMetrics) HTTPRequest(string, string, int, time.Duration) {}
