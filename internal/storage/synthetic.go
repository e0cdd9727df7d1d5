// internal/storage/synthetic.go
package storage

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/sensor"
)

const (
	backfillInterval = 10 * time.Minute
	liveBufferSize   = 2000
)

// SyntheticStore is the simulated-history fallback used when the persistent
// backend is unreachable at startup. Live saves land in a capped in-memory
// ring; queries merge those with a dense synthetic backfill generated across
// the full sensor×location matrix at fixed intervals over the window.
type SyntheticStore struct {
	gen *sensor.Generator
	log *slog.Logger

	mu     sync.RWMutex
	buffer []sensor.Reading
}

func NewSyntheticStore(gen *sensor.Generator, log *slog.Logger) *SyntheticStore {
	return &SyntheticStore{
		gen:    gen,
		log:    log,
		buffer: make([]sensor.Reading, 0, liveBufferSize),
	}
}

// Save keeps the reading in memory only. The oldest entry is evicted once
// the ring is full.
func (s *SyntheticStore) Save(r sensor.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buffer) >= liveBufferSize {
		s.buffer = s.buffer[1:]
	}
	s.buffer = append(s.buffer, r)
}

// Query synthesizes a backfill spanning the window, merges in buffered live
// readings, and returns the result newest first.
func (s *SyntheticStore) Query(windowHours int) ([]sensor.Reading, error) {
	now := time.Now().UTC()
	since := now.Add(-time.Duration(windowHours) * time.Hour)

	var out []sensor.Reading
	for t := since; t.Before(now); t = t.Add(backfillInterval) {
		out = append(out, s.gen.Snapshot(t)...)
	}

	s.mu.RLock()
	for _, r := range s.buffer {
		if !r.Timestamp.Before(since) {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *SyntheticStore) Close() error { return nil }
