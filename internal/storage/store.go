// internal/storage/store.go
package storage

import (
	"log/slog"

	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/sensor"
)

// HistoryStore persists readings and serves trailing-window queries.
//
// Save is best-effort and must never block or fail the caller; persistence
// outages are logged and swallowed. Query returns readings within the
// trailing window, newest first, with status and score re-derived through the
// evaluator so that threshold changes reclassify history consistently.
type HistoryStore interface {
	Save(r sensor.Reading)
	Query(windowHours int) ([]sensor.Reading, error)
	Close() error
}

// Connect probes the persistent backend once at startup and picks the store
// variant for the process lifetime: SQL-backed when reachable, simulated
// history otherwise. Call sites stay mode-agnostic.
func Connect(path string, gen *sensor.Generator, log *slog.Logger) HistoryStore {
	store, err := OpenSQL(path, log)
	if err != nil {
		log.Warn("history backend unreachable, running in simulated-history mode", "path", path, "err", err)
		return NewSyntheticStore(gen, log)
	}
	log.Info("history backend ready", "path", path)
	return store
}
