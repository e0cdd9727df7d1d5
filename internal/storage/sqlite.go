// internal/storage/sqlite.go
package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/metrics"
	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/sensor"
)

const saveQueueSize = 256

// SQLStore implements HistoryStore on SQLite (pure Go driver
// modernc.org/sqlite). Writes go through a buffered queue drained by a single
// writer goroutine so a slow backend cannot stall the generation cycle.
type SQLStore struct {
	db  *sql.DB
	log *slog.Logger

	mu     sync.Mutex
	closed bool
	queue  chan sensor.Reading
	wg     sync.WaitGroup
}

// OpenSQL opens (or creates) the database at path, applies the schema and
// starts the writer. An unreachable backend surfaces here so the caller can
// fall back to simulated history.
func OpenSQL(path string, log *slog.Logger) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// WAL gives better concurrency for the small frequent writes the
	// scheduler produces.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		log.Warn("could not set WAL mode", "err", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS readings (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        location_id TEXT NOT NULL,
        sensor_type TEXT NOT NULL,
        value REAL NOT NULL,
        unit TEXT NOT NULL,
        timestamp INTEGER NOT NULL,
        firmware TEXT,
        calibrated_at INTEGER,
        compensated INTEGER
    );
    CREATE INDEX IF NOT EXISTS idx_readings_timestamp ON readings(timestamp);`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	s := &SQLStore{
		db:    db,
		log:   log,
		queue: make(chan sensor.Reading, saveQueueSize),
	}
	s.wg.Add(1)
	go s.writer()
	return s, nil
}

// Save enqueues the reading for persistence. When the queue is full the
// reading is dropped and counted; live monitoring is never held up. Saves
// racing a shutdown drop silently rather than hitting the closed queue.
func (s *SQLStore) Save(r sensor.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		s.log.Warn("store closed, dropping reading", "sensorType", r.SensorType, "locationId", r.LocationID)
		return
	}
	select {
	case s.queue <- r:
	default:
		metrics.PersistenceFailures.Inc()
		s.log.Warn("save queue full, dropping reading", "sensorType", r.SensorType, "locationId", r.LocationID)
	}
}

func (s *SQLStore) writer() {
	defer s.wg.Done()
	for r := range s.queue {
		if err := s.insert(r); err != nil {
			metrics.PersistenceFailures.Inc()
			s.log.Warn("failed to persist reading", "sensorType", r.SensorType, "locationId", r.LocationID, "err", err)
		}
	}
}

func (s *SQLStore) insert(r sensor.Reading) error {
	compensated := 0
	if r.Metadata.Compensated {
		compensated = 1
	}
	// Timestamps are stored as unix nanoseconds so range scans order
	// correctly without string-format pitfalls.
	_, err := s.db.Exec(
		`INSERT INTO readings(location_id, sensor_type, value, unit, timestamp, firmware, calibrated_at, compensated) VALUES(?,?,?,?,?,?,?,?)`,
		r.LocationID, r.SensorType, r.Value, r.Unit,
		r.Timestamp.UTC().UnixNano(),
		r.Metadata.Firmware,
		r.Metadata.CalibrationDate.UTC().UnixNano(),
		compensated,
	)
	return err
}

// Query returns readings within the trailing window, newest first. Rows carry
// raw values only; status and score are views recomputed at read time.
func (s *SQLStore) Query(windowHours int) ([]sensor.Reading, error) {
	since := time.Now().UTC().Add(-time.Duration(windowHours) * time.Hour)
	rows, err := s.db.Query(
		`SELECT location_id, sensor_type, value, unit, timestamp, firmware, calibrated_at, compensated
         FROM readings WHERE timestamp >= ? ORDER BY timestamp DESC`,
		since.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	defer rows.Close()

	var out []sensor.Reading
	for rows.Next() {
		var r sensor.Reading
		var ts, calibrated int64
		var compensated int
		if err := rows.Scan(&r.LocationID, &r.SensorType, &r.Value, &r.Unit, &ts, &r.Metadata.Firmware, &calibrated, &compensated); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		r.Timestamp = time.Unix(0, ts).UTC()
		r.Metadata.CalibrationDate = time.Unix(0, calibrated).UTC()
		r.Metadata.Compensated = compensated == 1
		r.QualityScore, r.Status = sensor.Evaluate(r.SensorType, r.Value)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close drains the save queue and closes the database. Idempotent; Saves
// arriving afterwards are dropped.
func (s *SQLStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	s.wg.Wait()
	return s.db.Close()
}
