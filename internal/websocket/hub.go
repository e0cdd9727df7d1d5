// internal/websocket/hub.go
package websocket

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/metrics"
	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/sensor"
)

// Event names delivered to observers.
const (
	EventSensorData     = "sensor-data"
	EventAlerts         = "alerts"
	EventHistoricalData = "historical-data"
)

// ErrDeliveryFailed reports a per-observer send failure. Deliveries are
// isolated: one failing observer never aborts a broadcast to the rest.
var ErrDeliveryFailed = errors.New("observer delivery failed")

// Observer is one connected client: an opaque identity plus a send
// capability. Send must not block the caller.
type Observer interface {
	ID() string
	Send(event string, payload any) error
}

// HistorySource is the slice of the history store the hub needs.
type HistorySource interface {
	Query(windowHours int) ([]sensor.Reading, error)
}

// Hub tracks the active observer set, delivers live broadcasts and serves
// historical snapshots. The set is the single shared mutable resource;
// broadcasts iterate a snapshot of it so removal mid-broadcast is a no-op
// for in-flight deliveries.
type Hub struct {
	log           *slog.Logger
	history       HistorySource
	defaultWindow int

	mu        sync.RWMutex
	observers map[Observer]bool
}

func NewHub(history HistorySource, defaultWindowHours int, log *slog.Logger) *Hub {
	return &Hub{
		log:           log,
		history:       history,
		defaultWindow: defaultWindowHours,
		observers:     make(map[Observer]bool),
	}
}

// Register adds the observer to the active set and immediately sends it an
// initial historical snapshot, without waiting for the next tick.
func (h *Hub) Register(o Observer) {
	h.mu.Lock()
	h.observers[o] = true
	count := len(h.observers)
	h.mu.Unlock()

	metrics.ConnectedObservers.Set(float64(count))
	h.log.Info("observer registered", "id", o.ID(), "observers", count)

	h.HandleHistoricalRequest(o, h.defaultWindow)
}

// Unregister removes the observer. Removing an absent observer is a no-op.
func (h *Hub) Unregister(o Observer) {
	h.mu.Lock()
	if _, ok := h.observers[o]; ok {
		delete(h.observers, o)
		h.log.Info("observer unregistered", "id", o.ID(), "observers", len(h.observers))
	}
	count := len(h.observers)
	h.mu.Unlock()

	metrics.ConnectedObservers.Set(float64(count))
}

// Count returns the number of registered observers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.observers)
}

// Broadcast delivers a completed generation batch to every registered
// observer, plus the alert set when non-empty. Per-observer delivery errors
// are logged and skipped.
func (h *Hub) Broadcast(batch []sensor.Reading, alerts []sensor.Alert) {
	for _, o := range h.snapshot() {
		if err := o.Send(EventSensorData, batch); err != nil {
			h.log.Warn("broadcast delivery failed", "id", o.ID(), "err", err)
			continue
		}
		if len(alerts) > 0 {
			if err := o.Send(EventAlerts, alerts); err != nil {
				h.log.Warn("alert delivery failed", "id", o.ID(), "err", err)
			}
		}
	}
	metrics.Broadcasts.Inc()
}

// HandleHistoricalRequest fetches the trailing window and answers only the
// requesting observer. Non-positive hours fall back to the default window.
// Query failures degrade to an empty result.
func (h *Hub) HandleHistoricalRequest(o Observer, hours int) {
	if hours <= 0 {
		hours = h.defaultWindow
	}
	readings, err := h.history.Query(hours)
	if err != nil {
		h.log.Warn("historical query failed", "hours", hours, "err", err)
		readings = []sensor.Reading{}
	}
	if err := o.Send(EventHistoricalData, readings); err != nil {
		h.log.Warn("historical delivery failed", "id", o.ID(), "err", err)
	}
}

func (h *Hub) snapshot() []Observer {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Observer, 0, len(h.observers))
	for o := range h.observers {
		out = append(out, o)
	}
	return out
}
