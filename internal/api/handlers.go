package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	gwebsocket "github.com/gorilla/websocket" // Alias to avoid name conflict

	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/sensor"
	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/storage"
	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/websocket"
)

var upgrader = gwebsocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type APIHandler struct {
	log     *slog.Logger
	gen     *sensor.Generator
	store   storage.HistoryStore
	hub     *websocket.Hub
	started time.Time
}

func NewAPIHandler(gen *sensor.Generator, store storage.HistoryStore, hub *websocket.Hub, log *slog.Logger) *APIHandler {
	return &APIHandler{
		log:     log,
		gen:     gen,
		store:   store,
		hub:     hub,
		started: time.Now().UTC(),
	}
}

// HandleStatus reports the live state of the service.
func (h *APIHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"observers":     h.hub.Count(),
		"uptimeSeconds": int(time.Since(h.started).Seconds()),
		"now":           time.Now().UTC(),
	})
}

// HandleCatalog serves the static sensor and location profiles.
func (h *APIHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"sensors":   sensor.SensorCatalog(),
		"locations": sensor.LocationCatalog(),
	})
}

// HandleLatest generates a one-shot snapshot of the full matrix on demand,
// outside the tick cycle. Nothing is persisted or broadcast.
func (h *APIHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.gen.Snapshot(time.Now()))
}

// HandleHistory serves the trailing-window query. A missing or non-positive
// hours parameter falls back to 24.
func (h *APIHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	hours := 24
	if raw := r.URL.Query().Get("hours"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			hours = n
		}
	}

	readings, err := h.store.Query(hours)
	if err != nil {
		h.log.Warn("history query failed", "hours", hours, "err", err)
		readings = []sensor.Reading{}
	}
	if readings == nil {
		readings = []sensor.Reading{}
	}
	h.writeJSON(w, http.StatusOK, readings)
}

// HandleHealth is a plain liveness probe.
func (h *APIHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// HandleWebSocket upgrades the connection and registers the observer with
// the hub. The hub sends the initial historical snapshot on registration.
func (h *APIHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	client := websocket.NewClient(h.hub, conn, h.log)

	// The write pump must be draining before registration: the registration
	// snapshot goes through the client's send buffer.
	go client.WritePump()
	go client.ReadPump()
	h.hub.Register(client)

	h.log.Info("websocket connection established", "remote", conn.RemoteAddr().String(), "id", client.ID())
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("response encode failed", "err", err)
	}
}
