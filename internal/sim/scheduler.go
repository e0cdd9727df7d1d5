// internal/sim/scheduler.go
package sim

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/metrics"
	"github.com/GRAVExDIGGER/industrial-environmental-monitoring/internal/sensor"
)

// State of the scheduler lifecycle. Stopped is terminal.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateStopped State = "stopped"
)

// Broadcaster is the hub surface the scheduler drives.
type Broadcaster interface {
	Broadcast(batch []sensor.Reading, alerts []sensor.Alert)
	Count() int
}

// Saver is the history store surface the scheduler writes through.
type Saver interface {
	Save(r sensor.Reading)
}

// Scheduler drives periodic generation across the full sensor×location
// matrix and triggers persistence, alerting and broadcast. Ticks are skipped
// entirely while no observer is registered.
type Scheduler struct {
	log      *slog.Logger
	gen      *sensor.Generator
	store    Saver
	hub      Broadcaster
	interval time.Duration

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(gen *sensor.Generator, store Saver, hub Broadcaster, interval time.Duration, log *slog.Logger) *Scheduler {
	return &Scheduler{
		log:      log,
		gen:      gen,
		store:    store,
		hub:      hub,
		interval: interval,
		state:    StateIdle,
	}
}

// State reports the current lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start moves Idle to Running and begins ticking. Calling Start on a Running
// or Stopped scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.state = StateRunning
	s.mu.Unlock()

	s.log.Info("scheduler started", "interval", s.interval.String())
	s.wg.Add(1)
	go s.loop(ctx)
}

// Stop halts future ticks and waits for any in-flight tick to finish, so no
// generation or save is still running once Stop returns. Stop is terminal
// and idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	already := s.state == StateStopped
	s.state = StateStopped
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
	if cancel != nil && !already {
		s.log.Info("scheduler stopped")
	}
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case now := <-t.C:
			batch, alerts := s.runTick(now)
			if batch != nil {
				s.hub.Broadcast(batch, alerts)
			}
		case <-ctx.Done():
			s.markStopped()
			return
		}
	}
}

// markStopped records the terminal state without joining the loop; the loop
// itself calls it on context cancellation.
func (s *Scheduler) markStopped() {
	s.mu.Lock()
	s.state = StateStopped
	s.mu.Unlock()
}

// runTick builds one complete generation cycle: the full matrix batch plus
// its alerts. Partial batches are never returned. A nil batch means the tick
// was skipped because no observer is connected.
func (s *Scheduler) runTick(now time.Time) ([]sensor.Reading, []sensor.Alert) {
	if s.hub.Count() == 0 {
		return nil, nil
	}

	batch := s.gen.Snapshot(now)
	for _, r := range batch {
		s.store.Save(r)
	}
	alerts := sensor.DetectAlerts(batch)

	metrics.ReadingsGenerated.Add(float64(len(batch)))
	metrics.AlertsEmitted.Add(float64(len(alerts)))
	return batch, alerts
}
