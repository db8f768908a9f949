package aquarium

import (
	"sync"

	"github.com/zeusync/fishtank/internal/core/events/bus"
)

// StatsSnapshot summarises the current session.
type StatsSnapshot struct {
	FoodEaten   int
	HitsTaken   int
	DamageTaken int
	Deaths      int
	Resets      int
	// SurvivedFor is the simulation time at the last death.
	SurvivedFor float64
}

// Stats counts gameplay events from the bus. Counters are per session and
// cleared on world reset, except Resets itself.
type Stats struct {
	mu   sync.RWMutex
	data StatsSnapshot
	sub  bus.Subscription
}

func NewStats(events bus.EventBus) (*Stats, error) {
	s := &Stats{}
	sub, err := events.SubscribeAll(s.handle)
	if err != nil {
		return nil, err
	}
	s.sub = sub
	return s, nil
}

func (s *Stats) handle(e bus.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch e.Type() {
	case EventFoodEaten:
		s.data.FoodEaten++
	case EventPlayerDamaged:
		s.data.HitsTaken++
		if d, ok := e.Data().(PlayerDamaged); ok {
			s.data.DamageTaken += d.Amount
		}
	case EventPlayerDied:
		s.data.Deaths++
		if d, ok := e.Data().(PlayerDied); ok {
			s.data.SurvivedFor = d.SurvivedFor
		}
	case EventWorldReset:
		s.data = StatsSnapshot{Resets: s.data.Resets + 1}
	}
	return nil
}

func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Close stops counting.
func (s *Stats) Close() error {
	return s.sub.Cancel()
}
