package system

import (
	"github.com/milk9111/billboard/ecs"
	"github.com/rs/zerolog"
)

// EventLogSystem drains the world queue at the end of the frame. Listeners
// registered with OnEvent see every event before it is logged.
type EventLogSystem struct {
	log       zerolog.Logger
	listeners []func(ecs.Event)
}

func NewEventLogSystem(log zerolog.Logger) *EventLogSystem {
	return &EventLogSystem{log: log.With().Str("system", "events").Logger()}
}

func (s *EventLogSystem) OnEvent(fn func(ecs.Event)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		for _, fn := range s.listeners {
			fn(evt)
		}

		entry := s.log.Debug().Uint64("tick", w.Tick()).Str("event", evt.Type)
		switch d := evt.Data.(type) {
		case DirectionChanged:
			entry = entry.Str("entity", d.Name).Stringer("from", d.From).Stringer("to", d.To)
		case StateChanged:
			entry = entry.Str("entity", d.Name).Stringer("from", d.From).Stringer("to", d.To)
		case string:
			entry = entry.Str("detail", d)
		}
		entry.Send()
	}
}
