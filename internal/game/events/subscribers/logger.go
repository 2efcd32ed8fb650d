// Package subscribers holds reusable event-bus subscribers.
package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/gridward/gridward/internal/game/events"
)

// LoggerSubscriber logs every event it sees to structured logs. An
// optional filter restricts it to specific event types.
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	level           zerolog.Level
	eventTypeFilter map[string]bool // nil means log everything
}

// NewLoggerSubscriber creates a new logger subscriber.
func NewLoggerSubscriber(id string, logger zerolog.Logger, level zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:     id,
		logger: logger.With().Str("subscriber", "event_logger").Logger(),
		level:  level,
	}
}

// ID returns the subscriber's unique identifier.
func (ls *LoggerSubscriber) ID() string { return ls.id }

// SetEventFilter sets which event types to log (empty means log all).
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}
	ls.eventTypeFilter = make(map[string]bool, len(eventTypes))
	for _, t := range eventTypes {
		ls.eventTypeFilter[t] = true
	}
}

// InterestedIn returns true if the subscriber wants this event type.
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent logs the event with type-specific fields.
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	log := ls.logger.WithLevel(ls.level).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID())

	switch e := event.(type) {
	case *events.PlayerMovedEvent:
		log = log.Str("from", e.From.String()).Str("to", e.To.String())
	case *events.TowerPlacedEvent:
		log = log.Str("at", e.At.String()).Str("facing", e.Facing.String()).Int("remaining", e.Remaining)
	case *events.EnemyMovedEvent:
		log = log.Str("from", e.From.String()).Str("to", e.To.String())
	case *events.EnemySpawnedEvent:
		log = log.Str("at", e.At.String()).Int("turn", e.Turn)
	case *events.EnemyDamagedEvent:
		log = log.Str("at", e.At.String()).Int("remaining_hp", e.RemainingHP)
	case *events.EnemyKilledEvent:
		log = log.Str("at", e.At.String())
	case *events.TowerFiredEvent:
		log = log.Str("from", e.From.String()).Str("facing", e.Facing.String()).Bool("hit", e.Hit)
	case *events.TurnEndedEvent:
		log = log.Int("turn", e.TurnNumber).Int("enemies_alive", e.EnemiesAlive)
	case *events.StateTransitionEvent:
		log = log.Str("from_phase", e.FromPhase).Str("to_phase", e.ToPhase).Str("reason", e.Reason)
	case *events.GameLostEvent:
		log = log.Str("reason", e.Reason).Str("at", e.At.String()).Int("final_turn", e.FinalTurn)
	case *events.GameWonEvent:
		log = log.Int("final_turn", e.FinalTurn)
	}

	log.Msg("game event")
}
