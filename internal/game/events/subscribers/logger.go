package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool, len(eventTypes))
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("map_width", e.MapWidth).
			Int("map_height", e.MapHeight)

	case *events.GameEndedEvent:
		logEvent.
			Int("winner", e.Winner).
			Dur("duration", e.Duration).
			Int("final_turn", e.FinalTurn)

	case *events.TurnStartedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("player_id", e.PlayerID)

	case *events.TurnEndedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("player_id", e.PlayerID).
			Int("captured", e.Captured).
			Dur("process_time", e.ProcessedTime)

	case *events.IncomeAppliedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("income", e.Income).
			Int("resources", e.Resources)

	case *events.CaptureStartedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("x", e.Tile.X).
			Int("y", e.Tile.Y).
			Int("cost", e.Cost)

	case *events.CaptureRejectedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("x", e.Tile.X).
			Int("y", e.Tile.Y).
			Str("reason", e.Reason)

	case *events.CaptureAbandonedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("x", e.Tile.X).
			Int("y", e.Tile.Y).
			Int("lost_progress", e.LostProgress)

	case *events.CaptureProgressEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("x", e.Tile.X).
			Int("y", e.Tile.Y).
			Int("progress", e.Progress).
			Int("target", e.Target)

	case *events.TileCapturedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("previous_owner", e.PreviousOwner).
			Int("x", e.Tile.X).
			Int("y", e.Tile.Y).
			Str("boost", e.Boost.String())

	case *events.PlayerWonEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("turn", e.TurnNumber)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from", e.FromPhase).
			Str("to", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
