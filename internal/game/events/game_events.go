package events

import (
	"time"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted      = "game.started"
	TypeGameEnded        = "game.ended"
	TypeTurnStarted      = "turn.started"
	TypeTurnEnded        = "turn.ended"
	TypeIncomeApplied    = "income.applied"
	TypeCaptureStarted   = "capture.started"
	TypeCaptureRejected  = "capture.rejected"
	TypeCaptureAbandoned = "capture.abandoned"
	TypeCaptureProgress  = "capture.progressed"
	TypeTileCaptured     = "tile.captured"
	TypePlayerWon        = "player.won"
	TypeStateTransition  = "state.transition"
)

// GameStartedEvent is published when a new match begins
type GameStartedEvent struct {
	BaseEvent
	MapWidth  int
	MapHeight int
}

func NewGameStartedEvent(gameID string, width, height int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		MapWidth:  width,
		MapHeight: height,
	}
}

// GameEndedEvent is published once, when the objective falls
type GameEndedEvent struct {
	BaseEvent
	Winner    int
	Duration  time.Duration
	FinalTurn int
}

func NewGameEndedEvent(gameID string, winner int, duration time.Duration, finalTurn int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Winner:    winner,
		Duration:  duration,
		FinalTurn: finalTurn,
	}
}

// TurnStartedEvent is published after a player's turn has been set up
type TurnStartedEvent struct {
	BaseEvent
	TurnNumber int
	PlayerID   int
}

func NewTurnStartedEvent(gameID string, turn, playerID int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent:  newBase(TypeTurnStarted, gameID),
		TurnNumber: turn,
		PlayerID:   playerID,
	}
}

// TurnEndedEvent is published after captures for a turn have resolved
type TurnEndedEvent struct {
	BaseEvent
	TurnNumber    int
	PlayerID      int
	Captured      int
	ProcessedTime time.Duration
}

func NewTurnEndedEvent(gameID string, turn, playerID, captured int, processedTime time.Duration) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:     newBase(TypeTurnEnded, gameID),
		TurnNumber:    turn,
		PlayerID:      playerID,
		Captured:      captured,
		ProcessedTime: processedTime,
	}
}

// IncomeAppliedEvent reports the resources a player collected at turn start
type IncomeAppliedEvent struct {
	BaseEvent
	PlayerID   int
	Income     int
	Resources  int
	TurnNumber int
}

func NewIncomeAppliedEvent(gameID string, playerID, income, resources, turn int) *IncomeAppliedEvent {
	return &IncomeAppliedEvent{
		BaseEvent:  newBase(TypeIncomeApplied, gameID),
		PlayerID:   playerID,
		Income:     income,
		Resources:  resources,
		TurnNumber: turn,
	}
}

// CaptureStartedEvent is published when a player contests a tile
type CaptureStartedEvent struct {
	BaseEvent
	PlayerID int
	Tile     core.Coordinate
	Cost     int
}

func NewCaptureStartedEvent(gameID string, playerID int, tile core.Coordinate, cost int) *CaptureStartedEvent {
	return &CaptureStartedEvent{
		BaseEvent: newBase(TypeCaptureStarted, gameID),
		PlayerID:  playerID,
		Tile:      tile,
		Cost:      cost,
	}
}

// CaptureRejectedEvent is published when a capture attempt is refused
type CaptureRejectedEvent struct {
	BaseEvent
	PlayerID int
	Tile     core.Coordinate
	Reason   string
}

func NewCaptureRejectedEvent(gameID string, playerID int, tile core.Coordinate, reason error) *CaptureRejectedEvent {
	return &CaptureRejectedEvent{
		BaseEvent: newBase(TypeCaptureRejected, gameID),
		PlayerID:  playerID,
		Tile:      tile,
		Reason:    reason.Error(),
	}
}

// CaptureAbandonedEvent is published when a player withdraws a contest
type CaptureAbandonedEvent struct {
	BaseEvent
	PlayerID     int
	Tile         core.Coordinate
	LostProgress int
}

func NewCaptureAbandonedEvent(gameID string, playerID int, tile core.Coordinate, lostProgress int) *CaptureAbandonedEvent {
	return &CaptureAbandonedEvent{
		BaseEvent:    newBase(TypeCaptureAbandoned, gameID),
		PlayerID:     playerID,
		Tile:         tile,
		LostProgress: lostProgress,
	}
}

// CaptureProgressEvent is published for each resolution tick that did not
// complete a capture
type CaptureProgressEvent struct {
	BaseEvent
	PlayerID int
	Tile     core.Coordinate
	Progress int
	Target   int
}

func NewCaptureProgressEvent(gameID string, playerID int, tile core.Coordinate, progress, target int) *CaptureProgressEvent {
	return &CaptureProgressEvent{
		BaseEvent: newBase(TypeCaptureProgress, gameID),
		PlayerID:  playerID,
		Tile:      tile,
		Progress:  progress,
		Target:    target,
	}
}

// TileCapturedEvent is published when a tile changes hands
type TileCapturedEvent struct {
	BaseEvent
	PlayerID      int
	PreviousOwner int
	Tile          core.Coordinate
	Boost         core.BoostType
	TurnNumber    int
}

func NewTileCapturedEvent(gameID string, playerID, previousOwner int, tile core.Coordinate, boost core.BoostType, turn int) *TileCapturedEvent {
	return &TileCapturedEvent{
		BaseEvent:     newBase(TypeTileCaptured, gameID),
		PlayerID:      playerID,
		PreviousOwner: previousOwner,
		Tile:          tile,
		Boost:         boost,
		TurnNumber:    turn,
	}
}

// PlayerWonEvent is published when a player takes the objective
type PlayerWonEvent struct {
	BaseEvent
	PlayerID   int
	Objective  core.Coordinate
	TurnNumber int
}

func NewPlayerWonEvent(gameID string, playerID int, objective core.Coordinate, turn int) *PlayerWonEvent {
	return &PlayerWonEvent{
		BaseEvent:  newBase(TypePlayerWon, gameID),
		PlayerID:   playerID,
		Objective:  objective,
		TurnNumber: turn,
	}
}

// StateTransitionEvent is published when the active player changes
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
