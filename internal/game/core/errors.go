package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidDimensions     = errors.New("invalid board dimensions")
	ErrInvalidPlayer         = errors.New("invalid player ID")
	ErrGameOver              = errors.New("game is over")
	ErrNotCapturable         = errors.New("tile cannot be captured by player")
	ErrTileContested         = errors.New("tile is already contested")
	ErrNoCaptureSlot         = errors.New("no free capture slot")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrNotContestedByPlayer  = errors.New("tile is not contested by player")
)

// WrapCaptureError adds the player and target tile to a capture error.
func WrapCaptureError(playerID, x, y int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("player %d: capture (%d,%d): %w", playerID, x, y, err)
}

// GameError is a structured error carrying turn and player context.
// PlayerID is NeutralID when the failure is not attributable to a player.
type GameError struct {
	Turn      int
	PlayerID  int
	Operation string
	Err       error
}

// NewGameError attributes err to a turn and, unless playerID is NeutralID,
// to a player.
func NewGameError(turn, playerID int, operation string, err error) *GameError {
	return &GameError{
		Turn:      turn,
		PlayerID:  playerID,
		Operation: operation,
		Err:       err,
	}
}

func (e *GameError) Error() string {
	if e.PlayerID == NeutralID {
		return fmt.Sprintf("turn %d: %s: %v", e.Turn, e.Operation, e.Err)
	}
	return fmt.Sprintf("turn %d: player %d %s: %v", e.Turn, e.PlayerID, e.Operation, e.Err)
}

func (e *GameError) Unwrap() error {
	return e.Err
}
