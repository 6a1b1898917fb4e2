package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/events"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/mapgen"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/processor"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/rules"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/states"
)

// PlayerCount is fixed: player 0 attacks from the base, player 1 defends the objective.
const PlayerCount = 2

// GameConfig holds the settings for creating a new engine
type GameConfig struct {
	Width     int
	Height    int
	Logger    zerolog.Logger
	GameID    string // generated when empty
	Rules     *Rules // LoadRules() when nil
	LogEvents bool   // attach a logging subscriber to the event bus
}

// Engine runs one match. It is not safe for concurrent use.
type Engine struct {
	board   *core.Board
	players [PlayerCount]*core.Player
	layout  mapgen.Layout
	rules   Rules

	currentPlayer int
	turn          int
	gameOver      bool
	winner        int
	gameID        string
	startTime     time.Time
	turnStartTime time.Time

	logger           zerolog.Logger
	eventBus         *events.EventBus
	turnMachine      *states.TurnMachine
	captureProcessor *processor.CaptureProcessor
	incomeManager    *IncomeManager
	turnProcessor    *TurnProcessor
	winCondition     *rules.WinConditionChecker
	captureTargets   *rules.CaptureTargetCalculator
	boostEffects     map[core.BoostType]BoostEffect
}

// NewEngine creates a new game engine and starts player 0's first turn
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// New creates a width x height match with the configured rules and no logging
func New(width, height int) (*Engine, error) {
	return NewEngine(context.Background(), GameConfig{
		Width:  width,
		Height: height,
		Logger: zerolog.Nop(),
	})
}

// StartTurn prepares the current player for their turn: temporary action
// points are reset, income is paid, capacity is recomputed and ongoing
// boost effects are applied.
func (e *Engine) StartTurn() {
	p := e.players[e.currentPlayer]
	e.turnStartTime = time.Now()

	p.ResetTempForNewTurn()
	e.incomeManager.ApplyIncome(e.board, p, e.turn)
	p.SetCapacity(e.rules.BaseCapacity, e.board.CountOwnedBoost(p.ID, core.BoostExtraCapacity))

	for tile := range e.board.OwnedTiles(p.ID) {
		e.boostEffect(tile.Boost).ApplyOngoing(e, p, tile)
	}

	if e.board.CountOwnedBoost(p.ID, core.BoostExtraAP) > 0 {
		p.AddTempActionPoints(e.rules.ExtraAPBonus)
	}

	e.logger.Debug().
		Int("turn", e.turn).
		Int("player_id", p.ID).
		Int("resources", p.Resources).
		Int("capacity_max", p.CapacityMax).
		Int("action_points", p.TotalActionPoints()).
		Msg("Turn started")
	e.eventBus.Publish(events.NewTurnStartedEvent(e.gameID, e.turn, p.ID))
}

// TryStartCapture starts a capture of (x, y) by the current player at the configured cost
func (e *Engine) TryStartCapture(x, y int) bool {
	return e.TryStartCaptureWithCost(x, y, e.rules.CaptureCost)
}

// TryStartCaptureWithCost starts a capture of (x, y) by the current player.
// It returns false, leaving all state untouched, when the capture is not allowed.
func (e *Engine) TryStartCaptureWithCost(x, y, cost int) bool {
	return e.StartCapture(x, y, cost) == nil
}

// StartCapture is TryStartCaptureWithCost with the rejection reason
func (e *Engine) StartCapture(x, y, cost int) error {
	if e.gameOver {
		return core.NewGameError(e.turn, e.currentPlayer, "start capture", core.ErrGameOver)
	}
	return e.captureProcessor.StartCapture(e.board, e.players[e.currentPlayer], x, y, cost)
}

// AbandonCapture withdraws the current player's capture of (x, y). The slot
// is released; progress and the spent cost are lost.
func (e *Engine) AbandonCapture(x, y int) bool {
	if e.gameOver {
		return false
	}
	err := e.captureProcessor.AbandonCapture(e.board, e.players[e.currentPlayer], x, y)
	if err != nil {
		e.logger.Debug().Err(err).Msg("Abandon rejected")
		return false
	}
	return true
}

// ResolveCaptures advances every contested tile once and fires the
// on-capture effect of each tile that changed hands.
func (e *Engine) ResolveCaptures() []processor.CaptureResult {
	results := e.captureProcessor.ResolveCaptures(e.board, e.players[:], e.turn)
	for _, r := range results {
		tile := e.board.TileAt(r.Tile)
		e.boostEffect(tile.Boost).OnCaptured(e, e.players[r.PlayerID], tile)
	}
	return results
}

// EndTurn resolves captures and either ends the match or hands the turn to
// the other player. It returns an error wrapping core.ErrGameOver once the
// match is over.
func (e *Engine) EndTurn() error {
	return e.turnProcessor.EndTurn()
}

// CheckWin reports the player holding a captured objective, if any. An
// objective still owned by its own defender (Tile.DefenderID) does not count,
// so player 1 does not win on its starting objective.
func (e *Engine) CheckWin() (int, bool) {
	return e.winCondition.CheckObjective(e.board)
}

// CaptureTargets lists the tiles the current player may start capturing
func (e *Engine) CaptureTargets() []*core.Tile {
	return e.captureTargets.Targets(e.board, e.players[e.currentPlayer])
}

// CaptureTargetMask is CaptureTargets as a flattened y*W+x mask
func (e *Engine) CaptureTargetMask() []bool {
	return e.captureTargets.Mask(e.board, e.players[e.currentPlayer])
}

// Public accessors
func (e *Engine) CurrentPlayerID() int         { return e.currentPlayer }
func (e *Engine) TurnNumber() int              { return e.turn }
func (e *Engine) IsGameOver() bool             { return e.gameOver }
func (e *Engine) GameID() string               { return e.gameID }
func (e *Engine) EventBus() *events.EventBus   { return e.eventBus }
func (e *Engine) Phase() states.TurnPhase      { return e.turnMachine.CurrentPhase() }
func (e *Engine) Width() int                   { return e.board.W }
func (e *Engine) Height() int                  { return e.board.H }
func (e *Engine) Layout() mapgen.Layout        { return e.layout }
func (e *Engine) Rules() Rules                 { return e.rules }
func (e *Engine) History() []states.Transition { return e.turnMachine.GetHistory() }

// Winner returns the winning player ID, or core.NeutralID if the game isn't over
func (e *Engine) Winner() int {
	if !e.gameOver {
		return core.NeutralID
	}
	return e.winner
}

// Tile returns the tile at (x, y). It panics when (x, y) is off the board.
func (e *Engine) Tile(x, y int) *core.Tile {
	return e.board.GetTile(x, y)
}

// Player returns the player with the given ID
func (e *Engine) Player(id int) (*core.Player, error) {
	if id < 0 || id >= PlayerCount {
		return nil, core.NewGameError(e.turn, id, "lookup", core.ErrInvalidPlayer)
	}
	return e.players[id], nil
}
