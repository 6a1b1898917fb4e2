package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/events"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/mapgen"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/processor"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/rules"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/states"
)

// EngineInitializer handles the initialization of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize creates a new engine with the starting layout and begins player 0's turn
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled or timed out during initial phase")
		return nil, ctx.Err()
	default:
	}

	if err := ei.validate(); err != nil {
		return nil, err
	}

	if err := ei.setupDefaults(); err != nil {
		return nil, err
	}

	board, layout := ei.generateMap()

	engine := ei.createEngine(board, layout)

	ei.initializePlayers(engine)

	ei.setupEventHandling(engine)

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		ei.config.Width,
		ei.config.Height,
	))

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Int("width", ei.config.Width).
		Int("height", ei.config.Height).
		Int("boosts", len(layout.Boosts)).
		Msg("Engine created successfully")

	engine.StartTurn()

	return engine, nil
}

// validate rejects boards where the base and objective cannot both fit
func (ei *EngineInitializer) validate() error {
	if ei.config.Width < 2 || ei.config.Height < 1 {
		ei.logger.Error().
			Int("width", ei.config.Width).
			Int("height", ei.config.Height).
			Msg("Invalid board dimensions")
		return fmt.Errorf("board %dx%d: %w", ei.config.Width, ei.config.Height, core.ErrInvalidDimensions)
	}
	return nil
}

// setupDefaults sets up default values for missing configuration
func (ei *EngineInitializer) setupDefaults() error {
	if ei.config.GameID == "" {
		ei.config.GameID = uuid.New().String()
	}

	if ei.config.Rules == nil {
		ei.logger.Debug().Msg("No rules provided, using configured defaults")
		r, err := LoadRules()
		if err != nil {
			ei.logger.Error().Err(err).Msg("Failed to load rules")
			return err
		}
		ei.config.Rules = &r
	}
	return nil
}

// generateMap builds the fixed starting layout
func (ei *EngineInitializer) generateMap() (*core.Board, mapgen.Layout) {
	mapCfg := mapgen.DefaultMapConfig(ei.config.Width, ei.config.Height)
	mapCfg.TileYield = ei.config.Rules.TileYield
	mapCfg.CaptureTarget = ei.config.Rules.CaptureTarget
	mapCfg.ObjectiveDefense = ei.config.Rules.ObjectiveDefense
	return mapgen.NewGenerator(mapCfg).GenerateMap()
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(board *core.Board, layout mapgen.Layout) *Engine {
	gameID := ei.config.GameID
	eventBus := events.NewEventBus(ei.logger)
	now := time.Now()

	engine := &Engine{
		board:            board,
		layout:           layout,
		rules:            *ei.config.Rules,
		currentPlayer:    0,
		turn:             1,
		winner:           core.NeutralID,
		gameID:           gameID,
		startTime:        now,
		turnStartTime:    now,
		logger:           ei.logger.With().Str("game_id", gameID).Logger(),
		eventBus:         eventBus,
		turnMachine:      states.NewTurnMachine(gameID, eventBus, ei.logger),
		captureProcessor: processor.NewCaptureProcessor(gameID, eventBus, ei.logger),
		incomeManager:    NewIncomeManager(eventBus, gameID, ei.logger),
		winCondition:     rules.NewWinConditionChecker(ei.logger),
		captureTargets:   rules.NewCaptureTargetCalculator(),
		boostEffects:     DefaultBoostEffects(),
	}

	engine.turnProcessor = NewTurnProcessor(engine)

	return engine
}

// initializePlayers creates both players from the rules
func (ei *EngineInitializer) initializePlayers(engine *Engine) {
	stats := engine.rules.playerStats()
	for id := range engine.players {
		engine.players[id] = core.NewPlayer(id, stats)
	}
}

// setupEventHandling attaches the event logger when requested
func (ei *EngineInitializer) setupEventHandling(engine *Engine) {
	if !ei.config.LogEvents {
		return
	}
	logSub := subscribers.NewLoggerSubscriber("event-logger", ei.logger, zerolog.DebugLevel)
	engine.eventBus.Subscribe(logSub)
	ei.logger.Debug().Msg("Event logging enabled")
}
