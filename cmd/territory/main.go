package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/config"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay (loads config.<env>.yaml)")
	width := flag.Int("width", -1, "Board width (-1 to use config default)")
	height := flag.Int("height", -1, "Board height (-1 to use config default)")
	maxTurns := flag.Int("turns", -1, "Maximum turns to play (-1 to use config default)")
	seed := flag.Int64("seed", 0, "RNG seed for the scripted players (0 for time based)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	color := flag.Bool("color", false, "Render the board with ANSI colors")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Use config defaults if not overridden by flags
	if *width == -1 {
		*width = cfg.Demo.BoardWidth
	}
	if *height == -1 {
		*height = cfg.Demo.BoardHeight
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	if !*color {
		*color = cfg.Demo.Color
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	if *watch {
		err := config.WatchConfig(func(err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring invalid config change")
				return
			}
			log.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded; demo limits apply from the next turn")
		})
		if err != nil {
			log.Warn().Err(err).Msg("Config watching disabled")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *width, *height, *seed, *color, cfg.Logging.LogEvents, configLimits(*maxTurns)); err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
}

// demoLimits bound the scripted match. They are read again before every turn.
type demoLimits struct {
	MaxTurns        int
	CapturesPerTurn int
}

type limitsFunc func() (demoLimits, error)

// configLimits reads the limits from the live config. A positive turns
// value pins MaxTurns.
func configLimits(turns int) limitsFunc {
	return func() (demoLimits, error) {
		c, err := config.Load()
		if err != nil {
			return demoLimits{}, err
		}
		lim := demoLimits{MaxTurns: c.Demo.MaxTurns, CapturesPerTurn: c.Demo.CapturesPerTurn}
		if turns > 0 {
			lim.MaxTurns = turns
		}
		return lim, nil
	}
}

func run(ctx context.Context, width, height int, seed int64, color, logEvents bool, limits limitsFunc) error {
	lim, err := limits()
	if err != nil {
		return fmt.Errorf("read demo limits: %w", err)
	}

	log.Info().
		Int("width", width).
		Int("height", height).
		Int("max_turns", lim.MaxTurns).
		Int64("seed", seed).
		Msg("Starting territory capture demo")

	g, err := game.NewEngine(ctx, game.GameConfig{
		Width:     width,
		Height:    height,
		Logger:    log.Logger,
		LogEvents: logEvents,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	render := g.RenderASCII
	if color {
		render = g.RenderColored
	}

	fmt.Printf("Game %s\nInitial board:\n%s\n\n", g.GameID(), render())

	for !g.IsGameOver() && g.TurnNumber() <= lim.MaxTurns {
		select {
		case <-ctx.Done():
			log.Warn().Int("turn", g.TurnNumber()).Msg("Demo interrupted")
			return nil
		default:
		}

		turn, playerID := g.TurnNumber(), g.CurrentPlayerID()
		started := 0
		for _, c := range game.GenerateRandomCaptures(g, rng, lim.CapturesPerTurn) {
			if g.TryStartCapture(c.X, c.Y) {
				started++
			}
		}

		if err := g.EndTurn(); err != nil {
			return fmt.Errorf("end turn %d: %w", turn, err)
		}

		fmt.Printf("Turn %d (player %d, %d new captures):\n%s\n", turn, playerID, started, render())
		for _, s := range g.Stats() {
			fmt.Printf("  Player %d: %d tiles, %d resources, %d/%d slots\n",
				s.PlayerID, s.OwnedTiles, s.Resources, s.CapacityUsed, s.CapacityMax)
		}
		fmt.Println()

		if lim, err = limits(); err != nil {
			return fmt.Errorf("read demo limits: %w", err)
		}
	}

	if g.IsGameOver() {
		fmt.Printf("Game Over! Player %d wins on turn %d.\n", g.Winner(), g.TurnNumber())
	} else {
		fmt.Printf("Game reached maximum turns (%d)\n", lim.MaxTurns)
	}
	return nil
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
