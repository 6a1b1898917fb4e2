package game

import (
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

// GenerateRandomCaptures picks up to limit random capture targets for the
// current player, bounded by free slots and affordable cost. It is a
// helper for demos, testing, or simple baseline opponents.
func GenerateRandomCaptures(e *Engine, rng *rand.Rand, limit int) []core.Coordinate {
	if e.IsGameOver() {
		return nil
	}
	p := e.players[e.currentPlayer]

	budget := limit
	budget = min(budget, p.CapacityMax-p.CapacityUsed)
	if cost := e.rules.CaptureCost; cost > 0 {
		budget = min(budget, p.Resources/cost)
	}
	if budget <= 0 {
		return nil
	}

	targets := e.CaptureTargets()
	rng.Shuffle(len(targets), func(i, j int) {
		targets[i], targets[j] = targets[j], targets[i]
	})

	var chosen []core.Coordinate
	for _, t := range targets[:min(budget, len(targets))] {
		chosen = append(chosen, t.Pos())
		log.Debug().
			Int("player_id", p.ID).
			Int("x", t.X()).
			Int("y", t.Y()).
			Msg("Generated random capture")
	}
	return chosen
}
