package game

// PlayerStats is a snapshot of one player's position in the match
type PlayerStats struct {
	PlayerID       int
	OwnedTiles     int
	Income         int
	ActiveCaptures int
	Resources      int
	CapacityUsed   int
	CapacityMax    int
	ActionPoints   int
}

// Stats returns a snapshot for each player, ordered by player ID
func (e *Engine) Stats() []PlayerStats {
	stats := make([]PlayerStats, 0, PlayerCount)
	for _, p := range e.players {
		owned := 0
		for range e.board.OwnedTiles(p.ID) {
			owned++
		}
		stats = append(stats, PlayerStats{
			PlayerID:       p.ID,
			OwnedTiles:     owned,
			Income:         e.incomeManager.Income(e.board, p.ID),
			ActiveCaptures: e.board.ContestedBy(p.ID),
			Resources:      p.Resources,
			CapacityUsed:   p.CapacityUsed,
			CapacityMax:    p.CapacityMax,
			ActionPoints:   p.TotalActionPoints(),
		})
	}

	e.logger.Debug().Int("turn", e.turn).Msg("Player stats computed")
	return stats
}
