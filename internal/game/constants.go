package game

import (
	"fmt"

	"github.com/mitchelldurbincs/TerritoryCapture/internal/config"
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

// Rules is the full set of numbers a match is played with
type Rules struct {
	CaptureCost                int
	BaseCapacity               int
	CaptureRate                int
	AdjacencyBonusPerNeighbour int
	BaseActionPoints           int
	ExtraAPBonus               int
	StartingResources          int
	TileYield                  int
	CaptureTarget              int
	ObjectiveDefense           int
}

// RulesFromConfig copies the rule and board-layout sections of c
func RulesFromConfig(c *config.Config) Rules {
	r, b := c.Game.Rules, c.Game.Board
	return Rules{
		CaptureCost:                r.CaptureCost,
		BaseCapacity:               r.BaseCapacity,
		CaptureRate:                r.CaptureRate,
		AdjacencyBonusPerNeighbour: r.AdjacencyBonusPerNeighbour,
		BaseActionPoints:           r.BaseActionPoints,
		ExtraAPBonus:               r.ExtraAPBonus,
		StartingResources:          r.StartingResources,
		TileYield:                  b.TileYield,
		CaptureTarget:              b.CaptureTarget,
		ObjectiveDefense:           b.ObjectiveDefense,
	}
}

// LoadRules reads the rules from the loaded configuration
func LoadRules() (Rules, error) {
	c, err := config.Load()
	if err != nil {
		return Rules{}, fmt.Errorf("load rules: %w", err)
	}
	return RulesFromConfig(c), nil
}

func (r Rules) playerStats() core.PlayerStats {
	return core.PlayerStats{
		StartingResources:          r.StartingResources,
		BaseActionPoints:           r.BaseActionPoints,
		CaptureRate:                r.CaptureRate,
		BaseCapacity:               r.BaseCapacity,
		AdjacencyBonusPerNeighbour: r.AdjacencyBonusPerNeighbour,
	}
}
