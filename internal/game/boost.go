package game

import (
	"github.com/mitchelldurbincs/TerritoryCapture/internal/game/core"
)

// BoostEffect is the behaviour attached to a boost tag. ApplyOngoing runs
// at the start of the owner's turn for each owned tile carrying the boost;
// OnCaptured runs once when the tile changes hands.
type BoostEffect struct {
	ApplyOngoing func(e *Engine, owner *core.Player, tile *core.Tile)
	OnCaptured   func(e *Engine, capturer *core.Player, tile *core.Tile)
}

func noopBoostHook(*Engine, *core.Player, *core.Tile) {}

var noopBoostEffect = BoostEffect{
	ApplyOngoing: noopBoostHook,
	OnCaptured:   noopBoostHook,
}

// DefaultBoostEffects returns the effect table. FasterCapture and
// AreaJammer act through the capture rate and ExtraAP is granted in
// StartTurn, so only ExtraCapacity has an entry.
func DefaultBoostEffects() map[core.BoostType]BoostEffect {
	return map[core.BoostType]BoostEffect{
		core.BoostExtraCapacity: {
			ApplyOngoing: applyExtraCapacity,
			OnCaptured:   noopBoostHook,
		},
	}
}

func applyExtraCapacity(e *Engine, owner *core.Player, _ *core.Tile) {
	owner.SetCapacity(e.rules.BaseCapacity, e.board.CountOwnedBoost(owner.ID, core.BoostExtraCapacity))
}

// boostEffect looks up the effect for a tag; unmapped tags and nil hooks are no-ops
func (e *Engine) boostEffect(boost core.BoostType) BoostEffect {
	effect, ok := e.boostEffects[boost]
	if !ok {
		return noopBoostEffect
	}
	if effect.ApplyOngoing == nil {
		effect.ApplyOngoing = noopBoostHook
	}
	if effect.OnCaptured == nil {
		effect.OnCaptured = noopBoostHook
	}
	return effect
}

// RegisterBoostEffect installs or replaces the effect for a boost tag
func (e *Engine) RegisterBoostEffect(boost core.BoostType, effect BoostEffect) {
	e.boostEffects[boost] = effect
}
