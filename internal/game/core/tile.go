package core

import "fmt"

const (
	NeutralID = -1

	DefaultCaptureTarget = 100

	FasterCaptureBonus = 10
	AreaJammerPenalty  = 10
	DefenseRateDivisor = 5
)

// BoostType is a static per-tile modifier tag.
type BoostType int

const (
	BoostNone BoostType = iota
	BoostExtraCapacity
	BoostExtraIncome
	BoostFasterCapture
	BoostExtraAP
	BoostShieldUp
	BoostAreaJammer
)

func (b BoostType) String() string {
	switch b {
	case BoostNone:
		return "None"
	case BoostExtraCapacity:
		return "ExtraCapacity"
	case BoostExtraIncome:
		return "ExtraIncome"
	case BoostFasterCapture:
		return "FasterCapture"
	case BoostExtraAP:
		return "ExtraAP"
	case BoostShieldUp:
		return "ShieldUp"
	case BoostAreaJammer:
		return "AreaJammer"
	default:
		return fmt.Sprintf("Unknown(%d)", int(b))
	}
}

// Tile represents a single cell on the map.
// Owner: -1 means neutral; 0 and 1 are player IDs.
// CapturingPlayerID is -1 unless a capture is in progress; at most one
// player contests a tile at a time.
type Tile struct {
	pos Coordinate

	Owner       int
	IsBase      bool
	IsObjective bool
	DefenderID  int // player defending an objective tile, NeutralID otherwise

	ResourceYield int
	Boost         BoostType
	DefenseLevel  int

	CaptureTarget     int
	CaptureProgress   int
	CapturingPlayerID int
}

func newTile(x, y int) Tile {
	return Tile{
		pos:               Coordinate{X: x, Y: y},
		Owner:             NeutralID,
		DefenderID:        NeutralID,
		CaptureTarget:     DefaultCaptureTarget,
		CapturingPlayerID: NeutralID,
	}
}

func (t *Tile) Pos() Coordinate { return t.pos }
func (t *Tile) X() int          { return t.pos.X }
func (t *Tile) Y() int          { return t.pos.Y }

func (t *Tile) IsNeutral() bool   { return t.Owner == NeutralID }
func (t *Tile) IsContested() bool { return t.CapturingPlayerID != NeutralID }

// CanBeCapturedBy reports whether p may start a capture on this tile.
// Bases that have been claimed by anyone are permanent, including for
// their own owner. Attacks must border territory p already owns.
func (t *Tile) CanBeCapturedBy(p *Player, b *Board) bool {
	if t.Owner == p.ID {
		return false
	}
	if t.IsBase && t.Owner != NeutralID {
		return false
	}
	return t.ownedNeighbourCount(p.ID, b) > 0
}

// CaptureRate returns the progress p makes on this tile per resolution.
// The result is never below 1.
func (t *Tile) CaptureRate(p *Player, b *Board) int {
	owned := 0
	faster := false
	jammed := false

	for _, n := range b.Neighbours4(t) {
		switch {
		case n.Owner == p.ID:
			owned++
			if n.Boost == BoostFasterCapture {
				faster = true
			}
		case n.Owner != NeutralID && n.Boost == BoostAreaJammer:
			jammed = true
		}
	}

	rate := p.CaptureRate + owned*p.AdjacencyBonusPerNeighbour
	if faster {
		rate += FasterCaptureBonus
	}
	if jammed {
		rate -= AreaJammerPenalty
	}
	return max(1, rate-t.DefenseLevel/DefenseRateDivisor)
}

// AdvanceCapture applies one resolution tick for p. It returns true when the
// tile changed hands, in which case the contest is cleared and progress reset.
func (t *Tile) AdvanceCapture(p *Player, b *Board) bool {
	t.CaptureProgress += t.CaptureRate(p, b)
	if t.CaptureProgress < t.CaptureTarget {
		return false
	}

	t.Owner = p.ID
	t.ClearCapture()
	return true
}

// BeginCapture marks the tile as contested by playerID with fresh progress.
func (t *Tile) BeginCapture(playerID int) {
	t.CapturingPlayerID = playerID
	t.CaptureProgress = 0
}

// ClearCapture drops any contest and resets progress.
func (t *Tile) ClearCapture() {
	t.CapturingPlayerID = NeutralID
	t.CaptureProgress = 0
}

func (t *Tile) ownedNeighbourCount(playerID int, b *Board) int {
	count := 0
	for _, n := range b.Neighbours4(t) {
		if n.Owner == playerID {
			count++
		}
	}
	return count
}
