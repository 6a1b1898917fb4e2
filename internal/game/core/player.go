package core

// PlayerStats are the starting values a player is created with.
type PlayerStats struct {
	StartingResources          int
	BaseActionPoints           int
	CaptureRate                int
	BaseCapacity               int
	AdjacencyBonusPerNeighbour int
}

// Player holds the per-player economy. Resources never go negative and
// 0 <= CapacityUsed <= CapacityMax holds after every mutator.
type Player struct {
	ID int

	Resources int

	BaseActionPoints      int
	TempBonusActionPoints int

	CaptureRate                int
	AdjacencyBonusPerNeighbour int

	CapacityMax  int
	CapacityUsed int
}

func NewPlayer(id int, stats PlayerStats) *Player {
	return &Player{
		ID:                         id,
		Resources:                  max(0, stats.StartingResources),
		BaseActionPoints:           stats.BaseActionPoints,
		CaptureRate:                stats.CaptureRate,
		AdjacencyBonusPerNeighbour: stats.AdjacencyBonusPerNeighbour,
		CapacityMax:                max(0, stats.BaseCapacity),
	}
}

func (p *Player) AddResources(amount int) {
	p.Resources += amount
}

// TrySpendResources deducts amount if the player can afford it.
func (p *Player) TrySpendResources(amount int) bool {
	if amount < 0 || p.Resources < amount {
		return false
	}
	p.Resources -= amount
	return true
}

func (p *Player) ResetTempForNewTurn() {
	p.TempBonusActionPoints = 0
}

func (p *Player) AddTempActionPoints(amount int) {
	p.TempBonusActionPoints += amount
}

func (p *Player) TotalActionPoints() int {
	return p.BaseActionPoints + p.TempBonusActionPoints
}

// SetCapacity recomputes CapacityMax. Slots already in flight are capped,
// not refunded.
func (p *Player) SetCapacity(base, boostCount int) {
	p.CapacityMax = max(0, base+boostCount)
	if p.CapacityUsed > p.CapacityMax {
		p.CapacityUsed = p.CapacityMax
	}
}

func (p *Player) HasFreeCaptureSlot() bool {
	return p.CapacityUsed < p.CapacityMax
}

func (p *Player) TryReserveCaptureSlot() bool {
	if !p.HasFreeCaptureSlot() {
		return false
	}
	p.CapacityUsed++
	return true
}

func (p *Player) ReleaseCaptureSlot() {
	if p.CapacityUsed > 0 {
		p.CapacityUsed--
	}
}
