package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(1, PlayerStats{
		StartingResources:          12,
		BaseActionPoints:           2,
		CaptureRate:                10,
		BaseCapacity:               2,
		AdjacencyBonusPerNeighbour: 5,
	})

	assert.Equal(t, 1, p.ID)
	assert.Equal(t, 12, p.Resources)
	assert.Equal(t, 2, p.TotalActionPoints())
	assert.Equal(t, 2, p.CapacityMax)
	assert.Equal(t, 0, p.CapacityUsed)
}

func TestPlayer_TrySpendResources(t *testing.T) {
	tests := []struct {
		name      string
		resources int
		amount    int
		ok        bool
		remaining int
	}{
		{"exact amount", 5, 5, true, 0},
		{"less than held", 8, 5, true, 3},
		{"more than held", 4, 5, false, 4},
		{"nothing held", 0, 1, false, 0},
		{"zero amount", 0, 0, true, 0},
		{"negative amount", 3, -2, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{Resources: tt.resources}
			assert.Equal(t, tt.ok, p.TrySpendResources(tt.amount))
			assert.Equal(t, tt.remaining, p.Resources)
			assert.GreaterOrEqual(t, p.Resources, 0)
		})
	}
}

func TestPlayer_ActionPoints(t *testing.T) {
	p := &Player{BaseActionPoints: 1}

	p.AddTempActionPoints(1)
	p.AddTempActionPoints(2)
	assert.Equal(t, 4, p.TotalActionPoints())

	p.ResetTempForNewTurn()
	assert.Equal(t, 0, p.TempBonusActionPoints)
	assert.Equal(t, 1, p.TotalActionPoints())
}

func TestPlayer_CaptureSlots(t *testing.T) {
	p := &Player{CapacityMax: 2}

	assert.True(t, p.TryReserveCaptureSlot())
	assert.True(t, p.TryReserveCaptureSlot())
	assert.False(t, p.HasFreeCaptureSlot())
	assert.False(t, p.TryReserveCaptureSlot())
	assert.Equal(t, 2, p.CapacityUsed)

	p.ReleaseCaptureSlot()
	assert.Equal(t, 1, p.CapacityUsed)
	assert.True(t, p.TryReserveCaptureSlot())

	p.ReleaseCaptureSlot()
	p.ReleaseCaptureSlot()
	p.ReleaseCaptureSlot()
	assert.Equal(t, 0, p.CapacityUsed, "release floors at zero")
}

func TestPlayer_SetCapacity(t *testing.T) {
	t.Run("grows with boosts", func(t *testing.T) {
		p := &Player{}
		p.SetCapacity(2, 3)
		assert.Equal(t, 5, p.CapacityMax)
	})

	t.Run("shrinking caps used slots without refund", func(t *testing.T) {
		p := &Player{CapacityMax: 4, CapacityUsed: 4}
		p.SetCapacity(2, 0)
		assert.Equal(t, 2, p.CapacityMax)
		assert.Equal(t, 2, p.CapacityUsed)
		assert.False(t, p.TryReserveCaptureSlot())
	})

	t.Run("never negative", func(t *testing.T) {
		p := &Player{CapacityUsed: 1}
		p.SetCapacity(-3, 0)
		assert.Equal(t, 0, p.CapacityMax)
		assert.Equal(t, 0, p.CapacityUsed)
	})
}

func TestPlayer_CapacityBoundHoldsUnderMixedOperations(t *testing.T) {
	p := &Player{}
	ops := []func(){
		func() { p.SetCapacity(2, 0) },
		func() { p.TryReserveCaptureSlot() },
		func() { p.TryReserveCaptureSlot() },
		func() { p.TryReserveCaptureSlot() },
		func() { p.SetCapacity(2, 2) },
		func() { p.TryReserveCaptureSlot() },
		func() { p.SetCapacity(1, 0) },
		func() { p.ReleaseCaptureSlot() },
		func() { p.ReleaseCaptureSlot() },
		func() { p.TryReserveCaptureSlot() },
	}

	for i, op := range ops {
		op()
		assert.GreaterOrEqual(t, p.CapacityUsed, 0, "op %d", i)
		assert.LessOrEqual(t, p.CapacityUsed, p.CapacityMax, "op %d", i)
	}
}
