package mirror

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sm8ta/motodash/internal/core/domain"
)

func TestConsumption(t *testing.T) {
	assert.InDelta(t, 6.0, LitersPer100(30, 500), 1e-9)
	assert.InDelta(t, 0.15, CostPerDistance(75, 500), 1e-9)
	assert.Equal(t, 0.0, LitersPer100(30, 0))
	assert.Equal(t, 0.0, CostPerDistance(75, 0))
}

func TestSummarizeFuel(t *testing.T) {
	summary := SummarizeFuel([]*domain.FuelEntry{
		{Liters: 12, Cost: 30, Distance: 200},
		{Liters: 18, Cost: 45, Distance: 300},
	})

	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 30, summary.TotalLiters, 1e-9)
	assert.InDelta(t, 75, summary.TotalCost, 1e-9)
	assert.InDelta(t, 500, summary.TotalDistance, 1e-9)
	assert.InDelta(t, 6.0, summary.LitersPer100, 1e-9)
	assert.InDelta(t, 0.15, summary.CostPerDistance, 1e-9)

	empty := SummarizeFuel(nil)
	assert.Equal(t, FuelSummary{}, empty)
}

func TestTotals(t *testing.T) {
	assert.Equal(t, 15000, TotalMileage([]*domain.Bike{{Mileage: 5000}, {Mileage: 10000}}))
	assert.InDelta(t, 210.5, MaintenanceCost([]*domain.MaintenanceEntry{{Cost: 200}, {Cost: 10.5}}), 1e-9)
	assert.InDelta(t, 420, TourDistance([]*domain.Tour{{Distance: 120}, {Distance: 300}}), 1e-9)
}
