package mirror

import "github.com/sm8ta/motodash/internal/core/domain"

type FuelSummary struct {
	Count           int     `json:"count"`
	TotalLiters     float64 `json:"totalLiters"`
	TotalCost       float64 `json:"totalCost"`
	TotalDistance   float64 `json:"totalDistance"`
	LitersPer100    float64 `json:"litersPer100"`
	CostPerDistance float64 `json:"costPerDistance"`
}

func SummarizeFuel(entries []*domain.FuelEntry) FuelSummary {
	summary := FuelSummary{Count: len(entries)}
	for _, e := range entries {
		summary.TotalLiters += e.Liters
		summary.TotalCost += e.Cost
		summary.TotalDistance += e.Distance
	}
	summary.LitersPer100 = LitersPer100(summary.TotalLiters, summary.TotalDistance)
	summary.CostPerDistance = CostPerDistance(summary.TotalCost, summary.TotalDistance)
	return summary
}

// LitersPer100 is consumption per 100 distance units, 0 without distance.
func LitersPer100(liters, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	return liters / distance * 100
}

// CostPerDistance is 0 without distance.
func CostPerDistance(cost, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	return cost / distance
}

func TotalMileage(bikes []*domain.Bike) int {
	total := 0
	for _, b := range bikes {
		total += b.Mileage
	}
	return total
}

func MaintenanceCost(entries []*domain.MaintenanceEntry) float64 {
	total := 0.0
	for _, e := range entries {
		total += e.Cost
	}
	return total
}

func TourDistance(tours []*domain.Tour) float64 {
	total := 0.0
	for _, t := range tours {
		total += t.Distance
	}
	return total
}
