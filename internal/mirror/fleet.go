package mirror

import (
	"context"
	"sync"

	"go.uber.org/multierr"

	"github.com/sm8ta/motodash/internal/client"
	"github.com/sm8ta/motodash/internal/core/domain"
)

// FuelStore keeps its summary current with the list.
type FuelStore struct {
	*Store[domain.FuelEntry]

	mu      sync.RWMutex
	summary FuelSummary
}

func NewFuelStore(remote Remote[domain.FuelEntry]) *FuelStore {
	fs := &FuelStore{Store: NewStore[domain.FuelEntry](remote)}
	fs.Subscribe(fs.recompute)
	return fs
}

func (fs *FuelStore) Summary() FuelSummary {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.summary
}

func (fs *FuelStore) recompute() {
	summary := SummarizeFuel(fs.Items())
	fs.mu.Lock()
	fs.summary = summary
	fs.mu.Unlock()
}

// Fleet mirrors every collection of one server.
type Fleet struct {
	Bikes       *Store[domain.Bike]
	Fuel        *FuelStore
	Maintenance *Store[domain.MaintenanceEntry]
	Parts       *Store[domain.Part]
	Tours       *Store[domain.Tour]
}

func NewFleet(api *client.MotoDash) *Fleet {
	return &Fleet{
		Bikes:       NewStore[domain.Bike](api.Bikes),
		Fuel:        NewFuelStore(api.Fuel),
		Maintenance: NewStore[domain.MaintenanceEntry](api.Maintenance),
		Parts:       NewStore[domain.Part](api.Parts),
		Tours:       NewStore[domain.Tour](api.Tours),
	}
}

// FetchAll refreshes each collection in turn. A failing collection does not
// stop the others.
func (f *Fleet) FetchAll(ctx context.Context) error {
	var err error
	err = multierr.Append(err, f.Bikes.Fetch(ctx))
	err = multierr.Append(err, f.Fuel.Fetch(ctx))
	err = multierr.Append(err, f.Maintenance.Fetch(ctx))
	err = multierr.Append(err, f.Parts.Fetch(ctx))
	err = multierr.Append(err, f.Tours.Fetch(ctx))
	return err
}

type Stats struct {
	Bikes            int         `json:"bikes"`
	TotalMileage     int         `json:"totalMileage"`
	MaintenanceCount int         `json:"maintenanceCount"`
	MaintenanceCost  float64     `json:"maintenanceCost"`
	Parts            int         `json:"parts"`
	Tours            int         `json:"tours"`
	TourDistance     float64     `json:"tourDistance"`
	Fuel             FuelSummary `json:"fuel"`
}

func (f *Fleet) Stats() Stats {
	bikes := f.Bikes.Items()
	maintenance := f.Maintenance.Items()
	tours := f.Tours.Items()

	return Stats{
		Bikes:            len(bikes),
		TotalMileage:     TotalMileage(bikes),
		MaintenanceCount: len(maintenance),
		MaintenanceCost:  MaintenanceCost(maintenance),
		Parts:            f.Parts.Len(),
		Tours:            len(tours),
		TourDistance:     TourDistance(tours),
		Fuel:             f.Fuel.Summary(),
	}
}
