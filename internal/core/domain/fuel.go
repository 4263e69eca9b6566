package domain

import "math"

// FuelEntry is one refuelling. Cost is the total paid for the fill.
type FuelEntry struct {
	ID        string    `json:"id"`
	BikeID    string    `json:"bikeId"`
	Date      string    `json:"date"`
	Liters    float64   `json:"liters"`
	Cost      float64   `json:"cost"`
	Distance  float64   `json:"distance"`
	Notes     string    `json:"notes"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

func (e FuelEntry) GetID() string { return e.ID }

func (e *FuelEntry) ScanDest() []interface{} {
	return []interface{}{
		&e.ID, &e.BikeID, &e.Date, &e.Liters, &e.Cost, &e.Distance, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	}
}

// FuelInput accepts either a total cost or a price per liter. The latter is
// converted to a total and never stored.
type FuelInput struct {
	ID            *string `json:"id"`
	BikeID        *string `json:"bikeId" validate:"required,min=1"`
	Date          *string `json:"date" validate:"required,min=1"`
	Liters        *Number `json:"liters" validate:"required,number,min=0"`
	Cost          *Number `json:"cost" validate:"omitempty,number,min=0"`
	PricePerLiter *Number `json:"pricePerLiter" validate:"omitempty,number,min=0"`
	Distance      *Number `json:"distance" validate:"required,number,min=0"`
	Notes         *string `json:"notes"`
}

func (in *FuelInput) SuppliedID() string { return idOf(in.ID) }

func (in *FuelInput) Values(partial bool) (Fields, error) {
	cost := in.Cost
	if cost == nil && in.PricePerLiter != nil {
		if in.Liters == nil {
			return nil, NewValidationError("liters", "is required with pricePerLiter")
		}
		total := *in.Liters * *in.PricePerLiter
		if math.IsInf(total.Float(), 0) {
			return nil, NewValidationError("pricePerLiter", "is out of range")
		}
		cost = &total
	}
	if cost == nil && !partial {
		return nil, NewValidationError("cost", "is required")
	}

	f := Fields{}
	setString(f, "bike_id", in.BikeID, partial)
	setString(f, "date", in.Date, partial)
	setFloat(f, "liters", in.Liters, partial)
	setFloat(f, "cost", cost, partial)
	setFloat(f, "distance", in.Distance, partial)
	setString(f, "notes", in.Notes, partial)
	return f, nil
}

var FuelSchema = Schema{
	Resource: "fuel",
	Table:    "fuel",
	Columns: []string{
		"id", "bike_id", "date", "liters", "cost", "distance", "notes",
		"created_at", "updated_at",
	},
	OrderBy: "date DESC, created_at DESC",
}
