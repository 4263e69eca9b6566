package domain

// Part is a component installed on a bike.
type Part struct {
	ID           string    `json:"id"`
	BikeID       string    `json:"bikeId"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer"`
	InstalledAt  string    `json:"installedAt"`
	Price        float64   `json:"price"`
	Notes        string    `json:"notes"`
	CreatedAt    Timestamp `json:"createdAt"`
	UpdatedAt    Timestamp `json:"updatedAt"`
}

func (p Part) GetID() string { return p.ID }

func (p *Part) ScanDest() []interface{} {
	return []interface{}{
		&p.ID, &p.BikeID, &p.Name, &p.Manufacturer, &p.InstalledAt, &p.Price, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	}
}

type PartInput struct {
	ID           *string `json:"id"`
	BikeID       *string `json:"bikeId" validate:"required,min=1"`
	Name         *string `json:"name" validate:"required,min=1"`
	Manufacturer *string `json:"manufacturer"`
	InstalledAt  *string `json:"installedAt"`
	Price        *Number `json:"price" validate:"omitempty,number,min=0"`
	Notes        *string `json:"notes"`
}

func (in *PartInput) SuppliedID() string { return idOf(in.ID) }

func (in *PartInput) Values(partial bool) (Fields, error) {
	f := Fields{}
	setString(f, "bike_id", in.BikeID, partial)
	setString(f, "name", in.Name, partial)
	setString(f, "manufacturer", in.Manufacturer, partial)
	setString(f, "installed_at", in.InstalledAt, partial)
	setFloat(f, "price", in.Price, partial)
	setString(f, "notes", in.Notes, partial)
	return f, nil
}

var PartSchema = Schema{
	Resource: "parts",
	Table:    "parts",
	Columns: []string{
		"id", "bike_id", "name", "manufacturer", "installed_at", "price", "notes",
		"created_at", "updated_at",
	},
	OrderBy: "created_at DESC",
}
