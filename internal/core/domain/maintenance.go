package domain

type MaintenanceEntry struct {
	ID        string    `json:"id"`
	BikeID    string    `json:"bikeId"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Mileage   int       `json:"mileage"`
	Cost      float64   `json:"cost"`
	Notes     string    `json:"notes"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

func (e MaintenanceEntry) GetID() string { return e.ID }

func (e *MaintenanceEntry) ScanDest() []interface{} {
	return []interface{}{
		&e.ID, &e.BikeID, &e.Date, &e.Type, &e.Mileage, &e.Cost, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt,
	}
}

type MaintenanceInput struct {
	ID      *string `json:"id"`
	BikeID  *string `json:"bikeId" validate:"required,min=1"`
	Date    *string `json:"date" validate:"required,min=1"`
	Type    *string `json:"type" validate:"required,min=1"`
	Mileage *Number `json:"mileage" validate:"required,number,integer,min=0,max=9007199254740991"`
	Cost    *Number `json:"cost" validate:"required,number,min=0"`
	Notes   *string `json:"notes"`
}

func (in *MaintenanceInput) SuppliedID() string { return idOf(in.ID) }

func (in *MaintenanceInput) Values(partial bool) (Fields, error) {
	f := Fields{}
	setString(f, "bike_id", in.BikeID, partial)
	setString(f, "date", in.Date, partial)
	setString(f, "type", in.Type, partial)
	setInt(f, "mileage", in.Mileage, partial)
	setFloat(f, "cost", in.Cost, partial)
	setString(f, "notes", in.Notes, partial)
	return f, nil
}

var MaintenanceSchema = Schema{
	Resource: "maintenance",
	Table:    "maintenance",
	Columns: []string{
		"id", "bike_id", "date", "type", "mileage", "cost", "notes",
		"created_at", "updated_at",
	},
	OrderBy: "date DESC, created_at DESC",
}
