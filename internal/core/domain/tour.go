package domain

type Tour struct {
	ID        string    `json:"id"`
	BikeID    string    `json:"bikeId"`
	Name      string    `json:"name"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Distance  float64   `json:"distance"`
	GPX       string    `json:"gpx"`
	Notes     string    `json:"notes"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

func (t Tour) GetID() string { return t.ID }

func (t *Tour) ScanDest() []interface{} {
	return []interface{}{
		&t.ID, &t.BikeID, &t.Name, &t.Start, &t.End, &t.Distance, &t.GPX, &t.Notes,
		&t.CreatedAt, &t.UpdatedAt,
	}
}

type TourInput struct {
	ID       *string `json:"id"`
	BikeID   *string `json:"bikeId" validate:"required,min=1"`
	Name     *string `json:"name" validate:"required,min=1"`
	Start    *string `json:"start"`
	End      *string `json:"end"`
	Distance *Number `json:"distance" validate:"required,number,min=0"`
	GPX      *string `json:"gpx"`
	Notes    *string `json:"notes"`
}

func (in *TourInput) SuppliedID() string { return idOf(in.ID) }

func (in *TourInput) Values(partial bool) (Fields, error) {
	f := Fields{}
	setString(f, "bike_id", in.BikeID, partial)
	setString(f, "name", in.Name, partial)
	setString(f, "start_at", in.Start, partial)
	setString(f, "end_at", in.End, partial)
	setFloat(f, "distance", in.Distance, partial)
	setString(f, "gpx", in.GPX, partial)
	setString(f, "notes", in.Notes, partial)
	return f, nil
}

var TourSchema = Schema{
	Resource: "tours",
	Table:    "tours",
	Columns: []string{
		"id", "bike_id", "name", "start_at", "end_at", "distance", "gpx", "notes",
		"created_at", "updated_at",
	},
	OrderBy: "created_at DESC",
}
