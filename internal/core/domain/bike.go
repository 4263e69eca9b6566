package domain

import "strings"

// swagger:model domain.Bike
type Bike struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Manufacturer      string    `json:"manufacturer"`
	Model             string    `json:"model"`
	Year              int       `json:"year"`
	Mileage           int       `json:"mileage"`
	FirstRegistration string    `json:"firstRegistration"`
	PurchasePrice     float64   `json:"purchasePrice"`
	Image             string    `json:"image"`
	Notes             string    `json:"notes"`
	CreatedAt         Timestamp `json:"createdAt"`
	UpdatedAt         Timestamp `json:"updatedAt"`
}

func (b Bike) GetID() string { return b.ID }

func (b *Bike) ScanDest() []interface{} {
	return []interface{}{
		&b.ID, &b.Name, &b.Manufacturer, &b.Model, &b.Year, &b.Mileage,
		&b.FirstRegistration, &b.PurchasePrice, &b.Image, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
	}
}

// DisplayName joins manufacturer and model, falling back to the bike name.
func (b Bike) DisplayName() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{b.Manufacturer, b.Model} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return b.Name
	}
	return strings.Join(parts, " ")
}

type BikeInput struct {
	ID                *string `json:"id"`
	Name              *string `json:"name" validate:"required,min=1"`
	Manufacturer      *string `json:"manufacturer"`
	Model             *string `json:"model"`
	Year              *Number `json:"year" validate:"required,number,integer,min=1950,notfuture"`
	Mileage           *Number `json:"mileage" validate:"required,number,integer,min=0,max=9007199254740991"`
	FirstRegistration *string `json:"firstRegistration"`
	PurchasePrice     *Number `json:"purchasePrice" validate:"omitempty,number,min=0"`
	Image             *string `json:"image" validate:"omitempty,url|len=0"`
	Notes             *string `json:"notes"`
}

func (in *BikeInput) SuppliedID() string { return idOf(in.ID) }

func (in *BikeInput) Values(partial bool) (Fields, error) {
	f := Fields{}
	setString(f, "name", in.Name, partial)
	setString(f, "manufacturer", in.Manufacturer, partial)
	setString(f, "model", in.Model, partial)
	setInt(f, "year", in.Year, partial)
	setInt(f, "mileage", in.Mileage, partial)
	setString(f, "first_registration", in.FirstRegistration, partial)
	setFloat(f, "purchase_price", in.PurchasePrice, partial)
	setString(f, "image", in.Image, partial)
	setString(f, "notes", in.Notes, partial)
	return f, nil
}

var BikeSchema = Schema{
	Resource: "bikes",
	Table:    "bikes",
	Columns: []string{
		"id", "name", "manufacturer", "model", "year", "mileage",
		"first_registration", "purchase_price", "image", "notes",
		"created_at", "updated_at",
	},
	OrderBy: "created_at DESC",
}
