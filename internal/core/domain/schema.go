package domain

// Fields maps storage column names to values.
type Fields map[string]interface{}

// Schema describes how one resource type is stored and listed.
type Schema struct {
	// Resource is the URL segment, e.g. "bikes".
	Resource string
	Table    string
	// Columns is the select order; it matches the record's ScanDest.
	Columns []string
	OrderBy string
}

func (s Schema) HasColumn(name string) bool {
	for _, column := range s.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// Record is implemented by every stored resource.
type Record interface {
	GetID() string
}

// Input is a decoded create or update payload.
type Input interface {
	// SuppliedID returns the id chosen by the client, or "" when absent.
	SuppliedID() string
	// Values maps supplied fields to columns. Unless partial is set, absent
	// optional fields are filled with their empty defaults.
	Values(partial bool) (Fields, error)
}

func setString(f Fields, column string, v *string, partial bool) {
	switch {
	case v != nil:
		f[column] = *v
	case !partial:
		f[column] = ""
	}
}

func setFloat(f Fields, column string, v *Number, partial bool) {
	switch {
	case v != nil:
		f[column] = v.Float()
	case !partial:
		f[column] = float64(0)
	}
}

func setInt(f Fields, column string, v *Number, partial bool) {
	switch {
	case v != nil:
		f[column] = v.Int()
	case !partial:
		f[column] = int64(0)
	}
}

func idOf(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
