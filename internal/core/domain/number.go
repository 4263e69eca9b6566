package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric input field that accepts a JSON number or a numeric
// string. A blank string decodes to 0. Anything else decodes to NaN so the
// validator can report the field by name instead of failing the whole body.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) {
		*n = Number(math.NaN())
		return nil
	}
	*n = Number(f)
	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}

func (n Number) Int() int64 {
	return int64(n)
}
