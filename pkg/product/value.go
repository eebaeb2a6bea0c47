package product

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

type Value struct {
	Value any    `json:"value"`
	Type  string `json:"type"`
}

// Column types for the known CSV columns. Unknown columns fall back to
// inference.
var columnTypes = map[string]string{
	`id`:         `int`,
	`name`:       `str`,
	`price`:      `float`,
	`quantity`:   `int`,
	`created_at`: `time`,
	`updated_at`: `time`,
}

// ParseValue converts a raw CSV cell of column into a typed value. The
// column's declared type wins; otherwise the type is inferred.
func ParseValue(column, raw string) Value {
	raw = strings.TrimSpace(raw)
	typ, ok := columnTypes[column]
	if !ok {
		typ = strings.SplitN(column, `_`, 2)[0]
	}
	switch typ {
	case `int`:
		if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Value{Value: value, Type: "int"}
		}
		// quantities exported as 12.0
		if value, err := strconv.ParseFloat(raw, 64); err == nil && finite(value) && value == float64(int64(value)) {
			return Value{Value: int64(value), Type: "int"}
		}
	case `float`:
		if value, err := strconv.ParseFloat(raw, 64); err == nil && finite(value) {
			return Value{Value: value, Type: "float"}
		}
	case `time`:
		if value, err := dateparse.ParseAny(raw); err == nil {
			return Value{Value: value, Type: "time"}
		}
	case `bool`:
		if value, err := strconv.ParseBool(raw); err == nil {
			return Value{Value: value, Type: "bool"}
		}
	case `str`:
		return Value{Value: raw, Type: "str"}
	}
	if ok {
		return Value{Value: raw, Type: "invalid"}
	}
	return inferValue(raw)
}

func inferValue(raw string) Value {
	if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Value{Value: value, Type: "int"}
	} else if value, err := strconv.ParseFloat(raw, 64); strings.Contains(raw, ".") && err == nil && finite(value) {
		return Value{Value: value, Type: "float"}
	} else if value, err := strconv.ParseBool(raw); err == nil {
		return Value{Value: value, Type: "bool"}
	} else if value, err := dateparse.ParseAny(raw); err == nil {
		return Value{Value: value, Type: "time"}
	}
	return Value{Value: raw, Type: "str"}
}

// finite rejects NaN and ±Inf, which encoding/json cannot marshal.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (v Value) Valid() bool {
	return v.Type != `invalid`
}

func (v Value) Int64() int64 {
	n, _ := v.Value.(int64)
	return n
}

func (v Value) Float64() float64 {
	switch n := v.Value.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	return 0
}

func (v Value) Time() time.Time {
	t, _ := v.Value.(time.Time)
	return t
}

func (v Value) String() string {
	s, _ := v.Value.(string)
	return s
}
