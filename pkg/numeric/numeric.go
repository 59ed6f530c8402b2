package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal converts an arbitrary JSON-ish value to a decimal, falling
// back to zero for anything that does not parse to a finite number.
func Decimal(v any) decimal.Decimal {
	return DecimalOr(v, decimal.Zero)
}

// DecimalOr converts an arbitrary value to a decimal with an explicit
// fallback. Accepted inputs: decimal.Decimal, json.Number, all Go
// integer and float types, and numeric strings. Every other value,
// including nil, NaN and infinities, yields def.
func DecimalOr(v any, def decimal.Decimal) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return def
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return def
		}
		return *x
	case json.Number:
		return parseString(string(x), def)
	case string:
		return parseString(x, def)
	case float64:
		return fromFloat(x, def)
	case float32:
		return fromFloat(float64(x), def)
	case int:
		return decimal.NewFromInt(int64(x))
	case int8:
		return decimal.NewFromInt(int64(x))
	case int16:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case uint:
		return decimal.NewFromUint64(uint64(x))
	case uint8:
		return decimal.NewFromUint64(uint64(x))
	case uint16:
		return decimal.NewFromUint64(uint64(x))
	case uint32:
		return decimal.NewFromUint64(uint64(x))
	case uint64:
		return decimal.NewFromUint64(x)
	default:
		return def
	}
}

func parseString(s string, def decimal.Decimal) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	// decimal.NewFromString accepts exponent notation but not the
	// textual NaN/Inf forms strconv produces, so one path suffices.
	d, err := decimal.NewFromString(s)
	if err != nil {
		return def
	}
	return d
}

func fromFloat(f float64, def decimal.Decimal) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return decimal.NewFromFloat(f)
}

// Percent clamps a coerced percentage into [0, 100].
func Percent(v any) decimal.Decimal {
	p := Decimal(v)
	if p.IsNegative() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// FormatAmount renders a monetary decimal with two fraction digits.
func FormatAmount(d decimal.Decimal) string {
	return strconv.FormatFloat(d.Round(2).InexactFloat64(), 'f', 2, 64)
}
