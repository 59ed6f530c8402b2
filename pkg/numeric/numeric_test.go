package numeric

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected decimal.Decimal
	}{
		{
			name:     "nil input",
			input:    nil,
			expected: decimal.Zero,
		},
		{
			name:     "float64",
			input:    float64(1250.50),
			expected: decimal.NewFromFloat(1250.50),
		},
		{
			name:     "int",
			input:    1000,
			expected: decimal.NewFromInt(1000),
		},
		{
			name:     "numeric string",
			input:    "1500.25",
			expected: decimal.NewFromFloat(1500.25),
		},
		{
			name:     "string with whitespace",
			input:    "  42  ",
			expected: decimal.NewFromInt(42),
		},
		{
			name:     "json.Number",
			input:    json.Number("999.99"),
			expected: decimal.NewFromFloat(999.99),
		},
		{
			name:     "non-numeric string",
			input:    "not-a-number",
			expected: decimal.Zero,
		},
		{
			name:     "empty string",
			input:    "",
			expected: decimal.Zero,
		},
		{
			name:     "NaN",
			input:    math.NaN(),
			expected: decimal.Zero,
		},
		{
			name:     "positive infinity",
			input:    math.Inf(1),
			expected: decimal.Zero,
		},
		{
			name:     "negative infinity",
			input:    math.Inf(-1),
			expected: decimal.Zero,
		},
		{
			name:     "boolean",
			input:    true,
			expected: decimal.Zero,
		},
		{
			name:     "negative passes through",
			input:    -250,
			expected: decimal.NewFromInt(-250),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Decimal(tt.input)
			assert.True(t, result.Equal(tt.expected),
				"Expected %v, but got %v", tt.expected, result)
		})
	}
}

func TestDecimalOr(t *testing.T) {
	def := decimal.NewFromInt(7)

	assert.True(t, DecimalOr(nil, def).Equal(def))
	assert.True(t, DecimalOr("garbage", def).Equal(def))
	assert.True(t, DecimalOr("12", def).Equal(decimal.NewFromInt(12)))

	d := decimal.NewFromInt(3)
	assert.True(t, DecimalOr(d, def).Equal(d))
	assert.True(t, DecimalOr(&d, def).Equal(d))
	assert.True(t, DecimalOr((*decimal.Decimal)(nil), def).Equal(def))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected decimal.Decimal
	}{
		{name: "in range", input: 10, expected: decimal.NewFromInt(10)},
		{name: "negative clamps to zero", input: -5, expected: decimal.Zero},
		{name: "over hundred clamps", input: 150, expected: decimal.NewFromInt(100)},
		{name: "garbage is zero", input: "n/a", expected: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percent(tt.input)
			assert.True(t, result.Equal(tt.expected),
				"Expected %v, but got %v", tt.expected, result)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1100.00", FormatAmount(decimal.NewFromInt(1100)))
	assert.Equal(t, "99.50", FormatAmount(decimal.NewFromFloat(99.499)))
}
