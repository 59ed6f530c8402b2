package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/grandoria/booking-engine/internal/domain"
)

func TestDiscount(t *testing.T) {
	tests := []struct {
		name         string
		base         decimal.Decimal
		discountType string
		percentage   decimal.Decimal
		flat         decimal.Decimal
		expected     decimal.Decimal
	}{
		{
			name:         "ten percent of 1000",
			base:         decimal.NewFromInt(1000),
			discountType: "percentage",
			percentage:   decimal.NewFromInt(10),
			expected:     decimal.NewFromInt(100),
		},
		{
			name:         "flat discount larger than base clamps to base",
			base:         decimal.NewFromInt(1000),
			discountType: "flat",
			flat:         decimal.NewFromInt(5000),
			expected:     decimal.NewFromInt(1000),
		},
		{
			name:         "flat discount within base",
			base:         decimal.NewFromInt(1000),
			discountType: "flat",
			flat:         decimal.NewFromInt(250),
			expected:     decimal.NewFromInt(250),
		},
		{
			name:         "no discount type",
			base:         decimal.NewFromInt(1000),
			discountType: "none",
			percentage:   decimal.NewFromInt(50),
			flat:         decimal.NewFromInt(500),
			expected:     decimal.Zero,
		},
		{
			name:         "unrecognized discount type",
			base:         decimal.NewFromInt(1000),
			discountType: "seasonal",
			flat:         decimal.NewFromInt(500),
			expected:     decimal.Zero,
		},
		{
			name:         "negative percentage floors at zero",
			base:         decimal.NewFromInt(1000),
			discountType: "percentage",
			percentage:   decimal.NewFromInt(-10),
			expected:     decimal.Zero,
		},
		{
			name:         "negative flat floors at zero",
			base:         decimal.NewFromInt(1000),
			discountType: "flat",
			flat:         decimal.NewFromInt(-100),
			expected:     decimal.Zero,
		},
		{
			name:         "negative base yields zero",
			base:         decimal.NewFromInt(-1000),
			discountType: "percentage",
			percentage:   decimal.NewFromInt(10),
			expected:     decimal.Zero,
		},
		{
			name:         "case-insensitive type",
			base:         decimal.NewFromInt(200),
			discountType: "Percentage",
			percentage:   decimal.NewFromInt(50),
			expected:     decimal.NewFromInt(100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Discount(tt.base, tt.discountType, tt.percentage, tt.flat)
			assert.True(t, result.Equal(tt.expected),
				"Expected %v, but got %v", tt.expected, result)
		})
	}
}

func TestGrandTotal(t *testing.T) {
	tests := []struct {
		name         string
		base         decimal.Decimal
		discountType string
		percentage   decimal.Decimal
		flat         decimal.Decimal
		extras       decimal.Decimal
		expected     decimal.Decimal
	}{
		{
			name:         "percentage discount plus extras",
			base:         decimal.NewFromInt(1000),
			discountType: "percentage",
			percentage:   decimal.NewFromInt(10),
			extras:       decimal.NewFromInt(200),
			expected:     decimal.NewFromInt(1100), // 1000 - 100 + 200
		},
		{
			name:         "no discount no extras",
			base:         decimal.NewFromInt(750),
			discountType: "none",
			expected:     decimal.NewFromInt(750),
		},
		{
			name:         "full flat discount leaves only extras",
			base:         decimal.NewFromInt(500),
			discountType: "flat",
			flat:         decimal.NewFromInt(900),
			extras:       decimal.NewFromInt(120),
			expected:     decimal.NewFromInt(120),
		},
		{
			name:         "never negative",
			base:         decimal.NewFromInt(0),
			discountType: "flat",
			flat:         decimal.NewFromInt(100),
			extras:       decimal.NewFromInt(-50),
			expected:     decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GrandTotal(tt.base, tt.discountType, tt.percentage, tt.flat, tt.extras)
			assert.True(t, result.Equal(tt.expected),
				"Expected %v, but got %v", tt.expected, result)
		})
	}
}

func TestRemainingPayment(t *testing.T) {
	tests := []struct {
		name     string
		total    decimal.Decimal
		advance  decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "partial advance",
			total:    decimal.NewFromInt(1100),
			advance:  decimal.NewFromInt(400),
			expected: decimal.NewFromInt(700),
		},
		{
			name:     "fully paid",
			total:    decimal.NewFromInt(1100),
			advance:  decimal.NewFromInt(1100),
			expected: decimal.Zero,
		},
		{
			name:     "overpaid clamps to zero",
			total:    decimal.NewFromInt(1100),
			advance:  decimal.NewFromInt(1500),
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RemainingPayment(tt.total, tt.advance)
			assert.True(t, result.Equal(tt.expected),
				"Expected %v, but got %v", tt.expected, result)
		})
	}
}

func TestPaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		total    decimal.Decimal
		paid     decimal.Decimal
		expected string
	}{
		{name: "nothing paid", total: decimal.NewFromInt(1000), paid: decimal.Zero, expected: domain.PaymentStatusPending},
		{name: "negative paid", total: decimal.NewFromInt(1000), paid: decimal.NewFromInt(-50), expected: domain.PaymentStatusPending},
		{name: "half paid", total: decimal.NewFromInt(1000), paid: decimal.NewFromInt(500), expected: domain.PaymentStatusPartial},
		{name: "exactly paid", total: decimal.NewFromInt(1000), paid: decimal.NewFromInt(1000), expected: domain.PaymentStatusPaid},
		{name: "overpaid", total: decimal.NewFromInt(1000), paid: decimal.NewFromInt(1200), expected: domain.PaymentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PaymentStatus(tt.total, tt.paid))
		})
	}
}

func TestNights(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "two nights",
			checkIn:  day(2025, time.January, 1),
			checkOut: day(2025, time.January, 3),
			expected: 2,
		},
		{
			name:     "same day",
			checkIn:  day(2025, time.January, 1),
			checkOut: day(2025, time.January, 1),
			expected: 0,
		},
		{
			name:     "inverted range",
			checkIn:  day(2025, time.January, 5),
			checkOut: day(2025, time.January, 3),
			expected: 0,
		},
		{
			name:     "embedded times are normalized",
			checkIn:  time.Date(2025, time.January, 1, 23, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.January, 3, 1, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "month boundary",
			checkIn:  day(2025, time.January, 30),
			checkOut: day(2025, time.February, 2),
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Nights(tt.checkIn, tt.checkOut))
		})
	}
}
