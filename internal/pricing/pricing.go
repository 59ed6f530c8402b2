package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grandoria/booking-engine/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Discount computes the amount to subtract from a base charge.
// Percentage discounts are taken from the base, flat discounts are used
// as-is; either way the result is clamped into [0, base] so a discount
// can never push a total negative.
func Discount(base decimal.Decimal, discountType string, percentage, flat decimal.Decimal) decimal.Decimal {
	if base.IsNegative() {
		base = decimal.Zero
	}

	var d decimal.Decimal
	switch domain.NormalizeDiscountType(discountType) {
	case domain.DiscountPercentage:
		d = base.Mul(percentage).Div(hundred)
	case domain.DiscountFlat:
		d = flat
	default:
		return decimal.Zero
	}

	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(base) {
		return base
	}
	return d.Round(2)
}

// GrandTotal computes the final payable amount: base minus discount
// plus extra charges, floored at zero.
func GrandTotal(base decimal.Decimal, discountType string, percentage, flat, extraCharges decimal.Decimal) decimal.Decimal {
	total := base.Sub(Discount(base, discountType, percentage, flat)).Add(extraCharges)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total.Round(2)
}

// RemainingPayment computes the outstanding balance, never negative.
func RemainingPayment(grandTotal, advancePayment decimal.Decimal) decimal.Decimal {
	remaining := grandTotal.Sub(advancePayment)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining.Round(2)
}

// PaymentStatus classifies a payment state from total and paid amounts.
// Paying the total exactly counts as paid, not partial.
func PaymentStatus(totalAmount, paidAmount decimal.Decimal) string {
	switch {
	case paidAmount.LessThanOrEqual(decimal.Zero):
		return domain.PaymentStatusPending
	case paidAmount.GreaterThanOrEqual(totalAmount):
		return domain.PaymentStatusPaid
	default:
		return domain.PaymentStatusPartial
	}
}

// Nights computes the length of stay in whole nights. Both endpoints
// are normalized to midnight before differencing, and a partial day
// rounds up, so a stay ending mid-day still bills the higher count.
// Inverted or same-day ranges yield zero.
func Nights(checkIn, checkOut time.Time) int {
	in := midnight(checkIn)
	out := midnight(checkOut)

	hours := out.Sub(in).Hours()
	if hours <= 0 {
		return 0
	}
	// Both endpoints sit at midnight, so the difference is a whole
	// number of days except across DST shifts; rounding absorbs those.
	return int(math.Round(hours / 24))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
