package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Discount types.
const (
	DiscountNone       = "none"
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"
)

// NormalizeDiscountType maps stored discount-type text onto the enum,
// treating anything unrecognized as no discount.
func NormalizeDiscountType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case DiscountPercentage:
		return DiscountPercentage
	case DiscountFlat:
		return DiscountFlat
	default:
		return DiscountNone
	}
}

// InvoiceBreakdown is the derived money view of a booking or quote.
type InvoiceBreakdown struct {
	BaseAmount       decimal.Decimal `json:"base_amount"`
	DiscountType     string          `json:"discount_type"`
	Discount         decimal.Decimal `json:"discount"`
	ExtraCharges     decimal.Decimal `json:"extra_charges"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	AdvancePayment   decimal.Decimal `json:"advance_payment"`
	RemainingPayment decimal.Decimal `json:"remaining_payment"`
	PaymentStatus    string          `json:"payment_status"`
}

// PaymentPresentation is the display-ready payment classification for
// a booking with a possibly outstanding balance.
type PaymentPresentation struct {
	Status      string `json:"status"`
	DisplayText string `json:"display_text"`
	IsDue       bool   `json:"is_due"`
}

// DTOs for requests and responses

// CreateBookingRequest records a new convention booking. Monetary
// fields are untyped on purpose: the backend that feeds this API sends
// them inconsistently (strings, numbers, nulls) and they are coerced
// at the handler boundary.
type CreateBookingRequest struct {
	BookingID          string `json:"booking_id" validate:"required"`
	HallName           string `json:"hall_name" validate:"required"`
	CustomerName       string `json:"customer_name" validate:"required"`
	EventDate          string `json:"event_date" validate:"required"`
	TimeSlot           string `json:"time_slot" validate:"required"`
	ProgramStatus      string `json:"program_status"`
	PaymentStatus      string `json:"payment_status"`
	BaseAmount         any    `json:"base_amount"`
	DiscountType       string `json:"discount_type"`
	DiscountPercentage any    `json:"discount_percentage"`
	DiscountAmount     any    `json:"discount_amount"`
	ExtraCharges       any    `json:"extra_charges"`
	AdvancePayment     any    `json:"advance_payment"`
}

// QuoteInvoiceRequest is a stateless invoice calculation request.
type QuoteInvoiceRequest struct {
	BaseAmount         any    `json:"base_amount"`
	DiscountType       string `json:"discount_type"`
	DiscountPercentage any    `json:"discount_percentage"`
	DiscountAmount     any    `json:"discount_amount"`
	ExtraCharges       any    `json:"extra_charges"`
	AdvancePayment     any    `json:"advance_payment"`
}

// QuoteStayRequest quotes a room stay priced per night.
type QuoteStayRequest struct {
	CheckIn            string `json:"check_in" validate:"required"`
	CheckOut           string `json:"check_out" validate:"required"`
	NightlyRate        any    `json:"nightly_rate"`
	DiscountType       string `json:"discount_type"`
	DiscountPercentage any    `json:"discount_percentage"`
	DiscountAmount     any    `json:"discount_amount"`
	ExtraCharges       any    `json:"extra_charges"`
	AdvancePayment     any    `json:"advance_payment"`
}

// QuoteStayResponse is a stay quote: the night count plus the invoice
// math applied to nights x nightly rate.
type QuoteStayResponse struct {
	Nights      int              `json:"nights"`
	NightlyRate decimal.Decimal  `json:"nightly_rate"`
	Invoice     InvoiceBreakdown `json:"invoice"`
}

// BookingSummary is the display view of a booking: stored facts plus
// every derived value the dashboard renders.
type BookingSummary struct {
	BookingID     string              `json:"booking_id"`
	HallName      string              `json:"hall_name"`
	CustomerName  string              `json:"customer_name"`
	EventDate     string              `json:"event_date"`
	TimeSlot      string              `json:"time_slot"`
	StoredStatus  string              `json:"stored_status"`
	ProgramStatus string              `json:"program_status"`
	Payment       PaymentPresentation `json:"payment"`
	Invoice       InvoiceBreakdown    `json:"invoice"`
	ComputedAt    time.Time           `json:"computed_at"`
}

// DueBooking is one row of the outstanding-balance listing.
// RemainingDisplay carries the balance pre-formatted to two fraction
// digits for the dashboard table.
type DueBooking struct {
	BookingID        string              `json:"booking_id"`
	HallName         string              `json:"hall_name"`
	CustomerName     string              `json:"customer_name"`
	EventDate        string              `json:"event_date"`
	RemainingPayment decimal.Decimal     `json:"remaining_payment"`
	RemainingDisplay string              `json:"remaining_display"`
	Payment          PaymentPresentation `json:"payment"`
}

// ReconcileResult reports what a status reconciliation pass changed.
type ReconcileResult struct {
	Scanned   int      `json:"scanned"`
	Completed int      `json:"completed"`
	Bookings  []string `json:"bookings,omitempty"`
}
