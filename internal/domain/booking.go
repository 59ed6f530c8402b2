package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Program lifecycle statuses for a convention booking.
const (
	ProgramStatusPending   = "pending"
	ProgramStatusConfirmed = "confirmed"
	ProgramStatusRunning   = "running"
	ProgramStatusCompleted = "completed"
	ProgramStatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// Time slots a convention hall can be booked for.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
	SlotFullDay   = "full-day"
)

// Date format used on the wire for calendar dates.
const DateFormat = "2006-01-02"

// ConventionBooking is a convention-hall booking row together with the
// raw invoice amounts the backend stored for it. Derived values (real
// time status, recomputed totals) are never stored on this struct.
type ConventionBooking struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	BookingID          string          `json:"booking_id" db:"booking_id"`
	HallName           string          `json:"hall_name" db:"hall_name"`
	CustomerName       string          `json:"customer_name" db:"customer_name"`
	EventDate          time.Time       `json:"event_date" db:"event_date"`
	TimeSlot           string          `json:"time_slot" db:"time_slot"`
	ProgramStatus      string          `json:"program_status" db:"program_status"`
	PaymentStatus      string          `json:"payment_status" db:"payment_status"`
	BaseAmount         decimal.Decimal `json:"base_amount" db:"base_amount"`
	DiscountType       string          `json:"discount_type" db:"discount_type"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage" db:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount" db:"discount_amount"`
	ExtraCharges       decimal.Decimal `json:"extra_charges" db:"extra_charges"`
	AdvancePayment     decimal.Decimal `json:"advance_payment" db:"advance_payment"`
	RemainingPayment   decimal.Decimal `json:"remaining_payment" db:"remaining_payment"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}

// NormalizeProgramStatus maps stored status text onto the program
// status enum. Unrecognized values become pending rather than leaking
// arbitrary backend text into derived output.
func NormalizeProgramStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ProgramStatusConfirmed:
		return ProgramStatusConfirmed
	case ProgramStatusRunning:
		return ProgramStatusRunning
	case ProgramStatusCompleted:
		return ProgramStatusCompleted
	case ProgramStatusCancelled:
		return ProgramStatusCancelled
	default:
		return ProgramStatusPending
	}
}

// NormalizePaymentStatus maps stored payment status text onto the
// payment status enum, defaulting to pending.
func NormalizePaymentStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case PaymentStatusPartial:
		return PaymentStatusPartial
	case PaymentStatusPaid:
		return PaymentStatusPaid
	default:
		return PaymentStatusPending
	}
}

// NormalizeTimeSlot lower-cases a slot name and folds the spelled-out
// "full day" variant. Unknown slots pass through lower-cased; the
// status resolver treats them as end-of-day.
func NormalizeTimeSlot(s string) string {
	slot := strings.ToLower(strings.TrimSpace(s))
	if slot == "full day" {
		return SlotFullDay
	}
	return slot
}
