// Package status derives the real-time view of a booking from its
// stored fields and the current wall clock. The backend's stored
// program status goes stale once an event's time window elapses; these
// resolvers compute what should be displayed without writing anything
// back.
package status

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grandoria/booking-engine/internal/domain"
)

// Clock supplies the current instant so resolvers stay deterministic
// under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the machine clock in its local zone.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }

// slotEndHour maps a normalized time slot to the hour of day at which
// the slot is considered over. Unknown slots fall through to the
// end-of-day threshold so a booking is never marked passed early.
var slotEndHour = map[string]int{
	domain.SlotMorning:   12,
	domain.SlotAfternoon: 18,
	domain.SlotEvening:   23,
	domain.SlotFullDay:   23,
}

const defaultEndHour = 23

// Resolver computes derived booking state against an injected clock.
type Resolver struct {
	clock Clock
}

func NewResolver(clock Clock) *Resolver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Resolver{clock: clock}
}

// EventPassed reports whether the event's time window has elapsed.
// Days are compared by calendar date; on the event day itself the
// slot's end hour decides.
func (r *Resolver) EventPassed(eventDate time.Time, timeSlot string) bool {
	now := r.clock.Now()

	switch compareDays(eventDate, now) {
	case -1:
		return true
	case 1:
		return false
	}

	endHour, ok := slotEndHour[domain.NormalizeTimeSlot(timeSlot)]
	if !ok {
		endHour = defaultEndHour
	}
	return now.Hour() >= endHour
}

// ProgramStatus resolves the effective lifecycle status of a booking.
// Cancellation is terminal and never overridden; a passed event is
// reported completed regardless of the stored status; otherwise the
// stored status is normalized onto the enum and returned.
func (r *Resolver) ProgramStatus(b *domain.ConventionBooking) string {
	stored := domain.NormalizeProgramStatus(b.ProgramStatus)
	if stored == domain.ProgramStatusCancelled {
		return domain.ProgramStatusCancelled
	}
	if r.EventPassed(b.EventDate, b.TimeSlot) {
		return domain.ProgramStatusCompleted
	}
	return stored
}

// PaymentPresentation classifies the outstanding balance for display.
// A cleared balance is paid and not due; otherwise the stored payment
// status decides between partial and pending, both due.
func (r *Resolver) PaymentPresentation(remaining decimal.Decimal, storedPaymentStatus string) domain.PaymentPresentation {
	if remaining.LessThanOrEqual(decimal.Zero) {
		return domain.PaymentPresentation{
			Status:      domain.PaymentStatusPaid,
			DisplayText: "Paid",
			IsDue:       false,
		}
	}

	if domain.NormalizePaymentStatus(storedPaymentStatus) == domain.PaymentStatusPartial {
		return domain.PaymentPresentation{
			Status:      domain.PaymentStatusPartial,
			DisplayText: "Partial (Due)",
			IsDue:       true,
		}
	}

	return domain.PaymentPresentation{
		Status:      domain.PaymentStatusPending,
		DisplayText: "Pending (Due)",
		IsDue:       true,
	}
}

// compareDays orders two instants by calendar date only, each in its
// own location. Converting the event date into the server zone first
// would shift UTC-midnight dates by a day on servers west of UTC.
func compareDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
