package repository

import (
	"context"
	"time"

	"github.com/grandoria/booking-engine/internal/domain"
)

// BookingRepository defines the interface for convention booking data
// operations
type BookingRepository interface {
	// Create creates a new convention booking
	Create(ctx context.Context, booking *domain.ConventionBooking) error

	// GetByBookingID retrieves a booking by its business ID
	GetByBookingID(ctx context.Context, bookingID string) (*domain.ConventionBooking, error)

	// UpdateProgramStatus updates the stored program status of a booking
	UpdateProgramStatus(ctx context.Context, bookingID string, status string) error

	// ListWithBalanceDue lists non-cancelled bookings with an
	// outstanding balance, earliest event first
	ListWithBalanceDue(ctx context.Context) ([]*domain.ConventionBooking, error)

	// ListUnresolvedBefore lists bookings whose stored status is not
	// terminal and whose event date is on or before the cutoff
	ListUnresolvedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*domain.ConventionBooking, error)
}
