package repository

import (
	"context"
	"time"

	"github.com/grandoria/booking-engine/internal/domain"

	"github.com/jmoiron/sqlx"
)

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.ConventionBooking) error {
	query := `
		INSERT INTO convention_bookings (
			id, booking_id, hall_name, customer_name, event_date, time_slot,
			program_status, payment_status, base_amount, discount_type,
			discount_percentage, discount_amount, extra_charges,
			advance_payment, remaining_payment, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.BookingID,
		booking.HallName,
		booking.CustomerName,
		booking.EventDate,
		booking.TimeSlot,
		booking.ProgramStatus,
		booking.PaymentStatus,
		booking.BaseAmount,
		booking.DiscountType,
		booking.DiscountPercentage,
		booking.DiscountAmount,
		booking.ExtraCharges,
		booking.AdvancePayment,
		booking.RemainingPayment,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	return err
}

func (r *bookingRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.ConventionBooking, error) {
	query := `
		SELECT id, booking_id, hall_name, customer_name, event_date, time_slot,
		       program_status, payment_status, base_amount, discount_type,
		       discount_percentage, discount_amount, extra_charges,
		       advance_payment, remaining_payment, created_at, updated_at
		FROM convention_bookings
		WHERE booking_id = $1
	`

	var booking domain.ConventionBooking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateProgramStatus(ctx context.Context, bookingID string, status string) error {
	query := `
		UPDATE convention_bookings
		SET program_status = $2, updated_at = $3
		WHERE booking_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, bookingID, status, time.Now())
	return err
}

func (r *bookingRepository) ListWithBalanceDue(ctx context.Context) ([]*domain.ConventionBooking, error) {
	query := `
		SELECT id, booking_id, hall_name, customer_name, event_date, time_slot,
		       program_status, payment_status, base_amount, discount_type,
		       discount_percentage, discount_amount, extra_charges,
		       advance_payment, remaining_payment, created_at, updated_at
		FROM convention_bookings
		WHERE remaining_payment > 0 AND program_status <> 'cancelled'
		ORDER BY event_date, booking_id
	`

	var bookings []*domain.ConventionBooking
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *bookingRepository) ListUnresolvedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*domain.ConventionBooking, error) {
	query := `
		SELECT id, booking_id, hall_name, customer_name, event_date, time_slot,
		       program_status, payment_status, base_amount, discount_type,
		       discount_percentage, discount_amount, extra_charges,
		       advance_payment, remaining_payment, created_at, updated_at
		FROM convention_bookings
		WHERE program_status NOT IN ('completed', 'cancelled')
		  AND event_date <= $1
		ORDER BY event_date, booking_id
		LIMIT $2
	`

	var bookings []*domain.ConventionBooking
	err := r.db.SelectContext(ctx, &bookings, query, cutoff, limit)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
