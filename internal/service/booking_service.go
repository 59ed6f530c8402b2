package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/grandoria/booking-engine/internal/cache"
	"github.com/grandoria/booking-engine/internal/config"
	"github.com/grandoria/booking-engine/internal/domain"
	"github.com/grandoria/booking-engine/internal/pricing"
	"github.com/grandoria/booking-engine/internal/repository"
	"github.com/grandoria/booking-engine/internal/status"
	customError "github.com/grandoria/booking-engine/pkg/errors"
	"github.com/grandoria/booking-engine/pkg/numeric"
)

type BookingService struct {
	bookingRepo repository.BookingRepository
	summaries   cache.SummaryCache
	resolver    *status.Resolver
	clock       status.Clock
	config      *config.Config
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	summaries cache.SummaryCache,
	clock status.Clock,
	cfg *config.Config,
) *BookingService {
	if clock == nil {
		clock = status.SystemClock{}
	}
	return &BookingService{
		bookingRepo: bookingRepo,
		summaries:   summaries,
		resolver:    status.NewResolver(clock),
		clock:       clock,
		config:      cfg,
	}
}

// RecordBooking stores a convention booking. Amounts arrive loose from
// the dashboard and are coerced before any arithmetic; derived totals
// are computed here so the stored remaining balance starts consistent.
func (s *BookingService) RecordBooking(ctx context.Context, req *domain.CreateBookingRequest) (*domain.ConventionBooking, error) {
	existing, err := s.bookingRepo.GetByBookingID(ctx, req.BookingID)
	if err == nil && existing != nil {
		return nil, customError.WrapBookingAlreadyExists(req.BookingID)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapDatabaseError(err)
	}

	eventDate, err := time.Parse(domain.DateFormat, req.EventDate)
	if err != nil {
		return nil, customError.WrapInvalidEventDate(req.EventDate)
	}

	base := numeric.Decimal(req.BaseAmount)
	percentage := numeric.Percent(req.DiscountPercentage)
	flat := numeric.Decimal(req.DiscountAmount)
	extras := numeric.Decimal(req.ExtraCharges)
	advance := numeric.Decimal(req.AdvancePayment)

	grandTotal := pricing.GrandTotal(base, req.DiscountType, percentage, flat, extras)
	remaining := pricing.RemainingPayment(grandTotal, advance)

	paymentStatus := domain.NormalizePaymentStatus(req.PaymentStatus)
	if req.PaymentStatus == "" {
		paymentStatus = pricing.PaymentStatus(grandTotal, advance)
	}

	now := s.clock.Now()
	booking := &domain.ConventionBooking{
		ID:                 uuid.New(),
		BookingID:          req.BookingID,
		HallName:           req.HallName,
		CustomerName:       req.CustomerName,
		EventDate:          eventDate,
		TimeSlot:           domain.NormalizeTimeSlot(req.TimeSlot),
		ProgramStatus:      domain.NormalizeProgramStatus(req.ProgramStatus),
		PaymentStatus:      paymentStatus,
		BaseAmount:         base,
		DiscountType:       domain.NormalizeDiscountType(req.DiscountType),
		DiscountPercentage: percentage,
		DiscountAmount:     flat,
		ExtraCharges:       extras,
		AdvancePayment:     advance,
		RemainingPayment:   remaining,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	if err := s.summaries.Invalidate(ctx, booking.BookingID); err != nil {
		log.Printf("summary invalidation failed for %s: %v", booking.BookingID, customError.WrapCacheError(err))
	}

	return booking, nil
}

// BookingSummary returns the display view of a booking with every
// derived value recomputed: real-time program status, payment
// presentation and the invoice breakdown. Summaries are served from
// the cache while fresh.
func (s *BookingService) BookingSummary(ctx context.Context, bookingID string) (*domain.BookingSummary, error) {
	if cached, err := s.summaries.Get(ctx, bookingID); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("summary cache read failed for %s: %v", bookingID, customError.WrapCacheError(err))
	}

	booking, err := s.bookingRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapBookingNotFound(bookingID)
		}
		return nil, customError.WrapDatabaseError(err)
	}

	summary := s.buildSummary(booking)

	if err := s.summaries.Set(ctx, summary, s.config.GetSummaryCacheTTL()); err != nil {
		log.Printf("summary cache write failed for %s: %v", bookingID, customError.WrapCacheError(err))
	}

	return summary, nil
}

// ListDueBookings lists bookings with an outstanding balance along
// with their payment presentation.
func (s *BookingService) ListDueBookings(ctx context.Context) ([]*domain.DueBooking, error) {
	bookings, err := s.bookingRepo.ListWithBalanceDue(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	due := make([]*domain.DueBooking, 0, len(bookings))
	for _, b := range bookings {
		invoice := s.invoiceBreakdown(b)
		due = append(due, &domain.DueBooking{
			BookingID:        b.BookingID,
			HallName:         b.HallName,
			CustomerName:     b.CustomerName,
			EventDate:        b.EventDate.Format(domain.DateFormat),
			RemainingPayment: invoice.RemainingPayment,
			RemainingDisplay: numeric.FormatAmount(invoice.RemainingPayment),
			Payment:          s.resolver.PaymentPresentation(invoice.RemainingPayment, b.PaymentStatus),
		})
	}

	return due, nil
}

// QuoteInvoice computes an invoice breakdown from loose amounts
// without touching storage.
func (s *BookingService) QuoteInvoice(req *domain.QuoteInvoiceRequest) *domain.InvoiceBreakdown {
	base := numeric.Decimal(req.BaseAmount)
	percentage := numeric.Percent(req.DiscountPercentage)
	flat := numeric.Decimal(req.DiscountAmount)
	extras := numeric.Decimal(req.ExtraCharges)
	advance := numeric.Decimal(req.AdvancePayment)

	return breakdown(base, req.DiscountType, percentage, flat, extras, advance)
}

// QuoteStay prices a room stay: whole nights times the nightly rate,
// fed through the same invoice math as convention bookings.
func (s *BookingService) QuoteStay(req *domain.QuoteStayRequest) (*domain.QuoteStayResponse, error) {
	checkIn, err := time.Parse(domain.DateFormat, req.CheckIn)
	if err != nil {
		return nil, customError.WrapInvalidDateRange(req.CheckIn, req.CheckOut)
	}
	checkOut, err := time.Parse(domain.DateFormat, req.CheckOut)
	if err != nil {
		return nil, customError.WrapInvalidDateRange(req.CheckIn, req.CheckOut)
	}

	nights := pricing.Nights(checkIn, checkOut)
	rate := numeric.Decimal(req.NightlyRate)
	base := rate.Mul(decimal.NewFromInt(int64(nights)))

	percentage := numeric.Percent(req.DiscountPercentage)
	flat := numeric.Decimal(req.DiscountAmount)
	extras := numeric.Decimal(req.ExtraCharges)
	advance := numeric.Decimal(req.AdvancePayment)

	return &domain.QuoteStayResponse{
		Nights:      nights,
		NightlyRate: rate,
		Invoice:     *breakdown(base, req.DiscountType, percentage, flat, extras, advance),
	}, nil
}

// ReconcileStatuses persists the auto-complete correction: bookings
// whose event window has elapsed and whose stored status is not
// terminal are updated to completed. Cancelled bookings are never
// touched.
func (s *BookingService) ReconcileStatuses(ctx context.Context) (*domain.ReconcileResult, error) {
	cutoff := s.clock.Now()
	bookings, err := s.bookingRepo.ListUnresolvedBefore(ctx, cutoff, s.config.Business.ReconcileLimit)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	result := &domain.ReconcileResult{Scanned: len(bookings)}
	for _, b := range bookings {
		if s.resolver.ProgramStatus(b) != domain.ProgramStatusCompleted {
			continue
		}

		if err := s.bookingRepo.UpdateProgramStatus(ctx, b.BookingID, domain.ProgramStatusCompleted); err != nil {
			return result, customError.WrapDatabaseError(err)
		}
		if err := s.summaries.Invalidate(ctx, b.BookingID); err != nil {
			log.Printf("summary invalidation failed for %s: %v", b.BookingID, customError.WrapCacheError(err))
		}

		result.Completed++
		result.Bookings = append(result.Bookings, b.BookingID)
	}

	return result, nil
}

func (s *BookingService) buildSummary(b *domain.ConventionBooking) *domain.BookingSummary {
	invoice := s.invoiceBreakdown(b)

	return &domain.BookingSummary{
		BookingID:     b.BookingID,
		HallName:      b.HallName,
		CustomerName:  b.CustomerName,
		EventDate:     b.EventDate.Format(domain.DateFormat),
		TimeSlot:      domain.NormalizeTimeSlot(b.TimeSlot),
		StoredStatus:  domain.NormalizeProgramStatus(b.ProgramStatus),
		ProgramStatus: s.resolver.ProgramStatus(b),
		Payment:       s.resolver.PaymentPresentation(invoice.RemainingPayment, b.PaymentStatus),
		Invoice:       *invoice,
		ComputedAt:    s.clock.Now(),
	}
}

// invoiceBreakdown recomputes totals from the stored raw amounts
// rather than trusting the stored remaining balance.
func (s *BookingService) invoiceBreakdown(b *domain.ConventionBooking) *domain.InvoiceBreakdown {
	return breakdown(b.BaseAmount, b.DiscountType, b.DiscountPercentage, b.DiscountAmount, b.ExtraCharges, b.AdvancePayment)
}

func breakdown(base decimal.Decimal, discountType string, percentage, flat, extras, advance decimal.Decimal) *domain.InvoiceBreakdown {
	if base.IsNegative() {
		base = decimal.Zero
	}
	if extras.IsNegative() {
		extras = decimal.Zero
	}
	if advance.IsNegative() {
		advance = decimal.Zero
	}

	discount := pricing.Discount(base, discountType, percentage, flat)
	grandTotal := pricing.GrandTotal(base, discountType, percentage, flat, extras)
	remaining := pricing.RemainingPayment(grandTotal, advance)

	return &domain.InvoiceBreakdown{
		BaseAmount:       base,
		DiscountType:     domain.NormalizeDiscountType(discountType),
		Discount:         discount,
		ExtraCharges:     extras,
		GrandTotal:       grandTotal,
		AdvancePayment:   advance,
		RemainingPayment: remaining,
		PaymentStatus:    pricing.PaymentStatus(grandTotal, advance),
	}
}
