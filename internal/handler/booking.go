package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/grandoria/booking-engine/internal/domain"
	"github.com/grandoria/booking-engine/internal/service"
	customError "github.com/grandoria/booking-engine/pkg/errors"
	"github.com/grandoria/booking-engine/pkg/response"
)

type BookingHandler struct {
	service   *service.BookingService
	validator *validator.Validate
}

func NewBookingHandler(service *service.BookingService) *BookingHandler {
	return &BookingHandler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateBooking handles POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	booking, err := h.service.RecordBooking(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	response.Created(w, booking)
}

// GetSummary handles GET /api/v1/bookings/{bookingId}/summary
func (h *BookingHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		response.BadRequest(w, "Booking ID is required", nil)
		return
	}

	summary, err := h.service.BookingSummary(r.Context(), bookingID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	response.Success(w, summary)
}

// ListDue handles GET /api/v1/bookings/due
func (h *BookingHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	due, err := h.service.ListDueBookings(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	response.Success(w, due)
}

// QuoteInvoice handles POST /api/v1/invoices/quote
func (h *BookingHandler) QuoteInvoice(w http.ResponseWriter, r *http.Request) {
	var req domain.QuoteInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	response.Success(w, h.service.QuoteInvoice(&req))
}

// QuoteStay handles POST /api/v1/stays/quote
func (h *BookingHandler) QuoteStay(w http.ResponseWriter, r *http.Request) {
	var req domain.QuoteStayRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	quote, err := h.service.QuoteStay(&req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	response.Success(w, quote)
}

// decodeJSON decodes a request body keeping numbers as json.Number so
// monetary fields reach the coercion layer unrounded.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(dst)
}

func (h *BookingHandler) respondServiceError(w http.ResponseWriter, err error) {
	var bizErr *customError.BusinessError
	if !errors.As(err, &bizErr) {
		response.InternalServerError(w, "Unexpected error", err)
		return
	}

	switch bizErr.Code {
	case customError.ErrCodeBookingNotFound:
		response.NotFound(w, bizErr.Message)
	case customError.ErrCodeBookingAlreadyExists:
		response.Conflict(w, bizErr.Message, bizErr)
	case customError.ErrCodeInvalidEventDate, customError.ErrCodeInvalidDateRange:
		response.BadRequest(w, bizErr.Message, bizErr)
	default:
		response.InternalServerError(w, bizErr.Message, bizErr)
	}
}
