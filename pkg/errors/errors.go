package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingAlreadyExists = errors.New("booking already exists")
	ErrInvalidEventDate     = errors.New("invalid event date")
	ErrInvalidDateRange     = errors.New("invalid date range")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeBookingNotFound      = "BOOKING_NOT_FOUND"
	ErrCodeBookingAlreadyExists = "BOOKING_ALREADY_EXISTS"
	ErrCodeInvalidEventDate     = "INVALID_EVENT_DATE"
	ErrCodeInvalidDateRange     = "INVALID_DATE_RANGE"
	ErrCodeDatabaseError        = "DATABASE_ERROR"
	ErrCodeCacheError           = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapBookingNotFound(bookingID string) *BusinessError {
	return NewBusinessError(
		ErrCodeBookingNotFound,
		fmt.Sprintf("Booking with ID %s not found", bookingID),
		ErrBookingNotFound,
	)
}

func WrapBookingAlreadyExists(bookingID string) *BusinessError {
	return NewBusinessError(
		ErrCodeBookingAlreadyExists,
		fmt.Sprintf("Booking with ID %s already exists", bookingID),
		ErrBookingAlreadyExists,
	)
}

func WrapInvalidEventDate(raw string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidEventDate,
		fmt.Sprintf("Event date %q is not a valid calendar date", raw),
		ErrInvalidEventDate,
	)
}

func WrapInvalidDateRange(checkIn, checkOut string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidDateRange,
		fmt.Sprintf("Stay range %q to %q is not valid", checkIn, checkOut),
		ErrInvalidDateRange,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}
