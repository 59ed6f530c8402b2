package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessError(t *testing.T) {
	inner := errors.New("boom")
	err := NewBusinessError("SOME_CODE", "something broke", inner)

	assert.Equal(t, "SOME_CODE: something broke (boom)", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := NewBusinessError("SOME_CODE", "something broke", nil)
	assert.Equal(t, "SOME_CODE: something broke", bare.Error())
}

func TestWrappers(t *testing.T) {
	cacheErr := errors.New("redis: connection refused")

	tests := []struct {
		name         string
		err          *BusinessError
		expectedCode string
		sentinel     error
	}{
		{
			name:         "booking not found",
			err:          WrapBookingNotFound("CONV-1"),
			expectedCode: ErrCodeBookingNotFound,
			sentinel:     ErrBookingNotFound,
		},
		{
			name:         "booking already exists",
			err:          WrapBookingAlreadyExists("CONV-1"),
			expectedCode: ErrCodeBookingAlreadyExists,
			sentinel:     ErrBookingAlreadyExists,
		},
		{
			name:         "invalid event date",
			err:          WrapInvalidEventDate("01/07/2025"),
			expectedCode: ErrCodeInvalidEventDate,
			sentinel:     ErrInvalidEventDate,
		},
		{
			name:         "invalid date range",
			err:          WrapInvalidDateRange("soon", "later"),
			expectedCode: ErrCodeInvalidDateRange,
			sentinel:     ErrInvalidDateRange,
		},
		{
			name:         "database error",
			err:          WrapDatabaseError(errors.New("pq: relation missing")),
			expectedCode: ErrCodeDatabaseError,
		},
		{
			name:         "cache error",
			err:          WrapCacheError(cacheErr),
			expectedCode: ErrCodeCacheError,
			sentinel:     cacheErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Contains(t, tt.err.Error(), tt.expectedCode)
			if tt.sentinel != nil {
				assert.ErrorIs(t, tt.err, tt.sentinel)
			}
		})
	}
}
