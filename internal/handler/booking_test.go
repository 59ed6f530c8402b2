package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandoria/booking-engine/internal/config"
	"github.com/grandoria/booking-engine/internal/service"
	"github.com/grandoria/booking-engine/tests/mocks"
)

func newTestHandler() *BookingHandler {
	cfg := &config.Config{
		Business: config.BusinessConfig{
			SummaryCacheTTL: "30s",
			ReconcileLimit:  100,
		},
	}
	svc := service.NewBookingService(&mocks.MockBookingRepository{}, &mocks.MockSummaryCache{}, nil, cfg)
	return NewBookingHandler(svc)
}

func newRouter(h *BookingHandler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/invoices/quote", h.QuoteInvoice).Methods("POST")
	router.HandleFunc("/api/v1/stays/quote", h.QuoteStay).Methods("POST")
	return router
}

func TestQuoteInvoiceEndpoint(t *testing.T) {
	router := newRouter(newTestHandler())

	body := `{
		"base_amount": "1000",
		"discount_type": "percentage",
		"discount_percentage": 10,
		"extra_charges": 200,
		"advance_payment": 400
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			GrandTotal       string `json:"grand_total"`
			RemainingPayment string `json:"remaining_payment"`
			PaymentStatus    string `json:"payment_status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	assert.Equal(t, "1100", envelope.Data.GrandTotal)
	assert.Equal(t, "700", envelope.Data.RemainingPayment)
	assert.Equal(t, "partial", envelope.Data.PaymentStatus)
}

func TestQuoteInvoiceEndpoint_MalformedBody(t *testing.T) {
	router := newRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/quote", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteStayEndpoint(t *testing.T) {
	router := newRouter(newTestHandler())

	body := `{
		"check_in": "2025-01-01",
		"check_out": "2025-01-03",
		"nightly_rate": 1500
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stays/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Nights  int `json:"nights"`
			Invoice struct {
				GrandTotal string `json:"grand_total"`
			} `json:"invoice"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Equal(t, 2, envelope.Data.Nights)
	assert.Equal(t, "3000", envelope.Data.Invoice.GrandTotal)
}

func TestQuoteStayEndpoint_MissingDates(t *testing.T) {
	router := newRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stays/quote", strings.NewReader(`{"nightly_rate": 1500}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteStayEndpoint_UnparsableDates(t *testing.T) {
	router := newRouter(newTestHandler())

	body := `{"check_in": "soon", "check_out": "later", "nightly_rate": 1500}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stays/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
