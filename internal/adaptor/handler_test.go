package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/internal/gateway"
	"travel-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: bad input", usecase.ErrValidation), http.StatusBadRequest},
		{"invalid amount", gateway.ErrInvalidAmount, http.StatusBadRequest},
		{"unsupported currency", gateway.ErrUnsupportedCurrency, http.StatusBadRequest},
		{"gateway request", fmt.Errorf("refund: %w", gateway.ErrGatewayRequest), http.StatusBadRequest},
		{"bad credentials", usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"gateway auth", gateway.ErrGatewayAuth, http.StatusUnauthorized},
		{"card declined", gateway.ErrGatewayCard, http.StatusPaymentRequired},
		{"not found", fmt.Errorf("get booking: %w", repository.ErrNotFound), http.StatusNotFound},
		{"reference missing", gateway.ErrReferenceNotFound, http.StatusNotFound},
		{"invalid transition", fmt.Errorf("apply: %w", usecase.ErrInvalidTransition), http.StatusConflict},
		{"stale write", repository.ErrVersionConflict, http.StatusConflict},
		{"gateway timeout", gateway.ErrGatewayTimeout, http.StatusGatewayTimeout},
		{"unknown", fmt.Errorf("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleServiceError(zap.NewNop(), rec, tt.err, "test op")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

// stubBookingService returns a fixed error (or booking) for every call.
type stubBookingService struct {
	booking *response.BookingResponse
	err     error
}

func (s *stubBookingService) CreateBooking(context.Context, *request.CreateBookingRequest) (*response.BookingResponse, error) {
	return s.booking, s.err
}

func (s *stubBookingService) GetUserBookings(context.Context, string) ([]response.BookingResponse, error) {
	return nil, s.err
}

func (s *stubBookingService) GetBooking(context.Context, string) (*response.BookingResponse, error) {
	return s.booking, s.err
}

func (s *stubBookingService) RequestCancellation(context.Context, string, string) (*response.BookingResponse, error) {
	return s.booking, s.err
}

func (s *stubBookingService) RequestRefund(context.Context, string, string) (*response.BookingResponse, error) {
	return s.booking, s.err
}

func (s *stubBookingService) ListAllBookings(context.Context) ([]response.UserBookings, error) {
	return nil, s.err
}

func (s *stubBookingService) OperatorTransition(context.Context, string, entity.BookingStatus) (*response.BookingResponse, error) {
	return s.booking, s.err
}

func statusRequest(t *testing.T, status string) *http.Request {
	t.Helper()
	body, err := json.Marshal(request.TransitionRequest{Status: status})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/bookings/BK-1/status", bytes.NewReader(body))
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("id", "BK-1")
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))
}

func TestUpdateBookingStatus(t *testing.T) {
	t.Run("invalid transition returns 409", func(t *testing.T) {
		h := NewBookingHandler(&stubBookingService{err: usecase.ErrInvalidTransition}, zap.NewNop())

		rec := httptest.NewRecorder()
		h.UpdateBookingStatus(rec, statusRequest(t, "confirmed"))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("successful transition returns booking", func(t *testing.T) {
		h := NewBookingHandler(&stubBookingService{
			booking: &response.BookingResponse{BookingID: "BK-1", BookingStatus: entity.BookingStatusConfirmed},
		}, zap.NewNop())

		rec := httptest.NewRecorder()
		h.UpdateBookingStatus(rec, statusRequest(t, "confirmed"))

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Status bool                     `json:"status"`
			Data   response.BookingResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Status)
		assert.Equal(t, entity.BookingStatusConfirmed, envelope.Data.BookingStatus)
	})

	t.Run("missing status returns 400", func(t *testing.T) {
		h := NewBookingHandler(&stubBookingService{}, zap.NewNop())

		rec := httptest.NewRecorder()
		h.UpdateBookingStatus(rec, statusRequest(t, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDownloadInvoiceHeaders(t *testing.T) {
	h := NewInvoiceHandler(&stubInvoiceService{pdf: []byte("%PDF-1.4 fake")}, zap.NewNop())

	body, err := json.Marshal(request.InvoiceRequest{BookingID: "BK-1", InvoiceID: "INVBK-1"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.DownloadInvoice(rec, httptest.NewRequest(http.MethodPost, "/api/download-invoice", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=invoice-INVBK-1.pdf", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 fake", rec.Body.String())
}

type stubInvoiceService struct {
	pdf []byte
	err error
}

func (s *stubInvoiceService) RenderInvoice(*request.InvoiceRequest) ([]byte, error) {
	return s.pdf, s.err
}
