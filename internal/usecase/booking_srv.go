package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/internal/events"
	"travel-booking/internal/gateway"
	"travel-booking/internal/pricing"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Customer endpoints
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	RequestCancellation(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error)
	RequestRefund(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error)

	// Operator endpoints
	ListAllBookings(ctx context.Context) ([]response.UserBookings, error)
	OperatorTransition(ctx context.Context, bookingID string, to entity.BookingStatus) (*response.BookingResponse, error)
}

// RefundWatchlist is where customer-initiated refund requests get
// registered for reconciliation polling.
type RefundWatchlist interface {
	Watch(id uuid.UUID)
}

type bookingService struct {
	repo      *repository.Repository
	gw        gateway.PaymentGateway
	publisher events.Publisher
	watchlist RefundWatchlist
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, gw gateway.PaymentGateway, publisher events.Publisher, watchlist RefundWatchlist, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		gw:        gw,
		publisher: publisher,
		watchlist: watchlist,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-in date %s", ErrValidation, req.CheckInDate)
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-out date %s", ErrValidation, req.CheckOutDate)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}

	nights := utils.NightsBetween(checkIn, checkOut)

	// Price is computed once, at creation, and never recomputed.
	// Unknown categories fall back to the default rate instead of
	// blocking the booking.
	quote := pricing.QuoteForCategory(req.RoomType, checkIn, req.Guests, nights)

	now := time.Now()
	bookingID := utils.GenerateBookingID()

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:       bookingID,
		InvoiceID:       utils.InvoiceIDFor(bookingID),
		UserID:          req.UserID,
		UserName:        req.UserName,
		UserMobile:      req.UserMobile,
		HotelName:       req.HotelName,
		HotelAddress:    req.HotelAddress,
		RoomType:        req.RoomType,
		Guests:          req.Guests,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Duration:        nights,
		SpecialRequests: req.SpecialRequests,
		BasePrice:       quote.BasePrice,
		Taxes:           quote.Taxes,
		TotalPriceINR:   quote.FinalPrice,
		PaymentStatus:   entity.PaymentStatusCompleted,
		BookingStatus:   entity.BookingStatusPending,
		PaymentRef:      req.PaymentIntentID,
		Version:         1,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("user_id", req.UserID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", bookingID),
		zap.String("user_id", req.UserID),
		zap.String("hotel", req.HotelName),
		zap.Int64("total_price_inr", booking.TotalPriceINR),
		zap.String("payment_ref", booking.PaymentRef),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = response.BookingToResponse(b)
	}

	return responses, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// RequestCancellation moves a pending or confirmed booking into
// cancellation_requested on behalf of its owning customer.
func (s *bookingService) RequestCancellation(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error) {
	return s.customerTransition(ctx, bookingID, userID, entity.BookingStatusCancellationRequested)
}

// RequestRefund moves a cancelled booking into refund_requested and
// registers it for reconciliation polling.
func (s *bookingService) RequestRefund(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error) {
	resp, err := s.customerTransition(ctx, bookingID, userID, entity.BookingStatusRefundRequested)
	if err != nil {
		return nil, err
	}

	if s.watchlist != nil {
		if id, parseErr := uuid.Parse(resp.ID); parseErr == nil {
			s.watchlist.Watch(id)
		}
	}

	return resp, nil
}

func (s *bookingService) customerTransition(ctx context.Context, bookingID, userID string, to entity.BookingStatus) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}

	if booking.UserID != userID {
		return nil, fmt.Errorf("%w: booking %s does not belong to %s", repository.ErrNotFound, bookingID, userID)
	}

	return s.applyTransition(ctx, booking, to, entity.ActorCustomer)
}

func (s *bookingService) ListAllBookings(ctx context.Context) ([]response.UserBookings, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list all bookings", zap.Error(err))
		return nil, fmt.Errorf("list all bookings: %w", err)
	}

	// Group by user, preserving the repository's user ordering.
	var grouped []response.UserBookings
	index := make(map[string]int)
	for _, b := range bookings {
		i, ok := index[b.UserID]
		if !ok {
			i = len(grouped)
			index[b.UserID] = i
			grouped = append(grouped, response.UserBookings{UserID: b.UserID})
		}
		grouped[i].Bookings = append(grouped[i].Bookings, response.BookingToResponse(b))
	}

	return grouped, nil
}

func (s *bookingService) OperatorTransition(ctx context.Context, bookingID string, to entity.BookingStatus) (*response.BookingResponse, error) {
	if !entity.ValidStatus(to) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, to)
	}

	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}

	return s.applyTransition(ctx, booking, to, entity.ActorOperator)
}
