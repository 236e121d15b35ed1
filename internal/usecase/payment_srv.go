package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/internal/gateway"
	"travel-booking/internal/pricing"
	"travel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const quoteCacheTTL = 5 * time.Minute

type PaymentService interface {
	GetRoomPricing(ctx context.Context, req *request.RoomPricingRequest) (*pricing.Quote, error)
	CreatePaymentIntent(ctx context.Context, req *request.CreatePaymentIntentRequest) (*response.PaymentIntentResponse, error)
	ProcessRefund(ctx context.Context, req *request.ProcessRefundRequest) (*response.RefundResponse, error)
}

type paymentService struct {
	gw    gateway.PaymentGateway
	cache *redis.Client // nil disables caching
	log   *zap.Logger
}

func NewPaymentService(gw gateway.PaymentGateway, cache *redis.Client, log *zap.Logger) PaymentService {
	return &paymentService{
		gw:    gw,
		cache: cache,
		log:   log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) GetRoomPricing(ctx context.Context, req *request.RoomPricingRequest) (*pricing.Quote, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Room pricing validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-in date %s", ErrValidation, req.CheckIn)
	}

	cacheKey := fmt.Sprintf("quote:%s:%s:%d:%d", req.ProductID, req.CheckIn, req.Guests, req.Duration)

	if cached := s.cachedQuote(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	quote := pricing.QuoteForCategory(req.ProductID, checkIn, req.Guests, req.Duration)

	s.storeQuote(ctx, cacheKey, &quote)

	s.log.Info("Room pricing calculated",
		zap.String("product_id", req.ProductID),
		zap.Int64("base_price", quote.BasePrice),
		zap.Int64("final_price", quote.FinalPrice),
		zap.Int("duration", quote.Duration),
	)

	return &quote, nil
}

// cachedQuote returns nil on any cache miss or failure; pricing never
// depends on Redis being up.
func (s *paymentService) cachedQuote(ctx context.Context, key string) *pricing.Quote {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("Quote cache read failed", zap.Error(err))
		}
		return nil
	}

	var quote pricing.Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		return nil
	}

	return &quote
}

func (s *paymentService) storeQuote(ctx context.Context, key string, quote *pricing.Quote) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(quote)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, data, quoteCacheTTL).Err(); err != nil {
		s.log.Warn("Quote cache write failed", zap.Error(err))
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, req *request.CreatePaymentIntentRequest) (*response.PaymentIntentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create payment intent validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	meta := gateway.Metadata{
		BookingID: utils.GenerateBookingID(),
		UserID:    req.BookingDetails.UserID,
		HotelName: req.BookingDetails.HotelName,
		CheckIn:   req.BookingDetails.CheckIn,
		CheckOut:  req.BookingDetails.CheckOut,
	}

	auth, err := s.gw.Authorize(ctx, req.Amount, req.Currency, meta)
	if err != nil {
		s.log.Error("Payment authorization failed",
			zap.Error(err),
			zap.Int64("amount", req.Amount),
			zap.String("user_id", req.BookingDetails.UserID),
		)
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &response.PaymentIntentResponse{
		ClientSecret:    auth.ClientSecret,
		PaymentIntentID: auth.Reference,
	}, nil
}

func (s *paymentService) ProcessRefund(ctx context.Context, req *request.ProcessRefundRequest) (*response.RefundResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process refund validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	refund, err := s.gw.Refund(ctx, req.PaymentIntentID, req.Amount)
	if err != nil {
		s.log.Error("Gateway refund failed",
			zap.Error(err),
			zap.String("payment_intent_id", req.PaymentIntentID),
		)
		return nil, fmt.Errorf("process refund: %w", err)
	}

	s.log.Info("Refund processed",
		zap.String("payment_intent_id", req.PaymentIntentID),
		zap.String("refund_id", refund.RefundReference),
		zap.Int64("amount", req.Amount),
	)

	return &response.RefundResponse{RefundID: refund.RefundReference}, nil
}
