// main.go
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"travel-booking/cmd"
	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/events"
	"travel-booking/internal/gateway"
	"travel-booking/internal/provider"
	"travel-booking/internal/usecase"
	"travel-booking/internal/watch"
	"travel-booking/internal/wire"
	"travel-booking/pkg/cache"
	"travel-booking/pkg/database"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Payment gateway. A bad key means every payment fails, so verify it
	// up front instead of at the first customer request.
	gw := gateway.NewStripeGateway(config.Stripe.SecretKey, logger)
	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := gw.Ping(pingCtx); err != nil {
		cancel()
		if errors.Is(err, gateway.ErrGatewayAuth) {
			logger.Fatal("Stripe credentials rejected", zap.Error(err))
		}
		logger.Warn("Stripe gateway unreachable at startup", zap.Error(err))
	} else {
		cancel()
		logger.Info("Stripe gateway verified")
	}

	// Quote cache; pricing works without it.
	redisClient, err := cache.InitRedis(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, quote caching disabled", zap.Error(err))
		redisClient = nil
	}

	// Status event publisher; no-op when the broker is not configured.
	var publisher events.Publisher = events.NopPublisher{}
	if config.RabbitMQ.URL != "" {
		rabbit, err := events.NewRabbitMQPublisher(config.RabbitMQ.URL, config.RabbitMQ.QueueName, logger)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, status events disabled", zap.Error(err))
		} else {
			publisher = rabbit
		}
	}
	defer publisher.Close()

	// Refund reconciliation watcher.
	watcher := watch.NewRefundWatcher(
		repos.Booking,
		config.Watcher.PollInterval,
		func(booking *entity.Booking) {
			logger.Info("Refund confirmed for customer",
				zap.String("booking_id", booking.BookingID),
				zap.String("user_id", booking.UserID),
				zap.Int64("amount_inr", booking.TotalPriceINR),
			)
		},
		logger,
	)
	defer watcher.Close()

	// Resume polling for refunds that were pending when we last stopped.
	resumePendingRefunds(repos.Booking, watcher, logger)

	deps := usecase.Deps{
		Gateway:   gw,
		Publisher: publisher,
		Watchlist: watcher,
		Cache:     redisClient,
		Generator: provider.NewHTTPGenerator(config.Provider.GenerationURL, config.Provider.GenerationKey, logger),
		Places:    provider.NewHTTPPlaceLookup(config.Provider.PlacesURL, config.Provider.PlacesKey),
		Weather:   provider.NewHTTPWeatherLookup(config.Provider.WeatherURL, config.Provider.WeatherKey),
	}

	// Wire all dependencies
	app := wire.Wiring(repos, deps, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

// resumePendingRefunds re-registers refund_requested bookings after a
// restart so their watches survive process boundaries.
func resumePendingRefunds(bookings repository.BookingRepository, watcher *watch.RefundWatcher, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	all, err := bookings.FindAll(ctx)
	if err != nil {
		logger.Warn("Could not resume pending refund watches", zap.Error(err))
		return
	}

	count := 0
	for _, b := range all {
		if b.BookingStatus == entity.BookingStatusRefundRequested {
			watcher.Watch(b.ID)
			count++
		}
	}

	if count > 0 {
		logger.Info("Resumed refund watches", zap.Int("count", count))
	}
}
