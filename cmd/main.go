package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Bekaronn/jetly/internal/app/config"
	"github.com/Bekaronn/jetly/internal/app/dto"
	"github.com/Bekaronn/jetly/internal/app/endpoints"
	"github.com/Bekaronn/jetly/internal/app/service"
	"github.com/Bekaronn/jetly/internal/app/transport"
	"github.com/Bekaronn/jetly/internal/pkg/amadeus"
	"github.com/Bekaronn/jetly/internal/pkg/booking"
	"github.com/Bekaronn/jetly/internal/pkg/locations"
	"github.com/Bekaronn/jetly/internal/pkg/logger"
	"github.com/Bekaronn/jetly/internal/pkg/passenger"
	"github.com/Bekaronn/jetly/internal/pkg/ticket"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	client := makeAmadeusClient(cfg, redisClient)

	searchService := service.NewSearchService(client)
	locationService := service.NewLocationService(
		locations.NewSearcher(client.FetchLocations, cfg.Locations.DebounceDelay))
	bookingService := makeBookingService(ctx, cfg, redisClient)

	return endpoints.MakeEndpoints(searchService, locationService, bookingService)
}

func makeAmadeusClient(cfg *config.Config, redisClient *redis.Client) *amadeus.Client {
	tokens := amadeus.NewTokenCache(
		cfg.Amadeus.BaseURL,
		cfg.Amadeus.ClientID,
		cfg.Amadeus.ClientSecret,
		cfg.Amadeus.Timeout,
	)

	return amadeus.NewClient(amadeus.ClientConfig{
		BaseURL:      cfg.Amadeus.BaseURL,
		Timeout:      cfg.Amadeus.Timeout,
		RateLimitRPS: cfg.Amadeus.RateLimitRPS,
		Limiter:      redis_rate.NewLimiter(redisClient),
	}, tokens)
}

func makeBookingService(ctx context.Context, cfg *config.Config, redisClient *redis.Client) *service.BookingService {
	validator, err := passenger.NewValidator()
	if err != nil {
		slog.ErrorContext(ctx, "failed to init passenger validator", slog.String("error", err.Error()))
		panic(err)
	}

	return service.NewBookingService(
		booking.NewStore(redisClient, cfg.Booking.StorageKey),
		validator,
		ticket.NewGenerator(cfg.Booking.TicketBaseURL),
	)
}
