package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staybook/config"
	"staybook/database"
	catalogRepo "staybook/database/repository/catalog"
	reservationRepo "staybook/database/repository/reservation"
	"staybook/handlers"
	"staybook/middleware"
	"staybook/routes"
	"staybook/services/booking"
	"staybook/services/payment"
	"staybook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	resRepo := reservationRepo.NewMongoReservationRepo()

	// services.
	gate := &booking.AvailabilityGate{Catalog: catRepo}
	quoteService := &booking.DefaultQuoteService{
		Catalog:         catRepo,
		Gate:            gate,
		Currency:        config.AppConfig.Currency,
		ServiceFeeCents: config.AppConfig.ServiceFeeCents,
	}
	checkoutService := &booking.DefaultCheckoutService{
		Quotes:       quoteService,
		Catalog:      catRepo,
		Reservations: resRepo,
		Gateway:      payment.NewStripeGateway(),
		Gate:         gate,
		Idempotency:  booking.NewRedisIdempotencyStore(utils.GetCacheClient()),
	}

	bookingHandler := handlers.NewBookingHandler(quoteService, checkoutService, logger)
	webhookHandler := handlers.NewPaymentWebhookHandler(resRepo, logger)

	routes.RegisterRoutes(router, bookingHandler, webhookHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
