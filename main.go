// File: rentride/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentride/config"
	"rentride/cron"
	"rentride/database"
	bookingRepoPkg "rentride/database/repository/booking"
	carRepoPkg "rentride/database/repository/car"
	renterRepoPkg "rentride/database/repository/renter"
	"rentride/handlers"
	"rentride/middleware"
	"rentride/routes"
	"rentride/services/booking"
	"rentride/services/notification"
	"rentride/services/renter"
	"rentride/services/routing"
	"rentride/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	carRepo := carRepoPkg.NewMongoCarRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	renterRepo := renterRepoPkg.NewMongoRenterRepo()

	// background worker for hold expiry.
	cron.InitHoldReleaseWorker(carRepo)
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()

	// services.
	alertService := &notification.DefaultAlertService{
		Cache:  utils.GetAlertCacheClient(),
		Logger: logger,
	}
	holdService := &booking.DefaultHoldService{
		Cache:    utils.GetHoldCacheClient(),
		CarRepo:  carRepo,
		Enqueuer: taskClient,
		TTL:      time.Duration(config.AppConfig.HoldTTLMinutes) * time.Minute,
		Logger:   logger,
	}
	mapboxClient := routing.NewMapboxClient(250, 35)
	paymentHandler := booking.NewPaymentHandler(logger)
	bookingService := &booking.DefaultBookingService{
		Cars:     carRepo,
		Bookings: bookingRepo,
		Holds:    holdService,
		Payments: paymentHandler,
		Routing:  mapboxClient,
		Alerts:   alertService,
		Logger:   logger,
	}
	authService := &renter.DefaultAuthService{
		Repo:   renterRepo,
		Logger: logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Car:      handlers.NewCarHandler(carRepo),
		Booking:  handlers.NewBookingHandler(bookingService, bookingRepo, logger),
		Hold:     handlers.NewHoldHandler(holdService, logger),
		Delivery: handlers.NewDeliveryHandler(carRepo, mapboxClient),
		Alerts:   handlers.NewAlertHandler(alertService),
		Auth:     handlers.NewAuthHandler(authService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{
			utils.GetCacheClient(),
			utils.GetHoldCacheClient(),
			utils.GetAlertCacheClient(),
		},
		database.MongoClient,
	)

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
