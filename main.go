package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventoz/config"
	"eventoz/cron"
	"eventoz/database"
	reservationRepoPkg "eventoz/database/repository/reservation"
	serviceRepoPkg "eventoz/database/repository/service"
	userRepoPkg "eventoz/database/repository/user"
	"eventoz/handlers"
	"eventoz/middleware"
	"eventoz/routes"
	"eventoz/services/auth"
	"eventoz/services/booking"
	"eventoz/services/catalog"
	"eventoz/services/tasks"
	"eventoz/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	resRepo := reservationRepoPkg.NewMongoReservationRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		ServiceRepo:     svcRepo,
		ReservationRepo: resRepo,
		Cache:           utils.GetCacheClient(),
		Scheduler:       tasks.NewAsynqScheduler(),
	}
	catalogService := &catalog.DefaultCatalogService{
		ServiceRepo: svcRepo,
	}
	authService := &auth.DefaultAuthService{
		UserRepo:  usrRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	handlers.BookingSvc = bookingService
	handlers.CatalogSvc = catalogService
	handlers.AuthSvc = authService

	routes.RegisterRoutes(router)

	// Background worker that completes reservations when their booked
	// window ends.
	cron.InitCompletionWorker(bookingService)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
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
