// File: slotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/database"
	appointmentRepoPkg "slotify/database/repository/appointment"
	slotRepoPkg "slotify/database/repository/slot"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/availability"
	"slotify/services/booking"
	ai "slotify/services/intelligence"
	"slotify/services/notification"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	loc, err := time.LoadLocation(config.AppConfig.DisplayTimezone)
	if err != nil {
		logger.Sugar().Warnf("main: unknown display timezone %q, falling back to UTC", config.AppConfig.DisplayTimezone)
		loc = time.UTC
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	rangeRepo := slotRepoPkg.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	if err := rangeRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// collaborators.
	var parser ai.AvailabilityParser
	if config.AppConfig.GeminiAPIKey != "" {
		parser = ai.NewGeminiParser(config.AppConfig.GeminiAPIKey, config.AppConfig.DisplayTimezone)
	} else {
		logger.Sugar().Warn("main: GEMINI_API_KEY not set, chat availability parsing disabled")
	}

	var notifier notification.Notifier
	if config.AppConfig.TelegramBotToken != "" && config.AppConfig.TelegramChatID != "" {
		notifier = notification.NewTelegramNotifier(config.AppConfig.TelegramBotToken, config.AppConfig.TelegramChatID, loc)
	} else {
		logger.Sugar().Warn("main: Telegram credentials not set, booking notifications disabled")
	}

	// services.
	availabilityService := availability.NewService(rangeRepo, parser, loc)
	bookingService := booking.NewService(rangeRepo, apptRepo, notifier, utils.GetCacheClient(), loc)

	// handlers.
	authHandler := handlers.NewAuthHandler()
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	notifyHandler := handlers.NewNotifyHandler(notifier)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SessionTiersHandler:   bookingHandler.SessionTiersHandler,
		CandidateSlotsHandler: bookingHandler.CandidateSlotsHandler,
		CreateBookingHandler:  bookingHandler.CreateBookingHandler,

		AdminLoginHandler:  authHandler.LoginHandler,
		AdminLogoutHandler: authHandler.LogoutHandler,

		DeclareRangesHandler:   availabilityHandler.DeclareRangesHandler,
		DeclareFromChatHandler: availabilityHandler.DeclareFromChatHandler,
		ListRangesHandler:      availabilityHandler.ListRangesHandler,
		ReplaceBlockHandler:    availabilityHandler.ReplaceBlockHandler,
		DeleteRangeHandler:     availabilityHandler.DeleteRangeHandler,
		ResetRangesHandler:     availabilityHandler.ResetRangesHandler,

		ListAppointmentsHandler:  bookingHandler.ListAppointmentsHandler,
		DeleteAppointmentHandler: bookingHandler.DeleteAppointmentHandler,
		ResetAppointmentsHandler: bookingHandler.ResetAppointmentsHandler,

		SendTestNotificationHandler: notifyHandler.SendTestHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health snapshots for /health.
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

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
