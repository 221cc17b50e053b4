// File: doctorsportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	serviceRepoPkg "doctorsportal/database/repository/service"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	bookingSvc "doctorsportal/services/booking"
	"doctorsportal/services/catalog"
	"doctorsportal/services/doctor"
	"doctorsportal/services/tasks"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRoleCache()
	cron.InitReminderWorker()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	bkRepo := bookingRepoPkg.NewMongoBookingRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()

	// reminder queue client.
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Services: svcRepo,
		Bookings: bkRepo,
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:      bkRepo,
		Reminders: &tasks.ReminderScheduler{Client: reminderClient},
	}
	userService := &user.DefaultUserService{
		Repo: usrRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo: docRepo,
	}

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	userHandler := handlers.NewUserHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: usrRepo,

		// Catalog endpoints.
		ListServices: catalogHandler.ListServicesHandler,
		GetAvailable: catalogHandler.GetAvailableHandler,

		// User endpoints.
		GetAllUsers:  userHandler.GetAllUsersHandler,
		CheckAdmin:   userHandler.CheckAdminHandler,
		PromoteAdmin: userHandler.PromoteAdminHandler,
		UpsertUser:   userHandler.UpsertUserHandler,

		// Booking endpoints.
		GetBookings:   bookingHandler.GetBookingsHandler,
		CreateBooking: bookingHandler.CreateBookingHandler,

		// Doctor endpoints.
		AddDoctor: doctorHandler.AddDoctorHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
