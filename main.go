package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"purrfect/config"
	"purrfect/cron"
	"purrfect/database"
	adoptionRepoPkg "purrfect/database/repository/adoption"
	analyticsRepoPkg "purrfect/database/repository/analytics"
	appointmentRepoPkg "purrfect/database/repository/appointment"
	lostPetRepoPkg "purrfect/database/repository/lostpet"
	notificationRepoPkg "purrfect/database/repository/notification"
	paymentRepoPkg "purrfect/database/repository/payment"
	petRepoPkg "purrfect/database/repository/pet"
	reminderRepoPkg "purrfect/database/repository/reminder"
	slotRepoPkg "purrfect/database/repository/slot"
	userRepoPkg "purrfect/database/repository/user"
	"purrfect/handlers"
	"purrfect/middleware"
	"purrfect/routes"
	"purrfect/services/admin"
	"purrfect/services/adoption"
	"purrfect/services/booking"
	"purrfect/services/lostpet"
	"purrfect/services/notification"
	"purrfect/services/payment"
	"purrfect/services/payment/daraja"
	"purrfect/services/pet"
	"purrfect/services/reminder"
	"purrfect/services/user"
	"purrfect/services/vet"
	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	petRepo := petRepoPkg.NewMongoPetRepo()
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	lostPetRepo := lostPetRepoPkg.NewMongoLostPetRepo()
	adoptionRepo := adoptionRepoPkg.NewMongoAdoptionRepo()
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()
	analyticsRepo := analyticsRepoPkg.NewMongoAnalyticsRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	petService := &pet.DefaultPetService{
		Repo:   petRepo,
		Logger: logger,
	}
	bookingService := &booking.DefaultBookingService{
		PetRepo:         petRepo,
		SlotRepo:        slotRepo,
		AppointmentRepo: appointmentRepo,
		Notifier:        notificationService,
		Analytics:       analyticsRepo,
		Logger:          logger,
		VideoBaseURL:    config.AppConfig.VideoSessionBaseURL,
	}
	mpesaClient := daraja.NewClient(daraja.Config{
		ConsumerKey:    config.AppConfig.MpesaConsumerKey,
		ConsumerSecret: config.AppConfig.MpesaConsumerSecret,
		ShortCode:      config.AppConfig.MpesaShortCode,
		Passkey:        config.AppConfig.MpesaPasskey,
		CallbackURL:    config.AppConfig.MpesaCallbackURL,
		Environment:    config.AppConfig.MpesaEnvironment,
	})
	paymentService := &payment.DefaultPaymentService{
		Repo:     paymentRepo,
		Gateway:  mpesaClient,
		Notifier: notificationService,
		Logger:   logger,
	}
	lostPetService := &lostpet.DefaultLostPetService{
		Repo: lostPetRepo,
	}
	adoptionService := &adoption.DefaultAdoptionService{
		Repo:     adoptionRepo,
		Notifier: notificationService,
		Logger:   logger,
	}
	reminderService := &reminder.DefaultReminderService{
		Repo: reminderRepo,
	}
	vetService := &vet.DefaultVetService{
		Users:  userRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	adminService := &admin.DefaultAdminService{
		Analytics: analyticsRepo,
		Users:     userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService:         userService,
		PetService:          petService,
		BookingService:      bookingService,
		PaymentService:      paymentService,
		NotificationService: notificationService,
		LostPetService:      lostPetService,
		AdoptionService:     adoptionService,
		ReminderService:     reminderService,
		VetService:          vetService,
		AdminService:        adminService,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder pipeline.
	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	cron.InitReminderWorker(notificationService, logger)
	cron.StartReminderDispatcher(dispatcherCtx, reminderRepo, logger)

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
	stopDispatcher()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
