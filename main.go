// File: partyplan/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partyplan/config"
	"partyplan/cron"
	"partyplan/database"
	bookingsRepo "partyplan/database/repository/bookings"
	contactsRepo "partyplan/database/repository/contacts"
	packagesRepo "partyplan/database/repository/packages"
	paymentsRepo "partyplan/database/repository/payments"
	profilesRepo "partyplan/database/repository/profiles"
	rolesRepo "partyplan/database/repository/roles"
	"partyplan/handlers"
	"partyplan/middleware"
	"partyplan/routes"
	"partyplan/services/analytics"
	"partyplan/services/booking"
	"partyplan/services/catalog"
	"partyplan/services/contact"
	"partyplan/services/mail"
	"partyplan/services/payment"
	"partyplan/services/profile"
	"partyplan/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	pkgRepo := packagesRepo.NewPostgresPackageRepo(database.DB)
	bookRepo := bookingsRepo.NewPostgresBookingRepo(database.DB)
	payRepo := paymentsRepo.NewPostgresPaymentRepo(database.DB)
	profRepo := profilesRepo.NewPostgresProfileRepo(database.DB)
	contRepo := contactsRepo.NewPostgresContactRepo(database.DB)
	roleRepo := rolesRepo.NewPostgresRoleRepo(database.DB)

	// services.
	mailer := mail.NewSMTPMailer()
	catalogService := &catalog.DefaultCatalogService{
		Repo:   pkgRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	bookingService := &booking.DefaultBookingService{
		Packages: pkgRepo,
		Bookings: bookRepo,
		Profiles: profRepo,
		Logger:   logger,
	}
	checkoutService := &payment.DefaultCheckoutService{
		Bookings: bookRepo,
		Gateway:  &payment.StripeGateway{},
		Logger:   logger,
	}
	confirmationQueue := cron.NewConfirmationQueue()
	reconciler := &payment.Reconciler{
		Bookings: bookRepo,
		Payments: payRepo,
		Enqueuer: confirmationQueue,
		Logger:   logger,
	}
	profileService := &profile.DefaultProfileService{Repo: profRepo}
	contactService := &contact.DefaultContactService{
		Repo:   contRepo,
		Mailer: mailer,
		Logger: logger,
	}
	analyticsService := &analytics.Service{DB: database.DB}

	// Confirmation-email worker.
	cron.InitConfirmationWorker(bookRepo, mailer)

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, &routes.Handlers{
		Packages: handlers.NewPackageHandler(catalogService, logger),
		Bookings: handlers.NewBookingHandler(bookingService, checkoutService, payRepo, logger),
		Webhooks: handlers.NewWebhookHandler(reconciler, logger),
		Profiles: handlers.NewProfileHandler(profileService, logger),
		Contacts: handlers.NewContactHandler(contactService, logger),
		Admin:    handlers.NewAdminHandler(bookingService, analyticsService, logger),
		Roles:    roleRepo,
	})

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
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
