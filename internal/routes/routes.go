// Package routes defines the API routing configuration. It wires
// repositories into services and handlers and applies the auth middleware
// to the protected endpoints.
package routes

import (
	"paisa/internal/config"
	"paisa/internal/handlers"
	"paisa/internal/middleware"
	"paisa/internal/repositories"
	"paisa/internal/services/account"
	"paisa/internal/services/address"
	"paisa/internal/services/bankdetails"
	"paisa/internal/services/kyc"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	profileRepo := repositories.NewProfileRepository(db)
	kycRepo := repositories.NewKYCRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	bankRepo := repositories.NewBankDetailsRepository(db)

	accountService := account.NewService(userRepo, profileRepo)
	kycService := kyc.NewService(kycRepo)
	addressService := address.NewService(addressRepo)
	bankService := bankdetails.NewService(
		bankdetails.NewHTTPProvider(config.LoadProviderConfig()),
		bankRepo,
	)

	userHandler := handlers.NewUserHandler(accountService)
	authHandler := handlers.NewAuthHandler(accountService)
	verificationHandler := handlers.NewVerificationHandler(accountService)
	kycHandler := handlers.NewKYCHandler(kycService)
	addressHandler := handlers.NewAddressHandler(addressService)
	bankHandler := handlers.NewBankHandler(bankService)

	// Public endpoints (no auth required)
	app.Get("/health", handlers.HealthCheck)
	app.Post("/sign-up", userHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/forgot-password", authHandler.ForgotPassword)

	// Protected endpoints
	authMiddleware := middleware.NewAuthMiddleware(userRepo)
	protected := app.Use(authMiddleware.Handler)

	protected.Put("/sign-up", userHandler.UpdateProfile)
	protected.Post("/otp-verification", verificationHandler.Submit)
	protected.Post("/kyc-pan", kycHandler.SubmitPAN)
	protected.Post("/kyc-img", kycHandler.SubmitImage)
	protected.Post("/update-password", authHandler.ChangePassword)
	protected.Post("/address", addressHandler.Create)
	protected.Get("/fetch-bank-details", bankHandler.FetchBankDetails)
}
