package router

import (
	"technopedia-registration/internal/api/handlers"
	"technopedia-registration/internal/api/middleware"
	"technopedia-registration/internal/config"
	"technopedia-registration/internal/infrastructure/cache"
	"technopedia-registration/internal/infrastructure/gateway"
	"technopedia-registration/internal/infrastructure/repository"
	"technopedia-registration/internal/service"
	"technopedia-registration/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires the repositories, cache, payment gateway and
// services onto the HTTP surface. The checkout broker is shared
// between the payment service (which parks on it) and the payment
// handler (which resolves it).
func NewRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(cors.Default())
	r.Use(gin.Recovery())

	cfg := config.Get()

	registrantRepo := repository.NewRegistrantRepository(db)
	entryRepo := repository.NewGameEntryRepository(db)
	attemptRepo := repository.NewPaymentAttemptRepository(db)

	cacheService := cache.NewRedisCacheWithConfig(&cfg.Cache)
	paymentGateway := gateway.NewRazorpayGatewayWithConfig(&cfg.Payment)
	checkoutBroker := gateway.NewSessionBroker()

	earlyBirdEnd, err := cfg.Registration.EarlyBirdEnd()
	if err != nil {
		logger.Fatal("Invalid registration calendar: %v", err)
	}
	registrationEnd, err := cfg.Registration.End()
	if err != nil {
		logger.Fatal("Invalid registration calendar: %v", err)
	}

	paymentService := service.NewPaymentService(
		attemptRepo,
		entryRepo,
		paymentGateway,
		checkoutBroker,
		cfg.Payment.Merchant,
		cfg.Payment.Currency,
	)
	registrationService := service.NewRegistrationService(
		registrantRepo,
		entryRepo,
		attemptRepo,
		cacheService,
		paymentService,
		earlyBirdEnd,
		registrationEnd,
	)

	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, checkoutBroker)
	healthHandler := handlers.NewHealthHandler(db, cacheService)

	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/ready", healthHandler.ReadinessCheck)
	r.GET("/live", healthHandler.LivenessCheck)

	v1 := r.Group("/api/v1")
	{
		registration := v1.Group("/register")
		{
			registration.POST("", registrationHandler.Register)
			registration.POST("/game", registrationHandler.RegisterGame)
			registration.GET("/check-email", registrationHandler.CheckEmail)
			registration.GET("/check-prn", registrationHandler.CheckPRN)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("/:order_id/callback", paymentHandler.Callback)
			payments.POST("/:order_id/dismiss", paymentHandler.Dismiss)
			payments.POST("/retry", paymentHandler.Retry)
		}

		registrants := v1.Group("/registrants")
		{
			registrants.GET("/:registrant_id/entries", registrationHandler.GetEntries)
		}

		v1.GET("/games", registrationHandler.ListGames)
		v1.GET("/stats", registrationHandler.GetStats)
	}

	return r
}
