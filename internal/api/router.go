package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/yenihospital/hospital-system/docs"
	"github.com/yenihospital/hospital-system/internal/api/handler"
	"github.com/yenihospital/hospital-system/internal/api/middleware"
	"github.com/yenihospital/hospital-system/internal/core/service"
	"github.com/yenihospital/hospital-system/internal/infrastructure/config"
	mongorepo "github.com/yenihospital/hospital-system/internal/infrastructure/db/mongo"
	redisinfra "github.com/yenihospital/hospital-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hospital"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	patientRepo := mongorepo.NewPatientRepository(db)
	auditRepo := mongorepo.NewAuditRepository(db)
	limiter := redisinfra.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)

	tokenIssuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, tokenIssuer, auditRepo, limiter, log)
	patientService := service.NewPatientService(patientRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	doctorHandler := handler.NewDoctorHandler(authService, patientService)
	patientHandler := handler.NewPatientHandler(patientService)

	requireAuth := middleware.Auth(tokenIssuer)
	optionalAuth := middleware.OptionalAuth(tokenIssuer)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.GET("/register", authHandler.RegisterInfo)
	auth.POST("/register", authHandler.Register)
	auth.GET("/login", authHandler.LoginInfo)
	auth.POST("/login", authHandler.Login)
	auth.GET("/users", authHandler.ListUsers)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Doctor routes ---
	doctors := e.Group("/api/doctors")
	doctors.GET("/dashboard", doctorHandler.Dashboard, optionalAuth)
	doctors.GET("/info", doctorHandler.Info)

	// --- Patient routes (unauthenticated, matching the legacy contract) ---
	patients := e.Group("/api/patients")
	patients.GET("", patientHandler.List)
	patients.POST("", patientHandler.Create)
	patients.GET("/:id", patientHandler.Get)
	patients.PUT("/:id", patientHandler.Update)
	patients.DELETE("/:id", patientHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
