package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/openpharm/backend/internal/application/catalog"
	identityapp "github.com/openpharm/backend/internal/application/identity"
	inventoryapp "github.com/openpharm/backend/internal/application/inventory"
	partnerapp "github.com/openpharm/backend/internal/application/partner"
	tradeapp "github.com/openpharm/backend/internal/application/trade"
	"github.com/openpharm/backend/internal/infrastructure/auth"
	"github.com/openpharm/backend/internal/infrastructure/config"
	"github.com/openpharm/backend/internal/infrastructure/logger"
	"github.com/openpharm/backend/internal/infrastructure/persistence"
	"github.com/openpharm/backend/internal/interfaces/http/handler"
	"github.com/openpharm/backend/internal/interfaces/http/middleware"
	"github.com/openpharm/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting pharmacy backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Token blacklist backs logout and forced session invalidation.
	// Redis is preferred; a single-process fallback keeps the server
	// usable when Redis is unreachable.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		log.Info("Redis token blacklist connected")
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	medicineRepo := persistence.NewGormMedicineRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	stockEntryRepo := persistence.NewGormStockEntryRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	returnRepo := persistence.NewGormMedicineReturnRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	medicineService := catalogapp.NewMedicineService(medicineRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	stockEntryService := inventoryapp.NewStockEntryService(stockEntryRepo, medicineRepo, supplierRepo, log)
	saleService := tradeapp.NewSaleService(saleRepo, medicineRepo, stockEntryRepo, userRepo, log)
	returnService := tradeapp.NewReturnService(returnRepo, stockEntryRepo, medicineRepo, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	medicineHandler := handler.NewMedicineHandler(medicineService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	stockEntryHandler := handler.NewStockEntryHandler(stockEntryService, cfg.Inventory.ExpiryWarningDays)
	saleHandler := handler.NewSaleHandler(saleService)
	returnHandler := handler.NewReturnHandler(returnService)
	systemHandler := handler.NewSystemHandler(version)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	if cfg.HTTP.WriteTimeout > 0 {
		engine.Use(middleware.Timeout(cfg.HTTP.WriteTimeout))
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Liveness probe, no authentication
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine)
	r.Register(router.NewAuthRoutes(authHandler))
	r.Register(router.NewMedicineRoutes(medicineHandler))
	r.Register(router.NewStockEntryRoutes(stockEntryHandler))
	r.Register(router.NewSupplierRoutes(supplierHandler))
	r.Register(router.NewSaleRoutes(saleHandler))
	r.Register(router.NewReturnRoutes(returnHandler))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
