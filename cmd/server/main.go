package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"signature_builder_echo/internal/campus"
	"signature_builder_echo/internal/config"
	"signature_builder_echo/internal/handlers"
	"signature_builder_echo/internal/identity"
	authMiddleware "signature_builder_echo/internal/middleware"
	"signature_builder_echo/internal/services"
	"signature_builder_echo/internal/signature"
	"signature_builder_echo/web"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	brand, directory, err := config.LoadBrand(cfg.BrandFile)
	if err != nil {
		log.Fatalf("Failed to load brand: %v", err)
	}

	// Campus directory from the database when configured
	if cfg.DatabaseURL != "" {
		directory, err = loadDirectory(ctx, cfg.DatabaseURL, directory)
		if err != nil {
			log.Fatalf("Failed to load campus directory: %v", err)
		}
	} else {
		log.Println("Warning: DATABASE_URL not set, using the built-in campus directory")
	}

	renderer, err := signature.NewRenderer(brand)
	if err != nil {
		log.Fatalf("Failed to prepare signature template: %v", err)
	}

	pages, err := web.NewTemplateRenderer(web.Templates())
	if err != nil {
		log.Fatalf("Failed to parse page templates: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Renderer = pages
	e.HTTPErrorHandler = authMiddleware.CustomErrorHandler

	// Static file serving
	e.StaticFS("/static", web.Static())

	signatureHandler := handlers.NewSignatureHandler(renderer, directory)
	e.GET("/healthz", handlers.Healthz)

	// The builder is public unless an allowed domain is configured
	app := e.Group("")
	if cfg.AuthEnabled() {
		gate := identity.NewGate(cfg.AllowedDomain)
		verifier := initVerifier(ctx, cfg)
		limiter, cache := initLimiter(cfg)
		if cache != nil {
			defer closeCache(cache)
		}

		authHandler := handlers.NewAuthHandler(verifier, gate, limiter, cfg, brand.Name)
		e.GET("/login", authHandler.LoginPage)
		e.GET("/denied", authHandler.Denied)
		e.POST("/auth/login", authHandler.HandleLogin)
		e.POST("/auth/logout", authHandler.HandleLogout)

		app.Use(authMiddleware.RequireAuth(verifier, gate))
	} else {
		log.Println("Warning: ALLOWED_DOMAIN not set, the builder is open to everyone")
	}

	app.GET("/", signatureHandler.Builder)
	app.POST("/preview", signatureHandler.Preview)
	app.POST("/campus", signatureHandler.Campus)
	app.POST("/copy", signatureHandler.Copy)
	app.POST("/download", signatureHandler.Download)
	app.GET("/instructions", signatureHandler.Instructions)
	app.GET("/toast", signatureHandler.Toast)

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
}

func closeCache(cache *services.RedisCache) {
	if err := cache.Close(); err != nil {
		log.Printf("Warning: closing Redis failed: %v", err)
	}
}

// loadDirectory seeds an empty campus table with fallback and reads the
// table back. The pool is released once the directory is in memory.
func loadDirectory(ctx context.Context, dsn string, fallback campus.Directory) (campus.Directory, error) {
	db, err := services.InitDB(dsn)
	if err != nil {
		return campus.Directory{}, err
	}
	defer func() {
		if err := services.CloseDB(db); err != nil {
			log.Printf("Warning: closing the database failed: %v", err)
		}
	}()

	// Run auto-migration
	if err := services.AutoMigrate(db); err != nil {
		return campus.Directory{}, err
	}
	if err := services.SeedCampuses(ctx, db, fallback); err != nil {
		return campus.Directory{}, err
	}
	return services.LoadCampusDirectory(ctx, db)
}

// initVerifier returns nil when Firebase cannot start, which makes the
// protected routes send visitors to the login page with an error.
func initVerifier(ctx context.Context, cfg *config.Config) identity.Verifier {
	authClient, err := services.InitFirebase(ctx, cfg.FirebaseCredentialsPath, cfg.FirebaseProjectID)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Auth features will not work until valid credentials are provided")
		return nil
	}
	return authClient
}

// initLimiter also returns the Redis client backing the limiter, nil when
// attempts are not throttled.
func initLimiter(cfg *config.Config) (identity.Limiter, *services.RedisCache) {
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, login attempts are not throttled")
		return identity.NoopLimiter{}, nil
	}
	cache, err := services.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Redis connection failed: %v", err)
		return identity.NoopLimiter{}, nil
	}
	return services.NewRedisLoginLimiter(cache, cfg.LoginMaxAttempts, cfg.LoginWindow), cache
}
