package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "influencer-platform-backend/internal/api/http"
	"influencer-platform-backend/internal/config"
	"influencer-platform-backend/internal/identity"
	"influencer-platform-backend/internal/logger"
	"influencer-platform-backend/internal/repository/postgres"
	"influencer-platform-backend/internal/security"
	"influencer-platform-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Influencer Platform Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Identity Provider
	provider, err := identity.NewFirebaseProvider(context.Background(), cfg.Firebase.CredentialsFile, cfg.Firebase.WebAPIKey)
	if err != nil {
		logger.Error("Failed to initialize identity provider", "error", err)
		log.Fatalf("Failed to initialize identity provider: %v", err)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AdminTokenExpiry)*time.Hour)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
		cfg.Signup.BaseURL,
	)
	requestSvc := service.NewRequestService(store.RequestRepository)
	decisionSvc := service.NewDecisionService(
		store.RequestRepository,
		store.SignupTokenRepository,
		store.AdminRepository,
		emailSvc,
		time.Duration(cfg.Signup.TokenTTLHours)*time.Hour,
	)
	signupSvc := service.NewSignupService(
		store.SignupTokenRepository,
		store.RequestRepository,
		store.InfluencerRepository,
		provider,
		cfg.Signup.PasswordMinLength,
	)
	authSvc := service.NewAuthService(store.AdminRepository, store.InfluencerRepository, provider, tokenManager)
	influencerSvc := service.NewInfluencerService(store.InfluencerRepository)

	// Initialize HTTP handlers
	router := api.NewRouter(api.Handlers{
		Request:         api.NewRequestHandler(requestSvc),
		Admin:           api.NewAdminHandler(decisionSvc, influencerSvc),
		Signup:          api.NewSignupHandler(signupSvc),
		Auth:            api.NewAuthHandler(authSvc),
		Influencer:      api.NewInfluencerHandler(influencerSvc),
		AdminMiddleware: api.AdminMiddleware(tokenManager, store.AdminRepository),
		AuthMiddleware:  api.AuthMiddleware(provider),
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
