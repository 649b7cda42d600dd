package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"visitorregistry/config"
	authadapter "visitorregistry/internal/adapters/auth"
	emailadapter "visitorregistry/internal/adapters/email"
	delivery "visitorregistry/internal/delivery/http"
	"visitorregistry/internal/delivery/http/controllers"
	"visitorregistry/internal/delivery/http/middleware"
	"visitorregistry/internal/domain"
	"visitorregistry/internal/repository/postgres"
	"visitorregistry/internal/services"
)

const (
	bcryptCost  = 10
	tokenExpiry = 24 * time.Hour
)

// @title Visitor Registry API
// @version 1.0
// @description Accepts visitor registrations from the public web form and exposes a staff API for listing them.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	// A missing connection string is a deployment misconfiguration. The
	// server still starts so every request gets a clear configuration
	// error instead of a connection refused.
	var visitorRepo domain.VisitorRepository
	if cfg.DBUrl == "" {
		logger.Error("DATABASE_URL is not set; registrations will fail with a configuration error")
	} else {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		visitorRepo = postgres.NewVisitorRepository(db)
	}

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSKeyID,
			SecretAccessKey: cfg.Email.AWSSecret,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())

	registrationService := services.NewRegistrationService(visitorRepo, emailService, logger)

	issuer, verifier := authadapter.NewJWTTokens(cfg.JWTSecret, tokenExpiry)
	hasher := authadapter.NewBcryptHasher(bcryptCost)
	staffAuthService := services.NewStaffAuthService(cfg.StaffEmail, cfg.StaffPasswordHash, hasher, issuer)

	visitorController := controllers.NewVisitorController(logger, registrationService)
	authController := controllers.NewAuthController(logger, staffAuthService)

	mux := delivery.NewRouter(visitorController, authController, verifier)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
