package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/sapeol/memorial-app/config"
	_ "github.com/sapeol/memorial-app/docs"
	authadapter "github.com/sapeol/memorial-app/internal/adapters/auth"
	"github.com/sapeol/memorial-app/internal/adapters/email"
	delivery "github.com/sapeol/memorial-app/internal/delivery/http"
	"github.com/sapeol/memorial-app/internal/delivery/http/controllers"
	"github.com/sapeol/memorial-app/internal/delivery/http/middleware"
	"github.com/sapeol/memorial-app/internal/repository/postgres"
	"github.com/sapeol/memorial-app/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Memorial API
// @version 1.0
// @description REST API for private digital memorials: memorial pages, invitations, milestone timelines, media galleries, guestbooks, and rituals.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	memorialRepo := postgres.NewMemorialRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	milestoneRepo := postgres.NewMilestoneRepository(db)
	mediaRepo := postgres.NewMediaRepository(db)
	guestbookRepo := postgres.NewGuestbookRepository(db)
	ritualRepo := postgres.NewRitualRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(10)
	tokenIssuer, tokenVerifier := authadapter.NewJWTTokens(cfg.JWTSecret)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	authService := services.NewAuthService(userRepo, hasher, tokenIssuer, emailService, cfg.TokenExpiry, serviceTimeout)
	memorialService := services.NewMemorialService(memorialRepo, participantRepo, serviceTimeout)
	invitationService := services.NewInvitationService(invitationRepo, memorialRepo, participantRepo, userRepo, emailService, cfg.BaseURL, serviceTimeout)
	milestoneService := services.NewMilestoneService(milestoneRepo, memorialRepo, participantRepo, serviceTimeout)
	mediaService := services.NewMediaService(mediaRepo, memorialRepo, participantRepo, serviceTimeout)
	guestbookService := services.NewGuestbookService(guestbookRepo, memorialRepo, participantRepo, userRepo, serviceTimeout)
	ritualService := services.NewRitualService(ritualRepo, memorialRepo, participantRepo, serviceTimeout)

	// Controllers
	mux := delivery.NewRouter(delivery.Controllers{
		Auth:       controllers.NewAuthController(logger, authService),
		Memorial:   controllers.NewMemorialController(logger, memorialService),
		Invitation: controllers.NewInvitationController(logger, invitationService),
		Milestone:  controllers.NewMilestoneController(logger, milestoneService),
		Media:      controllers.NewMediaController(logger, mediaService),
		Guestbook:  controllers.NewGuestbookController(logger, guestbookService),
		Ritual:     controllers.NewRitualController(logger, ritualService),
	}, tokenVerifier, logger)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
