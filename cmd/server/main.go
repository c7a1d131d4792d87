// Package main implements the reference backend server for the $READS
// learning app. It serves authentication, the lesson catalog, quiz grading
// and the token wallet over JSON/HTTP.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Great2008/reads-web-app/internal/config"
	"github.com/Great2008/reads-web-app/internal/platform/logger"
	"github.com/Great2008/reads-web-app/internal/platform/postgres"
	"github.com/Great2008/reads-web-app/internal/quiz"
	"github.com/Great2008/reads-web-app/internal/service"
	"github.com/Great2008/reads-web-app/internal/service/auth"
	"github.com/Great2008/reads-web-app/internal/store"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(); err != nil {
		app.logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// application holds the assembled server dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	catalogStore  store.CatalogStore
	progressStore store.ProgressStore
	walletStore   store.WalletStore
	rewardStore   store.RewardStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	rewardService    *service.RewardService

	cleanup func()
}

// initializeApp loads configuration and wires up the application components:
// logging, the database connection, migrations, stores and services.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"reward_policy", cfg.Quiz.RewardPolicy)

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database URL is required to run the server")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required to run the server")
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		_ = db.Close()
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	policy, err := quiz.NewPolicy(
		cfg.Quiz.RewardPolicy,
		cfg.Quiz.RewardThresholdPercent,
		cfg.Quiz.RewardThresholdTokens,
		cfg.Quiz.TokensPerCorrect,
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to build reward policy: %w", err)
	}

	catalogStore := postgres.NewCatalogStore(db)
	if err := seedCatalog(context.Background(), catalogStore, appLogger); err != nil {
		_ = db.Close()
		return nil, err
	}

	walletStore := postgres.NewWalletStore(db)
	rewardStore := postgres.NewRewardStore(db)

	app := &application{
		config:           cfg,
		logger:           appLogger,
		db:               db,
		userStore:        postgres.NewUserStore(db),
		catalogStore:     catalogStore,
		progressStore:    postgres.NewProgressStore(db),
		walletStore:      walletStore,
		rewardStore:      rewardStore,
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerifier: auth.NewBcryptVerifier(),
		rewardService:    service.NewRewardService(db, rewardStore, walletStore, policy, appLogger),
		cleanup: func() {
			if err := db.Close(); err != nil {
				appLogger.Error("failed to close database", "error", err)
			}
		},
	}

	return app, nil
}
