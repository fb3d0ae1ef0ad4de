package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pet-parade/internal/adapters/auth/jwtauth"
	pg "pet-parade/internal/adapters/storage/postgres"
	"pet-parade/internal/platform/config"
	"pet-parade/internal/platform/logger"
	"pet-parade/internal/router"
)

// @title Pet Parade API
// @version 1.0
// @description Backend CRUD de mascotas y usuarios para el desfile de mascotas.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App,
	})
	defer func() { _ = log.Sync() }()

	if cfg.UsesDevSecret() {
		log.Warn("JWT_SECRET not set, using development secret", nil)
	}

	opts := router.Options{
		AuthRequired: cfg.Auth.Required,
		RecentLimit:  cfg.Pets.RecentLimit,
		CORSOrigins:  cfg.CORS.AllowedOrigins,
		Logger:       log,
		App:          cfg.App,
	}

	signer := jwtauth.NewSigner(jwtauth.Config{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.TokenTTL,
		Issuer: cfg.App,
	})
	opts.TokenIssuer = signer
	opts.AuthVerifier = jwtauth.NewVerifier(signer)

	if cfg.DB.DSN != "" {
		db, err := pg.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"error": err})
			os.Exit(1)
		}
		defer db.Close()

		if cfg.DB.AutoMigrate {
			if err := pg.Migrate(db); err != nil {
				log.Error("migrations failed", map[string]any{"error": err})
				os.Exit(1)
			}
			log.Info("migrations applied", nil)
		}
		opts.DB = db
	} else {
		log.Info("DB_DSN empty, using in-memory storage", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":          srv.Addr,
			"auth_required": cfg.Auth.Required,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err})
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err})
	}
}
