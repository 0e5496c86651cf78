package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/artvault/artvault-api/internal/config"
	"github.com/artvault/artvault-api/internal/domain/artwork"
	"github.com/artvault/artvault-api/internal/middleware"
	"github.com/artvault/artvault-api/internal/pkg/database"
	"github.com/artvault/artvault-api/internal/pkg/imagestore"
	"github.com/artvault/artvault-api/internal/pkg/jwt"
	"github.com/artvault/artvault-api/internal/pkg/logger"
	pkgresponse "github.com/artvault/artvault-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Artvault API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	images, err := imagestore.New(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	artworkRepo := artwork.NewRepository(db)
	artworkGuard := artwork.NewGuard(jwtService)
	artworkService := artwork.NewService(artworkRepo, artworkGuard, images)
	artworkHandler := artwork.NewHandler(artworkService)

	authMiddleware := middleware.Auth(jwtService)

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/artworks", artworkHandler.Routes(authMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
