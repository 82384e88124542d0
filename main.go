package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tesoreria-paralelo/backend/internal/auth"
	"github.com/tesoreria-paralelo/backend/internal/config"
	"github.com/tesoreria-paralelo/backend/internal/controllers"
	"github.com/tesoreria-paralelo/backend/internal/database"
	"github.com/tesoreria-paralelo/backend/internal/models"
	"github.com/tesoreria-paralelo/backend/internal/router"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	db, err := connect(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Migrate all models so that the schema is correct
	err = models.Migrate(db)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := controllers.Controller{
		DB:             db,
		Tokens:         auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		UploadMaxBytes: cfg.UploadMaxBytes,
	}
	router.AttachRoutes(co, r.Group(cfg.APIURL.Path), cfg.EnablePprof)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shut down")
	}

	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("Database")
	}
}

// connect opens PostgreSQL if a database host is configured and SQLite otherwise.
func connect(cfg config.Config) (*gorm.DB, error) {
	if cfg.UsePostgres() {
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Using PostgreSQL")
		return database.Connect(postgres.Open, cfg.PostgresDSN())
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), os.ModePerm)
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.SQLitePath).Msg("Using SQLite")
	return database.Connect(sqlite.Open, fmt.Sprintf("%s?_pragma=foreign_keys(1)", cfg.SQLitePath))
}
