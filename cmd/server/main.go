package main // Entry point package

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lmoretti/seatplan/internal/config"
	"github.com/lmoretti/seatplan/internal/database"
	"github.com/lmoretti/seatplan/internal/handler"
	"github.com/lmoretti/seatplan/internal/middleware"
	"github.com/lmoretti/seatplan/internal/queue"
	"github.com/lmoretti/seatplan/internal/repository"
	"github.com/lmoretti/seatplan/internal/router"
	queue_publisher "github.com/lmoretti/seatplan/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.CreateSchema(ctx, db); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("schema creation failed")
	}
	cancel()
	log.Info().Msg("database schema ready")

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, cache and rate limiting disabled")
	}

	// Background consumer mirrors seat assignments to logs/assignments.log.
	go func() {
		consumerLog := log.With().Str("component", "assignment-consumer").Logger()
		if err := queue.StartAssignmentConsumer(consumerLog); err != nil {
			consumerLog.Error().Err(err).Msg("consumer stopped")
		}
	}()

	layoutRepo := repository.NewLayoutRepo(db)
	assignmentRepo := repository.NewAssignmentRepo(db)
	guestRepo := repository.NewGuestRepo(db)

	lh := handler.NewLayoutHandler(layoutRepo, assignmentRepo)
	lh.Publish = queue_publisher.PublishSeatAssigned
	gh := handler.NewGuestHandler(guestRepo)
	dh := &handler.DebugHandler{DB: db}
	ah := handler.NewAuthHandler(cfg.AdminKeyHash, cfg.JWTSecret, cfg.AccessTTLMin)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
	}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAPI(e, cfg, lh, gh, dh, ah)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Bool("admin_auth", cfg.AdminAuthEnabled()).Msg("listening")

	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
