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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/serenita/spa-api/internal/config"
	"github.com/serenita/spa-api/internal/domain/booking"
	"github.com/serenita/spa-api/internal/domain/guest"
	"github.com/serenita/spa-api/internal/domain/room"
	"github.com/serenita/spa-api/internal/domain/schedule"
	"github.com/serenita/spa-api/internal/domain/service"
	"github.com/serenita/spa-api/internal/domain/therapist"
	"github.com/serenita/spa-api/internal/middleware"
	"github.com/serenita/spa-api/internal/pkg/database"
	pkgresponse "github.com/serenita/spa-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Serenita API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	// ---------- Repositories ----------
	guestRepo := guest.NewRepository(db)
	roomRepo := room.NewRepository(db)
	therapistRepo := therapist.NewRepository(db)
	serviceRepo := service.NewRepository(db)
	bookingRepo := booking.NewRepository(db)

	// ---------- Services ----------
	bookingService := booking.NewService(bookingRepo, serviceRepo)

	grid := schedule.NewGrid(cfg.OpenHour, cfg.CloseHour, cfg.SlotMinutes)
	scheduleService := schedule.NewService(bookingRepo, roomRepo, therapistRepo, serviceRepo, grid)

	// ---------- Handlers ----------
	guestHandler := guest.NewHandler(guestRepo)
	roomHandler := room.NewHandler(roomRepo)
	therapistHandler := therapist.NewHandler(therapistRepo)
	serviceHandler := service.NewHandler(serviceRepo)
	bookingHandler := booking.NewHandler(bookingService)
	scheduleHandler := schedule.NewHandler(scheduleService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(redis, cfg.RateLimitPerMinute))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/guests", guestHandler.Routes())
		r.Mount("/rooms", roomHandler.Routes())
		r.Mount("/therapists", therapistHandler.Routes())
		r.Mount("/services", serviceHandler.Routes())
		r.Mount("/bookings", bookingHandler.Routes())
		r.Mount("/schedule", scheduleHandler.Routes())
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

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
