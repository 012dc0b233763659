package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/x3momentum/internal/api"
	"github.com/limbo/x3momentum/internal/metrics"
	"github.com/limbo/x3momentum/internal/repository"
	"github.com/limbo/x3momentum/internal/service"
	"github.com/limbo/x3momentum/pkg/cleanup"
	"github.com/limbo/x3momentum/pkg/config"
	jwtservice "github.com/limbo/x3momentum/pkg/jwt_service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	service.InitValidator()
}

func logLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func main() {
	cfg := config.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.GetString("LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if dir := cfg.GetString("MIGRATIONS_DIR"); dir != "" {
		if err := repository.Migrate(&dbCfg, dir); err != nil {
			log.Fatal(err)
		}
	}
	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager("x3momentum", "api", reg)

	withLogger := service.WithLogger(logger)
	profileService := service.NewProfileService(
		repository.NewProfilesRepo(pool),
		cfg.GetStringOr("DEFAULT_TIMEZONE", "UTC"),
		withLogger,
	)
	workoutService := service.NewWorkoutService(
		profileService,
		repository.NewExercisesRepo(pool),
		repository.NewDailyLogRepo(pool),
		withLogger,
		service.WithRecorder(metricsManager),
	)
	serv := api.New(&api.ServicesList{
		ProfileService: profileService,
		WorkoutService: workoutService,
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET")),
		Metrics:        metricsManager,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		RequestTimeout: cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second),
	})
	err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"), cfg.GetDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
