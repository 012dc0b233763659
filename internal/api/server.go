package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/x3momentum/internal/metrics"
	"github.com/limbo/x3momentum/internal/service"
)

const defaultRequestTimeout = 10 * time.Second

type Server struct {
	mx             *chi.Mux
	profileService service.ProfileServiceI
	workoutService service.WorkoutServiceI
	jwtService     JWTServiceI
	metrics        *metrics.Manager
	requestTimeout time.Duration
}

type ServicesList struct {
	ProfileService service.ProfileServiceI
	WorkoutService service.WorkoutServiceI
	JwtService     JWTServiceI
	Metrics        *metrics.Manager
	// Serves /metrics when set
	MetricsHandler http.Handler
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		profileService: servicesOptions.ProfileService,
		workoutService: servicesOptions.WorkoutService,
		jwtService:     servicesOptions.JwtService,
		metrics:        servicesOptions.Metrics,
		requestTimeout: servicesOptions.RequestTimeout,
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}
	s.routes(servicesOptions.MetricsHandler)
	return s
}

func (s *Server) routes(metricsHandler http.Handler) {
	s.mx.Use(s.PanicRecoveryMiddleware, s.RequestMetricsMiddleware, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/healthz", s.Health)
	if metricsHandler != nil {
		s.mx.Method(http.MethodGet, "/metrics", metricsHandler)
	}
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Get("/profile", s.GetProfile)
		r.Put("/profile/timezone", s.UpdateTimezone)

		r.Get("/workouts/today", s.GetWorkoutForToday)
		r.Get("/workouts/{date}", s.GetWorkoutForDate)
		r.Post("/workouts/{date}/complete", s.CompleteWorkout)
		r.Post("/workouts/{date}/missed", s.MarkMissed)
		r.Post("/rest-days/complete", s.CompleteRestDay)

		r.Get("/stats", s.GetStats)
		r.Get("/streaks", s.GetStreaks)

		r.Post("/exercises", s.SaveExercise)
		r.Get("/exercises", s.ListExercises)

		r.Get("/audit", s.VerifyConsistency)
		r.Post("/audit", s.AuditAndRepair)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", "address", address)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("api server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
