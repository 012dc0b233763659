package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/internal/service"
	"github.com/limbo/x3momentum/pkg/entity"
	"github.com/limbo/x3momentum/pkg/httputil"
	"github.com/prometheus/client_golang/prometheus"
)

type contextKey string

const (
	requestIDContextKey contextKey = "Request-ID"
	loggerContextKey    contextKey = "Logger"
	uidContextKey       contextKey = "User-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID.String())
		w.Header().Set("X-Request-ID", reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, ok := r.Context().Value(uidContextKey).(entity.UserID)
		if ok {
			logger = logger.With(slog.String("uid", uid.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware verifies the bearer token and makes sure the user has a
// profile, creating it on the first request.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			if errors.Is(err, errorvalues.ErrInvalidToken) {
				logger.Error("auth failed: error parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
				return
			}
			logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
			return
		}
		uid, err := entity.ParseUserID(tokenClaims.Subject)
		if err != nil {
			logger.Error("invalid subject in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
		defer cancel()
		profile, err := s.profileService.GetOrCreate(ctx, uid)
		if err != nil {
			writeServiceError(w, logger, "auth: loading profile", err)
			return
		}
		ctx = context.WithValue(r.Context(), uidContextKey, uid)
		ctx = service.ContextWithProfile(ctx, profile)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) RequestMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}
		defer func(begin time.Time) {
			s.metrics.HistRequestDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())

		resp := &responseWriter{w, http.StatusOK}
		next.ServeHTTP(resp, r)

		s.metrics.CounterRequests.With(
			prometheus.Labels{
				"method": r.Method,
				"status": strconv.Itoa(resp.statusCode),
			},
		).Inc()
	})
}

func (s *Server) PanicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				GetLoggerFromCtx(r.Context()).Error("panic serving request",
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
				if s.metrics != nil {
					s.metrics.CounterHandleRequestPanic.Inc()
				}
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (entity.UserID, error) {
	uid, ok := r.Context().Value(uidContextKey).(entity.UserID)
	if !ok {
		return entity.UserID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
