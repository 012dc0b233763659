package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/x3momentum/internal/error_values"
	"github.com/limbo/x3momentum/internal/service"
	"github.com/limbo/x3momentum/pkg/entity"
	"github.com/limbo/x3momentum/pkg/httputil"
)

type UpdateTimezoneRequest struct {
	Timezone string `json:"timezone"`
}

type CompleteWorkoutRequest struct {
	WorkoutType string `json:"workout_type"`
}

type CompleteRestDayRequest struct {
	Date *string `json:"date,omitempty"`
}

type SaveExerciseRequest struct {
	ExerciseName string     `json:"exercise_name"`
	BandColor    string     `json:"band_color"`
	FullReps     int        `json:"full_reps"`
	PartialReps  int        `json:"partial_reps"`
	Notes        string     `json:"notes,omitempty"`
	WorkoutType  string     `json:"workout_type"`
	PerformedAt  *time.Time `json:"performed_at,omitempty"`
}

type MarkMissedResponse struct {
	Date   entity.CalendarDate `json:"date"`
	Marked bool                `json:"marked"`
}

type ListExercisesResponse struct {
	UserID    string                    `json:"uid"`
	Exercises []entity.ExerciseLogEntry `json:"exercises"`
}

type VerifyConsistencyResponse struct {
	Consistent bool                `json:"consistent"`
	Report     *entity.AuditReport `json:"report"`
}

// writeServiceError maps domain errors to status codes. Details are exposed
// for client errors only.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	switch {
	case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidWorkoutType):
		status, message = http.StatusBadRequest, "invalid request"
	case errors.Is(err, errorvalues.ErrInvalidToken):
		status, message = http.StatusUnauthorized, "authorization failed: invalid token"
	case errors.Is(err, errorvalues.ErrProfileNotFound):
		status, message = http.StatusNotFound, "profile not found"
	case errors.Is(err, errorvalues.ErrLogEntryNotFound):
		status, message = http.StatusNotFound, "daily log entry not found"
	case errors.Is(err, errorvalues.ErrDataInconsistency):
		status, message = http.StatusConflict, "daily log is inconsistent"
	case errors.Is(err, errorvalues.ErrProfileExists):
		status, message = http.StatusConflict, "profile already exists"
	case errors.Is(err, errorvalues.ErrInvalidDateRange):
		status, message = http.StatusUnprocessableEntity, "date is before program start"
	case errors.Is(err, errorvalues.ErrDateNotAllowed):
		status, message = http.StatusUnprocessableEntity, "date is in the future"
	case errors.Is(err, errorvalues.ErrStorageUnavailable):
		status, message = http.StatusServiceUnavailable, "storage unavailable"
	}
	if status >= http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, message, nil)
		return
	}
	logger.Warn(op+" error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, status, message, err)
}

// authorized returns uid and a request-scoped context. On failure the response
// is already written.
func (s *Server) authorized(w http.ResponseWriter, r *http.Request, op string) (entity.UserID, context.Context, context.CancelFunc, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return entity.UserID{}, nil, nil, false
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	return uid, ctx, cancel, true
}

func dateFromPath(w http.ResponseWriter, r *http.Request, op string) (entity.CalendarDate, bool) {
	date, err := entity.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err)
		return entity.CalendarDate{}, false
	}
	return date, true
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
	})
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ctx, cancel, ok := s.authorized(w, r, "get profile")
	if !ok {
		return
	}
	defer cancel()
	profile, err := s.profileService.GetOrCreate(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

func (s *Server) UpdateTimezone(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ctx, cancel, ok := s.authorized(w, r, "update timezone")
	if !ok {
		return
	}
	defer cancel()
	var req UpdateTimezoneRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("update timezone error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	profile, err := s.profileService.UpdateTimezone(ctx, uid, req.Timezone)
	if err != nil {
		writeServiceError(w, logger, "update timezone", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("timezone updated", slog.String("timezone", profile.Timezone))
}

func (s *Server) GetWorkoutForToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ctx, cancel, ok := s.authorized(w, r, "get today workout")
	if !ok {
		return
	}
	defer cancel()
	status, err := s.workoutService.WorkoutForToday(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get today workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}

func (s *Server) GetWorkoutForDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, ok := dateFromPath(w, r, "get workout")
	if !ok {
		return
	}
	uid, ctx, cancel, ok := s.authorized(w, r, "get workout")
	if !ok {
		return
	}
	defer cancel()
	status, err := s.workoutService.StatusForDate(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "get workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}

func (s *Server) CompleteWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, ok := dateFromPath(w, r, "complete workout")
	if !ok {
		return
	}
	uid, ctx, cancel, ok := s.authorized(w, r, "complete workout")
	if !ok {
		return
	}
	defer cancel()
	var req CompleteWorkoutRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("complete workout error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	entry, err := s.workoutService.CompleteWorkout(ctx, uid, date, entity.WorkoutType(req.WorkoutType))
	if err != nil {
		writeServiceError(w, logger, "complete workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) MarkMissed(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, ok := dateFromPath(w, r, "mark missed")
	if !ok {
		return
	}
	uid, ctx, cancel, ok := s.authorized(w, r, "mark missed")
	if !ok {
		return
	}
	defer cancel()
	marked, err := s.workoutService.MarkMissed(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "mark missed", err)
		return
	}
	status := http.StatusOK
	if marked {
		status = http.StatusCreated
	}
	httputil.WriteJSONResponse(w, status, MarkMissedResponse{Date: date, Marked: marked})
}

func (s *Server) CompleteRestDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ctx, cancel, ok := s.authorized(w, r, "complete rest day")
	if !ok {
		return
	}
	defer cancel()
	var req CompleteRestDayRequest
	if err := httputil.ReadJSON(r, &req); err != nil && !errors.Is(err, httputil.ErrEmptyBody) {
		logger.Error("complete rest day error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	serviceReq := &service.CompleteRestDayRequest{}
	if req.Date != nil {
		serviceReq.Date = *req.Date
	}
	entry, err := s.workoutService.CompleteRestDay(ctx, uid, serviceReq)
	if err != nil {
		writeServiceError(w, logger, "complete rest day", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ctx, cancel, ok := s.authorized(w, r, "get stats")
	if !ok {
		return
	}
	defer cancel()
	stats, err := s.workoutService.GetStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetStreaks(w http.ResponseWriter, r *http.Request) {
	uid, ctx, cancel, ok := s.authorized(w, r, "get streaks")
	if !ok {
		return
	}
	defer cancel()
	httputil.WriteJSONResponse(w, http.StatusOK, s.workoutService.Streaks(ctx, uid))
}

func (s *Server) SaveExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ctx, cancel, ok := s.authorized(w, r, "save exercise")
	if !ok {
		return
	}
	defer cancel()
	var req SaveExerciseRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		logger.Error("save exercise error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	performedAt := time.Now()
	if req.PerformedAt != nil {
		performedAt = *req.PerformedAt
	}
	entry, err := s.workoutService.SaveExercise(ctx, uid, &service.SaveExerciseRequest{
		ExerciseName: req.ExerciseName,
		BandColor:    req.BandColor,
		FullReps:     req.FullReps,
		PartialReps:  req.PartialReps,
		Notes:        req.Notes,
		WorkoutType:  req.WorkoutType,
		PerformedAt:  performedAt,
	})
	if err != nil {
		writeServiceError(w, logger, "save exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("exercise saved", slog.Int64("id", entry.ID))
}

func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var query service.ExerciseQuery
	for param, target := range map[string]**entity.CalendarDate{"from": &query.From, "to": &query.To} {
		raw := r.URL.Query().Get(param)
		if raw == "" {
			continue
		}
		date, err := entity.ParseDate(raw)
		if err != nil {
			logger.Error("list exercises error: invalid " + param)
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid '"+param+"' param, expected YYYY-MM-DD", err)
			return
		}
		*target = &date
	}
	if raw := r.URL.Query().Get("type"); raw != "" {
		wt := entity.WorkoutType(raw)
		query.WorkoutType = &wt
	}
	uid, ctx, cancel, ok := s.authorized(w, r, "list exercises")
	if !ok {
		return
	}
	defer cancel()
	entries, err := s.workoutService.ListExercises(ctx, uid, query)
	if err != nil {
		writeServiceError(w, logger, "list exercises", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListExercisesResponse{
		UserID:    uid.String(),
		Exercises: entries,
	})
}

func (s *Server) VerifyConsistency(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ctx, cancel, ok := s.authorized(w, r, "verify consistency")
	if !ok {
		return
	}
	defer cancel()
	report, err := s.workoutService.VerifyConsistency(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDataInconsistency) && report != nil {
			logger.Warn("daily log drift detected", slog.Int("repairs", len(report.Repairs)))
			httputil.WriteJSONResponse(w, http.StatusConflict, VerifyConsistencyResponse{Report: report})
			return
		}
		writeServiceError(w, logger, "verify consistency", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, VerifyConsistencyResponse{Consistent: true, Report: report})
}

func (s *Server) AuditAndRepair(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ctx, cancel, ok := s.authorized(w, r, "audit")
	if !ok {
		return
	}
	defer cancel()
	report, err := s.workoutService.AuditAndRepair(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "audit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}
