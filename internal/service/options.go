package service

import (
	"log/slog"
	"time"

	"github.com/limbo/x3momentum/pkg/entity"
)

// Recorder receives domain events worth counting.
type Recorder interface {
	WorkoutCompleted(workoutType entity.WorkoutType)
	RepairApplied(kind entity.RepairKind)
}

type nopRecorder struct{}

func (nopRecorder) WorkoutCompleted(entity.WorkoutType) {}
func (nopRecorder) RepairApplied(entity.RepairKind)     {}

type options struct {
	now      func() time.Time
	logger   *slog.Logger
	recorder Recorder
}

type Option func(*options)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(o *options) {
		if recorder != nil {
			o.recorder = recorder
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:      time.Now,
		logger:   slog.Default(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
