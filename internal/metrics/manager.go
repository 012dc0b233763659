package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/limbo/x3momentum/pkg/entity"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterHandleRequestPanic prometheus.Counter
	CounterWorkoutsCompleted  *prometheus.CounterVec
	CounterAuditRepairs       *prometheus.CounterVec

	// histograms
	HistRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("x3momentum", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("x3momentum", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterWorkoutsCompleted := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_completed",
		Help:      "The total number of days marked completed",
	}, []string{"workout_type"})
	counterAuditRepairs := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "audit_repairs",
		Help:      "The total number of applied daily log repairs",
	}, []string{"kind"})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			Name:      "request_duration_seconds",
			Help:      "Total duration of requests in seconds",
		},
	)

	return &Manager{
		CounterRequests:           counterRequests,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		CounterWorkoutsCompleted:  counterWorkoutsCompleted,
		CounterAuditRepairs:       counterAuditRepairs,
		HistRequestDuration:       histReqDuration,
	}
}

func (m *Manager) WorkoutCompleted(workoutType entity.WorkoutType) {
	m.CounterWorkoutsCompleted.WithLabelValues(string(workoutType)).Inc()
}

func (m *Manager) RepairApplied(kind entity.RepairKind) {
	m.CounterAuditRepairs.WithLabelValues(string(kind)).Inc()
}
