package service

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation for the core
// stores and provides lightweight snapshots for the presentation layer.
// There is no scrape endpoint in this process; the registry is exposed so a
// later backend can mount one. All methods are nil-receiver safe so
// services can run unmetered.
type MetricsService struct {
	registry *prometheus.Registry

	loginTotal       *prometheus.CounterVec
	issuesReported   prometheus.Counter
	issueUpdates     prometheus.Counter
	bookingsAccepted prometheus.Counter
	bookingConflicts prometheus.Counter

	loginAccepts  uint64
	loginRejects  uint64
	issueCount    uint64
	updateCount   uint64
	bookingCount  uint64
	conflictCount uint64
}

// NewMetricsService registers the core collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	loginTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_login_attempts_total",
		Help: "Login attempts partitioned by outcome and claimed role",
	}, []string{"outcome", "role"})

	issuesReported := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "issues_reported_total",
		Help: "Issues accepted into the store",
	})

	issueUpdates := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "issue_updates_total",
		Help: "Partial updates applied to existing issues",
	})

	bookingsAccepted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bookings_accepted_total",
		Help: "Room bookings accepted into the store",
	})

	bookingConflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "booking_conflicts_total",
		Help: "Bookings rejected because the slot was already taken",
	})

	registry.MustRegister(loginTotal, issuesReported, issueUpdates, bookingsAccepted, bookingConflicts)

	return &MetricsService{
		registry:         registry,
		loginTotal:       loginTotal,
		issuesReported:   issuesReported,
		issueUpdates:     issueUpdates,
		bookingsAccepted: bookingsAccepted,
		bookingConflicts: bookingConflicts,
	}
}

// Registry exposes the private registry for a future scrape surface.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// LoginAccepted records a successful login for the given role.
func (m *MetricsService) LoginAccepted(role models.UserRole) {
	if m == nil {
		return
	}
	m.loginTotal.WithLabelValues("accepted", string(role)).Inc()
	atomic.AddUint64(&m.loginAccepts, 1)
}

// LoginRejected records a credential rejection.
func (m *MetricsService) LoginRejected() {
	if m == nil {
		return
	}
	m.loginTotal.WithLabelValues("rejected", "").Inc()
	atomic.AddUint64(&m.loginRejects, 1)
}

// IssueReported records an accepted report.
func (m *MetricsService) IssueReported() {
	if m == nil {
		return
	}
	m.issuesReported.Inc()
	atomic.AddUint64(&m.issueCount, 1)
}

// IssueUpdated records an applied partial update.
func (m *MetricsService) IssueUpdated() {
	if m == nil {
		return
	}
	m.issueUpdates.Inc()
	atomic.AddUint64(&m.updateCount, 1)
}

// BookingAccepted records an accepted booking.
func (m *MetricsService) BookingAccepted() {
	if m == nil {
		return
	}
	m.bookingsAccepted.Inc()
	atomic.AddUint64(&m.bookingCount, 1)
}

// BookingConflict records a rejected double booking.
func (m *MetricsService) BookingConflict() {
	if m == nil {
		return
	}
	m.bookingConflicts.Inc()
	atomic.AddUint64(&m.conflictCount, 1)
}

// MetricsSnapshot is a plain view of the counters for UI consumption.
type MetricsSnapshot struct {
	LoginAccepts     uint64 `json:"login_accepts"`
	LoginRejects     uint64 `json:"login_rejects"`
	IssuesReported   uint64 `json:"issues_reported"`
	IssueUpdates     uint64 `json:"issue_updates"`
	BookingsAccepted uint64 `json:"bookings_accepted"`
	BookingConflicts uint64 `json:"booking_conflicts"`
}

// Snapshot returns the current counter values.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		LoginAccepts:     atomic.LoadUint64(&m.loginAccepts),
		LoginRejects:     atomic.LoadUint64(&m.loginRejects),
		IssuesReported:   atomic.LoadUint64(&m.issueCount),
		IssueUpdates:     atomic.LoadUint64(&m.updateCount),
		BookingsAccepted: atomic.LoadUint64(&m.bookingCount),
		BookingConflicts: atomic.LoadUint64(&m.conflictCount),
	}
}
