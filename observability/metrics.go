package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chatrelay_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatrelay_ws_sessions",
			Help: "Open WebSocket sessions",
		},
	)

	// Messaging metrics
	MessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatrelay_messages_sent_total",
			Help: "Messages persisted by the room service",
		},
	)

	PublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_publish_failures_total",
			Help: "Bus publishes that failed after the store write succeeded",
		},
		[]string{"kind"}, // "room" or "presence"
	)

	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_rate_limit_hits_total",
			Help: "Requests refused by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Presence metrics
	PresenceTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_presence_transitions_total",
			Help: "Presence changes",
		},
		[]string{"status"},
	)

	PresenceSweepErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatrelay_presence_sweep_errors_total",
			Help: "Per-user failures during a presence sweep",
		},
	)

	// Maintenance metrics
	RetentionDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatrelay_retention_deleted_total",
			Help: "Messages removed by the retention sweep",
		},
	)

	Snapshots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_snapshots_total",
			Help: "Snapshot attempts",
		},
		[]string{"result"},
	)

	WorkerRestarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatrelay_worker_restarts_total",
			Help: "Workers restarted by the supervisor",
		},
		[]string{"worker"},
	)

	// Process metrics
	ProcessRSSBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatrelay_process_rss_bytes",
			Help: "Resident memory of the relay process",
		},
	)

	ProcessCPUPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatrelay_process_cpu_percent",
			Help: "CPU usage of the relay process",
		},
	)

	Goroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatrelay_goroutines",
			Help: "Live goroutines",
		},
	)
)
