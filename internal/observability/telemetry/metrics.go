package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Business metrics
	OpenParkingSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "smartparking_open_sessions",
		Help: "Number of vehicles currently inside",
	})

	CheckinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartparking_checkins_total",
		Help: "Total gate check-ins",
	})

	CheckoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartparking_checkouts_total",
		Help: "Total gate check-outs",
	})

	GuestRevenueTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartparking_guest_revenue_total",
		Help: "Total guest parking fees collected",
	})

	RenewalOrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartparking_renewal_orders_total",
		Help: "Total auto-renewal orders created",
	})

	FaceComparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartparking_face_comparisons_total",
		Help: "Total face oracle calls",
	}, []string{"result"})

	// Infrastructure metrics
	SchedulerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartparking_scheduler_runs_total",
		Help: "Total daily job runs",
	}, []string{"job", "status"})

	DatabaseLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "smartparking_database_latency_seconds",
		Help:    "Database query latency",
		Buckets: prometheus.DefBuckets,
	})
)
