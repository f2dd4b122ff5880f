package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/observability/telemetry"
	"github.com/seu-repo/smartparking/internal/ports"
)

// Config controls when the daily sweeps fire.
type Config struct {
	// RunAt is the local wall-clock time of the daily run, "HH:MM".
	RunAt string
	// SecondaryTZ names an extra timezone whose midnight triggers a second
	// run, for sites whose billing day is pinned to another region.
	SecondaryTZ string
}

// Scheduler fires the daily order sweeps. It owns only the clock; the
// lifecycle logic lives in the services it calls.
type Scheduler struct {
	orders        ports.OrderService
	notifications ports.NotificationService
	cfg           Config
	log           *zap.Logger
}

func New(orders ports.OrderService, notifications ports.NotificationService, cfg Config, log *zap.Logger) *Scheduler {
	if cfg.RunAt == "" {
		cfg.RunAt = "00:05"
	}
	return &Scheduler{
		orders:        orders,
		notifications: notifications,
		cfg:           cfg,
		log:           log,
	}
}

// Run blocks until ctx is canceled, firing the sweeps once per day at the
// configured time, plus once per day at the secondary timezone's midnight
// when one is configured.
func (s *Scheduler) Run(ctx context.Context) {
	runAt, err := time.ParseInLocation("15:04", s.cfg.RunAt, time.Local)
	if err != nil {
		s.log.Error("Invalid scheduler run time, using 00:05", zap.String("run_at", s.cfg.RunAt), zap.Error(err))
		runAt, _ = time.ParseInLocation("15:04", "00:05", time.Local)
	}

	var secondary *time.Location
	if s.cfg.SecondaryTZ != "" {
		secondary, err = time.LoadLocation(s.cfg.SecondaryTZ)
		if err != nil {
			s.log.Error("Invalid secondary timezone, skipping", zap.String("tz", s.cfg.SecondaryTZ), zap.Error(err))
		}
	}

	s.log.Info("Scheduler started",
		zap.String("run_at", runAt.Format("15:04")),
		zap.String("secondary_tz", s.cfg.SecondaryTZ),
	)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	var lastPrimary, lastSecondary string
	for {
		select {
		case <-ctx.Done():
			s.log.Info("Scheduler stopped")
			return
		case now := <-ticker.C:
			if now.Hour() == runAt.Hour() && now.Minute() == runAt.Minute() {
				day := now.Format("2006-01-02")
				if day != lastPrimary {
					lastPrimary = day
					s.RunOnce(ctx, now)
				}
			}
			if secondary != nil {
				remote := now.In(secondary)
				if remote.Hour() == 0 && remote.Minute() == 0 {
					day := remote.Format("2006-01-02")
					if day != lastSecondary {
						lastSecondary = day
						s.RunOnce(ctx, now)
					}
				}
			}
		}
	}
}

// RunOnce fires all three sweeps. Exposed so operators can trigger the
// daily jobs on demand through the admin API.
func (s *Scheduler) RunOnce(ctx context.Context, now time.Time) {
	s.log.Info("Daily sweep starting", zap.Time("now", now))

	if _, err := s.orders.CreateDueRenewals(ctx, now); err != nil {
		telemetry.SchedulerRunsTotal.WithLabelValues("renewals", "error").Inc()
		s.log.Error("Renewal sweep failed", zap.Error(err))
	} else {
		telemetry.SchedulerRunsTotal.WithLabelValues("renewals", "ok").Inc()
	}

	if _, err := s.orders.CancelOverdueOrders(ctx, now); err != nil {
		telemetry.SchedulerRunsTotal.WithLabelValues("overdue", "error").Inc()
		s.log.Error("Overdue sweep failed", zap.Error(err))
	} else {
		telemetry.SchedulerRunsTotal.WithLabelValues("overdue", "ok").Inc()
	}

	if _, err := s.notifications.SendExpirationNotifications(ctx, now); err != nil {
		telemetry.SchedulerRunsTotal.WithLabelValues("notifications", "error").Inc()
		s.log.Error("Notification sweep failed", zap.Error(err))
	} else {
		telemetry.SchedulerRunsTotal.WithLabelValues("notifications", "ok").Inc()
	}
}
