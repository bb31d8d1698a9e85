package metrics

import (
	"net/http"

	"github.com/diegoclair/attendance-bot/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RemindersSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_reminders_sent_total",
			Help: "Reminders delivered to the broadcast channel by kind",
		},
		[]string{"kind"},
	)

	ReminderFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "attendance_reminder_failures_total",
			Help: "Reminder sends that failed and will be retried",
		},
	)

	WeeklyResets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "attendance_weekly_resets_total",
			Help: "Weekly attendance resets performed by the scheduler",
		},
	)

	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_commands_total",
			Help: "Slash commands handled by command and result",
		},
		[]string{"command", "result"},
	)

	Members = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "attendance_members",
			Help: "Members in the current cycle by status",
		},
		[]string{"status"},
	)

	Canceled = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "attendance_canceled",
			Help: "Whether this cycle's game is canceled (1 = canceled)",
		},
	)
)

func init() {
	prometheus.MustRegister(RemindersSent)
	prometheus.MustRegister(ReminderFailures)
	prometheus.MustRegister(WeeklyResets)
	prometheus.MustRegister(CommandsTotal)
	prometheus.MustRegister(Members)
	prometheus.MustRegister(Canceled)
}

// ObserveAttendance updates the attendance gauges from a registry snapshot
func ObserveAttendance(snap entity.AttendanceSnapshot) {
	Members.WithLabelValues(string(entity.StatusAttending)).Set(float64(len(snap.Attending)))
	Members.WithLabelValues(string(entity.StatusSkipping)).Set(float64(len(snap.Skipping)))
	if snap.Canceled {
		Canceled.Set(1)
	} else {
		Canceled.Set(0)
	}
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
