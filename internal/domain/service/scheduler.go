package service

import (
	"context"
	"sync"
	"time"

	"github.com/diegoclair/attendance-bot/internal/domain"
	"github.com/diegoclair/attendance-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-bot/internal/metrics"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type SchedulerConfig struct {
	Schedule    domain.WeeklySchedule
	Location    *time.Location
	TickSpec    string
	Destination string
	SendTimeout time.Duration
}

// scheduler resets attendance once a week and sends at most one reminder per
// day. Idempotence comes from the week/day watermarks, not from the tick
// cadence, so it can be ticked as often as needed.
type scheduler struct {
	registry  *Registry
	notifier  contract.Notifier
	stateRepo contract.SchedulerRepo
	waitReady func(ctx context.Context) error
	cfg       SchedulerConfig
	log       zerolog.Logger
	now       func() time.Time

	// tickMu serializes ticks and guards state
	tickMu sync.Mutex
	state  entity.SchedulerState

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func newScheduler(registry *Registry, notifier contract.Notifier, stateRepo contract.SchedulerRepo,
	waitReady func(ctx context.Context) error, cfg SchedulerConfig, log zerolog.Logger) *scheduler {

	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	if cfg.TickSpec == "" {
		cfg.TickSpec = "@every 15m"
	}

	return &scheduler{
		registry:  registry,
		notifier:  notifier,
		stateRepo: stateRepo,
		waitReady: waitReady,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Start runs the scheduler in the background. Ticking begins only once the
// readiness gate opens.
func (s *scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	s.log.Info().Str("tick", s.cfg.TickSpec).Str("tz", s.cfg.Location.String()).Msg("Scheduler starting...")
	go s.run(ctx, s.done)
}

// Stop signals the scheduler and waits for an in-flight tick to finish.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	s.log.Info().Msg("Scheduler stopping...")
	cancel()
	<-done
	s.log.Info().Msg("Scheduler stopped")
}

func (s *scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	if s.waitReady != nil {
		if err := s.waitReady(ctx); err != nil {
			s.log.Warn().Err(err).Msg("scheduler stopped before Slack was ready")
			return
		}
	}

	s.loadState(ctx)

	// ticks must be able to finish after Stop, so they do not inherit
	// the cancellation; each send carries its own timeout
	tickCtx := context.WithoutCancel(ctx)

	cronLog := s.log.With().Str("source", "cron").Logger()
	c := cron.New(
		cron.WithLocation(s.cfg.Location),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(&cronLog))),
	)
	if _, err := c.AddFunc(s.cfg.TickSpec, func() { s.Tick(tickCtx) }); err != nil {
		s.log.Error().Err(err).Str("tick", s.cfg.TickSpec).Msg("invalid tick spec")
		return
	}

	s.Tick(tickCtx)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
}

// Tick evaluates the weekly reset and reminder rules against the current time.
func (s *scheduler) Tick(ctx context.Context) {
	s.tick(ctx, s.now())
}

func (s *scheduler) tick(ctx context.Context, now time.Time) {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	local := now.In(s.cfg.Location)
	weekday := local.Weekday()
	dayKey := domain.DayKey(local)
	weekKey := domain.WeekKey(local)

	changed := false

	if weekday == s.cfg.Schedule.ResetDay() && weekKey != s.state.LastResetWeek {
		s.log.Info().Str("week", weekKey).Msg("resetting attendance for the week...")
		s.registry.Clear()
		s.state.LastResetWeek = weekKey
		metrics.WeeklyResets.Inc()
		changed = true
	}

	if dayKey != s.state.LastReminderDay {
		if s.remind(ctx, weekday, dayKey) {
			s.state.LastReminderDay = dayKey
			changed = true
		}
	}

	if changed {
		s.saveState(ctx)
	}
}

// remind sends today's reminder if a rule matches. It reports whether a
// reminder was delivered.
func (s *scheduler) remind(ctx context.Context, weekday time.Weekday, dayKey string) bool {
	kind := s.cfg.Schedule.ReminderFor(weekday, s.registry.Canceled())
	if kind == domain.ReminderNone {
		return false
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()

	err := s.notifier.Send(sendCtx, s.cfg.Destination, s.cfg.Schedule.ReminderText(kind))
	if err != nil {
		s.log.Error().Err(err).Str("kind", string(kind)).Str("day", dayKey).Msg("failed to send reminder, will retry next tick")
		metrics.ReminderFailures.Inc()
		return false
	}

	if kind == domain.ReminderCanceled {
		// a cancellation only covers one cycle
		s.registry.SetCanceled(false)
	}

	s.log.Info().Str("kind", string(kind)).Str("day", dayKey).Msg("reminder sent")
	metrics.RemindersSent.WithLabelValues(string(kind)).Inc()
	return true
}

func (s *scheduler) loadState(ctx context.Context) {
	if s.stateRepo == nil {
		return
	}

	state, err := s.stateRepo.GetState(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load scheduler state, starting fresh")
		return
	}
	if state == nil {
		return
	}

	s.tickMu.Lock()
	s.state = *state
	s.tickMu.Unlock()

	s.log.Info().
		Str("last_reset_week", state.LastResetWeek).
		Str("last_reminder_day", state.LastReminderDay).
		Msg("scheduler state loaded")
}

func (s *scheduler) saveState(ctx context.Context) {
	if s.stateRepo == nil {
		return
	}

	state := s.state
	if err := s.stateRepo.SaveState(ctx, &state); err != nil {
		s.log.Error().Err(err).Msg("failed to save scheduler state")
	}
}
