package scheduler

import (
	"context"
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	JobSymptomRefresh      = "symptom-refresh"
	JobAppointmentReminder = "appointment-reminder"
)

type job struct {
	name string
	spec string
	run  func(ctx context.Context) error
}

// Worker runs the periodic jobs. Each run takes a per-job leader lock so that
// only one instance executes it.
type Worker struct {
	log                *zap.Logger
	cfg                *config.InternalConfig
	locker             contracts.LockerService
	predictionUsecase  contracts.PredictionUsecase
	appointmentUsecase contracts.AppointmentUsecase
	cron               *cron.Cron
	cancel             context.CancelFunc
	now                func() time.Time
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	locker contracts.LockerService,
	predictionUsecase contracts.PredictionUsecase,
	appointmentUsecase contracts.AppointmentUsecase,
) *Worker {
	return &Worker{
		log:                log,
		cfg:                cfg,
		locker:             locker,
		predictionUsecase:  predictionUsecase,
		appointmentUsecase: appointmentUsecase,
		now:                time.Now,
	}
}

func (w *Worker) jobs() []job {
	return []job{
		{
			name: JobSymptomRefresh,
			spec: w.cfg.Scheduler.SymptomRefreshCronSpec,
			run:  w.predictionUsecase.RefreshSymptoms,
		},
		{
			name: JobAppointmentReminder,
			spec: w.cfg.Scheduler.AppointmentReminderCronSpec,
			run: func(ctx context.Context) error {
				queued, err := w.appointmentUsecase.QueueReminders(ctx, w.now().AddDate(0, 0, 1))
				if err != nil {
					return err
				}
				w.log.Info("scheduler.Worker queued appointment reminders", zap.Int(constvars.LoggingCountKey, queued))
				return nil
			},
		},
	}
}

// Start schedules every job. An invalid spec is an error.
func (w *Worker) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	c := cron.New()
	for _, j := range w.jobs() {
		j := j
		if _, err := c.AddFunc(j.spec, func() { w.runOnce(runCtx, j) }); err != nil {
			cancel()
			return fmt.Errorf("schedule %s with spec %q: %w", j.name, j.spec, err)
		}
		w.log.Info("scheduler.Worker job scheduled",
			zap.String(constvars.LoggingJobKey, j.name),
			zap.String(constvars.LoggingCronSpecKey, j.spec),
		)
	}
	c.Start()
	w.cron = c
	w.cancel = cancel
	return nil
}

// Stop cancels in-flight runs and waits for them to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

// RunNow executes the named job once under its leader lock.
func (w *Worker) RunNow(ctx context.Context, name string) error {
	for _, j := range w.jobs() {
		if j.name == name {
			w.runOnce(ctx, j)
			return nil
		}
	}
	return fmt.Errorf("unknown job %s", name)
}

func (w *Worker) runOnce(ctx context.Context, j job) {
	requestID := utils.GenerateRequestID()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	log := w.log.With(
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingJobKey, j.name),
	)

	lockKey := fmt.Sprintf(constvars.LockKeyLeaderFormat, j.name)
	ttl := time.Duration(w.cfg.Scheduler.LeaderLockTTLInSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	acquired, token, err := w.locker.TryLock(ctx, lockKey, ttl)
	if err != nil {
		log.Warn("scheduler.Worker leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		log.Info("scheduler.Worker leader lock not acquired, another instance is running")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), lockKey, token); err != nil {
			log.Warn("scheduler.Worker failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, lockKey, token, ttl); err != nil {
					log.Warn("scheduler.Worker failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	start := time.Now()
	if err := j.run(ctx); err != nil {
		log.Error("scheduler.Worker job failed", zap.Error(err))
		return
	}
	log.Info("scheduler.Worker job finished", zap.Duration(constvars.LoggingDurationKey, time.Since(start)))
}
