package scheduler

import (
	"context"
	"errors"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWorker() (*Worker, *mocks.LockerService, *mocks.PredictionUsecase, *mocks.AppointmentUsecase) {
	locker := new(mocks.LockerService)
	predictionUsecase := new(mocks.PredictionUsecase)
	appointmentUsecase := new(mocks.AppointmentUsecase)
	cfg := &config.InternalConfig{
		Scheduler: config.AppScheduler{
			SymptomRefreshCronSpec:      "@hourly",
			AppointmentReminderCronSpec: "0 18 * * *",
			LeaderLockTTLInSeconds:      60,
		},
	}
	return NewWorker(zap.NewNop(), cfg, locker, predictionUsecase, appointmentUsecase), locker, predictionUsecase, appointmentUsecase
}

func TestWorker_RunNow_SymptomRefresh(t *testing.T) {
	w, locker, predictionUsecase, _ := newTestWorker()
	locker.On("TryLock", mock.Anything, "scheduler:leader:symptom-refresh", time.Minute).Return(true, "token", nil)
	locker.On("Unlock", mock.Anything, "scheduler:leader:symptom-refresh", "token").Return(nil)
	predictionUsecase.On("RefreshSymptoms", mock.Anything).Return(nil)

	require.NoError(t, w.RunNow(context.Background(), JobSymptomRefresh))
	predictionUsecase.AssertExpectations(t)
	locker.AssertExpectations(t)
}

func TestWorker_RunNow_ReminderTargetsNextDay(t *testing.T) {
	w, locker, _, appointmentUsecase := newTestWorker()
	today := time.Date(2026, time.March, 13, 18, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return today }
	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "token", nil)
	locker.On("Unlock", mock.Anything, mock.Anything, "token").Return(nil)
	appointmentUsecase.On("QueueReminders", mock.Anything, today.AddDate(0, 0, 1)).Return(2, nil)

	require.NoError(t, w.RunNow(context.Background(), JobAppointmentReminder))
	appointmentUsecase.AssertExpectations(t)
}

func TestWorker_RunNow_SkipsWithoutLeadership(t *testing.T) {
	w, locker, predictionUsecase, _ := newTestWorker()
	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

	require.NoError(t, w.RunNow(context.Background(), JobSymptomRefresh))
	predictionUsecase.AssertNotCalled(t, "RefreshSymptoms", mock.Anything)
	locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorker_RunNow_ReleasesLockOnFailure(t *testing.T) {
	w, locker, predictionUsecase, _ := newTestWorker()
	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "token", nil)
	locker.On("Unlock", mock.Anything, mock.Anything, "token").Return(nil)
	predictionUsecase.On("RefreshSymptoms", mock.Anything).Return(errors.New("upstream down"))

	require.NoError(t, w.RunNow(context.Background(), JobSymptomRefresh))
	locker.AssertCalled(t, "Unlock", mock.Anything, "scheduler:leader:symptom-refresh", "token")
}

func TestWorker_UnknownJob(t *testing.T) {
	w, _, _, _ := newTestWorker()
	assert.Error(t, w.RunNow(context.Background(), "nope"))
}

func TestWorker_StartRejectsInvalidSpec(t *testing.T) {
	w, _, _, _ := newTestWorker()
	w.cfg.Scheduler.SymptomRefreshCronSpec = "every now and then"
	assert.Error(t, w.Start(context.Background()))
}
