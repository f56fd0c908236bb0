package appointments

import (
	"context"
	"errors"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts/mocks"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentFixture struct {
	uc                    *appointmentUsecase
	appointmentRepository *mocks.AppointmentRepository
	patientRepository     *mocks.PatientRepository
	doctorRepository      *mocks.DoctorRepository
	userRepository        *mocks.UserRepository
	lockService           *mocks.LockerService
	mailerService         *mocks.MailerService
}

func newAppointmentFixture() *appointmentFixture {
	f := &appointmentFixture{
		appointmentRepository: new(mocks.AppointmentRepository),
		patientRepository:     new(mocks.PatientRepository),
		doctorRepository:      new(mocks.DoctorRepository),
		userRepository:        new(mocks.UserRepository),
		lockService:           new(mocks.LockerService),
		mailerService:         new(mocks.MailerService),
	}
	f.uc = &appointmentUsecase{
		AppointmentRepository: f.appointmentRepository,
		PatientRepository:     f.patientRepository,
		DoctorRepository:      f.doctorRepository,
		UserRepository:        f.userRepository,
		LockService:           f.lockService,
		MailerService:         f.mailerService,
		InternalConfig: &config.InternalConfig{
			Lock: config.AppLock{AppointmentTTLInSeconds: 5},
		},
		Log: zap.NewNop(),
	}
	return f
}

func (f *appointmentFixture) expectPairLock(patientID, doctorID string) {
	key := "appointment:" + patientID + ":" + doctorID
	f.lockService.On("TryLock", mock.Anything, key, 5*time.Second).Return(true, "pair-lock", nil)
	f.lockService.On("Unlock", mock.Anything, key, "pair-lock").Return(nil)
}

func sessionContext(identityID, role string) context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_SESSION_DATA_KEY, &models.Session{IdentityID: identityID, Role: role})
}

func customError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr
}

func bookingRequest(doctorID primitive.ObjectID, date time.Time) *requests.CreateAppointment {
	return &requests.CreateAppointment{
		DoctorID: doctorID.Hex(),
		Date:     date.Format(time.RFC3339),
		TimeSlot: constvars.TimeSlotMorning,
		Reason:   "Chest pain",
	}
}

func TestAppointmentUsecase_Create(t *testing.T) {
	identityID := primitive.NewObjectID().Hex()
	patient := &models.Patient{ID: primitive.NewObjectID(), Name: "Asha"}
	tomorrow := time.Now().Add(24 * time.Hour)

	t.Run("books a pending appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		doctor := &models.Doctor{ID: primitive.NewObjectID(), Status: constvars.DoctorStatusActive}
		f.patientRepository.On("FindByIdentityID", mock.Anything, identityID).Return(patient, nil)
		f.doctorRepository.On("FindByID", mock.Anything, doctor.ID.Hex()).Return(doctor, nil)
		f.expectPairLock(patient.ID.Hex(), doctor.ID.Hex())
		f.appointmentRepository.On("FindByPair", mock.Anything, patient.ID.Hex(), doctor.ID.Hex()).Return(nil, nil)
		appointmentID := primitive.NewObjectID()
		f.appointmentRepository.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusPending && a.PatientID == patient.ID && a.DoctorID == doctor.ID
		})).Return(appointmentID.Hex(), nil)

		appointment, err := f.uc.Create(sessionContext(identityID, constvars.RolePatient), bookingRequest(doctor.ID, tomorrow))
		require.NoError(t, err)
		assert.Equal(t, appointmentID, appointment.ID)
		assert.Equal(t, constvars.AppointmentStatusPending, appointment.Status)
		f.lockService.AssertExpectations(t)
	})

	t.Run("calendar date is stored as UTC midnight", func(t *testing.T) {
		f := newAppointmentFixture()
		doctor := &models.Doctor{ID: primitive.NewObjectID(), Status: constvars.DoctorStatusActive}
		f.patientRepository.On("FindByIdentityID", mock.Anything, identityID).Return(patient, nil)
		f.doctorRepository.On("FindByID", mock.Anything, doctor.ID.Hex()).Return(doctor, nil)
		f.expectPairLock(patient.ID.Hex(), doctor.ID.Hex())
		f.appointmentRepository.On("FindByPair", mock.Anything, patient.ID.Hex(), doctor.ID.Hex()).Return(nil, nil)
		expected := time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)
		f.appointmentRepository.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Date.Equal(expected)
		})).Return(primitive.NewObjectID().Hex(), nil)

		request := bookingRequest(doctor.ID, tomorrow)
		request.Date = "2030-01-15"
		appointment, err := f.uc.Create(sessionContext(identityID, constvars.RolePatient), request)
		require.NoError(t, err)
		assert.True(t, appointment.Date.Equal(expected))
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newAppointmentFixture()
		f.patientRepository.On("FindByIdentityID", mock.Anything, identityID).Return(patient, nil)

		request := bookingRequest(primitive.NewObjectID(), tomorrow)
		request.Date = "15/01/2030"
		_, err := f.uc.Create(sessionContext(identityID, constvars.RolePatient), request)
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidAppointmentDate, customErr.ClientMessage)
		f.doctorRepository.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("away doctor is unavailable", func(t *testing.T) {
		f := newAppointmentFixture()
		doctor := &models.Doctor{ID: primitive.NewObjectID(), Status: constvars.DoctorStatusAway}
		f.patientRepository.On("FindByIdentityID", mock.Anything, identityID).Return(patient, nil)
		f.doctorRepository.On("FindByID", mock.Anything, doctor.ID.Hex()).Return(doctor, nil)

		_, err := f.uc.Create(sessionContext(identityID, constvars.RolePatient), bookingRequest(doctor.ID, tomorrow))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientDoctorNotAvailable, customErr.ClientMessage)
		f.appointmentRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.lockService.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second booking for the pair conflicts on another date", func(t *testing.T) {
		f := newAppointmentFixture()
		doctor := &models.Doctor{ID: primitive.NewObjectID(), Status: constvars.DoctorStatusActive}
		f.patientRepository.On("FindByIdentityID", mock.Anything, identityID).Return(patient, nil)
		f.doctorRepository.On("FindByID", mock.Anything, doctor.ID.Hex()).Return(doctor, nil)
		f.expectPairLock(patient.ID.Hex(), doctor.ID.Hex())
		f.appointmentRepository.On("FindByPair", mock.Anything, patient.ID.Hex(), doctor.ID.Hex()).
			Return(&models.Appointment{Date: tomorrow}, nil)

		_, err := f.uc.Create(sessionContext(identityID, constvars.RolePatient), bookingRequest(doctor.ID, tomorrow.AddDate(0, 0, 7)))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientAppointmentAlreadyExists, customErr.ClientMessage)
		f.appointmentRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.lockService.AssertCalled(t, "Unlock", mock.Anything, mock.Anything, "pair-lock")
	})

	t.Run("pair lock held elsewhere", func(t *testing.T) {
		f := newAppointmentFixture()
		doctor := &models.Doctor{ID: primitive.NewObjectID(), Status: constvars.DoctorStatusActive}
		f.patientRepository.On("FindByIdentityID", mock.Anything, identityID).Return(patient, nil)
		f.doctorRepository.On("FindByID", mock.Anything, doctor.ID.Hex()).Return(doctor, nil)
		f.lockService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		_, err := f.uc.Create(sessionContext(identityID, constvars.RolePatient), bookingRequest(doctor.ID, tomorrow))
		assert.Equal(t, constvars.StatusConflict, customError(t, err).StatusCode)
		f.appointmentRepository.AssertNotCalled(t, "FindByPair", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing patient profile", func(t *testing.T) {
		f := newAppointmentFixture()
		f.patientRepository.On("FindByIdentityID", mock.Anything, identityID).Return(nil, nil)

		_, err := f.uc.Create(sessionContext(identityID, constvars.RoleUser), bookingRequest(primitive.NewObjectID(), tomorrow))
		assert.Equal(t, constvars.ErrClientPatientProfileNotFound, customError(t, err).ClientMessage)
	})
}

func TestAppointmentUsecase_List(t *testing.T) {
	identityID := primitive.NewObjectID().Hex()

	t.Run("patient sees expanded appointments", func(t *testing.T) {
		f := newAppointmentFixture()
		patient := models.Patient{ID: primitive.NewObjectID(), Name: "Asha"}
		doctor := models.Doctor{ID: primitive.NewObjectID(), Name: "Rao"}
		appointment := models.Appointment{ID: primitive.NewObjectID(), PatientID: patient.ID, DoctorID: doctor.ID, Status: constvars.AppointmentStatusPending}
		f.patientRepository.On("FindByIdentityID", mock.Anything, identityID).Return(&patient, nil)
		f.appointmentRepository.On("FindByPatientID", mock.Anything, patient.ID.Hex()).Return([]models.Appointment{appointment}, nil)
		f.patientRepository.On("FindByIDs", mock.Anything, []string{patient.ID.Hex()}).Return([]models.Patient{patient}, nil)
		f.doctorRepository.On("FindByIDs", mock.Anything, []string{doctor.ID.Hex()}).Return([]models.Doctor{doctor}, nil)

		result, err := f.uc.List(sessionContext(identityID, constvars.RolePatient))
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Asha", result[0].Patient.Name)
		assert.Equal(t, "Rao", result[0].Doctor.Name)
	})

	t.Run("doctor without profile", func(t *testing.T) {
		f := newAppointmentFixture()
		f.doctorRepository.On("FindByIdentityID", mock.Anything, identityID).Return(nil, nil)

		_, err := f.uc.List(sessionContext(identityID, constvars.RoleDoctor))
		assert.Equal(t, constvars.StatusNotFound, customError(t, err).StatusCode)
	})

	t.Run("other roles are rejected", func(t *testing.T) {
		f := newAppointmentFixture()

		_, err := f.uc.List(sessionContext(identityID, constvars.RoleUser))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientUnauthorizedRole, customErr.ClientMessage)
	})
}

func TestAppointmentUsecase_UpdateStatus(t *testing.T) {
	adminID := primitive.NewObjectID().Hex()
	doctorProfile := &models.Doctor{ID: primitive.NewObjectID()}

	newPending := func() *models.Appointment {
		return &models.Appointment{ID: primitive.NewObjectID(), DoctorID: doctorProfile.ID, Status: constvars.AppointmentStatusPending}
	}

	t.Run("pending to completed", func(t *testing.T) {
		f := newAppointmentFixture()
		appointment := newPending()
		id := appointment.ID.Hex()
		f.appointmentRepository.On("FindByID", mock.Anything, id).Return(appointment, nil)
		f.appointmentRepository.On("UpdateStatus", mock.Anything, id, constvars.AppointmentStatusPending, constvars.AppointmentStatusCompleted).Return(true, nil)

		updated, err := f.uc.UpdateStatus(sessionContext(adminID, constvars.RoleAdmin), id, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, updated.Status)
	})

	t.Run("terminal states do not move", func(t *testing.T) {
		f := newAppointmentFixture()
		appointment := newPending()
		appointment.Status = constvars.AppointmentStatusCompleted
		id := appointment.ID.Hex()
		f.appointmentRepository.On("FindByID", mock.Anything, id).Return(appointment, nil)

		_, err := f.uc.UpdateStatus(sessionContext(adminID, constvars.RoleAdmin), id, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusRejected})
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidStatusTransition, customErr.ClientMessage)
		f.appointmentRepository.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent change loses", func(t *testing.T) {
		f := newAppointmentFixture()
		appointment := newPending()
		id := appointment.ID.Hex()
		f.appointmentRepository.On("FindByID", mock.Anything, id).Return(appointment, nil)
		f.appointmentRepository.On("UpdateStatus", mock.Anything, id, constvars.AppointmentStatusPending, constvars.AppointmentStatusRejected).Return(false, nil)

		_, err := f.uc.UpdateStatus(sessionContext(adminID, constvars.RoleAdmin), id, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusRejected})
		assert.Equal(t, constvars.StatusConflict, customError(t, err).StatusCode)
	})

	t.Run("doctor updates own appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		doctorIdentity := primitive.NewObjectID().Hex()
		appointment := newPending()
		id := appointment.ID.Hex()
		f.appointmentRepository.On("FindByID", mock.Anything, id).Return(appointment, nil)
		f.doctorRepository.On("FindByIdentityID", mock.Anything, doctorIdentity).Return(doctorProfile, nil)
		f.appointmentRepository.On("UpdateStatus", mock.Anything, id, constvars.AppointmentStatusPending, constvars.AppointmentStatusRejected).Return(true, nil)

		_, err := f.uc.UpdateStatus(sessionContext(doctorIdentity, constvars.RoleDoctor), id, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusRejected})
		require.NoError(t, err)
	})

	t.Run("doctor cannot update another doctor's appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		doctorIdentity := primitive.NewObjectID().Hex()
		appointment := newPending()
		id := appointment.ID.Hex()
		f.appointmentRepository.On("FindByID", mock.Anything, id).Return(appointment, nil)
		f.doctorRepository.On("FindByIdentityID", mock.Anything, doctorIdentity).Return(&models.Doctor{ID: primitive.NewObjectID()}, nil)

		_, err := f.uc.UpdateStatus(sessionContext(doctorIdentity, constvars.RoleDoctor), id, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted})
		assert.Equal(t, constvars.StatusForbidden, customError(t, err).StatusCode)
	})
}

func TestAppointmentUsecase_Cancel(t *testing.T) {
	f := newAppointmentFixture()
	id := primitive.NewObjectID().Hex()
	f.appointmentRepository.On("DeleteByID", mock.Anything, id).Return(false, nil)

	err := f.uc.Cancel(context.Background(), id)
	assert.Equal(t, constvars.StatusNotFound, customError(t, err).StatusCode)
}

func TestAppointmentUsecase_QueueReminders(t *testing.T) {
	f := newAppointmentFixture()
	day := time.Date(2026, time.March, 14, 15, 30, 0, 0, time.UTC)
	from := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	identity := models.User{ID: primitive.NewObjectID(), Email: "asha@example.com"}
	patient := models.Patient{ID: primitive.NewObjectID(), IdentityID: identity.ID, Name: "Asha"}
	doctor := models.Doctor{ID: primitive.NewObjectID(), Name: "Rao"}
	orphan := models.Appointment{ID: primitive.NewObjectID(), PatientID: primitive.NewObjectID(), DoctorID: doctor.ID, Date: day}
	appointment := models.Appointment{ID: primitive.NewObjectID(), PatientID: patient.ID, DoctorID: doctor.ID, Date: day, TimeSlot: constvars.TimeSlotEvening, Reason: "Follow-up"}

	f.appointmentRepository.On("FindByStatusBetween", mock.Anything, constvars.AppointmentStatusPending, from, from.AddDate(0, 0, 1)).
		Return([]models.Appointment{appointment, orphan}, nil)
	f.patientRepository.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Patient{patient}, nil)
	f.doctorRepository.On("FindByIDs", mock.Anything, []string{doctor.ID.Hex()}).Return([]models.Doctor{doctor}, nil)
	f.userRepository.On("FindByIDs", mock.Anything, []string{identity.ID.Hex()}).Return([]models.User{identity}, nil)
	f.mailerService.On("Publish", mock.Anything, mock.MatchedBy(func(job *requests.MailJob) bool {
		return job.Type == constvars.MailTypeAppointmentReminder &&
			job.To == "asha@example.com" &&
			job.Metadata["appointment_id"] == appointment.ID.Hex()
	})).Return(nil).Once()

	queued, err := f.uc.QueueReminders(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 1, queued)
	f.mailerService.AssertExpectations(t)
}
