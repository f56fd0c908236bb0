package appointments

import (
	"context"
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Completed and Rejected are terminal.
var allowedStatusTransitions = map[string][]string{
	constvars.AppointmentStatusPending: {
		constvars.AppointmentStatusCompleted,
		constvars.AppointmentStatusRejected,
	},
}

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
	UserRepository        contracts.UserRepository
	LockService           contracts.LockerService
	MailerService         contracts.MailerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	lockService contracts.LockerService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			PatientRepository:     patientRepository,
			DoctorRepository:      doctorRepository,
			UserRepository:        userRepository,
			LockService:           lockService,
			MailerService:         mailerService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	session, err := utils.GetSessionData(ctx)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByIdentityID(ctx, session.IdentityID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error calling PatientRepository.FindByIdentityID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientProfileNotFound(nil)
	}

	return uc.book(ctx, patient, request)
}

func (uc *appointmentUsecase) AdminCreate(ctx context.Context, request *requests.AdminCreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.AdminCreate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.AdminCreate error calling PatientRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	return uc.book(ctx, patient, &request.CreateAppointment)
}

// book runs the availability and pair checks and the insert under the pair lock.
func (uc *appointmentUsecase) book(ctx context.Context, patient *models.Patient, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	date, err := utils.ParseAppointmentDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrInvalidAppointmentDate(err, request.Date)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	if !doctor.IsActive() {
		return nil, exceptions.ErrDoctorUnavailable(nil)
	}

	patientID, doctorID := patient.ID.Hex(), doctor.ID.Hex()
	unlock, err := uc.lockPair(ctx, patientID, doctorID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := uc.AppointmentRepository.FindByPair(ctx, patientID, doctorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrAppointmentAlreadyExists(nil)
	}

	appointment := &models.Appointment{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      date,
		TimeSlot:  request.TimeSlot,
		Status:    constvars.AppointmentStatusPending,
		Reason:    request.Reason,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.book error calling AppointmentRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID, _ = primitive.ObjectIDFromHex(appointmentID)

	utils.LogBusinessEvent(uc.Log, "appointment_requested", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) lockPair(ctx context.Context, patientID, doctorID string) (func(), error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	lockKey := fmt.Sprintf(constvars.LockKeyAppointmentPairFormat, patientID, doctorID)
	ttl := time.Duration(uc.InternalConfig.Lock.AppointmentTTLInSeconds) * time.Second

	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, ttl)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrAppointmentBookingBusy(nil)
	}

	return func() {
		if err := uc.LockService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("appointmentUsecase failed to release pair lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}, nil
}

// List returns the caller's appointments, scoped by role.
func (uc *appointmentUsecase) List(ctx context.Context) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.GetSessionData(ctx)
	if err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	switch session.Role {
	case constvars.RoleDoctor:
		doctor, err := uc.DoctorRepository.FindByIdentityID(ctx, session.IdentityID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, exceptions.ErrDoctorNotFound(nil)
		}
		appointments, err = uc.AppointmentRepository.FindByDoctorID(ctx, doctor.ID.Hex())
		if err != nil {
			return nil, err
		}
	case constvars.RolePatient:
		patient, err := uc.PatientRepository.FindByIdentityID(ctx, session.IdentityID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, exceptions.ErrPatientProfileNotFound(nil)
		}
		appointments, err = uc.AppointmentRepository.FindByPatientID(ctx, patient.ID.Hex())
		if err != nil {
			return nil, err
		}
	default:
		utils.LogSecurityEvent(uc.Log, "appointment_list_role_denied", requestID, constvars.SecuritySeverityLow,
			zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
			zap.String(constvars.LoggingRoleKey, session.Role),
		)
		return nil, exceptions.ErrUnauthorizedRole(nil)
	}

	result, err := uc.expand(ctx, appointments)
	if err != nil {
		uc.Log.Error("appointmentUsecase.List error expanding appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error calling AppointmentRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return uc.expand(ctx, appointments)
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findExisting(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	result, err := uc.expand(ctx, []models.Appointment{*appointment})
	if err != nil {
		return nil, err
	}
	return &result[0], nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	session, err := utils.GetSessionData(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.findExisting(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if session.Role == constvars.RoleDoctor {
		doctor, err := uc.DoctorRepository.FindByIdentityID(ctx, session.IdentityID)
		if err != nil {
			return nil, err
		}
		if doctor == nil || doctor.ID != appointment.DoctorID {
			utils.LogSecurityEvent(uc.Log, "appointment_update_not_owner", requestID, constvars.SecuritySeverityMedium,
				zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			)
			return nil, exceptions.ErrNotOwner(nil)
		}
	}

	from, to := appointment.Status, request.Status
	if !canTransition(from, to) {
		return nil, exceptions.ErrInvalidStatusTransition(nil, from, to)
	}

	updated, err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, from, to)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateStatus error calling AppointmentRepository.UpdateStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !updated {
		// status moved since it was read
		return nil, exceptions.ErrInvalidStatusTransition(nil, from, to)
	}

	appointment.Status = to
	appointment.SetUpdatedAt()

	utils.LogBusinessEvent(uc.Log, "appointment_status_changed", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, to),
	)
	return appointment, nil
}

func canTransition(from, to string) bool {
	for _, next := range allowedStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	deleted, err := uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Cancel error calling AppointmentRepository.DeleteByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	utils.LogBusinessEvent(uc.Log, "appointment_cancelled", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

// QueueReminders publishes one reminder mail per Pending appointment dated on day.
// Appointments whose patient identity is gone are skipped.
func (uc *appointmentUsecase) QueueReminders(ctx context.Context, day time.Time) (queued int, err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	uc.Log.Info("appointmentUsecase.QueueReminders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time("from", from),
	)

	appointments, err := uc.AppointmentRepository.FindByStatusBetween(ctx, constvars.AppointmentStatusPending, from, to)
	if err != nil {
		return 0, err
	}
	if len(appointments) == 0 {
		return 0, nil
	}

	expanded, err := uc.expand(ctx, appointments)
	if err != nil {
		return 0, err
	}

	identityIDs := make([]string, 0, len(expanded))
	for _, appointment := range expanded {
		if appointment.Patient != nil {
			identityIDs = append(identityIDs, appointment.Patient.IdentityID.Hex())
		}
	}
	users, err := uc.UserRepository.FindByIDs(ctx, identityIDs)
	if err != nil {
		return 0, err
	}
	emails := make(map[string]string, len(users))
	for _, user := range users {
		emails[user.ID.Hex()] = user.Email
	}

	for _, appointment := range expanded {
		if appointment.Patient == nil || appointment.Doctor == nil {
			continue
		}
		email, ok := emails[appointment.Patient.IdentityID.Hex()]
		if !ok {
			continue
		}

		job := &requests.MailJob{
			Type:    constvars.MailTypeAppointmentReminder,
			To:      email,
			Subject: constvars.EmailAppointmentReminderSubject,
			Body: fmt.Sprintf(constvars.EmailAppointmentReminderFormat,
				appointment.Patient.Name,
				appointment.TimeSlot,
				appointment.Doctor.Name,
				appointment.Date.Format(constvars.AppointmentReminderDateLayout),
				appointment.Reason,
			),
			Metadata: map[string]string{"appointment_id": appointment.ID},
		}
		if err := uc.MailerService.Publish(ctx, job); err != nil {
			return queued, err
		}
		queued++
	}

	uc.Log.Info("appointmentUsecase.QueueReminders succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, queued),
	)
	return queued, nil
}

func (uc *appointmentUsecase) findExisting(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

// expand resolves patient and doctor profiles with one query per collection.
func (uc *appointmentUsecase) expand(ctx context.Context, appointments []models.Appointment) ([]responses.Appointment, error) {
	patientIDs := make([]string, 0, len(appointments))
	doctorIDs := make([]string, 0, len(appointments))
	seen := make(map[string]bool, len(appointments)*2)
	for _, appointment := range appointments {
		if id := appointment.PatientID.Hex(); !seen[id] {
			seen[id] = true
			patientIDs = append(patientIDs, id)
		}
		if id := appointment.DoctorID.Hex(); !seen[id] {
			seen[id] = true
			doctorIDs = append(doctorIDs, id)
		}
	}

	patients, err := uc.PatientRepository.FindByIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}
	doctors, err := uc.DoctorRepository.FindByIDs(ctx, doctorIDs)
	if err != nil {
		return nil, err
	}

	patientsByID := make(map[string]*models.Patient, len(patients))
	for i := range patients {
		patientsByID[patients[i].ID.Hex()] = &patients[i]
	}
	doctorsByID := make(map[string]*models.Doctor, len(doctors))
	for i := range doctors {
		doctorsByID[doctors[i].ID.Hex()] = &doctors[i]
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		result = append(result, responses.Appointment{
			ID:        appointment.ID.Hex(),
			Patient:   patientsByID[appointment.PatientID.Hex()],
			Doctor:    doctorsByID[appointment.DoctorID.Hex()],
			Date:      appointment.Date,
			TimeSlot:  appointment.TimeSlot,
			Status:    appointment.Status,
			Reason:    appointment.Reason,
			CreatedAt: appointment.CreatedAt,
			UpdatedAt: appointment.UpdatedAt,
		})
	}
	return result, nil
}
