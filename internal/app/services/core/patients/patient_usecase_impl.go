package patients

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	RoleUsecase       contracts.RoleUsecase
	Log               *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	roleUsecase contracts.RoleUsecase,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		instance := &patientUsecase{
			PatientRepository: patientRepository,
			RoleUsecase:       roleUsecase,
			Log:               logger,
		}
		patientUsecaseInstance = instance
	})
	return patientUsecaseInstance
}

// UpsertOwnProfile is idempotent: it updates the caller's profile or creates
// it and promotes the caller to patient.
func (uc *patientUsecase) UpsertOwnProfile(ctx context.Context, request *requests.PatientProfile) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpsertOwnProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.GetSessionData(ctx)
	if err != nil {
		return nil, err
	}

	patient, err := uc.transitionToPatient(ctx, session.IdentityID, request)
	if err != nil {
		uc.Log.Error("patientUsecase.UpsertOwnProfile error transitioning identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpsertOwnProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID.Hex()),
	)
	return patient, nil
}

func (uc *patientUsecase) GetOwnProfile(ctx context.Context) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetOwnProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.GetSessionData(ctx)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByIdentityID(ctx, session.IdentityID)
	if err != nil {
		uc.Log.Error("patientUsecase.GetOwnProfile error calling PatientRepository.FindByIdentityID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientProfileNotFound(nil)
	}

	uc.Log.Info("patientUsecase.GetOwnProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID.Hex()),
	)
	return patient, nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.AdminCreatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, request.IdentityID),
	)

	patient, err := uc.transitionToPatient(ctx, request.IdentityID, &request.PatientProfile)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error transitioning identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "patient_added", requestID,
		zap.String(constvars.LoggingIdentityIDKey, request.IdentityID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID.Hex()),
	)
	return patient, nil
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error calling PatientRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, nil
}

func (uc *patientUsecase) FindByIdentityID(ctx context.Context, identityID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindByIdentityID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)
	return uc.findExisting(ctx, identityID)
}

func (uc *patientUsecase) UpdateByIdentityID(ctx context.Context, identityID string, request *requests.PatientProfile) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdateByIdentityID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)

	existing, err := uc.findExisting(ctx, identityID)
	if err != nil {
		return nil, err
	}

	patient := utils.BuildPatientModel(existing.IdentityID, request)
	patient.ID = existing.ID
	patient.CreatedAt = existing.CreatedAt
	patient.SetUpdatedAt()

	err = uc.PatientRepository.UpdateByIdentityID(ctx, identityID, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdateByIdentityID error calling PatientRepository.UpdateByIdentityID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpdateByIdentityID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID.Hex()),
	)
	return patient, nil
}

// DeleteByIdentityID removes the profile and demotes the identity to user.
func (uc *patientUsecase) DeleteByIdentityID(ctx context.Context, identityID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeleteByIdentityID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)

	if _, err := uc.findExisting(ctx, identityID); err != nil {
		return err
	}

	_, err := uc.RoleUsecase.Transition(ctx, &contracts.RoleTransitionInput{
		IdentityID: identityID,
		Role:       constvars.RoleUser,
	})
	if err != nil {
		uc.Log.Error("patientUsecase.DeleteByIdentityID error calling RoleUsecase.Transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	utils.LogBusinessEvent(uc.Log, "patient_deleted", requestID,
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)
	return nil
}

func (uc *patientUsecase) transitionToPatient(ctx context.Context, identityID string, request *requests.PatientProfile) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(identityID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := uc.RoleUsecase.Transition(ctx, &contracts.RoleTransitionInput{
		IdentityID: identityID,
		Role:       constvars.RolePatient,
		Patient:    utils.BuildPatientModel(objectID, request),
	})
	if err != nil {
		return nil, err
	}
	return result.Patient, nil
}

func (uc *patientUsecase) findExisting(ctx context.Context, identityID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByIdentityID(ctx, identityID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}
