package doctors

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

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	RoleUsecase      contracts.RoleUsecase
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	roleUsecase contracts.RoleUsecase,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		instance := &doctorUsecase{
			DoctorRepository: doctorRepository,
			RoleUsecase:      roleUsecase,
			Log:              logger,
		}
		doctorUsecaseInstance = instance
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAll error calling DoctorRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(doctors)),
	)
	return doctors, nil
}

func (uc *doctorUsecase) FindByIdentityID(ctx context.Context, identityID string) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindByIdentityID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)
	return uc.findExisting(ctx, identityID)
}

func (uc *doctorUsecase) Create(ctx context.Context, request *requests.AdminCreateDoctor) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, request.IdentityID),
	)

	identityID, err := primitive.ObjectIDFromHex(request.IdentityID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := uc.RoleUsecase.Transition(ctx, &contracts.RoleTransitionInput{
		IdentityID: request.IdentityID,
		Role:       constvars.RoleDoctor,
		Doctor:     utils.BuildDoctorModel(identityID, &request.DoctorProfile),
	})
	if err != nil {
		uc.Log.Error("doctorUsecase.Create error calling RoleUsecase.Transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "doctor_added", requestID,
		zap.String(constvars.LoggingIdentityIDKey, request.IdentityID),
		zap.String(constvars.LoggingDoctorIDKey, result.Doctor.ID.Hex()),
	)
	return result.Doctor, nil
}

// UpdateByIdentityID keeps the stored availability when the request omits it.
func (uc *doctorUsecase) UpdateByIdentityID(ctx context.Context, identityID string, request *requests.DoctorProfile) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateByIdentityID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)

	existing, err := uc.findExisting(ctx, identityID)
	if err != nil {
		return nil, err
	}

	doctor := utils.BuildDoctorModel(existing.IdentityID, request)
	if request.Status == "" {
		doctor.Status = existing.Status
	}
	doctor.ID = existing.ID
	doctor.CreatedAt = existing.CreatedAt
	doctor.SetUpdatedAt()

	err = uc.DoctorRepository.UpdateByIdentityID(ctx, identityID, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.UpdateByIdentityID error calling DoctorRepository.UpdateByIdentityID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.UpdateByIdentityID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
	)
	return doctor, nil
}

func (uc *doctorUsecase) DeleteByIdentityID(ctx context.Context, identityID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.DeleteByIdentityID called",
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
		uc.Log.Error("doctorUsecase.DeleteByIdentityID error calling RoleUsecase.Transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	utils.LogBusinessEvent(uc.Log, "doctor_deleted", requestID,
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)
	return nil
}

func (uc *doctorUsecase) findExisting(ctx context.Context, identityID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByIdentityID(ctx, identityID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}
