package roles

import (
	"context"
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type roleUsecase struct {
	UserRepository     contracts.UserRepository
	PatientRepository  contracts.PatientRepository
	DoctorRepository   contracts.DoctorRepository
	TransactionManager contracts.TransactionManager
	LockService        contracts.LockerService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	roleUsecaseInstance contracts.RoleUsecase
	onceRoleUsecase     sync.Once
)

func NewRoleUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	transactionManager contracts.TransactionManager,
	lockService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RoleUsecase {
	onceRoleUsecase.Do(func() {
		instance := &roleUsecase{
			UserRepository:     userRepository,
			PatientRepository:  patientRepository,
			DoctorRepository:   doctorRepository,
			TransactionManager: transactionManager,
			LockService:        lockService,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		roleUsecaseInstance = instance
	})
	return roleUsecaseInstance
}

// Transition moves an identity to input.Role. The opposite profile is removed,
// the target profile upserted and the role written in one database
// transaction, guarded by a per-identity lock.
func (uc *roleUsecase) Transition(ctx context.Context, input *contracts.RoleTransitionInput) (*contracts.RoleTransitionResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roleUsecase.Transition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, input.IdentityID),
		zap.String(constvars.LoggingTargetRoleKey, input.Role),
	)

	switch input.Role {
	case constvars.RolePatient:
		if input.Patient == nil {
			return nil, exceptions.ErrInvalidRole(nil)
		}
	case constvars.RoleDoctor:
		if input.Doctor == nil {
			return nil, exceptions.ErrInvalidRole(nil)
		}
	case constvars.RoleUser, constvars.RoleAdmin:
	default:
		return nil, exceptions.ErrInvalidRole(nil)
	}

	unlock, err := uc.lockIdentity(ctx, input.IdentityID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var result *contracts.RoleTransitionResult
	err = uc.TransactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := uc.UserRepository.FindByID(txCtx, input.IdentityID)
		if err != nil {
			return err
		}
		if user == nil {
			return exceptions.ErrUserNotExist(nil)
		}

		result = &contracts.RoleTransitionResult{User: user}
		switch input.Role {
		case constvars.RolePatient:
			if _, err := uc.DoctorRepository.DeleteByIdentityID(txCtx, input.IdentityID); err != nil {
				return err
			}
			input.Patient.IdentityID = user.ID
			patient, err := uc.upsertPatient(txCtx, input.Patient)
			if err != nil {
				return err
			}
			result.Patient = patient
		case constvars.RoleDoctor:
			if _, err := uc.PatientRepository.DeleteByIdentityID(txCtx, input.IdentityID); err != nil {
				return err
			}
			input.Doctor.IdentityID = user.ID
			doctor, err := uc.upsertDoctor(txCtx, input.Doctor)
			if err != nil {
				return err
			}
			result.Doctor = doctor
		default:
			if _, err := uc.PatientRepository.DeleteByIdentityID(txCtx, input.IdentityID); err != nil {
				return err
			}
			if _, err := uc.DoctorRepository.DeleteByIdentityID(txCtx, input.IdentityID); err != nil {
				return err
			}
		}

		if err := uc.UserRepository.UpdateRole(txCtx, input.IdentityID, input.Role); err != nil {
			return err
		}
		user.Role = input.Role
		return nil
	})
	if err != nil {
		uc.Log.Error("roleUsecase.Transition transaction failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingIdentityIDKey, input.IdentityID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "role_transitioned", requestID,
		zap.String(constvars.LoggingIdentityIDKey, input.IdentityID),
		zap.String(constvars.LoggingRoleKey, input.Role),
	)
	return result, nil
}

func (uc *roleUsecase) RemoveIdentity(ctx context.Context, identityID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("roleUsecase.RemoveIdentity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)

	unlock, err := uc.lockIdentity(ctx, identityID)
	if err != nil {
		return err
	}
	defer unlock()

	err = uc.TransactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.PatientRepository.DeleteByIdentityID(txCtx, identityID); err != nil {
			return err
		}
		if _, err := uc.DoctorRepository.DeleteByIdentityID(txCtx, identityID); err != nil {
			return err
		}
		deleted, err := uc.UserRepository.DeleteByID(txCtx, identityID)
		if err != nil {
			return err
		}
		if !deleted {
			return exceptions.ErrUserNotExist(nil)
		}
		return nil
	})
	if err != nil {
		uc.Log.Error("roleUsecase.RemoveIdentity transaction failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	utils.LogBusinessEvent(uc.Log, "identity_removed", requestID,
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)
	return nil
}

func (uc *roleUsecase) lockIdentity(ctx context.Context, identityID string) (func(), error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	lockKey := fmt.Sprintf(constvars.LockKeyRoleTransitionFormat, identityID)
	ttl := time.Duration(uc.InternalConfig.Lock.RoleTransitionTTLInSeconds) * time.Second

	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, ttl)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrRoleTransitionBusy(nil, identityID)
	}

	return func() {
		if err := uc.LockService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("roleUsecase failed to release identity lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}, nil
}

func (uc *roleUsecase) upsertPatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	identityID := patient.IdentityID.Hex()
	existing, err := uc.PatientRepository.FindByIdentityID(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		patient.ID = existing.ID
		patient.CreatedAt = existing.CreatedAt
		patient.SetUpdatedAt()
		if err := uc.PatientRepository.UpdateByIdentityID(ctx, identityID, patient); err != nil {
			return nil, err
		}
		return patient, nil
	}

	patient.SetCreatedAtUpdatedAt()
	patientID, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID, _ = primitive.ObjectIDFromHex(patientID)
	return patient, nil
}

func (uc *roleUsecase) upsertDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	identityID := doctor.IdentityID.Hex()
	existing, err := uc.DoctorRepository.FindByIdentityID(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		doctor.ID = existing.ID
		doctor.CreatedAt = existing.CreatedAt
		doctor.SetUpdatedAt()
		if err := uc.DoctorRepository.UpdateByIdentityID(ctx, identityID, doctor); err != nil {
			return nil, err
		}
		return doctor, nil
	}

	doctor.SetCreatedAtUpdatedAt()
	doctorID, err := uc.DoctorRepository.Create(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID, _ = primitive.ObjectIDFromHex(doctorID)
	return doctor, nil
}
