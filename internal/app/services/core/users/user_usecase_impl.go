package users

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	RoleUsecase    contracts.RoleUsecase
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	roleUsecase contracts.RoleUsecase,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		instance := &userUsecase{
			UserRepository: userRepository,
			RoleUsecase:    roleUsecase,
			Log:            logger,
		}
		userUsecaseInstance = instance
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetSelf(ctx context.Context) (*responses.UserInfo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetSelf called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.GetSessionData(ctx)
	if err != nil {
		return nil, err
	}

	user, err := uc.findExisting(ctx, session.IdentityID)
	if err != nil {
		uc.Log.Error("userUsecase.GetSelf error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.GetSelf succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
	)
	return &responses.UserInfo{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (uc *userUsecase) FindAll(ctx context.Context) ([]models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("userUsecase.FindAll error calling UserRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(users)),
	)
	return users, nil
}

func (uc *userUsecase) FindByID(ctx context.Context, identityID string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)

	user, err := uc.findExisting(ctx, identityID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)
	return user, nil
}

func (uc *userUsecase) UpdateByID(ctx context.Context, identityID string, request *requests.UpdateUser) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)

	user, err := uc.findExisting(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if request.Email != "" && request.Email != user.Email {
		existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			uc.Log.Error("userUsecase.UpdateByID error calling UserRepository.FindByEmail",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		user.Email = request.Email
	}
	if request.Name != "" {
		user.Name = request.Name
	}
	user.SetUpdatedAt()

	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateByID error calling UserRepository.UpdateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)
	return user, nil
}

func (uc *userUsecase) DeleteByID(ctx context.Context, identityID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)

	if _, err := uc.findExisting(ctx, identityID); err != nil {
		return err
	}

	err := uc.RoleUsecase.RemoveIdentity(ctx, identityID)
	if err != nil {
		uc.Log.Error("userUsecase.DeleteByID error calling RoleUsecase.RemoveIdentity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("userUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
	)
	return nil
}

func (uc *userUsecase) ChangeRole(ctx context.Context, identityID string, request *requests.ChangeRole) (*contracts.RoleTransitionResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.ChangeRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
		zap.String(constvars.LoggingTargetRoleKey, request.Role),
	)

	user, err := uc.findExisting(ctx, identityID)
	if err != nil {
		return nil, err
	}

	input := &contracts.RoleTransitionInput{
		IdentityID: identityID,
		Role:       request.Role,
	}
	switch request.Role {
	case constvars.RolePatient:
		if request.Patient == nil {
			return nil, exceptions.ErrInvalidRole(nil)
		}
		input.Patient = utils.BuildPatientModel(user.ID, request.Patient)
	case constvars.RoleDoctor:
		if request.Doctor == nil {
			return nil, exceptions.ErrInvalidRole(nil)
		}
		input.Doctor = utils.BuildDoctorModel(user.ID, request.Doctor)
	case constvars.RoleUser, constvars.RoleAdmin:
	default:
		return nil, exceptions.ErrInvalidRole(nil)
	}

	result, err := uc.RoleUsecase.Transition(ctx, input)
	if err != nil {
		uc.Log.Error("userUsecase.ChangeRole error calling RoleUsecase.Transition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.ChangeRole succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, identityID),
		zap.String(constvars.LoggingRoleKey, result.User.Role),
	)
	return result, nil
}

func (uc *userUsecase) findExisting(ctx context.Context, identityID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, identityID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}
