package auth

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository: userRepository,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Password != request.ConfirmPassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		uc.Log.Info("authUsecase.Register email already registered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}
	request.HashedPassword = hashedPassword

	user := &models.User{
		Name:     request.Username,
		Email:    request.Email,
		Password: request.HashedPassword,
		Role:     constvars.RoleUser,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling UserRepository.CreateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, userID),
	)
	return &responses.RegisterUser{ID: userID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		utils.LogSecurityEvent(uc.Log, "login_unknown_email", requestID, constvars.SecuritySeverityLow)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		utils.LogSecurityEvent(uc.Log, "login_invalid_password", requestID, constvars.SecuritySeverityMedium,
			zap.String(constvars.LoggingIdentityIDKey, user.ID.Hex()),
		)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.TokenTTL())
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentityIDKey, user.ID.Hex()),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return &responses.LoginUser{
		Token: token,
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// ParseSession verifies the token and resolves the role from the stored
// identity, so profile promotions and admin role changes apply immediately.
func (uc *authUsecase) ParseSession(ctx context.Context, token string) (*models.Session, error) {
	claims, err := utils.ParseJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, claims.ID)
	if err != nil {
		uc.Log.Error("authUsecase.ParseSession error calling UserRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		utils.LogSecurityEvent(uc.Log, "session_identity_missing", utils.GetRequestID(ctx), constvars.SecuritySeverityMedium,
			zap.String(constvars.LoggingIdentityIDKey, claims.ID),
		)
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	session := &models.Session{
		IdentityID: claims.ID,
		Role:       user.Role,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

func (uc *authUsecase) CreateAdmin(ctx context.Context, request *requests.CreateAdmin) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.CreateAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     constvars.RoleAdmin,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.CreateAdmin error calling UserRepository.CreateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user.ID, _ = primitive.ObjectIDFromHex(userID)
	utils.LogBusinessEvent(uc.Log, "admin_created", requestID,
		zap.String(constvars.LoggingIdentityIDKey, userID),
	)
	return user, nil
}
