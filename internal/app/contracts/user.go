package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetSelf(ctx context.Context) (*responses.UserInfo, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, identityID string) (*models.User, error)
	UpdateByID(ctx context.Context, identityID string, request *requests.UpdateUser) (*models.User, error)
	DeleteByID(ctx context.Context, identityID string) error
	ChangeRole(ctx context.Context, identityID string, request *requests.ChangeRole) (*RoleTransitionResult, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	UpdateRole(ctx context.Context, userID, role string) error
	DeleteByID(ctx context.Context, userID string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}
