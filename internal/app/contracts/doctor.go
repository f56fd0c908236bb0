package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByIdentityID(ctx context.Context, identityID string) (*models.Doctor, error)
	Create(ctx context.Context, request *requests.AdminCreateDoctor) (*models.Doctor, error)
	UpdateByIdentityID(ctx context.Context, identityID string, request *requests.DoctorProfile) (*models.Doctor, error)
	DeleteByIdentityID(ctx context.Context, identityID string) error
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByIdentityID(ctx context.Context, identityID string) (*models.Doctor, error)
	FindByIDs(ctx context.Context, doctorIDs []string) ([]models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	UpdateByIdentityID(ctx context.Context, identityID string, doctor *models.Doctor) error
	DeleteByIdentityID(ctx context.Context, identityID string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}
