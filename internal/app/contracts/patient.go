package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	UpsertOwnProfile(ctx context.Context, request *requests.PatientProfile) (*models.Patient, error)
	GetOwnProfile(ctx context.Context) (*models.Patient, error)
	Create(ctx context.Context, request *requests.AdminCreatePatient) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByIdentityID(ctx context.Context, identityID string) (*models.Patient, error)
	UpdateByIdentityID(ctx context.Context, identityID string, request *requests.PatientProfile) (*models.Patient, error)
	DeleteByIdentityID(ctx context.Context, identityID string) error
}

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByIdentityID(ctx context.Context, identityID string) (*models.Patient, error)
	FindByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	UpdateByIdentityID(ctx context.Context, identityID string, patient *models.Patient) error
	DeleteByIdentityID(ctx context.Context, identityID string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}
