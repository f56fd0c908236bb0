package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type ServiceUsecase interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
	Create(ctx context.Context, request *requests.Service) (*models.Service, error)
	UpdateByID(ctx context.Context, serviceID string, request *requests.Service) (*models.Service, error)
	DeleteByID(ctx context.Context, serviceID string) error
	Seed(ctx context.Context, services []requests.Service) (created int, err error)
}

type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) (serviceID string, err error)
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
	FindByName(ctx context.Context, name string) (*models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	UpdateByID(ctx context.Context, serviceID string, service *models.Service) (bool, error)
	DeleteByID(ctx context.Context, serviceID string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}
