package catalog

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

type serviceUsecase struct {
	ServiceRepository contracts.ServiceRepository
	Log               *zap.Logger
}

var (
	serviceUsecaseInstance contracts.ServiceUsecase
	onceServiceUsecase     sync.Once
)

func NewServiceUsecase(serviceRepository contracts.ServiceRepository, logger *zap.Logger) contracts.ServiceUsecase {
	onceServiceUsecase.Do(func() {
		serviceUsecaseInstance = &serviceUsecase{
			ServiceRepository: serviceRepository,
			Log:               logger,
		}
	})
	return serviceUsecaseInstance
}

func (uc *serviceUsecase) FindAll(ctx context.Context) ([]models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	services, err := uc.ServiceRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("serviceUsecase.FindAll error calling ServiceRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return services, nil
}

func (uc *serviceUsecase) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	if !primitive.IsValidObjectID(serviceID) {
		return nil, exceptions.ErrInvalidServiceID(nil)
	}

	service, err := uc.ServiceRepository.FindByID(ctx, serviceID)
	if err != nil {
		uc.Log.Error("serviceUsecase.FindByID error calling ServiceRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}
	return service, nil
}

func (uc *serviceUsecase) Create(ctx context.Context, request *requests.Service) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	service := utils.BuildServiceModel(request)
	service.SetCreatedAtUpdatedAt()

	serviceID, err := uc.ServiceRepository.Create(ctx, service)
	if err != nil {
		uc.Log.Error("serviceUsecase.Create error calling ServiceRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	service.ID, _ = primitive.ObjectIDFromHex(serviceID)

	utils.LogBusinessEvent(uc.Log, "service_created", requestID,
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)
	return service, nil
}

func (uc *serviceUsecase) UpdateByID(ctx context.Context, serviceID string, request *requests.Service) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.UpdateByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	existing, err := uc.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	service := utils.BuildServiceModel(request)
	service.ID = existing.ID
	service.CreatedAt = existing.CreatedAt
	service.SetUpdatedAt()

	matched, err := uc.ServiceRepository.UpdateByID(ctx, serviceID, service)
	if err != nil {
		uc.Log.Error("serviceUsecase.UpdateByID error calling ServiceRepository.UpdateByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrServiceNotFound(nil)
	}
	return service, nil
}

func (uc *serviceUsecase) DeleteByID(ctx context.Context, serviceID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)

	if !primitive.IsValidObjectID(serviceID) {
		return exceptions.ErrInvalidServiceID(nil)
	}

	deleted, err := uc.ServiceRepository.DeleteByID(ctx, serviceID)
	if err != nil {
		uc.Log.Error("serviceUsecase.DeleteByID error calling ServiceRepository.DeleteByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrServiceNotFound(nil)
	}

	utils.LogBusinessEvent(uc.Log, "service_deleted", requestID,
		zap.String(constvars.LoggingServiceIDKey, serviceID),
	)
	return nil
}

// Seed creates the services whose name is not in the catalog yet.
func (uc *serviceUsecase) Seed(ctx context.Context, services []requests.Service) (created int, err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.Seed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(services)),
	)

	for i := range services {
		existing, err := uc.ServiceRepository.FindByName(ctx, services[i].Name)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}

		service := utils.BuildServiceModel(&services[i])
		service.SetCreatedAtUpdatedAt()
		if _, err := uc.ServiceRepository.Create(ctx, service); err != nil {
			return created, err
		}
		created++
	}

	uc.Log.Info("serviceUsecase.Seed succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, created),
	)
	return created, nil
}
