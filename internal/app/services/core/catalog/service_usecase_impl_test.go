package catalog

import (
	"context"
	"errors"
	"hospital-service/internal/app/contracts/mocks"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestServiceUsecase() (*serviceUsecase, *mocks.ServiceRepository) {
	serviceRepository := new(mocks.ServiceRepository)
	return &serviceUsecase{ServiceRepository: serviceRepository, Log: zap.NewNop()}, serviceRepository
}

func customError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr
}

func TestServiceUsecase_FindByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, serviceRepository := newTestServiceUsecase()

		_, err := uc.FindByID(context.Background(), "not-an-id")
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidServiceID, customErr.ClientMessage)
		serviceRepository.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing service", func(t *testing.T) {
		uc, serviceRepository := newTestServiceUsecase()
		serviceID := primitive.NewObjectID().Hex()
		serviceRepository.On("FindByID", mock.Anything, serviceID).Return(nil, nil)

		_, err := uc.FindByID(context.Background(), serviceID)
		assert.Equal(t, constvars.StatusNotFound, customError(t, err).StatusCode)
	})
}

func TestServiceUsecase_Create(t *testing.T) {
	uc, serviceRepository := newTestServiceUsecase()
	serviceID := primitive.NewObjectID()
	serviceRepository.On("Create", mock.Anything, mock.MatchedBy(func(service *models.Service) bool {
		return service.Category == constvars.ServiceCategoryOther && service.Duration == constvars.ServiceDefaultDuration
	})).Return(serviceID.Hex(), nil)

	service, err := uc.Create(context.Background(), &requests.Service{Name: "Blood Test", Description: "CBC", Price: 450})
	require.NoError(t, err)
	assert.Equal(t, serviceID, service.ID)
	assert.False(t, service.CreatedAt.IsZero())
}

func TestServiceUsecase_UpdateByID(t *testing.T) {
	existing := &models.Service{ID: primitive.NewObjectID(), Name: "X-Ray", Category: constvars.ServiceCategoryDiagnostic}
	uc, serviceRepository := newTestServiceUsecase()
	serviceRepository.On("FindByID", mock.Anything, existing.ID.Hex()).Return(existing, nil)
	serviceRepository.On("UpdateByID", mock.Anything, existing.ID.Hex(), mock.AnythingOfType("*models.Service")).Return(true, nil)

	service, err := uc.UpdateByID(context.Background(), existing.ID.Hex(), &requests.Service{
		Name:        "Chest X-Ray",
		Description: "Two views",
		Category:    constvars.ServiceCategoryDiagnostic,
		Price:       800,
		Duration:    "15 minutes",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, service.ID)
	assert.Equal(t, "Chest X-Ray", service.Name)
}

func TestServiceUsecase_DeleteByID(t *testing.T) {
	serviceID := primitive.NewObjectID().Hex()
	uc, serviceRepository := newTestServiceUsecase()
	serviceRepository.On("DeleteByID", mock.Anything, serviceID).Return(false, nil)

	err := uc.DeleteByID(context.Background(), serviceID)
	assert.Equal(t, constvars.StatusNotFound, customError(t, err).StatusCode)
}

func TestServiceUsecase_Seed(t *testing.T) {
	uc, serviceRepository := newTestServiceUsecase()
	serviceRepository.On("FindByName", mock.Anything, "MRI Scan").Return(&models.Service{Name: "MRI Scan"}, nil)
	serviceRepository.On("FindByName", mock.Anything, "Physiotherapy").Return(nil, nil)
	serviceRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Service")).Return(primitive.NewObjectID().Hex(), nil).Once()

	created, err := uc.Seed(context.Background(), []requests.Service{
		{Name: "MRI Scan", Description: "Full body"},
		{Name: "Physiotherapy", Description: "Rehab session", Category: constvars.ServiceCategoryTherapy},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	serviceRepository.AssertExpectations(t)
}
