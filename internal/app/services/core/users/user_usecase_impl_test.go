package users

import (
	"context"
	"errors"
	"hospital-service/internal/app/contracts"
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

func newTestUserUsecase() (*userUsecase, *mocks.UserRepository, *mocks.RoleUsecase) {
	userRepository := new(mocks.UserRepository)
	roleUsecase := new(mocks.RoleUsecase)
	return &userUsecase{
		UserRepository: userRepository,
		RoleUsecase:    roleUsecase,
		Log:            zap.NewNop(),
	}, userRepository, roleUsecase
}

func sessionContext(identityID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request")
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, &models.Session{IdentityID: identityID, Role: role})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func TestUserUsecase_GetSelf(t *testing.T) {
	identityID := primitive.NewObjectID()

	t.Run("returns name email and role", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		userRepository.On("FindByID", mock.Anything, identityID.Hex()).Return(&models.User{
			ID:    identityID,
			Name:  "Asha",
			Email: "asha@example.com",
			Role:  constvars.RolePatient,
		}, nil)

		info, err := uc.GetSelf(sessionContext(identityID.Hex(), constvars.RolePatient))
		require.NoError(t, err)
		assert.Equal(t, "Asha", info.Name)
		assert.Equal(t, "asha@example.com", info.Email)
		assert.Equal(t, constvars.RolePatient, info.Role)
	})

	t.Run("missing identity is not found", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		userRepository.On("FindByID", mock.Anything, identityID.Hex()).Return(nil, nil)

		_, err := uc.GetSelf(sessionContext(identityID.Hex(), constvars.RoleUser))
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})

	t.Run("missing session", func(t *testing.T) {
		uc, _, _ := newTestUserUsecase()
		_, err := uc.GetSelf(context.Background())
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})
}

func TestUserUsecase_UpdateByID(t *testing.T) {
	identityID := primitive.NewObjectID()

	t.Run("email taken by another identity", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		userRepository.On("FindByID", mock.Anything, identityID.Hex()).Return(&models.User{ID: identityID, Email: "old@example.com"}, nil)
		userRepository.On("FindByEmail", mock.Anything, "new@example.com").Return(&models.User{ID: primitive.NewObjectID()}, nil)

		_, err := uc.UpdateByID(context.Background(), identityID.Hex(), &requests.UpdateUser{Email: "new@example.com"})
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		userRepository.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})

	t.Run("updates name only", func(t *testing.T) {
		uc, userRepository, _ := newTestUserUsecase()
		userRepository.On("FindByID", mock.Anything, identityID.Hex()).Return(&models.User{ID: identityID, Name: "Old", Email: "same@example.com"}, nil)
		userRepository.On("UpdateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

		user, err := uc.UpdateByID(context.Background(), identityID.Hex(), &requests.UpdateUser{Name: "New Name", Email: "same@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, "same@example.com", user.Email)
		assert.False(t, user.UpdatedAt.IsZero())
		userRepository.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestUserUsecase_ChangeRole(t *testing.T) {
	identityID := primitive.NewObjectID()

	t.Run("doctor transition carries an active doctor profile", func(t *testing.T) {
		uc, userRepository, roleUsecase := newTestUserUsecase()
		userRepository.On("FindByID", mock.Anything, identityID.Hex()).Return(&models.User{ID: identityID, Role: constvars.RolePatient}, nil)
		roleUsecase.On("Transition", mock.Anything, mock.MatchedBy(func(input *contracts.RoleTransitionInput) bool {
			return input.Role == constvars.RoleDoctor &&
				input.Patient == nil &&
				input.Doctor != nil &&
				input.Doctor.IdentityID == identityID &&
				input.Doctor.Status == constvars.DoctorStatusActive
		})).Return(&contracts.RoleTransitionResult{
			User:   &models.User{ID: identityID, Role: constvars.RoleDoctor},
			Doctor: &models.Doctor{IdentityID: identityID},
		}, nil)

		result, err := uc.ChangeRole(context.Background(), identityID.Hex(), &requests.ChangeRole{
			Role: constvars.RoleDoctor,
			Doctor: &requests.DoctorProfile{
				Name:           "Dr. Rao",
				Phone:          "9876543210",
				Gender:         constvars.GenderMale,
				Age:            45,
				Specialization: "Cardiology",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.RoleDoctor, result.User.Role)
		roleUsecase.AssertExpectations(t)
	})

	t.Run("patient role without profile is rejected", func(t *testing.T) {
		uc, userRepository, roleUsecase := newTestUserUsecase()
		userRepository.On("FindByID", mock.Anything, identityID.Hex()).Return(&models.User{ID: identityID}, nil)

		_, err := uc.ChangeRole(context.Background(), identityID.Hex(), &requests.ChangeRole{Role: constvars.RolePatient})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		roleUsecase.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything)
	})
}

func TestUserUsecase_DeleteByID(t *testing.T) {
	identityID := primitive.NewObjectID()

	t.Run("unknown identity", func(t *testing.T) {
		uc, userRepository, roleUsecase := newTestUserUsecase()
		userRepository.On("FindByID", mock.Anything, identityID.Hex()).Return(nil, nil)

		err := uc.DeleteByID(context.Background(), identityID.Hex())
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
		roleUsecase.AssertNotCalled(t, "RemoveIdentity", mock.Anything, mock.Anything)
	})

	t.Run("removes identity with profiles", func(t *testing.T) {
		uc, userRepository, roleUsecase := newTestUserUsecase()
		userRepository.On("FindByID", mock.Anything, identityID.Hex()).Return(&models.User{ID: identityID}, nil)
		roleUsecase.On("RemoveIdentity", mock.Anything, identityID.Hex()).Return(nil)

		require.NoError(t, uc.DeleteByID(context.Background(), identityID.Hex()))
		roleUsecase.AssertExpectations(t)
	})
}
