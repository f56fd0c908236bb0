package roles

import (
	"context"
	"errors"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/contracts/mocks"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type roleFixture struct {
	uc                 *roleUsecase
	userRepository     *mocks.UserRepository
	patientRepository  *mocks.PatientRepository
	doctorRepository   *mocks.DoctorRepository
	transactionManager *mocks.TransactionManager
	lockService        *mocks.LockerService
}

func newRoleFixture() *roleFixture {
	f := &roleFixture{
		userRepository:     new(mocks.UserRepository),
		patientRepository:  new(mocks.PatientRepository),
		doctorRepository:   new(mocks.DoctorRepository),
		transactionManager: new(mocks.TransactionManager),
		lockService:        new(mocks.LockerService),
	}
	f.uc = &roleUsecase{
		UserRepository:     f.userRepository,
		PatientRepository:  f.patientRepository,
		DoctorRepository:   f.doctorRepository,
		TransactionManager: f.transactionManager,
		LockService:        f.lockService,
		InternalConfig: &config.InternalConfig{
			Lock: config.AppLock{RoleTransitionTTLInSeconds: 10},
		},
		Log: zap.NewNop(),
	}
	return f
}

func (f *roleFixture) expectLock(identityID string) {
	key := "role-transition:" + identityID
	f.lockService.On("TryLock", mock.Anything, key, 10*time.Second).Return(true, "lock-value", nil)
	f.lockService.On("Unlock", mock.Anything, key, "lock-value").Return(nil)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func TestRoleUsecase_Transition_PatientToDoctor(t *testing.T) {
	f := newRoleFixture()
	identityID := primitive.NewObjectID()
	id := identityID.Hex()
	doctorID := primitive.NewObjectID()

	f.expectLock(id)
	f.userRepository.On("FindByID", mock.Anything, id).Return(&models.User{ID: identityID, Role: constvars.RolePatient}, nil)
	f.patientRepository.On("DeleteByIdentityID", mock.Anything, id).Return(true, nil)
	f.doctorRepository.On("FindByIdentityID", mock.Anything, id).Return(nil, nil)
	f.doctorRepository.On("Create", mock.Anything, mock.MatchedBy(func(doctor *models.Doctor) bool {
		return doctor.IdentityID == identityID && !doctor.CreatedAt.IsZero()
	})).Return(doctorID.Hex(), nil)
	f.userRepository.On("UpdateRole", mock.Anything, id, constvars.RoleDoctor).Return(nil)

	result, err := f.uc.Transition(context.Background(), &contracts.RoleTransitionInput{
		IdentityID: id,
		Role:       constvars.RoleDoctor,
		Doctor:     &models.Doctor{Name: "Dr. Rao", Status: constvars.DoctorStatusActive},
	})
	require.NoError(t, err)
	assert.Equal(t, constvars.RoleDoctor, result.User.Role)
	assert.Equal(t, doctorID, result.Doctor.ID)
	assert.Nil(t, result.Patient)
	assert.Equal(t, 1, f.transactionManager.Calls)

	f.patientRepository.AssertCalled(t, "DeleteByIdentityID", mock.Anything, id)
	f.doctorRepository.AssertNotCalled(t, "DeleteByIdentityID", mock.Anything, mock.Anything)
	f.lockService.AssertExpectations(t)
}

func TestRoleUsecase_Transition_ExistingPatientProfileIsUpdated(t *testing.T) {
	f := newRoleFixture()
	identityID := primitive.NewObjectID()
	id := identityID.Hex()
	existing := &models.Patient{ID: primitive.NewObjectID(), IdentityID: identityID}
	existing.SetCreatedAtUpdatedAt()

	f.expectLock(id)
	f.userRepository.On("FindByID", mock.Anything, id).Return(&models.User{ID: identityID, Role: constvars.RolePatient}, nil)
	f.doctorRepository.On("DeleteByIdentityID", mock.Anything, id).Return(false, nil)
	f.patientRepository.On("FindByIdentityID", mock.Anything, id).Return(existing, nil)
	f.patientRepository.On("UpdateByIdentityID", mock.Anything, id, mock.AnythingOfType("*models.Patient")).Return(nil)
	f.userRepository.On("UpdateRole", mock.Anything, id, constvars.RolePatient).Return(nil)

	result, err := f.uc.Transition(context.Background(), &contracts.RoleTransitionInput{
		IdentityID: id,
		Role:       constvars.RolePatient,
		Patient:    &models.Patient{Name: "Asha", Age: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.Patient.ID)
	assert.Equal(t, existing.CreatedAt, result.Patient.CreatedAt)
	f.patientRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoleUsecase_Transition_FailureLeavesRoleUntouched(t *testing.T) {
	f := newRoleFixture()
	identityID := primitive.NewObjectID()
	id := identityID.Hex()

	f.expectLock(id)
	f.userRepository.On("FindByID", mock.Anything, id).Return(&models.User{ID: identityID, Role: constvars.RoleDoctor}, nil)
	f.doctorRepository.On("DeleteByIdentityID", mock.Anything, id).Return(true, nil)
	f.patientRepository.On("FindByIdentityID", mock.Anything, id).Return(nil, nil)
	f.patientRepository.On("Create", mock.Anything, mock.Anything).Return("", exceptions.ErrPhoneAlreadyRegistered(nil))

	_, err := f.uc.Transition(context.Background(), &contracts.RoleTransitionInput{
		IdentityID: id,
		Role:       constvars.RolePatient,
		Patient:    &models.Patient{Phone: "9876543210"},
	})
	assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
	assert.Equal(t, 1, f.transactionManager.Aborted)
	f.userRepository.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	f.lockService.AssertCalled(t, "Unlock", mock.Anything, "role-transition:"+id, "lock-value")
}

func TestRoleUsecase_Transition_ToUserRemovesBothProfiles(t *testing.T) {
	f := newRoleFixture()
	identityID := primitive.NewObjectID()
	id := identityID.Hex()

	f.expectLock(id)
	f.userRepository.On("FindByID", mock.Anything, id).Return(&models.User{ID: identityID, Role: constvars.RolePatient}, nil)
	f.patientRepository.On("DeleteByIdentityID", mock.Anything, id).Return(true, nil)
	f.doctorRepository.On("DeleteByIdentityID", mock.Anything, id).Return(false, nil)
	f.userRepository.On("UpdateRole", mock.Anything, id, constvars.RoleUser).Return(nil)

	result, err := f.uc.Transition(context.Background(), &contracts.RoleTransitionInput{IdentityID: id, Role: constvars.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, constvars.RoleUser, result.User.Role)
	assert.Nil(t, result.Patient)
	assert.Nil(t, result.Doctor)
}

func TestRoleUsecase_Transition_LockHeld(t *testing.T) {
	f := newRoleFixture()
	id := primitive.NewObjectID().Hex()
	f.lockService.On("TryLock", mock.Anything, "role-transition:"+id, 10*time.Second).Return(false, "", nil)

	_, err := f.uc.Transition(context.Background(), &contracts.RoleTransitionInput{IdentityID: id, Role: constvars.RoleAdmin})
	assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
	assert.Equal(t, 0, f.transactionManager.Calls)
	f.lockService.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
}

func TestRoleUsecase_Transition_InvalidInput(t *testing.T) {
	f := newRoleFixture()

	_, err := f.uc.Transition(context.Background(), &contracts.RoleTransitionInput{IdentityID: "x", Role: constvars.RolePatient})
	assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))

	_, err = f.uc.Transition(context.Background(), &contracts.RoleTransitionInput{IdentityID: "x", Role: "superuser"})
	assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	f.lockService.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
}

func TestRoleUsecase_RemoveIdentity(t *testing.T) {
	t.Run("deletes profiles and identity", func(t *testing.T) {
		f := newRoleFixture()
		id := primitive.NewObjectID().Hex()
		f.expectLock(id)
		f.patientRepository.On("DeleteByIdentityID", mock.Anything, id).Return(true, nil)
		f.doctorRepository.On("DeleteByIdentityID", mock.Anything, id).Return(false, nil)
		f.userRepository.On("DeleteByID", mock.Anything, id).Return(true, nil)

		require.NoError(t, f.uc.RemoveIdentity(context.Background(), id))
		f.userRepository.AssertExpectations(t)
	})

	t.Run("unknown identity", func(t *testing.T) {
		f := newRoleFixture()
		id := primitive.NewObjectID().Hex()
		f.expectLock(id)
		f.patientRepository.On("DeleteByIdentityID", mock.Anything, id).Return(false, nil)
		f.doctorRepository.On("DeleteByIdentityID", mock.Anything, id).Return(false, nil)
		f.userRepository.On("DeleteByID", mock.Anything, id).Return(false, nil)

		err := f.uc.RemoveIdentity(context.Background(), id)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
		assert.Equal(t, 1, f.transactionManager.Aborted)
	})
}
