package mocks

import (
	"context"
	"hospital-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	args := m.Called(ctx, userIDs)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *UserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	return m.Called(ctx, userModel).Error(0)
}

func (m *UserRepository) UpdateRole(ctx context.Context, userID, role string) error {
	return m.Called(ctx, userID, role).Error(0)
}

func (m *UserRepository) DeleteByID(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *PatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientRepository) FindByIdentityID(ctx context.Context, identityID string) (*models.Patient, error) {
	args := m.Called(ctx, identityID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientRepository) FindByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error) {
	args := m.Called(ctx, patientIDs)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *PatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *PatientRepository) UpdateByIdentityID(ctx context.Context, identityID string, patient *models.Patient) error {
	return m.Called(ctx, identityID, patient).Error(0)
}

func (m *PatientRepository) DeleteByIdentityID(ctx context.Context, identityID string) (bool, error) {
	args := m.Called(ctx, identityID)
	return args.Bool(0), args.Error(1)
}

func (m *PatientRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type DoctorRepository struct {
	mock.Mock
}

func (m *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *DoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorRepository) FindByIdentityID(ctx context.Context, identityID string) (*models.Doctor, error) {
	args := m.Called(ctx, identityID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorRepository) FindByIDs(ctx context.Context, doctorIDs []string) ([]models.Doctor, error) {
	args := m.Called(ctx, doctorIDs)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *DoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *DoctorRepository) UpdateByIdentityID(ctx context.Context, identityID string, doctor *models.Doctor) error {
	return m.Called(ctx, identityID, doctor).Error(0)
}

func (m *DoctorRepository) DeleteByIdentityID(ctx context.Context, identityID string) (bool, error) {
	args := m.Called(ctx, identityID)
	return args.Bool(0), args.Error(1)
}

func (m *DoctorRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type ServiceRepository struct {
	mock.Mock
}

func (m *ServiceRepository) Create(ctx context.Context, service *models.Service) (string, error) {
	args := m.Called(ctx, service)
	return args.String(0), args.Error(1)
}

func (m *ServiceRepository) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	args := m.Called(ctx, serviceID)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *ServiceRepository) FindByName(ctx context.Context, name string) (*models.Service, error) {
	args := m.Called(ctx, name)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *ServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]models.Service)
	return services, args.Error(1)
}

func (m *ServiceRepository) UpdateByID(ctx context.Context, serviceID string, service *models.Service) (bool, error) {
	args := m.Called(ctx, serviceID, service)
	return args.Bool(0), args.Error(1)
}

func (m *ServiceRepository) DeleteByID(ctx context.Context, serviceID string) (bool, error) {
	args := m.Called(ctx, serviceID)
	return args.Bool(0), args.Error(1)
}

func (m *ServiceRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *AppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentRepository) FindByPair(ctx context.Context, patientID, doctorID string) (*models.Appointment, error) {
	args := m.Called(ctx, patientID, doctorID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentRepository) FindByStatusBetween(ctx context.Context, status string, from, to time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, status, from, to)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, from, to string) (bool, error) {
	args := m.Called(ctx, appointmentID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *AppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) (bool, error) {
	args := m.Called(ctx, appointmentID)
	return args.Bool(0), args.Error(1)
}

func (m *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) (string, error) {
	args := m.Called(ctx, transaction)
	return args.String(0), args.Error(1)
}

func (m *TransactionRepository) FindByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	args := m.Called(ctx, transactionID)
	transaction, _ := args.Get(0).(*models.Transaction)
	return transaction, args.Error(1)
}

func (m *TransactionRepository) FindByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	args := m.Called(ctx, userID)
	transactions, _ := args.Get(0).([]models.Transaction)
	return transactions, args.Error(1)
}

func (m *TransactionRepository) FindAll(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	transactions, _ := args.Get(0).([]models.Transaction)
	return transactions, args.Error(1)
}

func (m *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type RedisRepository struct {
	mock.Mock
}

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) CompareAndExpire(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}
