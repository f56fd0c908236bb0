package mocks

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.RegisterUser)
	return response, args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.LoginUser)
	return response, args.Error(1)
}

func (m *AuthUsecase) ParseSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *AuthUsecase) CreateAdmin(ctx context.Context, request *requests.CreateAdmin) (*models.User, error) {
	args := m.Called(ctx, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) GetSelf(ctx context.Context) (*responses.UserInfo, error) {
	args := m.Called(ctx)
	info, _ := args.Get(0).(*responses.UserInfo)
	return info, args.Error(1)
}

func (m *UserUsecase) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *UserUsecase) FindByID(ctx context.Context, identityID string) (*models.User, error) {
	args := m.Called(ctx, identityID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserUsecase) UpdateByID(ctx context.Context, identityID string, request *requests.UpdateUser) (*models.User, error) {
	args := m.Called(ctx, identityID, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserUsecase) DeleteByID(ctx context.Context, identityID string) error {
	return m.Called(ctx, identityID).Error(0)
}

func (m *UserUsecase) ChangeRole(ctx context.Context, identityID string, request *requests.ChangeRole) (*contracts.RoleTransitionResult, error) {
	args := m.Called(ctx, identityID, request)
	result, _ := args.Get(0).(*contracts.RoleTransitionResult)
	return result, args.Error(1)
}

type RoleUsecase struct {
	mock.Mock
}

func (m *RoleUsecase) Transition(ctx context.Context, input *contracts.RoleTransitionInput) (*contracts.RoleTransitionResult, error) {
	args := m.Called(ctx, input)
	result, _ := args.Get(0).(*contracts.RoleTransitionResult)
	return result, args.Error(1)
}

func (m *RoleUsecase) RemoveIdentity(ctx context.Context, identityID string) error {
	return m.Called(ctx, identityID).Error(0)
}

type PatientUsecase struct {
	mock.Mock
}

func (m *PatientUsecase) UpsertOwnProfile(ctx context.Context, request *requests.PatientProfile) (*models.Patient, error) {
	args := m.Called(ctx, request)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) GetOwnProfile(ctx context.Context) (*models.Patient, error) {
	args := m.Called(ctx)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) Create(ctx context.Context, request *requests.AdminCreatePatient) (*models.Patient, error) {
	args := m.Called(ctx, request)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *PatientUsecase) FindByIdentityID(ctx context.Context, identityID string) (*models.Patient, error) {
	args := m.Called(ctx, identityID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) UpdateByIdentityID(ctx context.Context, identityID string, request *requests.PatientProfile) (*models.Patient, error) {
	args := m.Called(ctx, identityID, request)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *PatientUsecase) DeleteByIdentityID(ctx context.Context, identityID string) error {
	return m.Called(ctx, identityID).Error(0)
}

type DoctorUsecase struct {
	mock.Mock
}

func (m *DoctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *DoctorUsecase) FindByIdentityID(ctx context.Context, identityID string) (*models.Doctor, error) {
	args := m.Called(ctx, identityID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorUsecase) Create(ctx context.Context, request *requests.AdminCreateDoctor) (*models.Doctor, error) {
	args := m.Called(ctx, request)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorUsecase) UpdateByIdentityID(ctx context.Context, identityID string, request *requests.DoctorProfile) (*models.Doctor, error) {
	args := m.Called(ctx, identityID, request)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *DoctorUsecase) DeleteByIdentityID(ctx context.Context, identityID string) error {
	return m.Called(ctx, identityID).Error(0)
}

type ServiceUsecase struct {
	mock.Mock
}

func (m *ServiceUsecase) FindAll(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]models.Service)
	return services, args.Error(1)
}

func (m *ServiceUsecase) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	args := m.Called(ctx, serviceID)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *ServiceUsecase) Create(ctx context.Context, request *requests.Service) (*models.Service, error) {
	args := m.Called(ctx, request)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *ServiceUsecase) UpdateByID(ctx context.Context, serviceID string, request *requests.Service) (*models.Service, error) {
	args := m.Called(ctx, serviceID, request)
	service, _ := args.Get(0).(*models.Service)
	return service, args.Error(1)
}

func (m *ServiceUsecase) DeleteByID(ctx context.Context, serviceID string) error {
	return m.Called(ctx, serviceID).Error(0)
}

func (m *ServiceUsecase) Seed(ctx context.Context, services []requests.Service) (int, error) {
	args := m.Called(ctx, services)
	return args.Int(0), args.Error(1)
}

type AppointmentUsecase struct {
	mock.Mock
}

func (m *AppointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) AdminCreate(ctx context.Context, request *requests.AdminCreateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) List(ctx context.Context) ([]responses.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentUsecase) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) Cancel(ctx context.Context, appointmentID string) error {
	return m.Called(ctx, appointmentID).Error(0)
}

func (m *AppointmentUsecase) QueueReminders(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

type TransactionUsecase struct {
	mock.Mock
}

func (m *TransactionUsecase) CreateOrder(ctx context.Context, request *requests.CreateOrder) (responses.Order, error) {
	args := m.Called(ctx, request)
	order, _ := args.Get(0).(responses.Order)
	return order, args.Error(1)
}

func (m *TransactionUsecase) SaveTransaction(ctx context.Context, request *requests.SaveTransaction) (*models.Transaction, error) {
	args := m.Called(ctx, request)
	transaction, _ := args.Get(0).(*models.Transaction)
	return transaction, args.Error(1)
}

func (m *TransactionUsecase) List(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	transactions, _ := args.Get(0).([]models.Transaction)
	return transactions, args.Error(1)
}

func (m *TransactionUsecase) FindAll(ctx context.Context) (*responses.Ledger, error) {
	args := m.Called(ctx)
	ledger, _ := args.Get(0).(*responses.Ledger)
	return ledger, args.Error(1)
}

func (m *TransactionUsecase) ExportLedger(ctx context.Context) (string, []byte, error) {
	args := m.Called(ctx)
	content, _ := args.Get(1).([]byte)
	return args.String(0), content, args.Error(2)
}

func (m *TransactionUsecase) GetReceipt(ctx context.Context, transactionID string) (*responses.TransactionReceipt, error) {
	args := m.Called(ctx, transactionID)
	receipt, _ := args.Get(0).(*responses.TransactionReceipt)
	return receipt, args.Error(1)
}

type PredictionUsecase struct {
	mock.Mock
}

func (m *PredictionUsecase) ListSymptoms(ctx context.Context) (*responses.Symptoms, error) {
	args := m.Called(ctx)
	symptoms, _ := args.Get(0).(*responses.Symptoms)
	return symptoms, args.Error(1)
}

func (m *PredictionUsecase) RefreshSymptoms(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *PredictionUsecase) Predict(ctx context.Context, request *requests.Predict) (*responses.Prediction, error) {
	args := m.Called(ctx, request)
	prediction, _ := args.Get(0).(*responses.Prediction)
	return prediction, args.Error(1)
}
