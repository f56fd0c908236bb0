package mocks

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *LockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

// TransactionManager runs fn directly. Calls counts completed runs and
// Aborted counts runs whose fn returned an error.
type TransactionManager struct {
	Calls   int
	Aborted int
}

func (m *TransactionManager) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	m.Calls++
	if err := fn(ctx); err != nil {
		m.Aborted++
		return err
	}
	return nil
}

type PaymentGatewayService struct {
	mock.Mock
}

func (m *PaymentGatewayService) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (map[string]interface{}, error) {
	args := m.Called(ctx, amount, currency, receipt)
	order, _ := args.Get(0).(map[string]interface{})
	return order, args.Error(1)
}

func (m *PaymentGatewayService) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return m.Called(orderID, paymentID, signature).Bool(0)
}

type StorageService struct {
	mock.Mock
}

func (m *StorageService) PutObject(ctx context.Context, bucketName, objectKey string, content []byte, contentType string) error {
	return m.Called(ctx, bucketName, objectKey, content, contentType).Error(0)
}

func (m *StorageService) GetObject(ctx context.Context, bucketName, objectKey string) ([]byte, error) {
	args := m.Called(ctx, bucketName, objectKey)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *StorageService) GetObjectPresignedURL(ctx context.Context, bucketName, objectKey, fileName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectKey, fileName, expiry)
	return args.String(0), args.Error(1)
}

type MailerService struct {
	mock.Mock
}

func (m *MailerService) Publish(ctx context.Context, job *requests.MailJob) error {
	return m.Called(ctx, job).Error(0)
}

type MailSender struct {
	mock.Mock
}

func (m *MailSender) Send(ctx context.Context, job *requests.MailJob) error {
	return m.Called(ctx, job).Error(0)
}

type DocumentRenderer struct {
	mock.Mock
}

func (m *DocumentRenderer) RenderReceiptPDF(transaction *models.Transaction, user *models.User) ([]byte, error) {
	args := m.Called(transaction, user)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *DocumentRenderer) RenderLedgerXLSX(ledger *responses.Ledger) ([]byte, error) {
	args := m.Called(ledger)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

type PredictionClient struct {
	mock.Mock
}

func (m *PredictionClient) FetchSymptoms(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	symptoms, _ := args.Get(0).([]string)
	return symptoms, args.Error(1)
}

func (m *PredictionClient) Predict(ctx context.Context, symptoms []string) (string, error) {
	args := m.Called(ctx, symptoms)
	return args.String(0), args.Error(1)
}
