package transactions

import (
	"context"
	"errors"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts/mocks"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testBucket = "hms-receipts"

type transactionFixture struct {
	uc                    *transactionUsecase
	transactionRepository *mocks.TransactionRepository
	userRepository        *mocks.UserRepository
	paymentGateway        *mocks.PaymentGatewayService
	storageService        *mocks.StorageService
	mailerService         *mocks.MailerService
	documentRenderer      *mocks.DocumentRenderer
}

func newTransactionFixture() *transactionFixture {
	f := &transactionFixture{
		transactionRepository: new(mocks.TransactionRepository),
		userRepository:        new(mocks.UserRepository),
		paymentGateway:        new(mocks.PaymentGatewayService),
		storageService:        new(mocks.StorageService),
		mailerService:         new(mocks.MailerService),
		documentRenderer:      new(mocks.DocumentRenderer),
	}
	f.uc = &transactionUsecase{
		TransactionRepository: f.transactionRepository,
		UserRepository:        f.userRepository,
		PaymentGateway:        f.paymentGateway,
		StorageService:        f.storageService,
		MailerService:         f.mailerService,
		DocumentRenderer:      f.documentRenderer,
		InternalConfig: &config.InternalConfig{
			Minio: config.AppMinio{BucketName: testBucket, PreSignedUrlExpiryTimeInMinutes: 15},
		},
		Log: zap.NewNop(),
	}
	return f
}

func sessionContext(identityID, role string) context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_SESSION_DATA_KEY, &models.Session{IdentityID: identityID, Role: role})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func saveRequest(status string) *requests.SaveTransaction {
	return &requests.SaveTransaction{
		OrderID:   "order_N1",
		PaymentID: "pay_N1",
		Signature: "sig",
		Amount:    125000,
		Receipt:   "receipt_order_1700000000000",
		Status:    status,
		Items:     []requests.TransactionItem{{Name: "MRI Scan", Price: 1250, Duration: "45 minutes"}},
	}
}

func TestTransactionUsecase_CreateOrder(t *testing.T) {
	f := newTransactionFixture()
	f.paymentGateway.On("CreateOrder", mock.Anything, int64(49999), constvars.CurrencyINR, mock.MatchedBy(func(receipt string) bool {
		return strings.HasPrefix(receipt, constvars.ReceiptOrderPrefix)
	})).Return(map[string]interface{}{"id": "order_N1", "amount": 49999}, nil)

	order, err := f.uc.CreateOrder(context.Background(), &requests.CreateOrder{Amount: 499.99})
	require.NoError(t, err)
	assert.Equal(t, "order_N1", order["id"])
	f.transactionRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransactionUsecase_CreateOrder_GatewayFailure(t *testing.T) {
	t.Run("gateway message reaches the client", func(t *testing.T) {
		f := newTransactionFixture()
		gatewayErr := errors.New("The amount must be atleast INR 1.00")
		f.paymentGateway.On("CreateOrder", mock.Anything, int64(50), constvars.CurrencyINR, mock.Anything).
			Return(nil, exceptions.ErrPaymentGateway(gatewayErr))

		_, err := f.uc.CreateOrder(context.Background(), &requests.CreateOrder{Amount: 0.5})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		assert.Equal(t, "The amount must be atleast INR 1.00", customErr.ClientMessage)
	})

	t.Run("generic message without gateway text", func(t *testing.T) {
		customErr := exceptions.ErrPaymentGateway(nil)
		assert.Equal(t, constvars.ErrClientPaymentGatewayFailed, customErr.ClientMessage)
	})
}

func TestTransactionUsecase_SaveTransaction(t *testing.T) {
	identity := &models.User{ID: primitive.NewObjectID(), Name: "Asha", Email: "asha@example.com"}

	t.Run("rejects a forged signature without storing", func(t *testing.T) {
		f := newTransactionFixture()
		f.paymentGateway.On("VerifyPaymentSignature", "order_N1", "pay_N1", "sig").Return(false)

		_, err := f.uc.SaveTransaction(sessionContext(identity.ID.Hex(), constvars.RolePatient), saveRequest(constvars.TransactionStatusSuccess))
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		f.transactionRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("stores success and queues the receipt", func(t *testing.T) {
		f := newTransactionFixture()
		f.paymentGateway.On("VerifyPaymentSignature", "order_N1", "pay_N1", "sig").Return(true)
		f.transactionRepository.On("Create", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.UserID == identity.ID && tx.Currency == constvars.CurrencyINR && len(tx.Items) == 1 && !tx.ID.IsZero()
		})).Return("", nil)
		f.userRepository.On("FindByID", mock.Anything, identity.ID.Hex()).Return(identity, nil)
		f.documentRenderer.On("RenderReceiptPDF", mock.AnythingOfType("*models.Transaction"), identity).Return([]byte("%PDF"), nil)
		f.storageService.On("PutObject", mock.Anything, testBucket, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "receipts/"+identity.ID.Hex()+"/")
		}), []byte("%PDF"), constvars.MIMEApplicationPDF).Return(nil)
		f.mailerService.On("Publish", mock.Anything, mock.MatchedBy(func(job *requests.MailJob) bool {
			return job.Type == constvars.MailTypeTransactionReceipt && job.To == identity.Email && job.ObjectKey != ""
		})).Return(nil)

		transaction, err := f.uc.SaveTransaction(sessionContext(identity.ID.Hex(), constvars.RolePatient), saveRequest(constvars.TransactionStatusSuccess))
		require.NoError(t, err)
		assert.Equal(t, int64(125000), transaction.Amount)
		f.mailerService.AssertExpectations(t)
	})

	t.Run("receipt failure does not fail the save", func(t *testing.T) {
		f := newTransactionFixture()
		f.paymentGateway.On("VerifyPaymentSignature", mock.Anything, mock.Anything, mock.Anything).Return(true)
		f.transactionRepository.On("Create", mock.Anything, mock.Anything).Return("", nil)
		f.userRepository.On("FindByID", mock.Anything, identity.ID.Hex()).Return(identity, nil)
		f.documentRenderer.On("RenderReceiptPDF", mock.Anything, mock.Anything).Return(nil, exceptions.ErrRenderDocument(errors.New("font"), "receipt"))

		_, err := f.uc.SaveTransaction(sessionContext(identity.ID.Hex(), constvars.RolePatient), saveRequest(constvars.TransactionStatusSuccess))
		require.NoError(t, err)
		f.mailerService.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("failed payment skips verification and receipt", func(t *testing.T) {
		f := newTransactionFixture()
		f.transactionRepository.On("Create", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.Status == constvars.TransactionStatusFailed
		})).Return("", nil)

		_, err := f.uc.SaveTransaction(sessionContext(identity.ID.Hex(), constvars.RoleUser), saveRequest(constvars.TransactionStatusFailed))
		require.NoError(t, err)
		f.paymentGateway.AssertNotCalled(t, "VerifyPaymentSignature", mock.Anything, mock.Anything, mock.Anything)
		f.documentRenderer.AssertNotCalled(t, "RenderReceiptPDF", mock.Anything, mock.Anything)
	})
}

func TestTransactionUsecase_List_ScopedToCaller(t *testing.T) {
	f := newTransactionFixture()
	identityID := primitive.NewObjectID().Hex()
	f.transactionRepository.On("FindByUserID", mock.Anything, identityID).Return([]models.Transaction{{OrderID: "order_A"}}, nil)

	transactions, err := f.uc.List(sessionContext(identityID, constvars.RolePatient))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	f.transactionRepository.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestTransactionUsecase_FindAll(t *testing.T) {
	f := newTransactionFixture()
	asha := models.User{ID: primitive.NewObjectID(), Name: "Asha", Email: "asha@example.com"}
	ravi := models.User{ID: primitive.NewObjectID(), Name: "Ravi", Email: "ravi@example.com"}
	f.transactionRepository.On("FindAll", mock.Anything).Return([]models.Transaction{
		{ID: primitive.NewObjectID(), UserID: asha.ID, Amount: 50000},
		{ID: primitive.NewObjectID(), UserID: ravi.ID, Amount: 25000},
		{ID: primitive.NewObjectID(), UserID: asha.ID, Amount: 1000},
	}, nil)
	f.userRepository.On("FindByIDs", mock.Anything, []string{asha.ID.Hex(), ravi.ID.Hex()}).Return([]models.User{asha, ravi}, nil)

	ledger, err := f.uc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(76000), ledger.Total)
	require.Len(t, ledger.Transactions, 3)
	assert.Equal(t, "Ravi", ledger.Transactions[1].User.Name)
}

func TestTransactionUsecase_ExportLedger(t *testing.T) {
	f := newTransactionFixture()
	f.transactionRepository.On("FindAll", mock.Anything).Return([]models.Transaction{}, nil)
	f.userRepository.On("FindByIDs", mock.Anything, []string{}).Return([]models.User{}, nil)
	f.documentRenderer.On("RenderLedgerXLSX", mock.MatchedBy(func(ledger *responses.Ledger) bool {
		return ledger.Total == 0
	})).Return([]byte("xlsx"), nil)

	fileName, content, err := f.uc.ExportLedger(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(fileName, "transactions_"))
	assert.True(t, strings.HasSuffix(fileName, ".xlsx"))
	assert.Equal(t, []byte("xlsx"), content)
}

func TestTransactionUsecase_GetReceipt(t *testing.T) {
	owner := &models.User{ID: primitive.NewObjectID(), Name: "Asha"}
	transaction := &models.Transaction{ID: primitive.NewObjectID(), UserID: owner.ID, Status: constvars.TransactionStatusSuccess}
	transactionID := transaction.ID.Hex()

	t.Run("owner gets a presigned link", func(t *testing.T) {
		f := newTransactionFixture()
		f.transactionRepository.On("FindByID", mock.Anything, transactionID).Return(transaction, nil)
		f.userRepository.On("FindByID", mock.Anything, owner.ID.Hex()).Return(owner, nil)
		f.documentRenderer.On("RenderReceiptPDF", transaction, owner).Return([]byte("%PDF"), nil)
		f.storageService.On("PutObject", mock.Anything, testBucket, mock.Anything, mock.Anything, constvars.MIMEApplicationPDF).Return(nil)
		f.storageService.On("GetObjectPresignedURL", mock.Anything, testBucket, mock.Anything, "receipt_"+transactionID+".pdf", 15*time.Minute).
			Return("https://minio.local/receipt", nil)

		receipt, err := f.uc.GetReceipt(sessionContext(owner.ID.Hex(), constvars.RolePatient), transactionID)
		require.NoError(t, err)
		assert.Equal(t, "https://minio.local/receipt", receipt.URL)
		assert.True(t, receipt.ExpiresAt.After(time.Now()))
	})

	t.Run("other identities are refused", func(t *testing.T) {
		f := newTransactionFixture()
		f.transactionRepository.On("FindByID", mock.Anything, transactionID).Return(transaction, nil)

		_, err := f.uc.GetReceipt(sessionContext(primitive.NewObjectID().Hex(), constvars.RolePatient), transactionID)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		f.storageService.AssertNotCalled(t, "GetObjectPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed transactions have no receipt", func(t *testing.T) {
		f := newTransactionFixture()
		failed := &models.Transaction{ID: transaction.ID, UserID: owner.ID, Status: constvars.TransactionStatusFailed}
		f.transactionRepository.On("FindByID", mock.Anything, transactionID).Return(failed, nil)

		_, err := f.uc.GetReceipt(sessionContext(owner.ID.Hex(), constvars.RolePatient), transactionID)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})
}
