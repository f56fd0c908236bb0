package transactions

import (
	"context"
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type transactionUsecase struct {
	TransactionRepository contracts.TransactionRepository
	UserRepository        contracts.UserRepository
	PaymentGateway        contracts.PaymentGatewayService
	StorageService        contracts.StorageService
	MailerService         contracts.MailerService
	DocumentRenderer      contracts.DocumentRenderer
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	transactionUsecaseInstance contracts.TransactionUsecase
	onceTransactionUsecase     sync.Once
)

func NewTransactionUsecase(
	transactionRepository contracts.TransactionRepository,
	userRepository contracts.UserRepository,
	paymentGateway contracts.PaymentGatewayService,
	storageService contracts.StorageService,
	mailerService contracts.MailerService,
	documentRenderer contracts.DocumentRenderer,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TransactionUsecase {
	onceTransactionUsecase.Do(func() {
		instance := &transactionUsecase{
			TransactionRepository: transactionRepository,
			UserRepository:        userRepository,
			PaymentGateway:        paymentGateway,
			StorageService:        storageService,
			MailerService:         mailerService,
			DocumentRenderer:      documentRenderer,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		transactionUsecaseInstance = instance
	})
	return transactionUsecaseInstance
}

// CreateOrder registers a gateway order. Nothing is persisted.
func (uc *transactionUsecase) CreateOrder(ctx context.Context, request *requests.CreateOrder) (responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	amount := utils.ToMinorUnits(request.Amount)
	uc.Log.Info("transactionUsecase.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAmountKey, amount),
	)

	order, err := uc.PaymentGateway.CreateOrder(ctx, amount, constvars.CurrencyINR, utils.GenerateOrderReceipt(time.Now()))
	if err != nil {
		uc.Log.Error("transactionUsecase.CreateOrder error calling PaymentGateway.CreateOrder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return responses.Order(order), nil
}

// SaveTransaction appends a ledger row for the caller. A success row is only
// stored when the gateway signature checks out.
func (uc *transactionUsecase) SaveTransaction(ctx context.Context, request *requests.SaveTransaction) (*models.Transaction, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("transactionUsecase.SaveTransaction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	session, err := utils.GetSessionData(ctx)
	if err != nil {
		return nil, err
	}

	if request.Status == constvars.TransactionStatusSuccess &&
		!uc.PaymentGateway.VerifyPaymentSignature(request.OrderID, request.PaymentID, request.Signature) {
		utils.LogSecurityEvent(uc.Log, "payment_signature_mismatch", requestID, constvars.SecuritySeverityHigh,
			zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
			zap.String(constvars.LoggingOrderIDKey, request.OrderID),
			zap.String(constvars.LoggingPaymentIDKey, request.PaymentID),
		)
		return nil, exceptions.ErrInvalidPaymentSignature(nil)
	}

	userID, err := primitive.ObjectIDFromHex(session.IdentityID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	currency := request.Currency
	if currency == "" {
		currency = constvars.CurrencyINR
	}

	transaction := &models.Transaction{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		OrderID:   request.OrderID,
		PaymentID: request.PaymentID,
		Amount:    request.Amount,
		Currency:  currency,
		Receipt:   request.Receipt,
		Items:     utils.BuildTransactionItems(request.Items),
		Status:    request.Status,
	}
	transaction.SetCreatedAtUpdatedAt()

	if _, err := uc.TransactionRepository.Create(ctx, transaction); err != nil {
		uc.Log.Error("transactionUsecase.SaveTransaction error calling TransactionRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "transaction_saved", requestID,
		zap.String(constvars.LoggingTransactionIDKey, transaction.ID.Hex()),
		zap.String(constvars.LoggingOrderIDKey, transaction.OrderID),
		zap.Int64(constvars.LoggingAmountKey, transaction.Amount),
		zap.String(constvars.LoggingStatusKey, transaction.Status),
	)

	if transaction.Status == constvars.TransactionStatusSuccess {
		if err := uc.deliverReceipt(ctx, transaction); err != nil {
			uc.Log.Warn("transactionUsecase.SaveTransaction failed to deliver receipt",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingTransactionIDKey, transaction.ID.Hex()),
				zap.Error(err),
			)
		}
	}

	return transaction, nil
}

// deliverReceipt stores the receipt PDF and queues it for mailing.
func (uc *transactionUsecase) deliverReceipt(ctx context.Context, transaction *models.Transaction) error {
	user, err := uc.UserRepository.FindByID(ctx, transaction.UserID.Hex())
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	objectKey, err := uc.storeReceipt(ctx, transaction, user)
	if err != nil {
		return err
	}

	return uc.MailerService.Publish(ctx, &requests.MailJob{
		Type:    constvars.MailTypeTransactionReceipt,
		To:      user.Email,
		Subject: constvars.EmailReceiptSubject,
		Body: fmt.Sprintf(constvars.EmailReceiptBodyFormat,
			user.Name,
			transaction.OrderID,
			transaction.Currency,
			utils.ToMajorUnits(transaction.Amount),
		),
		ObjectKey:      objectKey,
		AttachmentName: fmt.Sprintf(constvars.ReceiptFileNameFormat, transaction.ID.Hex()),
		Metadata:       map[string]string{"transaction_id": transaction.ID.Hex()},
	})
}

func (uc *transactionUsecase) storeReceipt(ctx context.Context, transaction *models.Transaction, user *models.User) (string, error) {
	content, err := uc.DocumentRenderer.RenderReceiptPDF(transaction, user)
	if err != nil {
		return "", err
	}

	objectKey := utils.GenerateReceiptObjectKey(transaction.UserID.Hex(), transaction.ID.Hex())
	err = uc.StorageService.PutObject(ctx, uc.InternalConfig.Minio.BucketName, objectKey, content, constvars.MIMEApplicationPDF)
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (uc *transactionUsecase) List(ctx context.Context) ([]models.Transaction, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("transactionUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.GetSessionData(ctx)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.TransactionRepository.FindByUserID(ctx, session.IdentityID)
	if err != nil {
		uc.Log.Error("transactionUsecase.List error calling TransactionRepository.FindByUserID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("transactionUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(transactions)),
	)
	return transactions, nil
}

// FindAll returns the whole ledger with identities expanded and the total in minor units.
func (uc *transactionUsecase) FindAll(ctx context.Context) (*responses.Ledger, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("transactionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	transactions, err := uc.TransactionRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("transactionUsecase.FindAll error calling TransactionRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	userIDs := make([]string, 0, len(transactions))
	seen := make(map[string]bool, len(transactions))
	for _, transaction := range transactions {
		id := transaction.UserID.Hex()
		if !seen[id] {
			seen[id] = true
			userIDs = append(userIDs, id)
		}
	}

	users, err := uc.UserRepository.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[string]*models.User, len(users))
	for i := range users {
		usersByID[users[i].ID.Hex()] = &users[i]
	}

	ledger := &responses.Ledger{Transactions: make([]responses.LedgerEntry, 0, len(transactions))}
	for _, transaction := range transactions {
		ledger.Transactions = append(ledger.Transactions, responses.LedgerEntry{
			ID:        transaction.ID.Hex(),
			User:      utils.BuildUserSummary(usersByID[transaction.UserID.Hex()]),
			OrderID:   transaction.OrderID,
			PaymentID: transaction.PaymentID,
			Amount:    transaction.Amount,
			Currency:  transaction.Currency,
			Receipt:   transaction.Receipt,
			Items:     transaction.Items,
			Status:    transaction.Status,
			CreatedAt: transaction.CreatedAt,
		})
		ledger.Total += transaction.Amount
	}

	uc.Log.Info("transactionUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(ledger.Transactions)),
		zap.Int64(constvars.LoggingAmountKey, ledger.Total),
	)
	return ledger, nil
}

func (uc *transactionUsecase) ExportLedger(ctx context.Context) (fileName string, content []byte, err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("transactionUsecase.ExportLedger called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ledger, err := uc.FindAll(ctx)
	if err != nil {
		return "", nil, err
	}

	content, err = uc.DocumentRenderer.RenderLedgerXLSX(ledger)
	if err != nil {
		uc.Log.Error("transactionUsecase.ExportLedger error calling DocumentRenderer.RenderLedgerXLSX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", nil, err
	}
	return utils.GenerateLedgerExportFileName(time.Now()), content, nil
}

// GetReceipt re-renders the receipt into storage and returns a temporary link.
// Only the owner or an admin may fetch it.
func (uc *transactionUsecase) GetReceipt(ctx context.Context, transactionID string) (*responses.TransactionReceipt, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("transactionUsecase.GetReceipt called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
	)

	session, err := utils.GetSessionData(ctx)
	if err != nil {
		return nil, err
	}

	transaction, err := uc.TransactionRepository.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil || transaction.Status != constvars.TransactionStatusSuccess {
		return nil, exceptions.ErrTransactionNotFound(nil)
	}
	if transaction.UserID.Hex() != session.IdentityID && session.Role != constvars.RoleAdmin {
		utils.LogSecurityEvent(uc.Log, "receipt_access_denied", requestID, constvars.SecuritySeverityMedium,
			zap.String(constvars.LoggingIdentityIDKey, session.IdentityID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
		)
		return nil, exceptions.ErrNotOwner(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, transaction.UserID.Hex())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	objectKey, err := uc.storeReceipt(ctx, transaction, user)
	if err != nil {
		uc.Log.Error("transactionUsecase.GetReceipt error storing receipt",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInMinutes) * time.Minute
	url, err := uc.StorageService.GetObjectPresignedURL(ctx,
		uc.InternalConfig.Minio.BucketName,
		objectKey,
		fmt.Sprintf(constvars.ReceiptFileNameFormat, transactionID),
		expiry,
	)
	if err != nil {
		return nil, err
	}

	return &responses.TransactionReceipt{
		URL:       url,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}
