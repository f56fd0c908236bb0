package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type TransactionUsecase interface {
	CreateOrder(ctx context.Context, request *requests.CreateOrder) (responses.Order, error)
	SaveTransaction(ctx context.Context, request *requests.SaveTransaction) (*models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	FindAll(ctx context.Context) (*responses.Ledger, error)
	ExportLedger(ctx context.Context) (fileName string, content []byte, err error)
	GetReceipt(ctx context.Context, transactionID string) (*responses.TransactionReceipt, error)
}

// TransactionRepository has no update or delete: the ledger is append-only.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) (transactionID string, err error)
	FindByID(ctx context.Context, transactionID string) (*models.Transaction, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
	FindAll(ctx context.Context) ([]models.Transaction, error)
	EnsureIndexes(ctx context.Context) error
}
