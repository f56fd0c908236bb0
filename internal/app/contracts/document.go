package contracts

import (
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/responses"
)

type DocumentRenderer interface {
	RenderReceiptPDF(transaction *models.Transaction, user *models.User) ([]byte, error)
	RenderLedgerXLSX(ledger *responses.Ledger) ([]byte, error)
}
