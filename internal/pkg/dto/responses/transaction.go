package responses

import (
	"hospital-service/internal/app/models"
	"time"
)

type LedgerEntry struct {
	ID        string                   `json:"_id"`
	User      *UserSummary             `json:"userID"`
	OrderID   string                   `json:"orderID"`
	PaymentID string                   `json:"paymentID"`
	Amount    int64                    `json:"amount"`
	Currency  string                   `json:"currency"`
	Receipt   string                   `json:"receipt"`
	Items     []models.TransactionItem `json:"items"`
	Status    string                   `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
}

// Ledger.Total is the sum of all amounts in minor units.
type Ledger struct {
	Transactions []LedgerEntry `json:"transactions"`
	Total        int64         `json:"total"`
}

type Order map[string]interface{}

type TransactionReceipt struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
