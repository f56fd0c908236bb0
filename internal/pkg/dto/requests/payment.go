package requests

type CreateOrder struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type TransactionItem struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Duration string  `json:"duration"`
}

// SaveTransaction.Amount is in minor units, as returned by the gateway order.
type SaveTransaction struct {
	OrderID   string            `json:"orderID" validate:"required,non_blank"`
	PaymentID string            `json:"paymentID" validate:"required,non_blank"`
	Signature string            `json:"signature" validate:"required_if=Status success"`
	Amount    int64             `json:"amount" validate:"required,gt=0"`
	Currency  string            `json:"currency" validate:"omitempty,len=3"`
	Receipt   string            `json:"receipt"`
	Status    string            `json:"status" validate:"required,oneof=success failed"`
	Items     []TransactionItem `json:"items" validate:"dive"`
}
