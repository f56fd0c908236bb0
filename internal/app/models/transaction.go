package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type TransactionItem struct {
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Duration string  `json:"duration" bson:"duration"`
}

// Transaction is append-only. Amount is in minor units.
type Transaction struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userID" bson:"userID"`
	OrderID   string             `json:"orderID" bson:"orderID"`
	PaymentID string             `json:"paymentID" bson:"paymentID"`
	Amount    int64              `json:"amount" bson:"amount"`
	Currency  string             `json:"currency" bson:"currency"`
	Receipt   string             `json:"receipt" bson:"receipt"`
	Items     []TransactionItem  `json:"items" bson:"items"`
	Status    string             `json:"status" bson:"status"`
	TimeModel `bson:",inline"`
}
