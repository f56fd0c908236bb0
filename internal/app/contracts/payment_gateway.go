package contracts

import "context"

type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (map[string]interface{}, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}
