package payment_gateway

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"github.com/razorpay/razorpay-go"
	razorpayutils "github.com/razorpay/razorpay-go/utils"
	"go.uber.org/zap"
)

type razorpayService struct {
	Client    *razorpay.Client
	KeySecret string
	Log       *zap.Logger
}

func NewRazorpayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	return &razorpayService{
		Client:    razorpay.NewClient(internalConfig.Razorpay.KeyID, internalConfig.Razorpay.KeySecret),
		KeySecret: internalConfig.Razorpay.KeySecret,
		Log:       logger,
	}
}

// CreateOrder registers an order at the gateway. amount is in minor units.
func (s *razorpayService) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("razorpayService.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAmountKey, amount),
	)

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	order, err := s.Client.Order.Create(data, nil)
	if err != nil {
		s.Log.Error("razorpayService.CreateOrder error calling Order.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentGateway(err)
	}

	orderID, _ := order["id"].(string)
	s.Log.Info("razorpayService.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	return order, nil
}

// VerifyPaymentSignature checks the HMAC-SHA256 of "orderID|paymentID" keyed
// with the account secret.
func (s *razorpayService) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	attributes := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return razorpayutils.VerifyPaymentSignature(attributes, signature, s.KeySecret)
}
