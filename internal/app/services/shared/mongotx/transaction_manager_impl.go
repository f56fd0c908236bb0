package mongotx

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.uber.org/zap"
)

type transactionManager struct {
	client *mongo.Client
	Log    *zap.Logger
}

func NewTransactionManager(client *mongo.Client, logger *zap.Logger) contracts.TransactionManager {
	return &transactionManager{
		client: client,
		Log:    logger,
	}
}

// WithTransaction retries fn on transient transaction errors as implemented
// by the driver, so fn must be safe to run more than once.
func (m *transactionManager) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := m.client.StartSession()
	if err != nil {
		m.Log.Error("transactionManager.WithTransaction error starting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	txOptions := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	}, txOptions)
	if err != nil {
		m.Log.Error("transactionManager.WithTransaction transaction aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
