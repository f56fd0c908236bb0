package transactions

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Client, dbName string) contracts.TransactionRepository {
	return &TransactionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTransactions),
	}
}

func (repo *TransactionMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userID", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "orderID", Value: 1}},
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionTransactions)
	}
	return nil
}

func (repo *TransactionMongoRepository) Create(ctx context.Context, transaction *models.Transaction) (transactionID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, transaction)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TransactionMongoRepository) FindByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	objectID, err := primitive.ObjectIDFromHex(transactionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var transaction models.Transaction
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (repo *TransactionMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.findNewestFirst(ctx, bson.M{"userID": objectID})
}

func (repo *TransactionMongoRepository) FindAll(ctx context.Context) ([]models.Transaction, error) {
	return repo.findNewestFirst(ctx, bson.M{})
}

func (repo *TransactionMongoRepository) findNewestFirst(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &transactions)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return transactions, nil
}
