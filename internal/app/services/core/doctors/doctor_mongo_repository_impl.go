package doctors

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

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (repo *DoctorMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "doctorID", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "specialization", Value: 1}},
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionDoctors)
	}
	return nil
}

func (repo *DoctorMongoRepository) Create(ctx context.Context, doctor *models.Doctor) (doctorID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, doctor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrPhoneAlreadyRegistered(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doctor models.Doctor
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (repo *DoctorMongoRepository) FindByIdentityID(ctx context.Context, identityID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(identityID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doctor models.Doctor
	err = repo.Collection.FindOne(ctx, bson.M{"doctorID": objectID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (repo *DoctorMongoRepository) FindByIDs(ctx context.Context, doctorIDs []string) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	if len(doctorIDs) == 0 {
		return doctors, nil
	}

	objectIDs := make([]primitive.ObjectID, len(doctorIDs))
	for i, doctorID := range doctorIDs {
		objectID, err := primitive.ObjectIDFromHex(doctorID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs[i] = objectID
	}

	return repo.find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}}, options.Find())
}

func (repo *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return repo.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (repo *DoctorMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Doctor, error) {
	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	for cursor.Next(ctx) {
		var doctor models.Doctor
		if err := cursor.Decode(&doctor); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		doctors = append(doctors, doctor)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (repo *DoctorMongoRepository) UpdateByIdentityID(ctx context.Context, identityID string, doctor *models.Doctor) error {
	objectID, err := primitive.ObjectIDFromHex(identityID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.UpdateOne(ctx,
		bson.M{"doctorID": objectID},
		bson.M{"$set": doctor.ConvertToBsonM()},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrPhoneAlreadyRegistered(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *DoctorMongoRepository) DeleteByIdentityID(ctx context.Context, identityID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(identityID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"doctorID": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
