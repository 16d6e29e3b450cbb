package cases

import (
	"context"
	"time"

	"dermref-service/internal/app/contracts"
	"dermref-service/internal/app/models"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CaseMongoRepository struct {
	Collection *mongo.Collection
}

func NewCaseMongoRepository(db *mongo.Client, dbName string) contracts.CaseRepository {
	return &CaseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCases),
	}
}

func (r *CaseMongoRepository) CreateCase(ctx context.Context, patientCase *models.PatientCase) (string, error) {
	result, err := r.Collection.InsertOne(ctx, patientCase)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CaseMongoRepository) FindCaseByID(ctx context.Context, caseID string) (*models.PatientCase, error) {
	objectID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var patientCase models.PatientCase
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patientCase)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patientCase, nil
}

func (r *CaseMongoRepository) FindCaseByIDAndDoctor(ctx context.Context, caseID, doctorID string) (*models.PatientCase, error) {
	caseObjectID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var patientCase models.PatientCase
	filter := bson.M{"_id": caseObjectID, "doctor": doctorObjectID}
	err = r.Collection.FindOne(ctx, filter).Decode(&patientCase)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patientCase, nil
}

func (r *CaseMongoRepository) FindCasesByDoctor(ctx context.Context, doctorID string, status *models.CaseStatus) ([]models.PatientCase, error) {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"doctor": doctorObjectID}
	if status != nil {
		filter["status"] = *status
	}
	return r.findCases(ctx, filter)
}

func (r *CaseMongoRepository) FindCasesByPaymentStatus(ctx context.Context, paymentStatus models.PaymentStatus, status *models.CaseStatus) ([]models.PatientCase, error) {
	filter := bson.M{"paymentStatus": paymentStatus}
	if status != nil {
		filter["status"] = *status
	}
	return r.findCases(ctx, filter)
}

func (r *CaseMongoRepository) findCases(ctx context.Context, filter bson.M) ([]models.PatientCase, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patientCases := make([]models.PatientCase, 0)
	if err := cursor.All(ctx, &patientCases); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patientCases, nil
}

func (r *CaseMongoRepository) UpdateCasePaymentCompleted(ctx context.Context, caseID, paymentID string, amount int64, paidAt time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentStatusCompleted,
		"paymentId":     paymentID,
		"amountPaid":    amount,
		"paymentDate":   paidAt,
		"updatedAt":     time.Now(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// MarkCaseDone is idempotent; re-marking a done case is a no-op write.
func (r *CaseMongoRepository) MarkCaseDone(ctx context.Context, caseID string) error {
	objectID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":    models.CaseStatusDone,
		"updatedAt": time.Now(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
