package bills

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BillMongoRepository struct {
	Collection *mongo.Collection
}

func NewBillMongoRepository(db *mongo.Client, dbName string) contracts.BillRepository {
	return &BillMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBills),
	}
}

func (r *BillMongoRepository) CreateBill(ctx context.Context, bill *models.Bill) (string, error) {
	now := time.Now()
	bill.CreatedAt = now
	bill.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, bill)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrBillIDConflict(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BillMongoRepository) FindAll(ctx context.Context) ([]models.Bill, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bills []models.Bill
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bills, nil
}

func (r *BillMongoRepository) FindByID(ctx context.Context, billDocID string) (*models.Bill, error) {
	objectID, err := primitive.ObjectIDFromHex(billDocID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var bill models.Bill
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &bill, nil
}

func (r *BillMongoRepository) FindLatestByPatientID(ctx context.Context, patientID string) (*models.Bill, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var bill models.Bill
	err := r.Collection.FindOne(ctx, bson.M{"patientId": patientID}, opts).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &bill, nil
}

func (r *BillMongoRepository) UpdateBill(ctx context.Context, bill *models.Bill) error {
	objectID, err := primitive.ObjectIDFromHex(bill.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	bill.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"amount":      bill.Amount,
		"status":      bill.Status,
		"patientName": bill.PatientName,
		"updatedAt":   bill.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *BillMongoRepository) DeleteByID(ctx context.Context, billDocID string) error {
	objectID, err := primitive.ObjectIDFromHex(billDocID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
