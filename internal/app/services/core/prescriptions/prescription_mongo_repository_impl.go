package prescriptions

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

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (r *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	now := time.Now()
	prescription.CreatedAt = now
	prescription.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PrescriptionMongoRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}

func (r *PrescriptionMongoRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var prescription models.Prescription
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) FindLatestByPatientID(ctx context.Context, patientID string) (*models.Prescription, error) {
	// Most recent by creation time; multi-visit patients must archive the
	// latest encounter, not an arbitrary one.
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var prescription models.Prescription
	err := r.Collection.FindOne(ctx, bson.M{"patientId": patientID}, opts).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) CountByPatientID(ctx context.Context, patientID string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *PrescriptionMongoRepository) UpdatePrescription(ctx context.Context, prescription *models.Prescription) error {
	objectID, err := primitive.ObjectIDFromHex(prescription.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	prescription.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"diagnosis": prescription.Diagnosis,
		"medicines": prescription.Medicines,
		"notes":     prescription.Notes,
		"doctorId":  prescription.DoctorID,
		"updatedAt": prescription.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PrescriptionMongoRepository) DeleteByID(ctx context.Context, prescriptionID string) error {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *PrescriptionMongoRepository) DeleteAllByPatientID(ctx context.Context, patientID string) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
