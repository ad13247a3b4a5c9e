package history

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

// HistoryMongoRepository only ever inserts and reads; history records are
// immutable by contract.
type HistoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewHistoryMongoRepository(db *mongo.Client, dbName string) contracts.HistoryRepository {
	return &HistoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHistories),
	}
}

func (r *HistoryMongoRepository) CreateHistory(ctx context.Context, record *models.HistoryRecord) (string, error) {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HistoryMongoRepository) FindAllByArchivedAtDesc(ctx context.Context) ([]models.HistoryRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "archivedAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.HistoryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
