package main

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/drivers/database"
	"clinicdesk-service/internal/pkg/constvars"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the unique indexes the service relies on: queue tokens may never
// collide, and neither may generated bill identifiers.
func main() {
	driverConfig := config.NewDriverConfig()
	client := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer client.Disconnect(ctx)

	db := client.Database(driverConfig.MongoDB.DbName)

	ensureIndex(ctx, db.Collection(constvars.MongoCollectionPatients), "tokenNumber")
	ensureIndex(ctx, db.Collection(constvars.MongoCollectionBills), "billId")

	log.Println("Indexes ensured")
}

func ensureIndex(ctx context.Context, collection *mongo.Collection, field string) {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Error creating unique index on %s.%s: %v", collection.Name(), field, err)
	}
	log.Printf("Unique index ensured on %s.%s", collection.Name(), field)
}
