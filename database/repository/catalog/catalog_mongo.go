package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"staybook/database"
	"staybook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	propertyColl *mongo.Collection
	blockColl    *mongo.Collection
}

// NewMongoCatalogRepo constructs a new instance of MongoCatalogRepo.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("staybook")
	return &MongoCatalogRepo{
		propertyColl: db.Collection("properties"),
		blockColl:    db.Collection("calendar_blocks"),
	}
}

// GetPropertyBySlug retrieves a property document by its slug.
func (repo *MongoCatalogRepo) GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var property models.Property
	filter := bson.M{"slug": slug}
	if err := repo.propertyColl.FindOne(ctxWithTimeout, filter).Decode(&property); err != nil {
		return nil, fmt.Errorf("error fetching property with slug %s: %w", slug, err)
	}
	return &property, nil
}

// CheckAvailability counts calendar blocks overlapping the requested
// range. A block [start, end) overlaps [checkIn, checkOut) when it
// starts before the check-out and ends after the check-in.
func (repo *MongoCatalogRepo) CheckAvailability(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"property_id": propertyID,
		"start":       bson.M{"$lt": checkOut},
		"end":         bson.M{"$gt": checkIn},
	}
	count, err := repo.blockColl.CountDocuments(ctxWithTimeout, filter)
	if err != nil {
		return false, fmt.Errorf("error checking availability for property %s: %w", propertyID, err)
	}
	return count == 0, nil
}
