// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/database"
	"slotify/models"
)

// AvailabilityRepository is the persistence collaborator for operator-declared
// availability ranges. Callers pass already-validated arguments; no interval
// policy lives here beyond the overlap delete query.
type AvailabilityRepository interface {
	CreateMany(ctx context.Context, ranges []models.AvailabilityRange) ([]models.AvailabilityRange, error)
	DeleteOverlapping(ctx context.Context, r models.TimeRange, category string) (int64, error)
	ListByCategory(ctx context.Context, category string) ([]models.AvailabilityRange, error)
	ListAll(ctx context.Context) ([]models.AvailabilityRange, error)
	DeleteByID(ctx context.Context, rangeID string) error
	DeleteAll(ctx context.Context) (int64, error)
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability_ranges"),
	}
}
