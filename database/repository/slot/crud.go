// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotify/models"
)

func (r *mongoAvailabilityRepo) CreateMany(ctx context.Context, ranges []models.AvailabilityRange) ([]models.AvailabilityRange, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(ranges))
	created := make([]models.AvailabilityRange, len(ranges))
	for i, ar := range ranges {
		if ar.ID == "" {
			ar.ID = uuid.New().String()
		}
		if ar.CreatedAt.IsZero() {
			ar.CreatedAt = now
		}
		ar.DurationMinutes = ar.Range().Minutes()
		docs[i] = ar
		created[i] = ar
	}

	if _, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)}); err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteOverlapping removes every stored range of the given category that
// overlaps r under half-open semantics: start < r.end AND end > r.start.
func (r *mongoAvailabilityRepo) DeleteOverlapping(ctx context.Context, tr models.TimeRange, category string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"category": category,
		"start":    bson.M{"$lt": tr.End},
		"end":      bson.M{"$gt": tr.Start},
	}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoAvailabilityRepo) ListByCategory(ctx context.Context, category string) ([]models.AvailabilityRange, error) {
	return r.list(ctx, bson.M{"category": category})
}

func (r *mongoAvailabilityRepo) ListAll(ctx context.Context) ([]models.AvailabilityRange, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoAvailabilityRepo) list(ctx context.Context, filter bson.M) ([]models.AvailabilityRange, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ranges []models.AvailabilityRange
	if err := cursor.All(ctx, &ranges); err != nil {
		return nil, err
	}
	return ranges, nil
}

func (r *mongoAvailabilityRepo) DeleteByID(ctx context.Context, rangeID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": rangeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAvailabilityRepo) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func boolPtr(b bool) *bool { return &b }
