// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/database"
	"slotify/models"
)

// ErrSlotConflict is returned by Insert when another appointment already
// holds the same normalized slot key. The unique slotKey index makes
// validate-then-insert safe against two clients racing for one grid slot.
var ErrSlotConflict = errors.New("appointment slot already taken")

// AppointmentRepository is the persistence collaborator for confirmed bookings.
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *models.Appointment) error
	ListConfirmed(ctx context.Context) ([]models.Appointment, error)
	DeleteByID(ctx context.Context, apptID string) error
	DeleteAll(ctx context.Context) (int64, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
