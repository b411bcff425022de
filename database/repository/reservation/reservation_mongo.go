package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"staybook/database"
	"staybook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	reservationColl *mongo.Collection
}

// NewMongoReservationRepo constructs a new instance of MongoReservationRepo.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database("staybook")
	return &MongoReservationRepo{
		reservationColl: db.Collection("reservations"),
	}
}

// Create inserts a new reservation document.
func (repo *MongoReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.reservationColl.InsertOne(ctxWithTimeout, reservation)
	if err != nil {
		return fmt.Errorf("error creating reservation: %w", err)
	}
	return nil
}

// GetByID retrieves a reservation by its ID.
func (repo *MongoReservationRepo) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var reservation models.Reservation
	err := repo.reservationColl.FindOne(ctxWithTimeout, bson.M{"id": reservationID}).Decode(&reservation)
	if err != nil {
		return nil, fmt.Errorf("reservation not found: %w", err)
	}
	return &reservation, nil
}

// AttachAuthorization stores the authorization reference and moves the
// reservation from pending to authorized.
func (repo *MongoReservationRepo) AttachAuthorization(ctx context.Context, reservationID, authorizationID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": reservationID}
	update := bson.M{"$set": bson.M{
		"authorization_id": authorizationID,
		"status":           models.ReservationStatusAuthorized,
		"updated_at":       time.Now(),
	}}
	res, err := repo.reservationColl.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error attaching authorization to reservation %s: %w", reservationID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("reservation %s not found", reservationID)
	}
	return nil
}

// UpdateStatus applies a status transition to the reservation.
func (repo *MongoReservationRepo) UpdateStatus(ctx context.Context, reservationID, status string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": reservationID}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	res, err := repo.reservationColl.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error updating reservation %s: %w", reservationID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("reservation %s not found", reservationID)
	}
	return nil
}
