package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"eventoz/config"
	"eventoz/database"
	"eventoz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var activeStatuses = []string{models.ReservationPending, models.ReservationConfirmed}

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	reservationColl *mongo.Collection
}

// NewMongoReservationRepo constructs a new instance of MongoReservationRepo.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoReservationRepo{
		reservationColl: db.Collection("reservations"),
	}
}

// occupiedRange is the half-open hour range a reservation consumes.
func occupiedRange(r models.Reservation) (int, int) {
	end := r.StartHour + 1
	if r.EndHour != nil && *r.EndHour > r.StartHour {
		end = *r.EndHour
	}
	if end > 24 {
		end = 24
	}
	return r.StartHour, end
}

// Create inserts the reservation transactionally. Inside the transaction
// the active reservations for the same service and date are re-read and
// checked for overlap; any hit aborts with ErrConflict so two customers
// can never commit overlapping bookings.
func (repo *MongoReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	client := repo.reservationColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	newStart, newEnd := occupiedRange(*reservation)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"service_id": reservation.ServiceID,
			"date":       reservation.Date,
			"status":     bson.M{"$in": activeStatuses},
		}
		cursor, err := repo.reservationColl.Find(sc, filter)
		if err != nil {
			return fmt.Errorf("error finding existing reservations: %w", err)
		}
		defer cursor.Close(sc)

		for cursor.Next(sc) {
			var existing models.Reservation
			if err := cursor.Decode(&existing); err != nil {
				return fmt.Errorf("error decoding reservation: %w", err)
			}
			start, end := occupiedRange(existing)
			if newStart < end && start < newEnd {
				return ErrConflict
			}
		}
		if err := cursor.Err(); err != nil {
			return fmt.Errorf("cursor error: %w", err)
		}

		if _, err := repo.reservationColl.InsertOne(sc, reservation); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrConflict {
			return ErrConflict
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}

	return nil
}

// GetByID retrieves a reservation document by ID.
func (repo *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var reservation models.Reservation
	filter := bson.M{"id": id}
	if err := repo.reservationColl.FindOne(ctx, filter).Decode(&reservation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching reservation with id %s: %w", id, err)
	}
	return &reservation, nil
}

// ListActive returns the pending and confirmed reservations for a
// service on the given date.
func (repo *MongoReservationRepo) ListActive(serviceID, date string) ([]models.Reservation, error) {
	filter := bson.M{
		"service_id": serviceID,
		"date":       date,
		"status":     bson.M{"$in": activeStatuses},
	}
	return repo.list(filter)
}

// ListByService returns every reservation for a service, newest first.
func (repo *MongoReservationRepo) ListByService(serviceID string) ([]models.Reservation, error) {
	return repo.list(bson.M{"service_id": serviceID})
}

// ListByEvent returns every reservation attached to an organizer's event.
func (repo *MongoReservationRepo) ListByEvent(eventID string) ([]models.Reservation, error) {
	return repo.list(bson.M{"event_id": eventID})
}

func (repo *MongoReservationRepo) list(filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.reservationColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	for cursor.Next(ctx) {
		var r models.Reservation
		if err := cursor.Decode(&r); err != nil {
			return nil, fmt.Errorf("error decoding reservation: %w", err)
		}
		reservations = append(reservations, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reservations, nil
}

// UpdateStatus moves a reservation from one lifecycle status to another.
func (repo *MongoReservationRepo) UpdateStatus(id, from, to string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to}}
	res, err := repo.reservationColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating reservation %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
