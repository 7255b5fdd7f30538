package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	serviceColl *mongo.Collection
}

// NewMongoServiceRepo constructs a new instance of MongoServiceRepo.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoServiceRepo{
		serviceColl: db.Collection("services"),
	}
}

// Create inserts a new service listing.
func (repo *MongoServiceRepo) Create(service *models.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.serviceColl.InsertOne(ctx, service)
	if err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}
	return nil
}

// GetByID retrieves a service document by ID.
func (repo *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var service models.Service
	filter := bson.M{"id": id}
	if err := repo.serviceColl.FindOne(ctx, filter).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching service with id %s: %w", id, err)
	}
	return &service, nil
}

// ListApproved returns all approved listings.
func (repo *MongoServiceRepo) ListApproved() ([]models.Service, error) {
	return repo.list(bson.M{"status": models.ServiceApproved})
}

// ListByProvider returns all listings owned by a provider.
func (repo *MongoServiceRepo) ListByProvider(providerID string) ([]models.Service, error) {
	return repo.list(bson.M{"provider_id": providerID})
}

// ListPending returns listings awaiting moderation.
func (repo *MongoServiceRepo) ListPending() ([]models.Service, error) {
	return repo.list(bson.M{"status": models.ServicePending})
}

func (repo *MongoServiceRepo) list(filter bson.M) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.serviceColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding service: %w", err)
		}
		services = append(services, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return services, nil
}

// UpdateStatus sets the moderation status for a listing.
func (repo *MongoServiceRepo) UpdateStatus(id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}
	res, err := repo.serviceColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating service %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddUnavailableDate blocks a full calendar day for the service.
func (repo *MongoServiceRepo) AddUnavailableDate(id, date string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$addToSet": bson.M{"unavailable_dates": date}}
	res, err := repo.serviceColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error blocking date for service %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveUnavailableDate unblocks a previously blocked day.
func (repo *MongoServiceRepo) RemoveUnavailableDate(id, date string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$pull": bson.M{"unavailable_dates": date}}
	res, err := repo.serviceColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error unblocking date for service %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
