package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	userColl *mongo.Collection
}

// NewMongoUserRepo constructs a new instance of MongoUserRepo.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoUserRepo{
		userColl: db.Collection("users"),
	}
}

// Create inserts a new user account.
func (repo *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := repo.userColl.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user document by ID.
func (repo *MongoUserRepo) GetByID(id string) (*models.User, error) {
	return repo.get(bson.M{"id": id})
}

// GetByEmail retrieves a user document by email.
func (repo *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	return repo.get(bson.M{"email": email})
}

func (repo *MongoUserRepo) get(filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := repo.userColl.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return &user, nil
}
