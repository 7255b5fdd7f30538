package userRepo

import (
	"errors"

	"eventoz/models"
)

// ErrNotFound is returned when no user matches the given filter.
var ErrNotFound = errors.New("user not found")

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
