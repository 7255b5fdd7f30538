package serviceRepo

import (
	"errors"

	"eventoz/models"
)

// ErrNotFound is returned when no service matches the given ID.
var ErrNotFound = errors.New("service not found")

type ServiceRepository interface {
	Create(service *models.Service) error
	GetByID(id string) (*models.Service, error)

	// ListApproved returns only listings that passed admin moderation;
	// this is what the public explore surface shows.
	ListApproved() ([]models.Service, error)
	ListByProvider(providerID string) ([]models.Service, error)
	ListPending() ([]models.Service, error)

	UpdateStatus(id, status string) error

	// Blocked-day management for the provider dashboard.
	AddUnavailableDate(id, date string) error
	RemoveUnavailableDate(id, date string) error
}
