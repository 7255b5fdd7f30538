package catalog

import "eventoz/models"

// CatalogService manages provider listings: creation, moderation and
// blocked-day management.
type CatalogService interface {
	CreateService(service *models.Service) (*models.Service, error)
	GetService(id string) (*models.Service, error)
	ListApproved() ([]models.Service, error)
	ListByProvider(providerID string) ([]models.Service, error)
	ListPending() ([]models.Service, error)

	Approve(id string) error
	Reject(id string) error

	BlockDate(id, date string) error
	UnblockDate(id, date string) error
}
