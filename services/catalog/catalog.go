package catalog

import (
	"fmt"
	"time"

	serviceRepo "eventoz/database/repository/service"
	"eventoz/models"
	"eventoz/services/availability"
	"eventoz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	ServiceRepo serviceRepo.ServiceRepository
}

// CreateService registers a new listing in pending moderation state.
// Business hours are validated up front so a misconfigured listing is
// rejected at creation rather than surfacing later as an availability
// failure on the customer side.
func (s *DefaultCatalogService) CreateService(service *models.Service) (*models.Service, error) {
	if service.ProviderID == "" {
		return nil, fmt.Errorf("service must reference a provider")
	}
	if service.Name == "" {
		return nil, fmt.Errorf("service must have a name")
	}
	if _, err := availability.NewCalculator(*service, nil); err != nil {
		return nil, err
	}

	service.ID = uuid.New().String()
	service.Status = models.ServicePending
	if err := s.ServiceRepo.Create(service); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("service listing created",
		zap.String("serviceID", service.ID),
		zap.String("providerID", service.ProviderID),
		zap.String("category", service.Category))
	return service, nil
}

// GetService fetches one listing by ID.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	return s.ServiceRepo.GetByID(id)
}

// ListApproved returns the public catalog.
func (s *DefaultCatalogService) ListApproved() ([]models.Service, error) {
	return s.ServiceRepo.ListApproved()
}

// ListByProvider returns a provider's own listings regardless of status.
func (s *DefaultCatalogService) ListByProvider(providerID string) ([]models.Service, error) {
	return s.ServiceRepo.ListByProvider(providerID)
}

// ListPending returns the moderation queue.
func (s *DefaultCatalogService) ListPending() ([]models.Service, error) {
	return s.ServiceRepo.ListPending()
}

// Approve publishes a listing to the catalog.
func (s *DefaultCatalogService) Approve(id string) error {
	return s.ServiceRepo.UpdateStatus(id, models.ServiceApproved)
}

// Reject takes a listing out of the moderation queue.
func (s *DefaultCatalogService) Reject(id string) error {
	return s.ServiceRepo.UpdateStatus(id, models.ServiceRejected)
}

// BlockDate marks a full day unavailable for the listing.
func (s *DefaultCatalogService) BlockDate(id, date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return s.ServiceRepo.AddUnavailableDate(id, date)
}

// UnblockDate removes a previously blocked day.
func (s *DefaultCatalogService) UnblockDate(id, date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return s.ServiceRepo.RemoveUnavailableDate(id, date)
}
