package handlers

import (
	"errors"
	"net/http"

	serviceRepo "eventoz/database/repository/service"
	"eventoz/models"
	"eventoz/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogSvc is wired at startup.
var CatalogSvc catalog.CatalogService

func catalogStatus(err error) int {
	if errors.Is(err, serviceRepo.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// CreateService registers a new listing for the signed-in provider.
func CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	service.ProviderID = c.GetString("userID")

	created, err := CatalogSvc.CreateService(&service)
	if err != nil {
		c.JSON(availabilityStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": created})
}

// GetService fetches one listing.
func GetService(c *gin.Context) {
	service, err := CatalogSvc.GetService(c.Param("id"))
	if err != nil {
		c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service})
}

// ListServices returns the public catalog of approved listings.
func ListServices(c *gin.Context) {
	services, err := CatalogSvc.ListApproved()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListMyServices returns the signed-in provider's own listings.
func ListMyServices(c *gin.Context) {
	services, err := CatalogSvc.ListByProvider(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// BlockDate marks a full day unavailable on a listing.
func BlockDate(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	if err := CatalogSvc.BlockDate(c.Param("id"), input.Date); err != nil {
		c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "blocked", "date": input.Date})
}

// UnblockDate reopens a previously blocked day.
func UnblockDate(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	if err := CatalogSvc.UnblockDate(c.Param("id"), input.Date); err != nil {
		c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unblocked", "date": input.Date})
}

// ListPendingServices returns the moderation queue.
func ListPendingServices(c *gin.Context) {
	services, err := CatalogSvc.ListPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ApproveService publishes a listing.
func ApproveService(c *gin.Context) {
	if err := CatalogSvc.Approve(c.Param("id")); err != nil {
		c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.ServiceApproved})
}

// RejectService declines a listing.
func RejectService(c *gin.Context) {
	if err := CatalogSvc.Reject(c.Param("id")); err != nil {
		c.JSON(catalogStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.ServiceRejected})
}
