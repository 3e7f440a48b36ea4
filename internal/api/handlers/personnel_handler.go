// internal/api/handlers/personnel_handler.go
package handlers

import (
	"net/http"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type PersonnelHandler struct {
	Personnel  store.PersonnelStore
	Deliveries store.DeliveryStore
}

type PersonnelRequest struct {
	Name               string `json:"name" binding:"required"`
	ContactInfo        string `json:"contactInfo"`
	PersonnelType      string `json:"personnelType" binding:"required"`
	LicenseNumber      string `json:"licenseNumber" binding:"required"`
	VehicleDetails     string `json:"vehicleDetails"`
	AvailabilityStatus string `json:"availabilityStatus"`
}

func (r *PersonnelRequest) toModel() (*models.DeliveryPersonnel, error) {
	ptype := models.PersonnelType(r.PersonnelType)
	if !ptype.Valid() {
		return nil, &store.ValidationError{Field: "personnelType", Reason: "unknown type " + r.PersonnelType}
	}
	status := models.AvailabilityStatus(r.AvailabilityStatus)
	if r.AvailabilityStatus == "" {
		status = models.PersonnelAvailable
	}
	if !status.Valid() {
		return nil, &store.ValidationError{Field: "availabilityStatus", Reason: "unknown status " + r.AvailabilityStatus}
	}
	return &models.DeliveryPersonnel{
		Name:               r.Name,
		ContactInfo:        r.ContactInfo,
		PersonnelType:      ptype,
		LicenseNumber:      r.LicenseNumber,
		VehicleDetails:     r.VehicleDetails,
		AvailabilityStatus: status,
	}, nil
}

func (h *PersonnelHandler) CreatePersonnel(c *gin.Context) {
	var req PersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	personnel, err := req.toModel()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if _, err := h.Personnel.Create(c.Request.Context(), personnel); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, personnel)
}

func (h *PersonnelHandler) GetPersonnel(c *gin.Context) {
	personnel, err := h.Personnel.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, personnel)
}

func (h *PersonnelHandler) GetAllPersonnel(c *gin.Context) {
	personnel, err := h.Personnel.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, personnel)
}

func (h *PersonnelHandler) UpdatePersonnel(c *gin.Context) {
	var req PersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := req.toModel()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	updated.ID = c.Param("id")

	if err := h.Personnel.Update(c.Request.Context(), updated); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PersonnelHandler) DeletePersonnel(c *gin.Context) {
	if err := h.Personnel.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Personnel deleted successfully"})
}

// GetPersonnelDeliveries liệt kê các delivery của một nhân viên.
func (h *PersonnelHandler) GetPersonnelDeliveries(c *gin.Context) {
	deliveries, err := h.Deliveries.ListByPersonnel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}
