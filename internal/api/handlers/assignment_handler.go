// internal/api/handlers/assignment_handler.go
package handlers

import (
	"net/http"

	"fasttrack-logistics-api-server/internal/service"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	Assigner *service.Assigner
}

type AssignRequest struct {
	ShipmentID  string `json:"shipmentID" binding:"required"`
	PersonnelID string `json:"personnelID" binding:"required"`
}

// AssignDriver phân công một nhân viên cho một shipment đang chờ.
func (h *AssignmentHandler) AssignDriver(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivery, err := h.Assigner.Assign(c.Request.Context(), req.ShipmentID, req.PersonnelID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "delivery": delivery})
}

// GetPendingAssignments trả về dữ liệu cho màn hình phân công: các shipment
// chưa có delivery và các nhân viên đang Available.
func (h *AssignmentHandler) GetPendingAssignments(c *gin.Context) {
	shipments, err := h.Assigner.PendingShipments(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	personnel, err := h.Assigner.AvailablePersonnel(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"unassignedShipments": shipments,
		"availablePersonnel":  personnel,
	})
}
