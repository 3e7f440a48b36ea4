// internal/api/handlers/shipment_handler.go
package handlers

import (
	"net/http"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	Shipments  store.ShipmentStore
	Deliveries store.DeliveryStore
}

// --- Structs cho Request Body ---

type ShipmentRequest struct {
	TrackingNumber        string     `json:"trackingNumber" binding:"required"`
	SenderName            string     `json:"senderName" binding:"required"`
	SenderAddress         string     `json:"senderAddress" binding:"required"`
	SenderContact         string     `json:"senderContact"`
	ReceiverName          string     `json:"receiverName" binding:"required"`
	ReceiverAddress       string     `json:"receiverAddress" binding:"required"`
	ReceiverContact       string     `json:"receiverContact"`
	PackageContents       string     `json:"packageContents"`
	Weight                float64    `json:"weight" binding:"min=0"`
	Dimensions            string     `json:"dimensions"`
	DeliveryStatus        string     `json:"deliveryStatus"`
	CurrentLocation       string     `json:"currentLocation"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
	SpecialInstructions   string     `json:"specialInstructions"`
}

func (r *ShipmentRequest) toModel() (*models.Shipment, error) {
	status := models.ShipmentStatus(r.DeliveryStatus)
	if r.DeliveryStatus == "" {
		status = models.ShipmentPending
	}
	if !status.Valid() {
		return nil, &store.ValidationError{Field: "deliveryStatus", Reason: "unknown status " + r.DeliveryStatus}
	}
	return &models.Shipment{
		TrackingNumber:        r.TrackingNumber,
		SenderName:            r.SenderName,
		SenderAddress:         r.SenderAddress,
		SenderContact:         r.SenderContact,
		ReceiverName:          r.ReceiverName,
		ReceiverAddress:       r.ReceiverAddress,
		ReceiverContact:       r.ReceiverContact,
		PackageContents:       r.PackageContents,
		Weight:                r.Weight,
		Dimensions:            r.Dimensions,
		DeliveryStatus:        status,
		CurrentLocation:       r.CurrentLocation,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		SpecialInstructions:   r.SpecialInstructions,
	}, nil
}

// --- Handlers ---

// CreateShipment tạo một shipment mới với trạng thái mặc định là Pending.
func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var req ShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipment, err := req.toModel()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if _, err := h.Shipments.Create(c.Request.Context(), shipment); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shipment)
}

func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	shipment, err := h.Shipments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

// TrackShipment là endpoint công khai tra cứu theo tracking number.
func (h *ShipmentHandler) TrackShipment(c *gin.Context) {
	shipment, err := h.Shipments.GetByTrackingNumber(c.Request.Context(), c.Param("trackingNumber"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"trackingNumber":        shipment.TrackingNumber,
		"deliveryStatus":        shipment.DeliveryStatus,
		"currentLocation":       shipment.CurrentLocation,
		"estimatedDeliveryTime": shipment.EstimatedDeliveryTime,
		"actualDeliveryTime":    shipment.ActualDeliveryTime,
	})
}

func (h *ShipmentHandler) GetAllShipments(c *gin.Context) {
	shipments, err := h.Shipments.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipments)
}

// UpdateShipment ghi đè các trường có thể sửa; createdAt giữ nguyên.
func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	var req ShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current, err := h.Shipments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	updated, err := req.toModel()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	updated.ID = current.ID
	updated.ActualDeliveryTime = current.ActualDeliveryTime

	if err := h.Shipments.Update(c.Request.Context(), updated); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	if err := h.Shipments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shipment deleted successfully"})
}

// GetShipmentDeliveries liệt kê các delivery của một shipment.
func (h *ShipmentHandler) GetShipmentDeliveries(c *gin.Context) {
	deliveries, err := h.Deliveries.ListByShipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}
