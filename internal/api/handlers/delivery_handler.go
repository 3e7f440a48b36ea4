// internal/api/handlers/delivery_handler.go
package handlers

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/s3"
	"fasttrack-logistics-api-server/internal/service"
	"fasttrack-logistics-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DeliveryHandler struct {
	Service    *service.DeliveryService
	Deliveries store.DeliveryStore
	Proofs     store.ProofStore
	S3Uploader *s3.Uploader // nil khi không cấu hình S3
}

type DeliveryRequest struct {
	ShipmentID            string     `json:"shipmentID" binding:"required"`
	PersonnelID           string     `json:"personnelID"`
	ScheduledPickupTime   *time.Time `json:"scheduledPickupTime"`
	ScheduledDeliveryTime *time.Time `json:"scheduledDeliveryTime"`
	DeliveryStatus        string     `json:"deliveryStatus"`
	RouteDetails          string     `json:"routeDetails"`
	DeliveryNotes         string     `json:"deliveryNotes"`
}

// ScheduleDelivery tạo một delivery mới; shipment Pending sẽ chuyển sang
// Scheduled.
func (h *DeliveryHandler) ScheduleDelivery(c *gin.Context) {
	var req DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivery := &models.Delivery{
		ShipmentID:            req.ShipmentID,
		PersonnelID:           req.PersonnelID,
		ScheduledPickupTime:   req.ScheduledPickupTime,
		ScheduledDeliveryTime: req.ScheduledDeliveryTime,
		DeliveryStatus:        models.DeliveryStatus(req.DeliveryStatus),
		RouteDetails:          req.RouteDetails,
		DeliveryNotes:         req.DeliveryNotes,
	}
	if _, err := h.Service.Schedule(c.Request.Context(), delivery); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, delivery)
}

func (h *DeliveryHandler) GetDelivery(c *gin.Context) {
	delivery, err := h.Deliveries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, delivery)
}

func (h *DeliveryHandler) GetAllDeliveries(c *gin.Context) {
	deliveries, err := h.Deliveries.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}

// UpdateDelivery ghi lại delivery; trạng thái mới được đẩy sang shipment.
func (h *DeliveryHandler) UpdateDelivery(c *gin.Context) {
	var req DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	current, err := h.Deliveries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	current.ShipmentID = req.ShipmentID
	current.PersonnelID = req.PersonnelID
	current.ScheduledPickupTime = req.ScheduledPickupTime
	current.ScheduledDeliveryTime = req.ScheduledDeliveryTime
	current.DeliveryStatus = models.DeliveryStatus(req.DeliveryStatus)
	current.RouteDetails = req.RouteDetails
	current.DeliveryNotes = req.DeliveryNotes

	if err := h.Service.Update(c.Request.Context(), current); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, current)
}

func (h *DeliveryHandler) DeleteDelivery(c *gin.Context) {
	if err := h.Service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery removed successfully"})
}

// ConfirmPickup ghi nhận lấy hàng, kèm ảnh minh chứng nếu có.
func (h *DeliveryHandler) ConfirmPickup(c *gin.Context) {
	h.confirm(c, "pickup")
}

// ConfirmDelivery ghi nhận giao hàng, kèm ảnh minh chứng nếu có.
func (h *DeliveryHandler) ConfirmDelivery(c *gin.Context) {
	h.confirm(c, "delivery")
}

func (h *DeliveryHandler) confirm(c *gin.Context, kind string) {
	deliveryID := c.Param("id")
	now := time.Now()

	var (
		delivery *models.Delivery
		err      error
	)
	if kind == "pickup" {
		delivery, err = h.Service.ConfirmPickup(c.Request.Context(), deliveryID, now)
	} else {
		delivery, err = h.Service.ConfirmDelivery(c.Request.Context(), deliveryID, now)
	}
	if err != nil {
		respondStoreError(c, err)
		return
	}

	proofURL := ""
	if file, header, ferr := c.Request.FormFile("photo"); ferr == nil {
		defer file.Close()
		proofURL, err = h.storeProof(c, delivery, kind, file, header.Header.Get("Content-Type"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store proof photo", "details": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "delivery": delivery, "photoURL": proofURL})
}

func (h *DeliveryHandler) storeProof(c *gin.Context, delivery *models.Delivery, kind string, file io.Reader, contentType string) (string, error) {
	if h.S3Uploader == nil {
		return "", fmt.Errorf("S3 uploader is not configured")
	}

	// Đọc toàn bộ file để vừa băm vừa upload.
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(data)

	objectKey := fmt.Sprintf("proofs/%s/%s-%s.jpg", delivery.ID, kind, uuid.New().String()[:8])
	url, err := h.S3Uploader.UploadFile(c.Request.Context(), bytes.NewReader(data), objectKey, contentType)
	if err != nil {
		return "", err
	}

	proof := &models.DeliveryProof{
		DeliveryID: delivery.ID,
		ShipmentID: delivery.ShipmentID,
		Kind:       kind,
		PhotoURL:   url,
		PhotoHash:  hex.EncodeToString(hash[:]),
		UploadedBy: c.GetString("user_id"),
	}
	if _, err := h.Proofs.Create(c.Request.Context(), proof); err != nil {
		return "", err
	}
	return url, nil
}

// GetDeliveryProofs liệt kê ảnh minh chứng của một delivery.
func (h *DeliveryHandler) GetDeliveryProofs(c *gin.Context) {
	proofs, err := h.Proofs.ListByDelivery(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, proofs)
}
