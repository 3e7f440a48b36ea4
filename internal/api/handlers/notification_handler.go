// internal/api/handlers/notification_handler.go
package handlers

import (
	"net/http"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/service"
	"fasttrack-logistics-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Service       *service.NotificationService
	Notifications store.NotificationStore
}

type SendNotificationRequest struct {
	RecipientType      string `json:"recipientType" binding:"required"`
	RecipientID        string `json:"recipientID" binding:"required"`
	RelatedShipmentID  string `json:"relatedShipmentID"`
	RelatedPersonnelID string `json:"relatedPersonnelID"`
	Message            string `json:"message" binding:"required"`
	NotificationType   string `json:"notificationType"`
	ContactMethod      string `json:"contactMethod"`
}

// SendNotification gửi một thông báo thủ công.
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification, err := h.Service.Send(c.Request.Context(), &models.Notification{
		RecipientType:      models.RecipientType(req.RecipientType),
		RecipientID:        req.RecipientID,
		RelatedShipmentID:  req.RelatedShipmentID,
		RelatedPersonnelID: req.RelatedPersonnelID,
		Message:            req.Message,
		NotificationType:   req.NotificationType,
		ContactMethod:      req.ContactMethod,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

// GetNotifications liệt kê thông báo, lọc theo ?recipientType= nếu có.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	recipientType := c.Query("recipientType")

	var (
		notifications []models.Notification
		err           error
	)
	if recipientType != "" {
		t := models.RecipientType(recipientType)
		if !t.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "recipientType must be Customer or Personnel"})
			return
		}
		notifications, err = h.Notifications.ListByRecipientType(c.Request.Context(), t)
	} else {
		notifications, err = h.Notifications.List(c.Request.Context())
	}
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

type MarkReadRequest struct {
	IsRead *bool `json:"isRead" binding:"required"`
}

// MarkNotificationRead đổi cờ isRead — trường duy nhất được phép thay đổi.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Notifications.MarkRead(c.Request.Context(), c.Param("id"), *req.IsRead); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification updated"})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.Notifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}
