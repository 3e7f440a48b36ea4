// internal/service/notification.go
package service

import (
	"context"
	"fmt"
	"log"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/socket"
	"fasttrack-logistics-api-server/internal/store"
)

// NotificationService ghi thông báo vào store và đẩy trực tiếp tới client
// đang online qua WebSocket hub. Hub là tùy chọn (nil trong test).
type NotificationService struct {
	Store store.NotificationStore
	Hub   *socket.Hub
}

// RecipientKey là key mà hub dùng để định tuyến một thông báo.
func RecipientKey(t models.RecipientType, recipientID string) string {
	return fmt.Sprintf("%s:%s", t, recipientID)
}

// Send validates and persists a notification, then pushes it to the recipient
// if they are connected. Push failures are logged, never returned: the record
// is already stored.
func (s *NotificationService) Send(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	if !n.RecipientType.Valid() {
		return nil, &store.ValidationError{Field: "recipientType", Reason: "must be Customer or Personnel"}
	}
	if n.RecipientID == "" {
		return nil, &store.ValidationError{Field: "recipientID", Reason: "must not be empty"}
	}
	if n.Message == "" {
		return nil, &store.ValidationError{Field: "message", Reason: "must not be empty"}
	}
	// Biến thể Customer không mang relatedPersonnelID.
	if n.RecipientType == models.RecipientCustomer {
		n.RelatedPersonnelID = ""
	}
	if n.ContactMethod == "" {
		n.ContactMethod = "App"
	}
	n.IsRead = false

	if _, err := s.Store.Create(ctx, n); err != nil {
		return nil, err
	}

	if s.Hub != nil {
		if err := s.Hub.SendJSON(RecipientKey(n.RecipientType, n.RecipientID), n); err != nil {
			log.Printf("Failed to push notification %s: %v", n.ID, err)
		}
	}
	return n, nil
}

// NotifyCustomer gửi thông báo tự động cho khách hàng của một shipment.
// Shipment ID được dùng làm đại diện cho khách hàng.
func (s *NotificationService) NotifyCustomer(ctx context.Context, shipment *models.Shipment, message, notificationType string) error {
	if shipment == nil {
		return nil
	}
	_, err := s.Send(ctx, &models.Notification{
		RecipientType:     models.RecipientCustomer,
		RecipientID:       shipment.ID,
		RelatedShipmentID: shipment.ID,
		Message:           message,
		NotificationType:  notificationType,
	})
	return err
}

// NotifyPersonnel gửi thông báo tự động cho một nhân viên giao hàng.
func (s *NotificationService) NotifyPersonnel(ctx context.Context, personnelID, relatedShipmentID, message, notificationType string) error {
	if personnelID == "" {
		return nil
	}
	_, err := s.Send(ctx, &models.Notification{
		RecipientType:     models.RecipientPersonnel,
		RecipientID:       personnelID,
		RelatedShipmentID: relatedShipmentID,
		Message:           message,
		NotificationType:  notificationType,
	})
	return err
}
