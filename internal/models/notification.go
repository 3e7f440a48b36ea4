// internal/models/notification.go
package models

import "time"

// Notification là một bản ghi thông báo, phân biệt bởi RecipientType.
//
// Với RecipientType == Customer: RecipientID là shipment ID đại diện cho khách
// hàng, RelatedPersonnelID luôn rỗng. Với RecipientType == Personnel:
// RecipientID là personnel ID và RelatedPersonnelID có thể được đặt thêm.
// Timestamp được gán một lần khi tạo; IsRead là trường duy nhất được phép
// thay đổi sau đó.
type Notification struct {
	ID                 string        `bson:"_id,omitempty" json:"id"`
	RecipientType      RecipientType `bson:"recipientType" json:"recipientType"`
	RecipientID        string        `bson:"recipientID" json:"recipientID"`
	RelatedShipmentID  string        `bson:"relatedShipmentID,omitempty" json:"relatedShipmentID,omitempty"`
	RelatedPersonnelID string        `bson:"relatedPersonnelID,omitempty" json:"relatedPersonnelID,omitempty"`
	Message            string        `bson:"message" json:"message"`
	NotificationType   string        `bson:"notificationType" json:"notificationType"` // free-form tag, e.g. "Status Update"
	Timestamp          time.Time     `bson:"timestamp" json:"timestamp"`
	IsRead             bool          `bson:"isRead" json:"isRead"`
	ContactMethod      string        `bson:"contactMethod" json:"contactMethod"` // "App", "Email", "SMS"
}
