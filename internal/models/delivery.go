// internal/models/delivery.go
package models

import "time"

// Delivery gắn một Shipment với một Personnel và lịch lấy / giao hàng.
// PersonnelID rỗng nghĩa là chưa được phân công.
type Delivery struct {
	ID                    string         `bson:"_id,omitempty" json:"id"`
	ShipmentID            string         `bson:"shipmentID" json:"shipmentID"`
	PersonnelID           string         `bson:"personnelID,omitempty" json:"personnelID,omitempty"`
	ScheduledPickupTime   *time.Time     `bson:"scheduledPickupTime,omitempty" json:"scheduledPickupTime,omitempty"`
	ActualPickupTime      *time.Time     `bson:"actualPickupTime,omitempty" json:"actualPickupTime,omitempty"`
	ScheduledDeliveryTime *time.Time     `bson:"scheduledDeliveryTime,omitempty" json:"scheduledDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time     `bson:"actualDeliveryTime,omitempty" json:"actualDeliveryTime,omitempty"`
	DeliveryStatus        DeliveryStatus `bson:"deliveryStatus" json:"deliveryStatus"`
	RouteDetails          string         `bson:"routeDetails" json:"routeDetails"`
	DeliveryNotes         string         `bson:"deliveryNotes" json:"deliveryNotes"`
	CreatedAt             time.Time      `bson:"createdAt" json:"createdAt"`
}

// DeliveryProof là ảnh minh chứng lấy hàng hoặc giao hàng, lưu trên S3.
type DeliveryProof struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	DeliveryID string    `bson:"deliveryID" json:"deliveryID"`
	ShipmentID string    `bson:"shipmentID" json:"shipmentID"`
	Kind       string    `bson:"kind" json:"kind"` // "pickup" | "delivery"
	PhotoURL   string    `bson:"photoURL" json:"photoURL"`
	PhotoHash  string    `bson:"photoHash" json:"photoHash"`
	UploadedBy string    `bson:"uploadedBy" json:"uploadedBy"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
