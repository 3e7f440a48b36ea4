// internal/models/shipment.go
package models

import "time"

// Shipment là một kiện hàng được theo dõi bằng tracking number duy nhất.
type Shipment struct {
	ID                    string         `bson:"_id,omitempty" json:"id"`
	TrackingNumber        string         `bson:"trackingNumber" json:"trackingNumber"`
	SenderName            string         `bson:"senderName" json:"senderName"`
	SenderAddress         string         `bson:"senderAddress" json:"senderAddress"`
	SenderContact         string         `bson:"senderContact" json:"senderContact"`
	ReceiverName          string         `bson:"receiverName" json:"receiverName"`
	ReceiverAddress       string         `bson:"receiverAddress" json:"receiverAddress"`
	ReceiverContact       string         `bson:"receiverContact" json:"receiverContact"`
	PackageContents       string         `bson:"packageContents" json:"packageContents"`
	Weight                float64        `bson:"weight" json:"weight"` // kg
	Dimensions            string         `bson:"dimensions" json:"dimensions"`
	DeliveryStatus        ShipmentStatus `bson:"deliveryStatus" json:"deliveryStatus"`
	CurrentLocation       string         `bson:"currentLocation" json:"currentLocation"`
	EstimatedDeliveryTime *time.Time     `bson:"estimatedDeliveryTime,omitempty" json:"estimatedDeliveryTime,omitempty"`
	ActualDeliveryTime    *time.Time     `bson:"actualDeliveryTime,omitempty" json:"actualDeliveryTime,omitempty"`
	SpecialInstructions   string         `bson:"specialInstructions" json:"specialInstructions"`
	CreatedAt             time.Time      `bson:"createdAt" json:"createdAt"` // set once by the store
}
