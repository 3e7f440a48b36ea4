// internal/models/personnel.go
package models

import "time"

// DeliveryPersonnel là một tài xế / nhân viên giao hàng có thể được phân công.
type DeliveryPersonnel struct {
	ID                 string             `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	ContactInfo        string             `bson:"contactInfo" json:"contactInfo"`
	PersonnelType      PersonnelType      `bson:"personnelType" json:"personnelType"`
	LicenseNumber      string             `bson:"licenseNumber" json:"licenseNumber"` // unique
	VehicleDetails     string             `bson:"vehicleDetails" json:"vehicleDetails"`
	AvailabilityStatus AvailabilityStatus `bson:"availabilityStatus" json:"availabilityStatus"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
