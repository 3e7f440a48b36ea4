package models

import "fmt"

// ShipmentStatus là trạng thái vòng đời của một lô hàng.
type ShipmentStatus string

const (
	ShipmentPending        ShipmentStatus = "Pending"
	ShipmentScheduled      ShipmentStatus = "Scheduled"
	ShipmentInTransit      ShipmentStatus = "InTransit"
	ShipmentOutForDelivery ShipmentStatus = "OutForDelivery"
	ShipmentDelivered      ShipmentStatus = "Delivered"
	ShipmentCanceled       ShipmentStatus = "Canceled"
	ShipmentFailed         ShipmentStatus = "Failed"
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentPending, ShipmentScheduled, ShipmentInTransit, ShipmentOutForDelivery,
		ShipmentDelivered, ShipmentCanceled, ShipmentFailed:
		return true
	}
	return false
}

// DeliveryStatus là trạng thái của một chuyến giao hàng.
type DeliveryStatus string

const (
	DeliveryScheduled      DeliveryStatus = "Scheduled"
	DeliveryPickedUp       DeliveryStatus = "PickedUp"
	DeliveryInTransit      DeliveryStatus = "InTransit"
	DeliveryOutForDelivery DeliveryStatus = "OutForDelivery"
	DeliveryDelivered      DeliveryStatus = "Delivered"
	DeliveryFailed         DeliveryStatus = "Failed"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryScheduled, DeliveryPickedUp, DeliveryInTransit, DeliveryOutForDelivery,
		DeliveryDelivered, DeliveryFailed:
		return true
	}
	return false
}

// ShipmentStatus maps a delivery status into the shipment vocabulary.
// The two vocabularies differ in exactly one value: "PickedUp" has no shipment
// counterpart and is reported as "InTransit". Unknown values are rejected
// instead of being copied onto the shipment verbatim.
func (s DeliveryStatus) ShipmentStatus() (ShipmentStatus, error) {
	switch s {
	case DeliveryScheduled:
		return ShipmentScheduled, nil
	case DeliveryPickedUp, DeliveryInTransit:
		return ShipmentInTransit, nil
	case DeliveryOutForDelivery:
		return ShipmentOutForDelivery, nil
	case DeliveryDelivered:
		return ShipmentDelivered, nil
	case DeliveryFailed:
		return ShipmentFailed, nil
	}
	return "", fmt.Errorf("delivery status %q has no shipment equivalent", string(s))
}

// AvailabilityStatus là trạng thái sẵn sàng của nhân viên giao hàng.
type AvailabilityStatus string

const (
	PersonnelAvailable   AvailabilityStatus = "Available"
	PersonnelOnDuty      AvailabilityStatus = "OnDuty"
	PersonnelOnLeave     AvailabilityStatus = "OnLeave"
	PersonnelUnavailable AvailabilityStatus = "Unavailable"
)

func (s AvailabilityStatus) Valid() bool {
	switch s {
	case PersonnelAvailable, PersonnelOnDuty, PersonnelOnLeave, PersonnelUnavailable:
		return true
	}
	return false
}

// PersonnelType phân loại nhân viên.
type PersonnelType string

const (
	TypeDriver        PersonnelType = "Driver"
	TypeCourier       PersonnelType = "Courier"
	TypeAdministrator PersonnelType = "Administrator"
)

func (t PersonnelType) Valid() bool {
	switch t {
	case TypeDriver, TypeCourier, TypeAdministrator:
		return true
	}
	return false
}

// RecipientType phân biệt hai biến thể của Notification.
type RecipientType string

const (
	RecipientCustomer  RecipientType = "Customer"
	RecipientPersonnel RecipientType = "Personnel"
)

func (t RecipientType) Valid() bool {
	return t == RecipientCustomer || t == RecipientPersonnel
}
