package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeliveryStatusMapsToShipmentStatus(t *testing.T) {
	cases := map[DeliveryStatus]ShipmentStatus{
		DeliveryScheduled:      ShipmentScheduled,
		DeliveryPickedUp:       ShipmentInTransit, // PickedUp không có bên shipment
		DeliveryInTransit:      ShipmentInTransit,
		DeliveryOutForDelivery: ShipmentOutForDelivery,
		DeliveryDelivered:      ShipmentDelivered,
		DeliveryFailed:         ShipmentFailed,
	}
	for from, want := range cases {
		got, err := from.ShipmentStatus()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestUnknownDeliveryStatusRejected(t *testing.T) {
	_, err := DeliveryStatus("Lost").ShipmentStatus()
	require.Error(t, err)
}

func TestValidators(t *testing.T) {
	require.True(t, ShipmentPending.Valid())
	require.False(t, ShipmentStatus("Unknown").Valid())
	require.True(t, DeliveryPickedUp.Valid())
	require.False(t, DeliveryStatus("").Valid())
	require.True(t, PersonnelOnLeave.Valid())
	require.False(t, AvailabilityStatus("Busy").Valid())
	require.True(t, TypeCourier.Valid())
	require.False(t, PersonnelType("Pilot").Valid())
	require.True(t, RecipientCustomer.Valid())
	require.False(t, RecipientType("System").Valid())
}
