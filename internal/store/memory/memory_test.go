package memory

import (
	"context"
	"testing"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"

	"github.com/stretchr/testify/require"
)

func newShipment(tracking string) *models.Shipment {
	return &models.Shipment{
		TrackingNumber:  tracking,
		SenderName:      "Alice",
		SenderAddress:   "1 Sender St",
		ReceiverName:    "Bob",
		ReceiverAddress: "2 Receiver Ave",
		PackageContents: "Books",
		Weight:          1.5,
		DeliveryStatus:  models.ShipmentPending,
	}
}

func TestShipmentCRUD(t *testing.T) {
	ctx := context.Background()
	st := New()

	id, err := st.Shipments.Create(ctx, newShipment("FT-1001"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := st.Shipments.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "FT-1001", got.TrackingNumber)
	require.False(t, got.CreatedAt.IsZero())

	byTracking, err := st.Shipments.GetByTrackingNumber(ctx, "FT-1001")
	require.NoError(t, err)
	require.Equal(t, id, byTracking.ID)

	got.CurrentLocation = "Hub A"
	require.NoError(t, st.Shipments.Update(ctx, got))

	updated, err := st.Shipments.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Hub A", updated.CurrentLocation)

	require.NoError(t, st.Shipments.Delete(ctx, id))
	_, err = st.Shipments.Get(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, st.Shipments.Delete(ctx, id), store.ErrNotFound)
}

func TestShipmentTrackingNumberConflict(t *testing.T) {
	ctx := context.Background()
	st := New()

	_, err := st.Shipments.Create(ctx, newShipment("FT-1001"))
	require.NoError(t, err)

	_, err = st.Shipments.Create(ctx, newShipment("FT-1001"))
	require.ErrorIs(t, err, store.ErrConflict)

	id2, err := st.Shipments.Create(ctx, newShipment("FT-1002"))
	require.NoError(t, err)

	// Update cũng không được phép chiếm tracking number của shipment khác.
	other, err := st.Shipments.Get(ctx, id2)
	require.NoError(t, err)
	other.TrackingNumber = "FT-1001"
	require.ErrorIs(t, st.Shipments.Update(ctx, other), store.ErrConflict)

	unchanged, err := st.Shipments.Get(ctx, id2)
	require.NoError(t, err)
	require.Equal(t, "FT-1002", unchanged.TrackingNumber)
}

func TestShipmentCreatedAtImmutable(t *testing.T) {
	ctx := context.Background()
	st := New()

	id, err := st.Shipments.Create(ctx, newShipment("FT-1001"))
	require.NoError(t, err)

	original, err := st.Shipments.Get(ctx, id)
	require.NoError(t, err)

	tampered := *original
	tampered.CreatedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, st.Shipments.Update(ctx, &tampered))

	after, err := st.Shipments.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, after.CreatedAt.Equal(original.CreatedAt))
}

func TestShipmentReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	st := New()

	est := time.Now().Add(24 * time.Hour)
	sh := newShipment("FT-1001")
	sh.EstimatedDeliveryTime = &est
	id, err := st.Shipments.Create(ctx, sh)
	require.NoError(t, err)

	first, err := st.Shipments.Get(ctx, id)
	require.NoError(t, err)
	first.SenderName = "Mallory"
	*first.EstimatedDeliveryTime = first.EstimatedDeliveryTime.Add(72 * time.Hour)

	second, err := st.Shipments.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Alice", second.SenderName)
	require.True(t, second.EstimatedDeliveryTime.Equal(est))
}

func TestPersonnelLicenseConflict(t *testing.T) {
	ctx := context.Background()
	st := New()

	_, err := st.Personnel.Create(ctx, &models.DeliveryPersonnel{
		Name:               "Driver One",
		PersonnelType:      models.TypeDriver,
		LicenseNumber:      "LIC-1",
		AvailabilityStatus: models.PersonnelAvailable,
	})
	require.NoError(t, err)

	_, err = st.Personnel.Create(ctx, &models.DeliveryPersonnel{
		Name:               "Driver Two",
		PersonnelType:      models.TypeDriver,
		LicenseNumber:      "LIC-1",
		AvailabilityStatus: models.PersonnelAvailable,
	})
	require.ErrorIs(t, err, store.ErrConflict)
}

func TestDeliveryListFilters(t *testing.T) {
	ctx := context.Background()
	st := New()

	mk := func(shipmentID, personnelID string) {
		_, err := st.Deliveries.Create(ctx, &models.Delivery{
			ShipmentID:     shipmentID,
			PersonnelID:    personnelID,
			DeliveryStatus: models.DeliveryScheduled,
		})
		require.NoError(t, err)
	}
	mk("ship-1", "per-1")
	mk("ship-1", "per-2")
	mk("ship-2", "per-1")

	byShipment, err := st.Deliveries.ListByShipment(ctx, "ship-1")
	require.NoError(t, err)
	require.Len(t, byShipment, 2)

	byPersonnel, err := st.Deliveries.ListByPersonnel(ctx, "per-1")
	require.NoError(t, err)
	require.Len(t, byPersonnel, 2)

	none, err := st.Deliveries.ListByShipment(ctx, "ship-3")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestNotificationOrderingAndMarkRead(t *testing.T) {
	ctx := context.Background()
	st := New()

	ids := make([]string, 0, 3)
	for _, msg := range []string{"first", "second", "third"} {
		id, err := st.Notifications.Create(ctx, &models.Notification{
			RecipientType: models.RecipientPersonnel,
			RecipientID:   "per-1",
			Message:       msg,
		})
		require.NoError(t, err)
		ids = append(ids, id)
		time.Sleep(2 * time.Millisecond) // timestamp tách biệt
	}

	list, err := st.Notifications.ListByRecipientType(ctx, models.RecipientPersonnel)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Mới nhất trước.
	require.Equal(t, "third", list[0].Message)
	require.Equal(t, "first", list[2].Message)

	require.NoError(t, st.Notifications.MarkRead(ctx, ids[0], true))
	n, err := st.Notifications.Get(ctx, ids[0])
	require.NoError(t, err)
	require.True(t, n.IsRead)
	// MarkRead không đụng vào timestamp.
	require.False(t, n.Timestamp.IsZero())

	require.ErrorIs(t, st.Notifications.MarkRead(ctx, "missing", true), store.ErrNotFound)
}

func TestUserEmailConflict(t *testing.T) {
	ctx := context.Background()
	st := New()

	_, err := st.Users.Create(ctx, &models.User{Email: "a@b.c", Name: "A", Role: "admin"})
	require.NoError(t, err)
	_, err = st.Users.Create(ctx, &models.User{Email: "a@b.c", Name: "B", Role: "driver"})
	require.ErrorIs(t, err, store.ErrConflict)

	u, err := st.Users.GetByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	require.Equal(t, "A", u.Name)
}
