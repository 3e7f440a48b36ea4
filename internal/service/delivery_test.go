package service

import (
	"context"
	"testing"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"
	"fasttrack-logistics-api-server/internal/store/memory"

	"github.com/stretchr/testify/require"
)

func newDeliveryService(st *store.Store) *DeliveryService {
	return &DeliveryService{
		Deliveries: st.Deliveries,
		Shipments:  st.Shipments,
		Notifier:   &NotificationService{Store: st.Notifications},
	}
}

func TestScheduleMovesPendingShipment(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	svc := newDeliveryService(st)

	d, err := svc.Schedule(ctx, &models.Delivery{ShipmentID: sh.ID})
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)
	require.Equal(t, models.DeliveryScheduled, d.DeliveryStatus)

	got, err := st.Shipments.Get(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShipmentScheduled, got.DeliveryStatus)
}

func TestScheduleValidation(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	svc := newDeliveryService(st)

	_, err := svc.Schedule(ctx, &models.Delivery{})
	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "shipmentID", verr.Field)

	_, err = svc.Schedule(ctx, &models.Delivery{ShipmentID: "missing"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdatePropagatesStatusToShipment(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	svc := newDeliveryService(st)

	d, err := svc.Schedule(ctx, &models.Delivery{ShipmentID: sh.ID})
	require.NoError(t, err)

	// PickedUp không có trong từ vựng của shipment: phải ánh xạ thành InTransit.
	d.DeliveryStatus = models.DeliveryPickedUp
	require.NoError(t, svc.Update(ctx, d))

	got, err := st.Shipments.Get(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShipmentInTransit, got.DeliveryStatus)

	// Khách hàng được báo về thay đổi trạng thái.
	notes, err := st.Notifications.ListByRecipientType(ctx, models.RecipientCustomer)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, sh.ID, notes[0].RecipientID)
}

func TestUpdateSkipsSyncWhenStatusUnchanged(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	svc := newDeliveryService(st)

	d, err := svc.Schedule(ctx, &models.Delivery{ShipmentID: sh.ID})
	require.NoError(t, err)

	// Shipment đã Scheduled; update delivery với cùng trạng thái thì không có
	// thông báo nào được gửi thêm.
	d.DeliveryNotes = "Traffic on route"
	require.NoError(t, svc.Update(ctx, d))

	notes, err := st.Notifications.List(ctx)
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestUpdateToleratesDeletedShipment(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	svc := newDeliveryService(st)

	d, err := svc.Schedule(ctx, &models.Delivery{ShipmentID: sh.ID})
	require.NoError(t, err)
	require.NoError(t, st.Shipments.Delete(ctx, sh.ID))

	d.DeliveryStatus = models.DeliveryInTransit
	require.NoError(t, svc.Update(ctx, d))
}

func TestConfirmPickupAndDelivery(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	svc := newDeliveryService(st)

	d, err := svc.Schedule(ctx, &models.Delivery{ShipmentID: sh.ID})
	require.NoError(t, err)

	pickupAt := time.Now()
	d, err = svc.ConfirmPickup(ctx, d.ID, pickupAt)
	require.NoError(t, err)
	require.Equal(t, models.DeliveryPickedUp, d.DeliveryStatus)
	require.NotNil(t, d.ActualPickupTime)

	inTransit, err := st.Shipments.Get(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShipmentInTransit, inTransit.DeliveryStatus)

	deliveredAt := pickupAt.Add(45 * time.Minute)
	d, err = svc.ConfirmDelivery(ctx, d.ID, deliveredAt)
	require.NoError(t, err)
	require.Equal(t, models.DeliveryDelivered, d.DeliveryStatus)

	delivered, err := st.Shipments.Get(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShipmentDelivered, delivered.DeliveryStatus)
	// Mốc giao hàng thực tế được chép sang shipment.
	require.NotNil(t, delivered.ActualDeliveryTime)
	require.True(t, delivered.ActualDeliveryTime.Equal(deliveredAt))
}

func TestRemoveDoesNotRevertShipment(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	svc := newDeliveryService(st)

	d, err := svc.Schedule(ctx, &models.Delivery{ShipmentID: sh.ID})
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, d.ID))

	_, err = st.Deliveries.Get(ctx, d.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Shipment giữ nguyên Scheduled — xóa delivery không khôi phục trạng thái.
	got, err := st.Shipments.Get(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShipmentScheduled, got.DeliveryStatus)
}
