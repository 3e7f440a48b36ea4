package service

import (
	"context"
	"sync"
	"testing"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"
	"fasttrack-logistics-api-server/internal/store/memory"

	"github.com/stretchr/testify/require"
)

func seedShipment(t *testing.T, st *store.Store, tracking string) *models.Shipment {
	t.Helper()
	sh := &models.Shipment{
		TrackingNumber:  tracking,
		SenderName:      "Alice",
		ReceiverName:    "Bob",
		ReceiverAddress: "2 Receiver Ave",
		DeliveryStatus:  models.ShipmentPending,
	}
	_, err := st.Shipments.Create(context.Background(), sh)
	require.NoError(t, err)
	return sh
}

func seedPersonnel(t *testing.T, st *store.Store, license string, status models.AvailabilityStatus) *models.DeliveryPersonnel {
	t.Helper()
	p := &models.DeliveryPersonnel{
		Name:               "Driver " + license,
		PersonnelType:      models.TypeDriver,
		LicenseNumber:      license,
		AvailabilityStatus: status,
	}
	_, err := st.Personnel.Create(context.Background(), p)
	require.NoError(t, err)
	return p
}

func newTestAssigner(st *store.Store) *Assigner {
	notifier := &NotificationService{Store: st.Notifications}
	return NewAssigner(st.Shipments, st.Personnel, st.Deliveries, notifier)
}

func TestAssignCreatesDeliveryAndUpdatesStatuses(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	p := seedPersonnel(t, st, "LIC-1", models.PersonnelAvailable)

	delivery, err := newTestAssigner(st).Assign(ctx, sh.ID, p.ID)
	require.NoError(t, err)
	require.NotEmpty(t, delivery.ID)
	require.Equal(t, sh.ID, delivery.ShipmentID)
	require.Equal(t, p.ID, delivery.PersonnelID)
	require.Equal(t, models.DeliveryScheduled, delivery.DeliveryStatus)
	require.Equal(t, "Auto-assigned route", delivery.RouteDetails)
	require.Equal(t, "Assigned automatically through system.", delivery.DeliveryNotes)
	require.NotNil(t, delivery.ScheduledPickupTime)

	gotShipment, err := st.Shipments.Get(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShipmentScheduled, gotShipment.DeliveryStatus)

	gotPersonnel, err := st.Personnel.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, models.PersonnelOnDuty, gotPersonnel.AvailabilityStatus)

	// Một thông báo cho tài xế, một cho khách hàng.
	personnelNotes, err := st.Notifications.ListByRecipientType(ctx, models.RecipientPersonnel)
	require.NoError(t, err)
	require.Len(t, personnelNotes, 1)
	require.Equal(t, p.ID, personnelNotes[0].RecipientID)

	customerNotes, err := st.Notifications.ListByRecipientType(ctx, models.RecipientCustomer)
	require.NoError(t, err)
	require.Len(t, customerNotes, 1)
	require.Equal(t, sh.ID, customerNotes[0].RecipientID)
	require.Empty(t, customerNotes[0].RelatedPersonnelID)
}

func TestAssignRejectsSecondDelivery(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	p1 := seedPersonnel(t, st, "LIC-1", models.PersonnelAvailable)
	p2 := seedPersonnel(t, st, "LIC-2", models.PersonnelAvailable)

	assigner := newTestAssigner(st)
	_, err := assigner.Assign(ctx, sh.ID, p1.ID)
	require.NoError(t, err)

	_, err = assigner.Assign(ctx, sh.ID, p2.ID)
	require.ErrorIs(t, err, store.ErrAlreadyAssigned)

	// Lần từ chối không để lại dấu vết nào.
	deliveries, err := st.Deliveries.ListByShipment(ctx, sh.ID)
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	require.Equal(t, p1.ID, deliveries[0].PersonnelID)

	gotP2, err := st.Personnel.Get(ctx, p2.ID)
	require.NoError(t, err)
	require.Equal(t, models.PersonnelAvailable, gotP2.AvailabilityStatus)
}

func TestAssignUnknownIDs(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	p := seedPersonnel(t, st, "LIC-1", models.PersonnelAvailable)
	assigner := newTestAssigner(st)

	_, err := assigner.Assign(ctx, "missing", p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = assigner.Assign(ctx, sh.ID, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Không có delivery nào được tạo, shipment vẫn Pending.
	deliveries, err := st.Deliveries.List(ctx)
	require.NoError(t, err)
	require.Empty(t, deliveries)

	gotShipment, err := st.Shipments.Get(ctx, sh.ID)
	require.NoError(t, err)
	require.Equal(t, models.ShipmentPending, gotShipment.DeliveryStatus)
}

func TestAssignDoesNotOverrideOnLeave(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	p := seedPersonnel(t, st, "LIC-1", models.PersonnelOnLeave)

	_, err := newTestAssigner(st).Assign(ctx, sh.ID, p.ID)
	require.NoError(t, err)

	got, err := st.Personnel.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, models.PersonnelOnLeave, got.AvailabilityStatus)
}

func TestAssignConcurrentSameShipment(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	sh := seedShipment(t, st, "FT-1001")
	p1 := seedPersonnel(t, st, "LIC-1", models.PersonnelAvailable)
	p2 := seedPersonnel(t, st, "LIC-2", models.PersonnelAvailable)
	assigner := newTestAssigner(st)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, pid := range []string{p1.ID, p2.ID} {
		wg.Add(1)
		go func(i int, pid string) {
			defer wg.Done()
			_, errs[i] = assigner.Assign(ctx, sh.ID, pid)
		}(i, pid)
	}
	wg.Wait()

	// Đúng một bên thắng.
	if errs[0] == nil {
		require.ErrorIs(t, errs[1], store.ErrAlreadyAssigned)
	} else {
		require.ErrorIs(t, errs[0], store.ErrAlreadyAssigned)
		require.NoError(t, errs[1])
	}

	deliveries, err := st.Deliveries.ListByShipment(ctx, sh.ID)
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
}

func TestPendingShipmentsAndAvailablePersonnel(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	pending := seedShipment(t, st, "FT-1001")
	scheduled := seedShipment(t, st, "FT-1002")
	scheduled.DeliveryStatus = models.ShipmentScheduled
	require.NoError(t, st.Shipments.Update(ctx, scheduled))

	available := seedPersonnel(t, st, "LIC-1", models.PersonnelAvailable)
	seedPersonnel(t, st, "LIC-2", models.PersonnelOnDuty)
	seedPersonnel(t, st, "LIC-3", models.PersonnelOnLeave)

	assigner := newTestAssigner(st)

	gotShipments, err := assigner.PendingShipments(ctx)
	require.NoError(t, err)
	require.Len(t, gotShipments, 1)
	require.Equal(t, pending.ID, gotShipments[0].ID)

	gotPersonnel, err := assigner.AvailablePersonnel(ctx)
	require.NoError(t, err)
	require.Len(t, gotPersonnel, 1)
	require.Equal(t, available.ID, gotPersonnel[0].ID)
}
