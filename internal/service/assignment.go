// internal/service/assignment.go
package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"
)

// Assigner gắn một shipment đang chờ với một nhân viên giao hàng: tạo
// Delivery, chuyển shipment sang Scheduled và nhân viên sang OnDuty.
//
// Chuỗi ghi gồm ba bước không có transaction bao quanh; lỗi sau khi tạo
// Delivery được trả về caller và để lại trạng thái lệch (xem note trong
// Assign). Hai lời gọi Assign cho cùng shipment được tuần tự hóa bằng mutex
// theo shipment ID, nên bước kiểm tra "đã có delivery chưa" và bước tạo là
// một khối nguyên tử đối với assignment.
type Assigner struct {
	Shipments  store.ShipmentStore
	Personnel  store.PersonnelStore
	Deliveries store.DeliveryStore
	Notifier   *NotificationService // optional

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewAssigner(s store.ShipmentStore, p store.PersonnelStore, d store.DeliveryStore, n *NotificationService) *Assigner {
	return &Assigner{
		Shipments:  s,
		Personnel:  p,
		Deliveries: d,
		Notifier:   n,
		locks:      make(map[string]*sync.Mutex),
	}
}

func (a *Assigner) shipmentLock(shipmentID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	l, ok := a.locks[shipmentID]
	if !ok {
		l = &sync.Mutex{}
		a.locks[shipmentID] = l
	}
	return l
}

// Assign binds one pending shipment to one available personnel and returns
// the created delivery.
//
// Failure modes: ErrNotFound when either ID does not resolve,
// ErrAlreadyAssigned when the shipment already has a delivery. On those no
// write happens. A storage failure after the delivery was created leaves the
// shipment/personnel statuses stale; that is surfaced, not rolled back.
func (a *Assigner) Assign(ctx context.Context, shipmentID, personnelID string) (*models.Delivery, error) {
	lock := a.shipmentLock(shipmentID)
	lock.Lock()
	defer lock.Unlock()

	shipment, err := a.Shipments.Get(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	personnel, err := a.Personnel.Get(ctx, personnelID)
	if err != nil {
		return nil, err
	}

	existing, err := a.Deliveries.ListByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, store.ErrAlreadyAssigned
	}

	now := time.Now()
	delivery := &models.Delivery{
		ShipmentID:            shipment.ID,
		PersonnelID:           personnel.ID,
		ScheduledPickupTime:   &now,
		ScheduledDeliveryTime: shipment.EstimatedDeliveryTime,
		DeliveryStatus:        models.DeliveryScheduled,
		RouteDetails:          "Auto-assigned route",
		DeliveryNotes:         "Assigned automatically through system.",
	}
	if _, err := a.Deliveries.Create(ctx, delivery); err != nil {
		return nil, err
	}

	shipment.DeliveryStatus = models.ShipmentScheduled
	if err := a.Shipments.Update(ctx, shipment); err != nil {
		return nil, fmt.Errorf("delivery %s created but shipment update failed: %w", delivery.ID, err)
	}

	// Không ghi đè OnLeave/Unavailable: chỉ nhân viên Available mới chuyển
	// sang OnDuty.
	if personnel.AvailabilityStatus == models.PersonnelAvailable {
		personnel.AvailabilityStatus = models.PersonnelOnDuty
		if err := a.Personnel.Update(ctx, personnel); err != nil {
			return nil, fmt.Errorf("delivery %s created but personnel update failed: %w", delivery.ID, err)
		}
	}

	a.notifyAssigned(ctx, shipment, personnel)
	return delivery, nil
}

func (a *Assigner) notifyAssigned(ctx context.Context, shipment *models.Shipment, personnel *models.DeliveryPersonnel) {
	if a.Notifier == nil {
		return
	}
	msg := fmt.Sprintf("You have been assigned to shipment %s.", shipment.TrackingNumber)
	if err := a.Notifier.NotifyPersonnel(ctx, personnel.ID, shipment.ID, msg, "Assignment"); err != nil {
		log.Printf("Failed to send assignment notification to personnel %s: %v", personnel.ID, err)
	}
	msg = fmt.Sprintf("Your shipment %s has been scheduled for delivery.", shipment.TrackingNumber)
	if err := a.Notifier.NotifyCustomer(ctx, shipment, msg, "Status Update"); err != nil {
		log.Printf("Failed to send assignment notification for shipment %s: %v", shipment.ID, err)
	}
}

// PendingShipments liệt kê các shipment chưa được phân công (status Pending).
func (a *Assigner) PendingShipments(ctx context.Context) ([]models.Shipment, error) {
	all, err := a.Shipments.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]models.Shipment, 0)
	for _, s := range all {
		if s.DeliveryStatus == models.ShipmentPending {
			pending = append(pending, s)
		}
	}
	return pending, nil
}

// AvailablePersonnel liệt kê nhân viên đang ở trạng thái Available.
func (a *Assigner) AvailablePersonnel(ctx context.Context) ([]models.DeliveryPersonnel, error) {
	all, err := a.Personnel.List(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]models.DeliveryPersonnel, 0)
	for _, p := range all {
		if p.AvailabilityStatus == models.PersonnelAvailable {
			available = append(available, p)
		}
	}
	return available, nil
}
