// internal/service/delivery.go
package service

import (
	"context"
	"log"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"
)

// DeliveryService là vòng đời của Delivery cộng với đồng bộ trạng thái một
// chiều Delivery -> Shipment. Chiều ngược lại không bao giờ tự động xảy ra,
// và xóa một delivery không khôi phục trạng thái shipment.
type DeliveryService struct {
	Deliveries store.DeliveryStore
	Shipments  store.ShipmentStore
	Notifier   *NotificationService // optional
}

// Schedule tạo một delivery mới. Shipment phải tồn tại; nếu shipment đang
// Pending nó được chuyển sang Scheduled.
func (s *DeliveryService) Schedule(ctx context.Context, d *models.Delivery) (*models.Delivery, error) {
	if d.ShipmentID == "" {
		return nil, &store.ValidationError{Field: "shipmentID", Reason: "must not be empty"}
	}
	if d.DeliveryStatus == "" {
		d.DeliveryStatus = models.DeliveryScheduled
	}
	if !d.DeliveryStatus.Valid() {
		return nil, &store.ValidationError{Field: "deliveryStatus", Reason: "unknown status " + string(d.DeliveryStatus)}
	}

	shipment, err := s.Shipments.Get(ctx, d.ShipmentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.Deliveries.Create(ctx, d); err != nil {
		return nil, err
	}

	if shipment.DeliveryStatus == models.ShipmentPending {
		shipment.DeliveryStatus = models.ShipmentScheduled
		if err := s.Shipments.Update(ctx, shipment); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Update ghi lại delivery và đẩy trạng thái của nó sang shipment nếu khác
// với trạng thái hiện tại (đã ánh xạ qua từ vựng của shipment).
func (s *DeliveryService) Update(ctx context.Context, d *models.Delivery) error {
	if !d.DeliveryStatus.Valid() {
		return &store.ValidationError{Field: "deliveryStatus", Reason: "unknown status " + string(d.DeliveryStatus)}
	}

	if err := s.Deliveries.Update(ctx, d); err != nil {
		return err
	}
	return s.syncShipmentStatus(ctx, d)
}

func (s *DeliveryService) syncShipmentStatus(ctx context.Context, d *models.Delivery) error {
	mapped, err := d.DeliveryStatus.ShipmentStatus()
	if err != nil {
		return err
	}

	shipment, err := s.Shipments.Get(ctx, d.ShipmentID)
	if err == store.ErrNotFound {
		// Delivery trỏ tới shipment đã bị xóa; không có gì để đồng bộ.
		return nil
	}
	if err != nil {
		return err
	}
	if shipment.DeliveryStatus == mapped {
		return nil
	}

	shipment.DeliveryStatus = mapped
	if mapped == models.ShipmentDelivered && d.ActualDeliveryTime != nil {
		shipment.ActualDeliveryTime = d.ActualDeliveryTime
	}
	if err := s.Shipments.Update(ctx, shipment); err != nil {
		return err
	}

	if s.Notifier != nil {
		msg := "Your shipment " + shipment.TrackingNumber + " is now " + string(mapped) + "."
		if err := s.Notifier.NotifyCustomer(ctx, shipment, msg, "Status Update"); err != nil {
			log.Printf("Failed to send status notification for shipment %s: %v", shipment.ID, err)
		}
	}
	return nil
}

// ConfirmPickup ghi nhận thời điểm lấy hàng thực tế và chuyển delivery sang
// PickedUp (shipment thành InTransit qua sync).
func (s *DeliveryService) ConfirmPickup(ctx context.Context, deliveryID string, at time.Time) (*models.Delivery, error) {
	d, err := s.Deliveries.Get(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	d.ActualPickupTime = &at
	d.DeliveryStatus = models.DeliveryPickedUp
	if err := s.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ConfirmDelivery ghi nhận thời điểm giao hàng thực tế và chuyển delivery
// sang Delivered (shipment nhận cả status lẫn actualDeliveryTime qua sync).
func (s *DeliveryService) ConfirmDelivery(ctx context.Context, deliveryID string, at time.Time) (*models.Delivery, error) {
	d, err := s.Deliveries.Get(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	d.ActualDeliveryTime = &at
	d.DeliveryStatus = models.DeliveryDelivered
	if err := s.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Remove xóa một delivery. Trạng thái shipment giữ nguyên — đây là hành vi
// chủ ý, không phải thiếu sót.
func (s *DeliveryService) Remove(ctx context.Context, deliveryID string) error {
	return s.Deliveries.Delete(ctx, deliveryID)
}
