// internal/store/store.go
package store

import (
	"context"

	"fasttrack-logistics-api-server/internal/models"
)

// Các interface bên dưới là hợp đồng persistence của hệ thống. Mọi phép đọc
// trả về snapshot: caller có thể sửa entity nhận được mà không ảnh hưởng đến
// dữ liệu đã lưu cho tới khi gọi Update. Store không cung cấp transaction
// xuyên entity; tính nhất quán chéo (assignment, status sync) thuộc về tầng
// service.

type ShipmentStore interface {
	// Create gán ID và CreatedAt; trả về ErrConflict nếu trùng tracking number.
	Create(ctx context.Context, s *models.Shipment) (string, error)
	Get(ctx context.Context, id string) (*models.Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*models.Shipment, error)
	List(ctx context.Context) ([]models.Shipment, error)
	// Update trả về ErrNotFound nếu ID không tồn tại, ErrConflict nếu tracking
	// number mới trùng với shipment khác. CreatedAt không bao giờ bị ghi đè.
	Update(ctx context.Context, s *models.Shipment) error
	Delete(ctx context.Context, id string) error
}

type PersonnelStore interface {
	// Create trả về ErrConflict nếu trùng license number.
	Create(ctx context.Context, p *models.DeliveryPersonnel) (string, error)
	Get(ctx context.Context, id string) (*models.DeliveryPersonnel, error)
	List(ctx context.Context) ([]models.DeliveryPersonnel, error)
	Update(ctx context.Context, p *models.DeliveryPersonnel) error
	Delete(ctx context.Context, id string) error
}

type DeliveryStore interface {
	Create(ctx context.Context, d *models.Delivery) (string, error)
	Get(ctx context.Context, id string) (*models.Delivery, error)
	List(ctx context.Context) ([]models.Delivery, error)
	ListByShipment(ctx context.Context, shipmentID string) ([]models.Delivery, error)
	ListByPersonnel(ctx context.Context, personnelID string) ([]models.Delivery, error)
	Update(ctx context.Context, d *models.Delivery) error
	Delete(ctx context.Context, id string) error
}

type NotificationStore interface {
	// Create gán ID và Timestamp. Timestamp là bất biến sau đó.
	Create(ctx context.Context, n *models.Notification) (string, error)
	Get(ctx context.Context, id string) (*models.Notification, error)
	List(ctx context.Context) ([]models.Notification, error)
	// ListByRecipientType trả về thông báo mới nhất trước.
	ListByRecipientType(ctx context.Context, t models.RecipientType) ([]models.Notification, error)
	// MarkRead là phép ghi duy nhất được phép sau khi tạo.
	MarkRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error
}

type ProofStore interface {
	Create(ctx context.Context, p *models.DeliveryProof) (string, error)
	ListByDelivery(ctx context.Context, deliveryID string) ([]models.DeliveryProof, error)
}

type UserStore interface {
	// Create trả về ErrConflict nếu trùng email.
	Create(ctx context.Context, u *models.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// Store gom tất cả các collection của hệ thống.
type Store struct {
	Shipments     ShipmentStore
	Personnel     PersonnelStore
	Deliveries    DeliveryStore
	Notifications NotificationStore
	Proofs        ProofStore
	Users         UserStore
}
