// internal/store/memory/memory.go
//
// Store trong bộ nhớ, dùng cho test và chế độ demo (chạy không cần MongoDB).
// Mọi phép đọc trả về bản sao độc lập; ID là uuid và không bao giờ tái sử dụng.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"

	"github.com/google/uuid"
)

// New builds a store.Store backed entirely by in-process maps.
func New() *store.Store {
	db := &database{
		shipments:     make(map[string]models.Shipment),
		personnel:     make(map[string]models.DeliveryPersonnel),
		deliveries:    make(map[string]models.Delivery),
		notifications: make(map[string]models.Notification),
		proofs:        make(map[string]models.DeliveryProof),
		users:         make(map[string]models.User),
	}
	return &store.Store{
		Shipments:     &shipmentStore{db},
		Personnel:     &personnelStore{db},
		Deliveries:    &deliveryStore{db},
		Notifications: &notificationStore{db},
		Proofs:        &proofStore{db},
		Users:         &userStore{db},
	}
}

type database struct {
	mu            sync.RWMutex
	shipments     map[string]models.Shipment
	personnel     map[string]models.DeliveryPersonnel
	deliveries    map[string]models.Delivery
	notifications map[string]models.Notification
	proofs        map[string]models.DeliveryProof
	users         map[string]models.User
}

func newID() string { return uuid.NewString() }

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneShipment(s models.Shipment) models.Shipment {
	s.EstimatedDeliveryTime = copyTime(s.EstimatedDeliveryTime)
	s.ActualDeliveryTime = copyTime(s.ActualDeliveryTime)
	return s
}

func cloneDelivery(d models.Delivery) models.Delivery {
	d.ScheduledPickupTime = copyTime(d.ScheduledPickupTime)
	d.ActualPickupTime = copyTime(d.ActualPickupTime)
	d.ScheduledDeliveryTime = copyTime(d.ScheduledDeliveryTime)
	d.ActualDeliveryTime = copyTime(d.ActualDeliveryTime)
	return d
}

// --- ShipmentStore ---

type shipmentStore struct{ db *database }

func (s *shipmentStore) Create(_ context.Context, sh *models.Shipment) (string, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.shipments {
		if existing.TrackingNumber == sh.TrackingNumber {
			return "", store.ErrConflict
		}
	}

	stored := cloneShipment(*sh)
	stored.ID = newID()
	stored.CreatedAt = time.Now()
	s.db.shipments[stored.ID] = stored

	sh.ID = stored.ID
	sh.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

func (s *shipmentStore) Get(_ context.Context, id string) (*models.Shipment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	sh, ok := s.db.shipments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := cloneShipment(sh)
	return &out, nil
}

func (s *shipmentStore) GetByTrackingNumber(_ context.Context, trackingNumber string) (*models.Shipment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, sh := range s.db.shipments {
		if sh.TrackingNumber == trackingNumber {
			out := cloneShipment(sh)
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *shipmentStore) List(_ context.Context) ([]models.Shipment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]models.Shipment, 0, len(s.db.shipments))
	for _, sh := range s.db.shipments {
		out = append(out, cloneShipment(sh))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *shipmentStore) Update(_ context.Context, sh *models.Shipment) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	current, ok := s.db.shipments[sh.ID]
	if !ok {
		return store.ErrNotFound
	}
	for id, other := range s.db.shipments {
		if id != sh.ID && other.TrackingNumber == sh.TrackingNumber {
			return store.ErrConflict
		}
	}

	stored := cloneShipment(*sh)
	stored.CreatedAt = current.CreatedAt // creation timestamp is immutable
	s.db.shipments[sh.ID] = stored
	return nil
}

func (s *shipmentStore) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.shipments[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.shipments, id)
	return nil
}

// --- PersonnelStore ---

type personnelStore struct{ db *database }

func (s *personnelStore) Create(_ context.Context, p *models.DeliveryPersonnel) (string, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.personnel {
		if existing.LicenseNumber == p.LicenseNumber {
			return "", store.ErrConflict
		}
	}

	stored := *p
	stored.ID = newID()
	stored.CreatedAt = time.Now()
	s.db.personnel[stored.ID] = stored

	p.ID = stored.ID
	p.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

func (s *personnelStore) Get(_ context.Context, id string) (*models.DeliveryPersonnel, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	p, ok := s.db.personnel[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := p
	return &out, nil
}

func (s *personnelStore) List(_ context.Context) ([]models.DeliveryPersonnel, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]models.DeliveryPersonnel, 0, len(s.db.personnel))
	for _, p := range s.db.personnel {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *personnelStore) Update(_ context.Context, p *models.DeliveryPersonnel) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	current, ok := s.db.personnel[p.ID]
	if !ok {
		return store.ErrNotFound
	}
	for id, other := range s.db.personnel {
		if id != p.ID && other.LicenseNumber == p.LicenseNumber {
			return store.ErrConflict
		}
	}

	stored := *p
	stored.CreatedAt = current.CreatedAt
	s.db.personnel[p.ID] = stored
	return nil
}

func (s *personnelStore) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.personnel[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.personnel, id)
	return nil
}

// --- DeliveryStore ---

type deliveryStore struct{ db *database }

func (s *deliveryStore) Create(_ context.Context, d *models.Delivery) (string, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	stored := cloneDelivery(*d)
	stored.ID = newID()
	stored.CreatedAt = time.Now()
	s.db.deliveries[stored.ID] = stored

	d.ID = stored.ID
	d.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

func (s *deliveryStore) Get(_ context.Context, id string) (*models.Delivery, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	d, ok := s.db.deliveries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := cloneDelivery(d)
	return &out, nil
}

func (s *deliveryStore) List(_ context.Context) ([]models.Delivery, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.listLocked(func(models.Delivery) bool { return true }), nil
}

func (s *deliveryStore) ListByShipment(_ context.Context, shipmentID string) ([]models.Delivery, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.listLocked(func(d models.Delivery) bool { return d.ShipmentID == shipmentID }), nil
}

func (s *deliveryStore) ListByPersonnel(_ context.Context, personnelID string) ([]models.Delivery, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.listLocked(func(d models.Delivery) bool { return d.PersonnelID == personnelID }), nil
}

func (s *deliveryStore) listLocked(keep func(models.Delivery) bool) []models.Delivery {
	out := make([]models.Delivery, 0)
	for _, d := range s.db.deliveries {
		if keep(d) {
			out = append(out, cloneDelivery(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *deliveryStore) Update(_ context.Context, d *models.Delivery) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	current, ok := s.db.deliveries[d.ID]
	if !ok {
		return store.ErrNotFound
	}

	stored := cloneDelivery(*d)
	stored.CreatedAt = current.CreatedAt
	s.db.deliveries[d.ID] = stored
	return nil
}

func (s *deliveryStore) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.deliveries[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.deliveries, id)
	return nil
}

// --- NotificationStore ---

type notificationStore struct{ db *database }

func (s *notificationStore) Create(_ context.Context, n *models.Notification) (string, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	stored := *n
	stored.ID = newID()
	stored.Timestamp = time.Now()
	s.db.notifications[stored.ID] = stored

	n.ID = stored.ID
	n.Timestamp = stored.Timestamp
	return stored.ID, nil
}

func (s *notificationStore) Get(_ context.Context, id string) (*models.Notification, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	n, ok := s.db.notifications[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := n
	return &out, nil
}

func (s *notificationStore) List(_ context.Context) ([]models.Notification, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.listLocked(func(models.Notification) bool { return true }), nil
}

func (s *notificationStore) ListByRecipientType(_ context.Context, t models.RecipientType) ([]models.Notification, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.listLocked(func(n models.Notification) bool { return n.RecipientType == t }), nil
}

func (s *notificationStore) listLocked(keep func(models.Notification) bool) []models.Notification {
	out := make([]models.Notification, 0)
	for _, n := range s.db.notifications {
		if keep(n) {
			out = append(out, n)
		}
	}
	// Mới nhất trước, trùng thời điểm thì so ID cho ổn định.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *notificationStore) MarkRead(_ context.Context, id string, read bool) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	n, ok := s.db.notifications[id]
	if !ok {
		return store.ErrNotFound
	}
	n.IsRead = read
	s.db.notifications[id] = n
	return nil
}

func (s *notificationStore) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.notifications[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.notifications, id)
	return nil
}

// --- ProofStore ---

type proofStore struct{ db *database }

func (s *proofStore) Create(_ context.Context, p *models.DeliveryProof) (string, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	stored := *p
	stored.ID = newID()
	stored.CreatedAt = time.Now()
	s.db.proofs[stored.ID] = stored

	p.ID = stored.ID
	p.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

func (s *proofStore) ListByDelivery(_ context.Context, deliveryID string) ([]models.DeliveryProof, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]models.DeliveryProof, 0)
	for _, p := range s.db.proofs {
		if p.DeliveryID == deliveryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- UserStore ---

type userStore struct{ db *database }

func (s *userStore) Create(_ context.Context, u *models.User) (string, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.users {
		if existing.Email == u.Email {
			return "", store.ErrConflict
		}
	}

	stored := *u
	stored.ID = newID()
	s.db.users[stored.ID] = stored

	u.ID = stored.ID
	return stored.ID, nil
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, u := range s.db.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) List(_ context.Context) ([]models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]models.User, 0, len(s.db.users))
	for _, u := range s.db.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
