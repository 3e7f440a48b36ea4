// internal/store/mongodb/deliveries.go
package mongodb

import (
	"context"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type deliveryStore struct {
	col *mongo.Collection
}

func (s *deliveryStore) Create(ctx context.Context, d *models.Delivery) (string, error) {
	d.ID = newID()
	d.CreatedAt = time.Now()

	if _, err := s.col.InsertOne(ctx, d); err != nil {
		d.ID = ""
		return "", mapWriteErr("insert delivery", err)
	}
	return d.ID, nil
}

func (s *deliveryStore) Get(ctx context.Context, id string) (*models.Delivery, error) {
	var d models.Delivery
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		return nil, mapReadErr("find delivery", err)
	}
	return &d, nil
}

func (s *deliveryStore) List(ctx context.Context) ([]models.Delivery, error) {
	return s.find(ctx, bson.M{})
}

func (s *deliveryStore) ListByShipment(ctx context.Context, shipmentID string) ([]models.Delivery, error) {
	return s.find(ctx, bson.M{"shipmentID": shipmentID})
}

func (s *deliveryStore) ListByPersonnel(ctx context.Context, personnelID string) ([]models.Delivery, error) {
	return s.find(ctx, bson.M{"personnelID": personnelID})
}

func (s *deliveryStore) find(ctx context.Context, filter bson.M) ([]models.Delivery, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, mapReadErr("list deliveries", err)
	}
	defer cursor.Close(ctx)

	deliveries := []models.Delivery{}
	if err := cursor.All(ctx, &deliveries); err != nil {
		return nil, mapReadErr("decode deliveries", err)
	}
	return deliveries, nil
}

func (s *deliveryStore) Update(ctx context.Context, d *models.Delivery) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": d.ID}, bson.M{"$set": bson.M{
		"shipmentID":            d.ShipmentID,
		"personnelID":           d.PersonnelID,
		"scheduledPickupTime":   d.ScheduledPickupTime,
		"actualPickupTime":      d.ActualPickupTime,
		"scheduledDeliveryTime": d.ScheduledDeliveryTime,
		"actualDeliveryTime":    d.ActualDeliveryTime,
		"deliveryStatus":        d.DeliveryStatus,
		"routeDetails":          d.RouteDetails,
		"deliveryNotes":         d.DeliveryNotes,
	}})
	if err != nil {
		return mapWriteErr("update delivery", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *deliveryStore) Delete(ctx context.Context, id string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapWriteErr("delete delivery", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

type proofStore struct {
	col *mongo.Collection
}

func (s *proofStore) Create(ctx context.Context, p *models.DeliveryProof) (string, error) {
	p.ID = newID()
	p.CreatedAt = time.Now()

	if _, err := s.col.InsertOne(ctx, p); err != nil {
		p.ID = ""
		return "", mapWriteErr("insert delivery proof", err)
	}
	return p.ID, nil
}

func (s *proofStore) ListByDelivery(ctx context.Context, deliveryID string) ([]models.DeliveryProof, error) {
	cursor, err := s.col.Find(ctx, bson.M{"deliveryID": deliveryID})
	if err != nil {
		return nil, mapReadErr("list delivery proofs", err)
	}
	defer cursor.Close(ctx)

	proofs := []models.DeliveryProof{}
	if err := cursor.All(ctx, &proofs); err != nil {
		return nil, mapReadErr("decode delivery proofs", err)
	}
	return proofs, nil
}
