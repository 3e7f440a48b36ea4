// internal/store/mongodb/shipments.go
package mongodb

import (
	"context"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type shipmentStore struct {
	col *mongo.Collection
}

func (s *shipmentStore) Create(ctx context.Context, sh *models.Shipment) (string, error) {
	sh.ID = newID()
	sh.CreatedAt = time.Now()

	if _, err := s.col.InsertOne(ctx, sh); err != nil {
		sh.ID = ""
		return "", mapWriteErr("insert shipment", err)
	}
	return sh.ID, nil
}

func (s *shipmentStore) Get(ctx context.Context, id string) (*models.Shipment, error) {
	var sh models.Shipment
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&sh)
	if err != nil {
		return nil, mapReadErr("find shipment", err)
	}
	return &sh, nil
}

func (s *shipmentStore) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*models.Shipment, error) {
	var sh models.Shipment
	err := s.col.FindOne(ctx, bson.M{"trackingNumber": trackingNumber}).Decode(&sh)
	if err != nil {
		return nil, mapReadErr("find shipment by tracking number", err)
	}
	return &sh, nil
}

func (s *shipmentStore) List(ctx context.Context) ([]models.Shipment, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, mapReadErr("list shipments", err)
	}
	defer cursor.Close(ctx)

	shipments := []models.Shipment{}
	if err := cursor.All(ctx, &shipments); err != nil {
		return nil, mapReadErr("decode shipments", err)
	}
	return shipments, nil
}

func (s *shipmentStore) Update(ctx context.Context, sh *models.Shipment) error {
	// createdAt cố tình không nằm trong $set: mốc tạo là bất biến.
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": sh.ID}, bson.M{"$set": bson.M{
		"trackingNumber":        sh.TrackingNumber,
		"senderName":            sh.SenderName,
		"senderAddress":         sh.SenderAddress,
		"senderContact":         sh.SenderContact,
		"receiverName":          sh.ReceiverName,
		"receiverAddress":       sh.ReceiverAddress,
		"receiverContact":       sh.ReceiverContact,
		"packageContents":       sh.PackageContents,
		"weight":                sh.Weight,
		"dimensions":            sh.Dimensions,
		"deliveryStatus":        sh.DeliveryStatus,
		"currentLocation":       sh.CurrentLocation,
		"estimatedDeliveryTime": sh.EstimatedDeliveryTime,
		"actualDeliveryTime":    sh.ActualDeliveryTime,
		"specialInstructions":   sh.SpecialInstructions,
	}})
	if err != nil {
		return mapWriteErr("update shipment", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *shipmentStore) Delete(ctx context.Context, id string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapWriteErr("delete shipment", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
