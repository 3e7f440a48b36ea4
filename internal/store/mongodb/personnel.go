// internal/store/mongodb/personnel.go
package mongodb

import (
	"context"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type personnelStore struct {
	col *mongo.Collection
}

func (s *personnelStore) Create(ctx context.Context, p *models.DeliveryPersonnel) (string, error) {
	p.ID = newID()
	p.CreatedAt = time.Now()

	if _, err := s.col.InsertOne(ctx, p); err != nil {
		p.ID = ""
		return "", mapWriteErr("insert personnel", err)
	}
	return p.ID, nil
}

func (s *personnelStore) Get(ctx context.Context, id string) (*models.DeliveryPersonnel, error) {
	var p models.DeliveryPersonnel
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, mapReadErr("find personnel", err)
	}
	return &p, nil
}

func (s *personnelStore) List(ctx context.Context) ([]models.DeliveryPersonnel, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, mapReadErr("list personnel", err)
	}
	defer cursor.Close(ctx)

	personnel := []models.DeliveryPersonnel{}
	if err := cursor.All(ctx, &personnel); err != nil {
		return nil, mapReadErr("decode personnel", err)
	}
	return personnel, nil
}

func (s *personnelStore) Update(ctx context.Context, p *models.DeliveryPersonnel) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": bson.M{
		"name":               p.Name,
		"contactInfo":        p.ContactInfo,
		"personnelType":      p.PersonnelType,
		"licenseNumber":      p.LicenseNumber,
		"vehicleDetails":     p.VehicleDetails,
		"availabilityStatus": p.AvailabilityStatus,
	}})
	if err != nil {
		return mapWriteErr("update personnel", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *personnelStore) Delete(ctx context.Context, id string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapWriteErr("delete personnel", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
