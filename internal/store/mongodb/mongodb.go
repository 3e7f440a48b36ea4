// internal/store/mongodb/mongodb.go
package mongodb

import (
	"context"

	"fasttrack-logistics-api-server/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Tên các collection, giữ theo schema của hệ thống cũ.
const (
	colShipments     = "shipments"
	colPersonnel     = "delivery_personnel"
	colDeliveries    = "deliveries"
	colNotifications = "notifications"
	colProofs        = "delivery_proofs"
	colUsers         = "users"
)

// New builds a store.Store backed by the given Mongo database.
// EnsureIndexes must have been called once at startup so that the unique-key
// guarantees (tracking number, license number, email) hold.
func New(db *mongo.Database) *store.Store {
	return &store.Store{
		Shipments:     &shipmentStore{col: db.Collection(colShipments)},
		Personnel:     &personnelStore{col: db.Collection(colPersonnel)},
		Deliveries:    &deliveryStore{col: db.Collection(colDeliveries)},
		Notifications: &notificationStore{col: db.Collection(colNotifications)},
		Proofs:        &proofStore{col: db.Collection(colProofs)},
		Users:         &userStore{col: db.Collection(colUsers)},
	}
}

// EnsureIndexes tạo các unique index mà tầng store dựa vào để trả ErrConflict.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(colShipments).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "trackingNumber", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(colPersonnel).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "licenseNumber", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(colDeliveries).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "shipmentID", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(colNotifications).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "recipientType", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(colUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	return err
}

func newID() string { return primitive.NewObjectID().Hex() }

// mapWriteErr chuyển lỗi ghi của driver sang taxonomy của store.
func mapWriteErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrConflict
	}
	return &store.StorageError{Op: op, Err: err}
}

func mapReadErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if err == mongo.ErrNoDocuments {
		return store.ErrNotFound
	}
	return &store.StorageError{Op: op, Err: err}
}
