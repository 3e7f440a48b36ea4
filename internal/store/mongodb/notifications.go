// internal/store/mongodb/notifications.go
package mongodb

import (
	"context"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type notificationStore struct {
	col *mongo.Collection
}

func (s *notificationStore) Create(ctx context.Context, n *models.Notification) (string, error) {
	n.ID = newID()
	n.Timestamp = time.Now()

	if _, err := s.col.InsertOne(ctx, n); err != nil {
		n.ID = ""
		return "", mapWriteErr("insert notification", err)
	}
	return n.ID, nil
}

func (s *notificationStore) Get(ctx context.Context, id string) (*models.Notification, error) {
	var n models.Notification
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		return nil, mapReadErr("find notification", err)
	}
	return &n, nil
}

func (s *notificationStore) List(ctx context.Context) ([]models.Notification, error) {
	return s.find(ctx, bson.M{})
}

func (s *notificationStore) ListByRecipientType(ctx context.Context, t models.RecipientType) ([]models.Notification, error) {
	return s.find(ctx, bson.M{"recipientType": t})
}

func (s *notificationStore) find(ctx context.Context, filter bson.M) ([]models.Notification, error) {
	// Mới nhất trước, giống "ORDER BY timestamp DESC" của hệ thống cũ.
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, mapReadErr("list notifications", err)
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, mapReadErr("decode notifications", err)
	}
	return notifications, nil
}

func (s *notificationStore) MarkRead(ctx context.Context, id string, read bool) error {
	// isRead là trường duy nhất được phép thay đổi sau khi tạo.
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isRead": read}})
	if err != nil {
		return mapWriteErr("mark notification read", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *notificationStore) Delete(ctx context.Context, id string) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapWriteErr("delete notification", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

type userStore struct {
	col *mongo.Collection
}

func (s *userStore) Create(ctx context.Context, u *models.User) (string, error) {
	u.ID = newID()
	if _, err := s.col.InsertOne(ctx, u); err != nil {
		u.ID = ""
		return "", mapWriteErr("insert user", err)
	}
	return u.ID, nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		return nil, mapReadErr("find user by email", err)
	}
	return &u, nil
}

func (s *userStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, mapReadErr("list users", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, mapReadErr("decode users", err)
	}
	return users, nil
}
