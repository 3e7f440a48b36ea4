package service

import (
	"context"
	"testing"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"
	"fasttrack-logistics-api-server/internal/store/memory"

	"github.com/stretchr/testify/require"
)

func TestSendValidation(t *testing.T) {
	ctx := context.Background()
	svc := &NotificationService{Store: memory.New().Notifications}

	cases := []struct {
		name  string
		n     *models.Notification
		field string
	}{
		{"bad recipient type", &models.Notification{RecipientType: "Robot", RecipientID: "x", Message: "hi"}, "recipientType"},
		{"empty recipient", &models.Notification{RecipientType: models.RecipientCustomer, Message: "hi"}, "recipientID"},
		{"empty message", &models.Notification{RecipientType: models.RecipientCustomer, RecipientID: "x"}, "message"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Send(ctx, tc.n)
			var verr *store.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestSendCustomerVariantDropsPersonnelRef(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	svc := &NotificationService{Store: st.Notifications}

	n, err := svc.Send(ctx, &models.Notification{
		RecipientType:      models.RecipientCustomer,
		RecipientID:        "ship-1",
		RelatedPersonnelID: "per-1", // biến thể Customer không được mang trường này
		Message:            "On the way",
		IsRead:             true, // caller không được phép đặt sẵn
	})
	require.NoError(t, err)
	require.Empty(t, n.RelatedPersonnelID)
	require.Equal(t, "App", n.ContactMethod)
	require.False(t, n.IsRead)
	require.False(t, n.Timestamp.IsZero())

	stored, err := st.Notifications.Get(ctx, n.ID)
	require.NoError(t, err)
	require.Empty(t, stored.RelatedPersonnelID)
	require.False(t, stored.IsRead)
}

func TestSendPersonnelVariantKeepsPersonnelRef(t *testing.T) {
	ctx := context.Background()
	svc := &NotificationService{Store: memory.New().Notifications}

	n, err := svc.Send(ctx, &models.Notification{
		RecipientType:      models.RecipientPersonnel,
		RecipientID:        "per-1",
		RelatedShipmentID:  "ship-1",
		RelatedPersonnelID: "per-1",
		Message:            "New assignment",
		ContactMethod:      "SMS",
	})
	require.NoError(t, err)
	require.Equal(t, "per-1", n.RelatedPersonnelID)
	require.Equal(t, "SMS", n.ContactMethod)
}

func TestRecipientKey(t *testing.T) {
	require.Equal(t, "Personnel:per-1", RecipientKey(models.RecipientPersonnel, "per-1"))
	require.Equal(t, "Customer:ship-1", RecipientKey(models.RecipientCustomer, "ship-1"))
}
