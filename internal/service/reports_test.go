package service

import (
	"context"
	"testing"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"
	"fasttrack-logistics-api-server/internal/store/memory"

	"github.com/stretchr/testify/require"
)

// fixedShipments cho phép kiểm soát CreatedAt, thứ mà store gán khi tạo.
type fixedShipments struct {
	store.ShipmentStore
	items []models.Shipment
}

func (f fixedShipments) List(context.Context) ([]models.Shipment, error) {
	return f.items, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestMonthlyVolume(t *testing.T) {
	ctx := context.Background()
	shipments := fixedShipments{items: []models.Shipment{
		{ID: "1", CreatedAt: day(2024, time.January, 10)},
		{ID: "2", CreatedAt: day(2024, time.January, 20)},
		{ID: "3", CreatedAt: day(2024, time.February, 5)},
		{ID: "4", CreatedAt: day(2023, time.December, 31)}, // ngoài khoảng
	}}
	r := &Reports{Shipments: shipments}

	months, err := r.MonthlyVolume(ctx, day(2024, time.January, 1), day(2024, time.February, 28))
	require.NoError(t, err)
	require.Equal(t, []MonthCount{
		{Month: "2024-01", Count: 2},
		{Month: "2024-02", Count: 1},
	}, months)
}

func TestMonthlyVolumeBoundaryDaysInclusive(t *testing.T) {
	ctx := context.Background()
	// Tạo lúc 23:00 của ngày cuối khoảng vẫn được tính: so sánh theo ngày
	// lịch, không theo thời điểm.
	late := time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC)
	shipments := fixedShipments{items: []models.Shipment{
		{ID: "1", CreatedAt: day(2024, time.March, 1)},
		{ID: "2", CreatedAt: late},
	}}
	r := &Reports{Shipments: shipments}

	months, err := r.MonthlyVolume(ctx, day(2024, time.March, 1), day(2024, time.March, 31))
	require.NoError(t, err)
	require.Equal(t, []MonthCount{{Month: "2024-03", Count: 2}}, months)
}

func TestDeliveryPerformance(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	estimate := time.Now()
	mkShipment := func(tracking string, withEstimate bool) *models.Shipment {
		sh := &models.Shipment{
			TrackingNumber: tracking,
			DeliveryStatus: models.ShipmentDelivered,
		}
		if withEstimate {
			est := estimate
			sh.EstimatedDeliveryTime = &est
		}
		_, err := st.Shipments.Create(ctx, sh)
		require.NoError(t, err)
		return sh
	}
	p := seedPersonnel(t, st, "LIC-1", models.PersonnelOnDuty)

	mkDelivery := func(shipmentID string, pickup, delivered time.Time) {
		_, err := st.Deliveries.Create(ctx, &models.Delivery{
			ShipmentID:         shipmentID,
			PersonnelID:        p.ID,
			ActualPickupTime:   &pickup,
			ActualDeliveryTime: &delivered,
			DeliveryStatus:     models.DeliveryDelivered,
		})
		require.NoError(t, err)
	}

	// 20 phút sau ước tính: trong khoảng ân hạn 30 phút, vẫn đúng giờ.
	onTime := mkShipment("FT-ON", true)
	mkDelivery(onTime.ID, estimate.Add(-time.Hour), estimate.Add(20*time.Minute))

	// 40 phút sau ước tính: trễ.
	lateShipment := mkShipment("FT-LATE", true)
	mkDelivery(lateShipment.ID, estimate.Add(-time.Hour), estimate.Add(40*time.Minute))

	// Không có ước tính: xuất hiện trong báo cáo nhưng không vào mẫu số.
	noEstimate := mkShipment("FT-NOEST", false)
	mkDelivery(noEstimate.ID, estimate.Add(-time.Hour), estimate)

	r := &Reports{Shipments: st.Shipments, Deliveries: st.Deliveries, Personnel: st.Personnel}
	report, err := r.DeliveryPerformance(ctx, estimate.AddDate(0, 0, -1), estimate.AddDate(0, 0, 1))
	require.NoError(t, err)

	require.Len(t, report.Rows, 3)
	require.Equal(t, 2, report.Considered)
	require.Equal(t, 1, report.OnTimeCount)
	require.Equal(t, 50.0, report.OnTimeRate)

	byTracking := make(map[string]PerformanceRow)
	for _, row := range report.Rows {
		byTracking[row.TrackingNumber] = row
	}
	require.NotNil(t, byTracking["FT-ON"].OnTime)
	require.True(t, *byTracking["FT-ON"].OnTime)
	require.NotNil(t, byTracking["FT-LATE"].OnTime)
	require.False(t, *byTracking["FT-LATE"].OnTime)
	require.Nil(t, byTracking["FT-NOEST"].OnTime)

	require.Equal(t, p.Name, byTracking["FT-ON"].PersonnelName)
	require.NotNil(t, byTracking["FT-ON"].DurationMinutes)
	require.EqualValues(t, 80, *byTracking["FT-ON"].DurationMinutes)
}

func TestDeliveryPerformanceEmptyRange(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	r := &Reports{Shipments: st.Shipments, Deliveries: st.Deliveries, Personnel: st.Personnel}

	report, err := r.DeliveryPerformance(ctx, day(2024, time.January, 1), day(2024, time.January, 31))
	require.NoError(t, err)
	require.Empty(t, report.Rows)
	require.Zero(t, report.Considered)
	require.Zero(t, report.OnTimeRate)
}

func TestPersonnelAvailability(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	seedPersonnel(t, st, "LIC-1", models.PersonnelAvailable)
	seedPersonnel(t, st, "LIC-2", models.PersonnelAvailable)
	seedPersonnel(t, st, "LIC-3", models.PersonnelOnDuty)
	seedPersonnel(t, st, "LIC-4", models.PersonnelOnLeave)

	r := &Reports{Personnel: st.Personnel}
	report, err := r.PersonnelAvailability(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, report.Total)
	require.Equal(t, 2, report.Counts[models.PersonnelAvailable])
	require.Equal(t, 1, report.Counts[models.PersonnelOnDuty])
	require.Equal(t, 1, report.Counts[models.PersonnelOnLeave])
	require.Equal(t, 0, report.Counts[models.PersonnelUnavailable])
	require.Len(t, report.Personnel, 4)
}

func TestStatusOverviewAlphabetical(t *testing.T) {
	ctx := context.Background()
	shipments := fixedShipments{items: []models.Shipment{
		{ID: "1", DeliveryStatus: models.ShipmentPending},
		{ID: "2", DeliveryStatus: models.ShipmentPending},
		{ID: "3", DeliveryStatus: models.ShipmentInTransit},
		{ID: "4", DeliveryStatus: models.ShipmentDelivered},
	}}
	r := &Reports{Shipments: shipments}

	statuses, err := r.StatusOverview(ctx)
	require.NoError(t, err)
	require.Equal(t, []StatusCount{
		{Status: models.ShipmentDelivered, Count: 1},
		{Status: models.ShipmentInTransit, Count: 1},
		{Status: models.ShipmentPending, Count: 2},
	}, statuses)
}
