// internal/service/reports.go
package service

import (
	"context"
	"math"
	"sort"
	"time"

	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"
)

// Khoảng ân hạn khi tính giao hàng đúng giờ.
const onTimeGrace = 30 * time.Minute

// Reports là các phép tính chỉ đọc trên snapshot của store. Không report nào
// thay đổi dữ liệu; việc kiểm tra khoảng ngày (start <= end) thuộc về caller.
type Reports struct {
	Shipments  store.ShipmentStore
	Deliveries store.DeliveryStore
	Personnel  store.PersonnelStore
}

type MonthCount struct {
	Month string `json:"month"` // "2024-01"
	Count int    `json:"count"`
}

type PerformanceRow struct {
	DeliveryID      string                `json:"deliveryID"`
	TrackingNumber  string                `json:"trackingNumber"`
	PersonnelName   string                `json:"personnelName"`
	Status          models.DeliveryStatus `json:"status"`
	OnTime          *bool                 `json:"onTime,omitempty"`          // nil khi không tính được
	DurationMinutes *int64                `json:"durationMinutes,omitempty"` // nil khi thiếu mốc pickup
}

type PerformanceReport struct {
	Rows        []PerformanceRow `json:"rows"`
	Considered  int              `json:"considered"`
	OnTimeCount int              `json:"onTimeCount"`
	OnTimeRate  float64          `json:"onTimeRate"` // phần trăm, hai chữ số thập phân
}

type AvailabilityReport struct {
	Personnel []models.DeliveryPersonnel     `json:"personnel"`
	Counts    map[models.AvailabilityStatus]int `json:"counts"`
	Total     int                            `json:"total"`
}

type StatusCount struct {
	Status models.ShipmentStatus `json:"status"`
	Count  int                   `json:"count"`
}

// withinDates so sánh theo ngày lịch, hai đầu bao gồm.
func withinDates(ts time.Time, start, end time.Time) bool {
	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, ts.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, ts.Location())
	return !day.Before(s) && !day.After(e)
}

// MonthlyVolume đếm shipment theo tháng tạo, trong khoảng [start, end], sắp
// xếp tăng dần theo khóa tháng.
func (r *Reports) MonthlyVolume(ctx context.Context, start, end time.Time) ([]MonthCount, error) {
	shipments, err := r.Shipments.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, s := range shipments {
		if !withinDates(s.CreatedAt, start, end) {
			continue
		}
		counts[s.CreatedAt.Format("2006-01")]++
	}

	out := make([]MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, MonthCount{Month: month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// DeliveryPerformance xét các delivery có actualDeliveryTime trong khoảng
// ngày. On-time nghĩa là giao trước mốc ước tính cộng 30 phút; chỉ tính được
// khi shipment có estimatedDeliveryTime. Tỷ lệ on-time được làm tròn hai chữ
// số thập phân trên số delivery tính được.
func (r *Reports) DeliveryPerformance(ctx context.Context, start, end time.Time) (*PerformanceReport, error) {
	deliveries, err := r.Deliveries.List(ctx)
	if err != nil {
		return nil, err
	}
	shipments, err := r.Shipments.List(ctx)
	if err != nil {
		return nil, err
	}
	personnel, err := r.Personnel.List(ctx)
	if err != nil {
		return nil, err
	}

	shipmentByID := make(map[string]models.Shipment, len(shipments))
	for _, s := range shipments {
		shipmentByID[s.ID] = s
	}
	personnelName := make(map[string]string, len(personnel))
	for _, p := range personnel {
		personnelName[p.ID] = p.Name
	}

	report := &PerformanceReport{Rows: []PerformanceRow{}}
	for _, d := range deliveries {
		if d.ActualDeliveryTime == nil || !withinDates(*d.ActualDeliveryTime, start, end) {
			continue
		}

		row := PerformanceRow{
			DeliveryID:     d.ID,
			TrackingNumber: "ID:" + d.ShipmentID,
			PersonnelName:  "ID:" + d.PersonnelID,
			Status:         d.DeliveryStatus,
		}
		if s, ok := shipmentByID[d.ShipmentID]; ok {
			row.TrackingNumber = s.TrackingNumber
			if s.EstimatedDeliveryTime != nil {
				onTime := d.ActualDeliveryTime.Before(s.EstimatedDeliveryTime.Add(onTimeGrace))
				row.OnTime = &onTime
				report.Considered++
				if onTime {
					report.OnTimeCount++
				}
			}
		}
		if name, ok := personnelName[d.PersonnelID]; ok {
			row.PersonnelName = name
		}
		if d.ActualPickupTime != nil {
			minutes := int64(d.ActualDeliveryTime.Sub(*d.ActualPickupTime) / time.Minute)
			row.DurationMinutes = &minutes
		}
		report.Rows = append(report.Rows, row)
	}

	if report.Considered > 0 {
		rate := float64(report.OnTimeCount) / float64(report.Considered) * 100
		report.OnTimeRate = math.Round(rate*100) / 100
	}
	return report, nil
}

// PersonnelAvailability là snapshot số lượng theo từng trạng thái cộng danh
// sách đầy đủ.
func (r *Reports) PersonnelAvailability(ctx context.Context) (*AvailabilityReport, error) {
	personnel, err := r.Personnel.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[models.AvailabilityStatus]int{
		models.PersonnelAvailable:   0,
		models.PersonnelOnDuty:      0,
		models.PersonnelOnLeave:     0,
		models.PersonnelUnavailable: 0,
	}
	for _, p := range personnel {
		counts[p.AvailabilityStatus]++
	}
	return &AvailabilityReport{Personnel: personnel, Counts: counts, Total: len(personnel)}, nil
}

// StatusOverview đếm shipment theo deliveryStatus, sắp xếp theo bảng chữ cái.
func (r *Reports) StatusOverview(ctx context.Context) ([]StatusCount, error) {
	shipments, err := r.Shipments.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ShipmentStatus]int)
	for _, s := range shipments {
		counts[s.DeliveryStatus]++
	}

	out := make([]StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, StatusCount{Status: status, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}
