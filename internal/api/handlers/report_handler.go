// internal/api/handlers/report_handler.go
package handlers

import (
	"net/http"
	"time"

	"fasttrack-logistics-api-server/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Reports *service.Reports
}

// parseDateRange đọc ?start=yyyy-MM-dd&end=yyyy-MM-dd và kiểm tra start <= end.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be a date in yyyy-MM-dd format"})
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be a date in yyyy-MM-dd format"})
		return time.Time{}, time.Time{}, false
	}
	if start.After(end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must not be after end"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *ReportHandler) GetMonthlyVolume(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	months, err := h.Reports.MonthlyVolume(c.Request.Context(), start, end)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"start": c.Query("start"), "end": c.Query("end"), "months": months})
}

func (h *ReportHandler) GetDeliveryPerformance(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	report, err := h.Reports.DeliveryPerformance(c.Request.Context(), start, end)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) GetPersonnelAvailability(c *gin.Context) {
	report, err := h.Reports.PersonnelAvailability(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) GetStatusOverview(c *gin.Context) {
	statuses, err := h.Reports.StatusOverview(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}
