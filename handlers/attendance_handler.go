package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/SchoolMS/middlewares"
	"github.com/patiponrmutl/SchoolMS/models"
)

type AttendanceHandler struct {
	db *gorm.DB
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler { return &AttendanceHandler{db: db} }

var validStatuses = map[string]bool{"present": true, "absent": true, "late": true}

type attendanceRecordIn struct {
	StudentID string  `json:"student_id"`
	Status    string  `json:"status"`
	Note      *string `json:"note"`
}

type takeAttendanceReq struct {
	ClassID *string              `json:"class_id"`
	Date    string               `json:"date"` // YYYY-MM-DD
	Records []attendanceRecordIn `json:"records"`
}

// POST /attendance
func (h *AttendanceHandler) Take(c echo.Context) error {
	var req takeAttendanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Date = strings.TrimSpace(req.Date)
	if req.Date == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}

	records := make([]models.AttendanceRecord, 0, len(req.Records))
	for _, r := range req.Records {
		if strings.TrimSpace(r.StudentID) == "" {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
		}
		status := r.Status
		if status == "" {
			status = "present"
		}
		if !validStatuses[status] {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_STATUS"})
		}
		records = append(records, models.AttendanceRecord{
			StudentID: r.StudentID,
			Status:    status,
			Note:      r.Note,
		})
	}

	u := middlewares.CurrentUser(c)
	sheet := models.Attendance{
		ClassID: req.ClassID,
		Date:    req.Date,
		TakenBy: u.ID,
		Records: records,
	}
	if err := h.db.Create(&sheet).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": sheet.ID})
}

// GET /attendance?date=&limit=
func (h *AttendanceHandler) List(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	limit := limitOr(c.QueryParam("limit"), 50)

	tx := h.db.Preload("Records")
	if date != "" {
		tx = tx.Where("date = ?", date)
	}
	items := []models.Attendance{}
	if err := tx.Limit(limit).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
