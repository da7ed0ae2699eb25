package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/SchoolMS/models"
)

type StudentHandler struct {
	db *gorm.DB
}

func NewStudentHandler(db *gorm.DB) *StudentHandler { return &StudentHandler{db: db} }

/* ====================== Payload & validation ====================== */

var validGenders = map[string]bool{"male": true, "female": true, "other": true}

// studentPayload is shared by create and update; every field is a pointer
// so a partial update can tell "absent" apart from "set to empty".
type studentPayload struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Email           *string `json:"email"`
	Gender          *string `json:"gender"`
	DOB             *string `json:"dob"` // YYYY-MM-DD
	Grade           *string `json:"grade"`
	RollNumber      *string `json:"roll_number"`
	Address         *string `json:"address"`
	GuardianName    *string `json:"guardian_name"`
	GuardianContact *string `json:"guardian_contact"`
	AdmissionDate   *string `json:"admission_date"` // YYYY-MM-DD
}

func parseDay(s string) (*time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// apply validates the provided fields and copies them onto s. Nil fields
// are left untouched. Returns an error code, or "" when everything held.
func (p *studentPayload) apply(s *models.Student) string {
	if p.FirstName != nil {
		v := strings.TrimSpace(*p.FirstName)
		if v == "" {
			return "MISSING_FIELDS"
		}
		s.FirstName = v
	}
	if p.LastName != nil {
		v := strings.TrimSpace(*p.LastName)
		if v == "" {
			return "MISSING_FIELDS"
		}
		s.LastName = v
	}
	if p.Email != nil {
		if !reEmail.MatchString(*p.Email) {
			return "INVALID_EMAIL"
		}
		s.Email = p.Email
	}
	if p.Gender != nil {
		if !validGenders[*p.Gender] {
			return "INVALID_GENDER"
		}
		s.Gender = p.Gender
	}
	if p.DOB != nil {
		d, err := parseDay(*p.DOB)
		if err != nil {
			return "INVALID_DATE"
		}
		s.DOB = d
	}
	if p.AdmissionDate != nil {
		d, err := parseDay(*p.AdmissionDate)
		if err != nil {
			return "INVALID_DATE"
		}
		s.AdmissionDate = d
	}
	if p.Grade != nil {
		s.Grade = p.Grade
	}
	if p.RollNumber != nil {
		s.RollNumber = p.RollNumber
	}
	if p.Address != nil {
		s.Address = p.Address
	}
	if p.GuardianName != nil {
		s.GuardianName = p.GuardianName
	}
	if p.GuardianContact != nil {
		s.GuardianContact = p.GuardianContact
	}
	return ""
}

/* ====================== Handlers ====================== */

// POST /students
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	var s models.Student
	if code := p.apply(&s); code != "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": code})
	}
	if s.FirstName == "" || s.LastName == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	if err := h.db.Create(&s).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, s)
}

// GET /students?q=&limit=
func (h *StudentHandler) List(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	limit := limitOr(c.QueryParam("limit"), 100)

	tx := h.db.Model(&models.Student{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}
	items := []models.Student{}
	if err := tx.Limit(limit).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// GET /students/:id
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	var s models.Student
	if err := h.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, s)
}

// PUT /students/:id — partial update, nil fields ignored.
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	var existing models.Student
	if err := h.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}

	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if code := p.apply(&existing); code != "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": code})
	}
	if err := h.db.Save(&existing).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}

// DELETE /students/:id
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	tx := h.db.Delete(&models.Student{}, "id = ?", id)
	if tx.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if tx.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "deleted"})
}
