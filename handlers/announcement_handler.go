package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/SchoolMS/middlewares"
	"github.com/patiponrmutl/SchoolMS/models"
)

type AnnouncementHandler struct {
	db *gorm.DB
}

func NewAnnouncementHandler(db *gorm.DB) *AnnouncementHandler {
	return &AnnouncementHandler{db: db}
}

type announcementReq struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// POST /announcements
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req announcementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Message = strings.TrimSpace(req.Message)
	if req.Title == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	u := middlewares.CurrentUser(c)
	a := models.Announcement{
		Title:     req.Title,
		Message:   req.Message,
		CreatedBy: u.ID,
	}
	if err := h.db.Create(&a).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": a.ID})
}

// GET /announcements?limit= — newest first.
func (h *AnnouncementHandler) List(c echo.Context) error {
	limit := limitOr(c.QueryParam("limit"), 20)

	items := []models.Announcement{}
	if err := h.db.Order("created_at DESC, id DESC").Limit(limit).Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
