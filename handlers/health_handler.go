package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler { return &HealthHandler{db: db} }

// GET /
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "School Management System API running",
	})
}

// GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

// GET /test — store diagnostics for quick deployment checks.
func (h *HealthHandler) Test(c echo.Context) error {
	resp := map[string]any{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "not connected",
		"tables":            []string{},
	}
	if h.db != nil {
		resp["dialect"] = h.db.Dialector.Name()
		tables, err := h.db.Migrator().GetTables()
		if err != nil {
			resp["database"] = "error: " + err.Error()
			return c.JSON(http.StatusOK, resp)
		}
		if len(tables) > 10 {
			tables = tables[:10]
		}
		resp["tables"] = tables
		resp["database"] = "connected"
		resp["connection_status"] = "connected"
	}
	return c.JSON(http.StatusOK, resp)
}
