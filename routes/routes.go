package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/patiponrmutl/SchoolMS/auth"
	"github.com/patiponrmutl/SchoolMS/config"
	"github.com/patiponrmutl/SchoolMS/handlers"
	"github.com/patiponrmutl/SchoolMS/middlewares"
)

// Register wires all HTTP routes. The signing key, token TTL and store
// handle come from the caller; nothing here reads the environment.
func Register(e *echo.Echo, cfg *config.Config, db *gorm.DB) {
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	resolver := auth.NewResolver(db)

	ah := handlers.NewAuthHandler(db, tokens)
	sh := handlers.NewStudentHandler(db)
	at := handlers.NewAttendanceHandler(db)
	an := handlers.NewAnnouncementHandler(db)
	hh := handlers.NewHealthHandler(db)

	// ===== Public =====
	e.GET("/", hh.Root)
	e.GET("/health", hh.Health)
	e.GET("/test", hh.Test)

	e.POST("/auth/register", ah.Register)
	e.POST("/auth/login", ah.Login)

	// ===== Authenticated =====
	authMW := middlewares.RequireAuth(tokens, resolver)

	students := e.Group("/students", authMW)
	students.GET("", sh.List)
	students.GET("/:id", sh.Get)
	manage := middlewares.RequireAction(auth.ManageStudents)
	students.POST("", sh.Create, manage)
	students.PUT("/:id", sh.Update, manage)
	students.DELETE("/:id", sh.Delete, manage)

	attendance := e.Group("/attendance", authMW)
	attendance.GET("", at.List)
	attendance.POST("", at.Take, middlewares.RequireAction(auth.TakeAttendance))

	announcements := e.Group("/announcements", authMW)
	announcements.GET("", an.List)
	announcements.POST("", an.Create, middlewares.RequireAction(auth.PostAnnouncements))
}
