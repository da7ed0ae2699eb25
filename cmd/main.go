package main

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/patiponrmutl/SchoolMS/config"
	"github.com/patiponrmutl/SchoolMS/database"
	"github.com/patiponrmutl/SchoolMS/routes"
)

func main() {
	log := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "schoolms").
		Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn().Msg("JWT_SECRET not set, signing tokens with the insecure default")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg, db)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Str("env", cfg.AppEnv).Msg("server listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
