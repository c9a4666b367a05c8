package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/bridge"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/config"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/http/handlers"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/http/middleware"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/roster"
)

func Router(cfg config.Config, b *bridge.Bridge, rst *roster.Roster, zone *time.Location, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Admin-Key", "X-Request-Id"},
		MaxAge:       12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Bridge: b,
		Roster: rst,
		Zone:   zone,
		Logger: logger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	api.Use(middleware.AdminKey(cfg.AdminKey))
	{
		api.POST("/sync", h.Sync)
	}

	return r
}
