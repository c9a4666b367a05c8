package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/bridge"
	"github.com/Harris-County-ESD-No-7/W2W-to-Emergency-Networking/internal/roster"
)

type Handler struct {
	Bridge *bridge.Bridge
	Roster *roster.Roster
	Zone   *time.Location
	Logger zerolog.Logger

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"timezone": h.Zone.String(),
		"roster": gin.H{
			"people":    len(h.Roster.People),
			"equipment": len(h.Roster.Equipment),
			"standing":  len(h.Roster.Standing),
		},
	})
}

// Sync runs one W2W → EN sync and returns its result. Production runs are
// cron-driven; this endpoint exists so a schedule change can be pushed
// without waiting for the next cron tick.
func (h *Handler) Sync(c *gin.Context) {
	res, err := h.Bridge.Run(c.Request.Context(), h.now())
	if err != nil {
		h.Logger.Error().Err(err).Msg("sync run failed")
		writeError(c, http.StatusBadGateway, "SYNC_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

func writeError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
