package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
)

const msgSailingsFailed = "Failed to fetch sailings"

func (h *Handler) Sailings(c *gin.Context) {
	h.sailings(c, h.schedule.All)
}

func (h *Handler) NearestSailings(c *gin.Context) {
	h.sailings(c, h.schedule.Nearest)
}

func (h *Handler) sailings(c *gin.Context, load func(context.Context) ([]models.SailingWithStops, error)) {
	list, err := load(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "loading sailings failed", "err", err)
		fail(c, http.StatusInternalServerError, msgSailingsFailed)
		return
	}
	ok(c, list)
}
