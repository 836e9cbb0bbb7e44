package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zayats-yacht/yachtclient/internal/server/models"
	"github.com/zayats-yacht/yachtclient/internal/server/services"
)

type quoteAccepted struct {
	ID string `json:"id"`
}

// QuoteRequest validates and stores a quote request. Rejected fields come
// back in form order under data.errors.
func (h *Handler) QuoteRequest(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Info(ctx, "invalid quote request body", "err", err)
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	q, err := h.quotes.Submit(ctx, req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			body, encErr := validationBody(verr.Issues)
			if encErr == nil {
				c.Data(http.StatusUnprocessableEntity, "application/json; charset=utf-8", body)
				return
			}
			err = encErr
		}
		h.logger.Error(ctx, "quote request failed", "err", err)
		fail(c, http.StatusInternalServerError, "Failed to submit quote request")
		return
	}

	if sess, found := c.Get(sessionKey); found {
		h.logger.Info(ctx, "quote request accepted", "quote_id", q.ID, "user_id", sess.(*models.Session).User.ID)
	}
	ok(c, quoteAccepted{ID: q.ID})
}
