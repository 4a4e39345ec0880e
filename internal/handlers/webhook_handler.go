package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/acquirer"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/service"
)

// Settler is the slice of the settlement service inbound webhooks need.
type Settler interface {
	MarkPaid(ctx context.Context, txid string, paidAtHint *time.Time) error
	MarkExpired(ctx context.Context, txid string) error
}

// WebhookHandler ingests acquirer callbacks. Once a payload parses, the
// response is always 200 regardless of business outcome, so acquirer
// retry policies stand down; every edge case is logged instead of
// surfaced.
type WebhookHandler struct {
	Settlements Settler
}

func NewWebhookHandler(settlements Settler) *WebhookHandler {
	return &WebhookHandler{Settlements: settlements}
}

// POST /webhooks/:acquirer
func (h *WebhookHandler) HandleCallback(c *gin.Context) {
	acquirerName := c.Param("acquirer")

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	notification, err := acquirer.ParseWebhook(acquirerName, c.ContentType(), body)
	if errors.Is(err, acquirer.ErrUnknownAcquirer) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown acquirer"})
		return
	}
	if err != nil {
		logrus.Warnf("webhook from %s: unparsable payload: %s", acquirerName, err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "unparsable payload"})
		return
	}

	if notification.CorrelationID == "" {
		logrus.Warnf("webhook from %s: no correlation id in payload", acquirerName)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	switch notification.Status {
	case acquirer.StatusPaid:
		err = h.Settlements.MarkPaid(c.Request.Context(), notification.CorrelationID, notification.PaidAt)
	case acquirer.StatusExpired:
		err = h.Settlements.MarkExpired(c.Request.Context(), notification.CorrelationID)
	default:
		logrus.Infof("webhook from %s: status %q for %s is not terminal, ignoring",
			acquirerName, notification.RawStatus, notification.CorrelationID)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			logrus.Warnf("webhook from %s: unknown correlation id %s", acquirerName, notification.CorrelationID)
		} else {
			logrus.Errorf("webhook from %s: settlement failed for %s: %s",
				acquirerName, notification.CorrelationID, err.Error())
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
