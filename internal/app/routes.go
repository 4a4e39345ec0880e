package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	handlers "github.com/soudiegorodrigues/furionpay-sub006/internal/handlers"
)

func (a *App) RegisterRoutes(charges *handlers.ChargeHandler, webhooks *handlers.WebhookHandler, clients handlers.ApiClientStore) {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	payments := a.Router.Group("/payments")
	payments.POST("/charges", charges.CreateCharge)
	payments.POST("/deliveries/:id/redeliver", charges.RedeliverWebhook)
	payments.GET("/transactions/:txid", handlers.APIKeyAuth(clients), charges.GetTransaction)

	a.Router.POST("/webhooks/:acquirer", webhooks.HandleCallback)
}
