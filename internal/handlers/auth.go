package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
)

const clientContextKey = "api_client"

// ApiClientStore resolves and meters API clients for the public surface.
type ApiClientStore interface {
	GetByKeyHash(ctx context.Context, keyHash string) (*models.ApiClient, error)
	IncrementUsage(ctx context.Context, id string) error
}

// APIKeyAuth authenticates requests by the X-API-Key header. Keys are
// compared through their stored digest; the raw key is never persisted
// or logged.
func APIKeyAuth(clients ApiClientStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := c.GetHeader("X-API-Key")
		if rawKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing api key"})
			return
		}

		client, err := clients.GetByKeyHash(c.Request.Context(), models.HashAPIKey(rawKey))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			return
		}

		if err := clients.IncrementUsage(c.Request.Context(), client.ID); err != nil {
			logrus.Errorf("failed to increment usage for api client %s: %s", client.ID, err.Error())
		}

		c.Set(clientContextKey, client)
		c.Next()
	}
}

func clientFromContext(c *gin.Context) *models.ApiClient {
	value, exists := c.Get(clientContextKey)
	if !exists {
		return nil
	}
	client, ok := value.(*models.ApiClient)
	if !ok {
		return nil
	}
	return client
}
