package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models/dto"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/service"
)

type ChargeService interface {
	CreateCharge(ctx context.Context, req *dto.ChargeRequest) (*dto.ChargeResponse, error)
}

type SettlementService interface {
	GetStatus(ctx context.Context, txid, accountID string) (*dto.TransactionStatusResponse, error)
}

type Redeliverer interface {
	Redeliver(ctx context.Context, deliveryID string) (*models.WebhookDelivery, error)
}

type ChargeHandler struct {
	Charges     ChargeService
	Settlements SettlementService
	Deliveries  Redeliverer
}

func NewChargeHandler(charges ChargeService, settlements SettlementService, deliveries Redeliverer) *ChargeHandler {
	return &ChargeHandler{
		Charges:     charges,
		Settlements: settlements,
		Deliveries:  deliveries,
	}
}

// POST /payments/charges
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var req dto.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Charges.CreateCharge(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoAcquirerAvailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no acquirer enabled for account"})
		case errors.Is(err, service.ErrAllAcquirersFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "charge creation failed"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GET /payments/transactions/:txid
//
// The response never distinguishes an unknown txid from one owned by a
// different account.
func (h *ChargeHandler) GetTransaction(c *gin.Context) {
	client := clientFromContext(c)
	if client == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
		return
	}

	resp, err := h.Settlements.GetStatus(c.Request.Context(), c.Param("txid"), client.AccountID)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// POST /payments/deliveries/:id/redeliver
func (h *ChargeHandler) RedeliverWebhook(c *gin.Context) {
	delivery, err := h.Deliveries.Redeliver(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "delivery not found"})
		return
	}

	c.JSON(http.StatusOK, delivery)
}
