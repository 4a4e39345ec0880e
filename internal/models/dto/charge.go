package dto

import (
	"strings"
	"time"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
)

type Payer struct {
	Name     string `json:"name"`
	Document string `json:"document,omitempty"`
	Email    string `json:"email,omitempty"`
}

type ChargeRequest struct {
	Amount            float64           `json:"amount"`
	AccountID         string            `json:"account_id"`
	APIClientID       string            `json:"api_client_id,omitempty"`
	ExternalReference string            `json:"external_reference,omitempty"`
	Payer             *Payer            `json:"payer,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

func (r *ChargeRequest) Sanitize() {
	r.AccountID = strings.TrimSpace(r.AccountID)
	r.APIClientID = strings.TrimSpace(r.APIClientID)
	r.ExternalReference = strings.TrimSpace(r.ExternalReference)
	if r.Payer != nil {
		r.Payer.Name = strings.TrimSpace(r.Payer.Name)
		r.Payer.Document = strings.TrimSpace(r.Payer.Document)
		r.Payer.Email = strings.TrimSpace(r.Payer.Email)
	}
}

func (r *ChargeRequest) ToEntity() *models.Transaction {
	tx := &models.Transaction{
		Amount:            r.Amount,
		Status:            models.StatusGenerated,
		AccountID:         r.AccountID,
		APIClientID:       r.APIClientID,
		ExternalReference: r.ExternalReference,
		Metadata:          models.JSONMap(r.Metadata),
	}
	if r.Payer != nil {
		tx.PayerName = r.Payer.Name
		tx.PayerDocument = r.Payer.Document
		tx.PayerEmail = r.Payer.Email
	}
	return tx
}

type ChargeResponse struct {
	TxID        string `json:"txid"`
	PaymentCode string `json:"payment_code"`
	ProviderRef string `json:"provider_ref"`
	Acquirer    string `json:"acquirer"`
}

// TransactionStatusResponse is the public status-query shape. Status is
// the collapsed three-value vocabulary, never the internal one.
type TransactionStatusResponse struct {
	TxID              string            `json:"txid"`
	ExternalReference string            `json:"external_reference,omitempty"`
	Amount            float64           `json:"amount"`
	Status            string            `json:"status"`
	PaidAt            *time.Time        `json:"paid_at"`
	CreatedAt         time.Time         `json:"created_at"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

func NewTransactionStatusResponse(tx *models.Transaction) *TransactionStatusResponse {
	return &TransactionStatusResponse{
		TxID:              tx.TxID,
		ExternalReference: tx.ExternalReference,
		Amount:            tx.Amount,
		Status:            tx.PublicStatus(),
		PaidAt:            tx.PaidAt,
		CreatedAt:         tx.CreatedAt,
		Metadata:          map[string]string(tx.Metadata),
	}
}
