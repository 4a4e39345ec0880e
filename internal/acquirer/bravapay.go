package acquirer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BravapayAdapter integrates the Bravapay instant-payment API. Auth is a
// bearer token; amounts are sent in cents under a nested order object.
type BravapayAdapter struct {
	client  httpClient
	baseURL string
	token   string
}

func NewBravapayAdapter(baseURL, token string, timeout time.Duration) *BravapayAdapter {
	return &BravapayAdapter{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		token:   token,
	}
}

func (a *BravapayAdapter) Name() string { return Bravapay }

type bravapayChargeRequest struct {
	Order struct {
		AmountCents int64  `json:"amount"`
		Description string `json:"description"`
		MerchantRef string `json:"merchant_reference"`
	} `json:"order"`
	Customer *struct {
		Name string `json:"name"`
	} `json:"customer,omitempty"`
}

type bravapayChargeResponse struct {
	TransactionID string `json:"transaction_id"`
	Pix           struct {
		EMV string `json:"emv"`
	} `json:"pix"`
	Status string `json:"status"`
}

type bravapayStatusResponse struct {
	TransactionID string     `json:"transaction_id"`
	Status        string     `json:"status"`
	ApprovedAt    *time.Time `json:"approved_at"`
}

func (a *BravapayAdapter) CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := req.validate(); err != nil {
		return nil, chargeFailed(Bravapay, "create", err)
	}

	var payload bravapayChargeRequest
	payload.Order.AmountCents = int64(req.Amount*100 + 0.5)
	payload.Order.Description = req.Description
	payload.Order.MerchantRef = req.CallbackID
	if req.PayerName != "" {
		payload.Customer = &struct {
			Name string `json:"name"`
		}{Name: req.PayerName}
	}

	body, err := doRequest(ctx, a.client, http.MethodPost, a.baseURL+"/v1/transactions", payload, a.authorize)
	if err != nil {
		return nil, chargeFailed(Bravapay, "create", err)
	}

	var resp bravapayChargeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, chargeFailed(Bravapay, "create", err)
	}
	if resp.TransactionID == "" || resp.Pix.EMV == "" {
		return nil, chargeFailed(Bravapay, "create", fmt.Errorf("incomplete transaction response"))
	}

	return &ChargeResult{
		PaymentCode: resp.Pix.EMV,
		ProviderRef: resp.TransactionID,
	}, nil
}

func (a *BravapayAdapter) CheckStatus(ctx context.Context, providerRef string) (*StatusResult, error) {
	body, err := doRequest(ctx, a.client, http.MethodGet, a.baseURL+"/v1/transactions/"+providerRef, nil, a.authorize)
	if err != nil {
		return nil, chargeFailed(Bravapay, "check", err)
	}

	var resp bravapayStatusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, chargeFailed(Bravapay, "check", err)
	}

	return &StatusResult{
		Status: NormalizeStatus(Bravapay, resp.Status),
		PaidAt: resp.ApprovedAt,
	}, nil
}

func (a *BravapayAdapter) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.token)
}
