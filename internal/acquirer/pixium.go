package acquirer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PixiumAdapter integrates the Pixium charge API. Auth is a static
// bearer token; amounts are sent in reais as a decimal string.
type PixiumAdapter struct {
	client  httpClient
	baseURL string
	token   string
}

func NewPixiumAdapter(baseURL, token string, timeout time.Duration) *PixiumAdapter {
	return &PixiumAdapter{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		token:   token,
	}
}

func (a *PixiumAdapter) Name() string { return Pixium }

type pixiumChargeRequest struct {
	Value       string `json:"value"`
	Description string `json:"description"`
	Reference   string `json:"reference"`
	PayerName   string `json:"payer_name,omitempty"`
}

type pixiumChargeResponse struct {
	ID         string `json:"id"`
	QRCodeCopy string `json:"qr_code_copy_paste"`
	Status     string `json:"status"`
}

type pixiumStatusResponse struct {
	ID     string     `json:"id"`
	Status string     `json:"status"`
	PaidAt *time.Time `json:"paid_at"`
}

func (a *PixiumAdapter) CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := req.validate(); err != nil {
		return nil, chargeFailed(Pixium, "create", err)
	}

	payload := pixiumChargeRequest{
		Value:       fmt.Sprintf("%.2f", req.Amount),
		Description: req.Description,
		Reference:   req.CallbackID,
		PayerName:   req.PayerName,
	}

	body, err := doRequest(ctx, a.client, http.MethodPost, a.baseURL+"/v1/pix/charges", payload, a.authorize)
	if err != nil {
		return nil, chargeFailed(Pixium, "create", err)
	}

	var resp pixiumChargeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, chargeFailed(Pixium, "create", err)
	}
	if resp.ID == "" || resp.QRCodeCopy == "" {
		return nil, chargeFailed(Pixium, "create", fmt.Errorf("incomplete charge response"))
	}

	return &ChargeResult{
		PaymentCode: resp.QRCodeCopy,
		ProviderRef: resp.ID,
	}, nil
}

func (a *PixiumAdapter) CheckStatus(ctx context.Context, providerRef string) (*StatusResult, error) {
	body, err := doRequest(ctx, a.client, http.MethodGet, a.baseURL+"/v1/pix/charges/"+providerRef, nil, a.authorize)
	if err != nil {
		return nil, chargeFailed(Pixium, "check", err)
	}

	var resp pixiumStatusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, chargeFailed(Pixium, "check", err)
	}

	return &StatusResult{
		Status: NormalizeStatus(Pixium, resp.Status),
		PaidAt: resp.PaidAt,
	}, nil
}

func (a *PixiumAdapter) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.token)
}
