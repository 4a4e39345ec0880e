package acquirer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ZendryAdapter integrates the Zendry QR-code API. Auth is HTTP Basic
// with the tenant's client key/secret pair; amounts are sent in cents.
type ZendryAdapter struct {
	client    httpClient
	baseURL   string
	authToken string
}

func NewZendryAdapter(baseURL, clientKey, clientSecret string, timeout time.Duration) *ZendryAdapter {
	return &ZendryAdapter{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		authToken: basicAuthToken(clientKey, clientSecret),
	}
}

func (a *ZendryAdapter) Name() string { return Zendry }

type zendryChargeRequest struct {
	ValueCents int64  `json:"value_cents"`
	Generator  string `json:"generator_name,omitempty"`
	Content    string `json:"content"`
	ExternalID string `json:"external_reference"`
}

type zendryChargeResponse struct {
	QRCode struct {
		ReferenceCode string `json:"reference_code"`
		Content       string `json:"content"`
		ImageBase64   string `json:"image_base64"`
	} `json:"qrcode"`
	Status string `json:"status"`
}

type zendryStatusResponse struct {
	ReferenceCode string `json:"reference_code"`
	Status        string `json:"status"`
	PaymentDate   string `json:"payment_date"`
}

func (a *ZendryAdapter) CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := req.validate(); err != nil {
		return nil, chargeFailed(Zendry, "create", err)
	}

	payload := zendryChargeRequest{
		ValueCents: int64(req.Amount*100 + 0.5),
		Generator:  req.PayerName,
		Content:    req.Description,
		ExternalID: req.CallbackID,
	}

	body, err := doRequest(ctx, a.client, http.MethodPost, a.baseURL+"/v1/pix/qrcodes", payload, a.authorize)
	if err != nil {
		return nil, chargeFailed(Zendry, "create", err)
	}

	var resp zendryChargeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, chargeFailed(Zendry, "create", err)
	}
	if resp.QRCode.ReferenceCode == "" || resp.QRCode.Content == "" {
		return nil, chargeFailed(Zendry, "create", fmt.Errorf("incomplete qrcode response"))
	}

	return &ChargeResult{
		PaymentCode: resp.QRCode.Content,
		ProviderRef: resp.QRCode.ReferenceCode,
	}, nil
}

func (a *ZendryAdapter) CheckStatus(ctx context.Context, providerRef string) (*StatusResult, error) {
	body, err := doRequest(ctx, a.client, http.MethodGet, a.baseURL+"/v1/pix/qrcodes/"+providerRef, nil, a.authorize)
	if err != nil {
		return nil, chargeFailed(Zendry, "check", err)
	}

	var resp zendryStatusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, chargeFailed(Zendry, "check", err)
	}

	result := &StatusResult{Status: NormalizeStatus(Zendry, resp.Status)}
	if resp.PaymentDate != "" {
		if paidAt, err := time.Parse(time.RFC3339, resp.PaymentDate); err == nil {
			result.PaidAt = &paidAt
		}
	}

	return result, nil
}

func (a *ZendryAdapter) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Basic "+a.authToken)
}
