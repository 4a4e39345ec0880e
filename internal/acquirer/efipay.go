package acquirer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// EfipayAdapter integrates the Efí immediate-charge (cob) API, which
// authenticates with mutual TLS. The txid is part of the resource path,
// so the provider reference and the callback id are the same value.
type EfipayAdapter struct {
	client   httpClient
	baseURL  string
	clientID string
}

// NewEfipayAdapter builds the adapter from PEM-encoded certificate
// material. The certificate never leaves the TLS transport and is never
// logged.
func NewEfipayAdapter(baseURL, certPEM, keyPEM, clientID string, timeout time.Duration) (*EfipayAdapter, error) {
	client, err := newMTLSClient(certPEM, keyPEM, timeout)
	if err != nil {
		return nil, err
	}

	return &EfipayAdapter{
		client:   client,
		baseURL:  baseURL,
		clientID: clientID,
	}, nil
}

func (a *EfipayAdapter) Name() string { return Efipay }

type efipayChargeRequest struct {
	Calendario struct {
		Expiracao int `json:"expiracao"`
	} `json:"calendario"`
	Devedor *struct {
		Nome string `json:"nome"`
	} `json:"devedor,omitempty"`
	Valor struct {
		Original string `json:"original"`
	} `json:"valor"`
	SolicitacaoPagador string `json:"solicitacaoPagador"`
}

type efipayChargeResponse struct {
	Txid          string `json:"txid"`
	Status        string `json:"status"`
	PixCopiaECola string `json:"pixCopiaECola"`
	Loc           struct {
		Location string `json:"location"`
	} `json:"loc"`
}

type efipayStatusResponse struct {
	Txid   string `json:"txid"`
	Status string `json:"status"`
	Pix    []struct {
		Horario time.Time `json:"horario"`
	} `json:"pix"`
}

func (a *EfipayAdapter) CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := req.validate(); err != nil {
		return nil, chargeFailed(Efipay, "create", err)
	}

	var payload efipayChargeRequest
	payload.Calendario.Expiracao = 3600
	payload.Valor.Original = fmt.Sprintf("%.2f", req.Amount)
	payload.SolicitacaoPagador = req.Description
	if req.PayerName != "" {
		payload.Devedor = &struct {
			Nome string `json:"nome"`
		}{Nome: req.PayerName}
	}

	body, err := doRequest(ctx, a.client, http.MethodPut, a.baseURL+"/v2/cob/"+req.CallbackID, payload, a.authorize)
	if err != nil {
		return nil, chargeFailed(Efipay, "create", err)
	}

	var resp efipayChargeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, chargeFailed(Efipay, "create", err)
	}
	if resp.Txid == "" || resp.PixCopiaECola == "" {
		return nil, chargeFailed(Efipay, "create", fmt.Errorf("incomplete cob response"))
	}

	return &ChargeResult{
		PaymentCode: resp.PixCopiaECola,
		ProviderRef: resp.Txid,
	}, nil
}

func (a *EfipayAdapter) CheckStatus(ctx context.Context, providerRef string) (*StatusResult, error) {
	body, err := doRequest(ctx, a.client, http.MethodGet, a.baseURL+"/v2/cob/"+providerRef, nil, a.authorize)
	if err != nil {
		return nil, chargeFailed(Efipay, "check", err)
	}

	var resp efipayStatusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, chargeFailed(Efipay, "check", err)
	}

	result := &StatusResult{Status: NormalizeStatus(Efipay, resp.Status)}
	if len(resp.Pix) > 0 {
		paidAt := resp.Pix[0].Horario
		result.PaidAt = &paidAt
	}

	return result, nil
}

func (a *EfipayAdapter) authorize(req *http.Request) {
	req.Header.Set("X-Client-Id", a.clientID)
}
