package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
)

const (
	SignatureHeader = "X-Webhook-Signature"
	EventHeader     = "X-Webhook-Event"
)

var ErrDeliveryNotFound = errors.New("webhook delivery not found")

// DeliveryRepo persists WebhookDelivery records.
type DeliveryRepo interface {
	Create(ctx context.Context, delivery *models.WebhookDelivery) error
	Update(ctx context.Context, delivery *models.WebhookDelivery, id string) error
	GetByID(ctx context.Context, id string) (*models.WebhookDelivery, error)
}

// ClientRepo resolves the downstream integrator for a transaction.
type ClientRepo interface {
	GetByID(ctx context.Context, id string) (*models.ApiClient, error)
}

type eventPayload struct {
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"created_at"`
	Data      eventData `json:"data"`
}

type eventData struct {
	TxID              string            `json:"txid"`
	ExternalReference string            `json:"external_reference,omitempty"`
	Amount            float64           `json:"amount"`
	Status            string            `json:"status"`
	PaidAt            *time.Time        `json:"paid_at"`
	CreatedAt         time.Time         `json:"created_at"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

// Dispatcher delivers signed notifications to ApiClient webhook URLs.
// The contract is attempt-once with accurate recording: a delivery row
// goes in as PENDING before the POST and is finalized with the outcome;
// nothing here retries on its own.
type Dispatcher struct {
	Deliveries DeliveryRepo
	Clients    ClientRepo
	HTTPClient *http.Client
}

func NewDispatcher(deliveries DeliveryRepo, clients ClientRepo, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		Deliveries: deliveries,
		Clients:    clients,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Dispatch notifies the transaction's ApiClient about one lifecycle
// event. The HMAC-SHA256 signature is computed over the exact payload
// bytes that get persisted and sent.
func (d *Dispatcher) Dispatch(ctx context.Context, tx *models.Transaction, event string) error {
	client, err := d.Clients.GetByID(ctx, tx.APIClientID)
	if err != nil {
		return fmt.Errorf("resolving api client: %w", err)
	}
	if !client.Active || client.WebhookURL == "" {
		logrus.Infof("api client %s has no active webhook, skipping dispatch for %s", client.ID, tx.TxID)
		return nil
	}

	payload := eventPayload{
		Event:     event,
		CreatedAt: time.Now().UTC(),
		Data: eventData{
			TxID:              tx.TxID,
			ExternalReference: tx.ExternalReference,
			Amount:            tx.Amount,
			Status:            tx.PublicStatus(),
			PaidAt:            tx.PaidAt,
			CreatedAt:         tx.CreatedAt,
			Metadata:          map[string]string(tx.Metadata),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	delivery := &models.WebhookDelivery{
		TransactionID: tx.ID,
		APIClientID:   client.ID,
		TargetURL:     client.WebhookURL,
		Event:         event,
		Payload:       string(body),
		Status:        models.DeliveryPending,
		AttemptCount:  1,
	}
	if err := d.Deliveries.Create(ctx, delivery); err != nil {
		return fmt.Errorf("recording webhook delivery: %w", err)
	}

	d.attempt(ctx, delivery, client.WebhookSecret)

	return d.Deliveries.Update(ctx, delivery, delivery.ID)
}

// Redeliver is the administrative retry: it re-sends the original
// payload snapshot of an existing delivery and appends the attempt to
// the same record.
func (d *Dispatcher) Redeliver(ctx context.Context, deliveryID string) (*models.WebhookDelivery, error) {
	delivery, err := d.Deliveries.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, ErrDeliveryNotFound
	}

	if delivery.Status == models.DeliverySuccess {
		return delivery, nil
	}

	client, err := d.Clients.GetByID(ctx, delivery.APIClientID)
	if err != nil {
		return nil, fmt.Errorf("resolving api client: %w", err)
	}

	delivery.AttemptCount++
	d.attempt(ctx, delivery, client.WebhookSecret)

	if err := d.Deliveries.Update(ctx, delivery, delivery.ID); err != nil {
		return nil, err
	}
	return delivery, nil
}

// attempt performs one POST and stamps the outcome onto the record. The
// receiver's body is truncated before persisting.
func (d *Dispatcher) attempt(ctx context.Context, delivery *models.WebhookDelivery, secret string) {
	now := time.Now().UTC()
	delivery.LastAttempt = &now

	body := []byte(delivery.Payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, delivery.TargetURL, bytes.NewReader(body))
	if err != nil {
		delivery.Status = models.DeliveryFailed
		delivery.LastBody = truncate(err.Error(), models.ResponseBodyLimit)
		return
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(EventHeader, delivery.Event)
	req.Header.Set(SignatureHeader, Sign(body, secret))

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		delivery.Status = models.DeliveryFailed
		delivery.LastBody = truncate(err.Error(), models.ResponseBodyLimit)
		logrus.Warnf("webhook delivery %s failed: %s", delivery.ID, err.Error())
		return
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, models.ResponseBodyLimit))
	delivery.LastCode = resp.StatusCode
	delivery.LastBody = string(respBody)

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		delivery.Status = models.DeliverySuccess
		return
	}
	delivery.Status = models.DeliveryFailed
	logrus.Warnf("webhook delivery %s rejected with status %d", delivery.ID, resp.StatusCode)
}

// Sign computes the header value for a payload: "sha256=" followed by
// the hex HMAC-SHA256 of the exact bytes under the shared secret.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
