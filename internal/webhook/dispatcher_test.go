package webhook_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/webhook"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "whsec_test"

func paidTransaction() *models.Transaction {
	paidAt := time.Now().UTC()
	return &models.Transaction{
		ID:                "tx-1",
		TxID:              "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8",
		Amount:            49.90,
		Status:            models.StatusPaid,
		APIClientID:       "client-1",
		ExternalReference: "ORD-1",
		Metadata:          models.JSONMap{"utm_source": "instagram"},
		PaidAt:            &paidAt,
	}
}

func activeClient(url string) *models.ApiClient {
	return &models.ApiClient{
		ID:            "client-1",
		Active:        true,
		WebhookURL:    url,
		WebhookSecret: webhookSecret,
	}
}

func TestDispatch_SignsPayloadAndRecordsSuccess(t *testing.T) {
	var gotBody []byte
	var gotSignature, gotEvent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get(webhook.SignatureHeader)
		gotEvent = r.Header.Get(webhook.EventHeader)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`ok`))
	}))
	defer server.Close()

	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockClients := mocks.NewMockClientRepo(t)
	dispatcher := webhook.NewDispatcher(mockDeliveries, mockClients, 5*time.Second)

	mockClients.EXPECT().
		GetByID(mock.Anything, "client-1").
		Return(activeClient(server.URL), nil).
		Once()

	mockDeliveries.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(d *models.WebhookDelivery) bool {
			return d.Status == models.DeliveryPending && d.AttemptCount == 1
		})).
		Return(nil).
		Once()

	mockDeliveries.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(d *models.WebhookDelivery) bool {
			return d.Status == models.DeliverySuccess && d.LastCode == http.StatusOK && d.LastBody == "ok"
		}), mock.Anything).
		Return(nil).
		Once()

	err := dispatcher.Dispatch(context.Background(), paidTransaction(), "transaction.paid")
	require.NoError(t, err)

	// Signature must verify against the exact bytes received.
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(gotBody)
	assert.Equal(t, "sha256="+hex.EncodeToString(mac.Sum(nil)), gotSignature)
	assert.Equal(t, "transaction.paid", gotEvent)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "transaction.paid", payload["event"])
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8", data["txid"])
	assert.Equal(t, "paid", data["status"])
	assert.Equal(t, "ORD-1", data["external_reference"])
}

func TestDispatch_ReceiverErrorRecordsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockClients := mocks.NewMockClientRepo(t)
	dispatcher := webhook.NewDispatcher(mockDeliveries, mockClients, 5*time.Second)

	mockClients.EXPECT().
		GetByID(mock.Anything, "client-1").
		Return(activeClient(server.URL), nil).
		Once()

	mockDeliveries.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(nil).
		Once()

	mockDeliveries.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(d *models.WebhookDelivery) bool {
			return d.Status == models.DeliveryFailed && d.LastCode == http.StatusBadGateway
		}), mock.Anything).
		Return(nil).
		Once()

	err := dispatcher.Dispatch(context.Background(), paidTransaction(), "transaction.paid")

	assert.NoError(t, err)
}

func TestDispatch_InactiveClientSkips(t *testing.T) {
	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockClients := mocks.NewMockClientRepo(t)
	dispatcher := webhook.NewDispatcher(mockDeliveries, mockClients, 5*time.Second)

	inactive := activeClient("https://integrator.example/hook")
	inactive.Active = false

	mockClients.EXPECT().
		GetByID(mock.Anything, "client-1").
		Return(inactive, nil).
		Once()

	err := dispatcher.Dispatch(context.Background(), paidTransaction(), "transaction.paid")

	assert.NoError(t, err)
	mockDeliveries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRedeliver_AppendsAttempt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockClients := mocks.NewMockClientRepo(t)
	dispatcher := webhook.NewDispatcher(mockDeliveries, mockClients, 5*time.Second)

	failed := &models.WebhookDelivery{
		ID:           "dlv-1",
		APIClientID:  "client-1",
		TargetURL:    server.URL,
		Event:        "transaction.paid",
		Payload:      `{"event":"transaction.paid"}`,
		Status:       models.DeliveryFailed,
		AttemptCount: 1,
	}

	mockDeliveries.EXPECT().
		GetByID(mock.Anything, "dlv-1").
		Return(failed, nil).
		Once()

	mockClients.EXPECT().
		GetByID(mock.Anything, "client-1").
		Return(activeClient(server.URL), nil).
		Once()

	mockDeliveries.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(d *models.WebhookDelivery) bool {
			return d.Status == models.DeliverySuccess && d.AttemptCount == 2
		}), "dlv-1").
		Return(nil).
		Once()

	delivery, err := dispatcher.Redeliver(context.Background(), "dlv-1")

	require.NoError(t, err)
	assert.Equal(t, models.DeliverySuccess, delivery.Status)
	assert.Equal(t, 2, delivery.AttemptCount)
}

func TestRedeliver_NeverReversesSuccess(t *testing.T) {
	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockClients := mocks.NewMockClientRepo(t)
	dispatcher := webhook.NewDispatcher(mockDeliveries, mockClients, 5*time.Second)

	succeeded := &models.WebhookDelivery{
		ID:           "dlv-1",
		APIClientID:  "client-1",
		Status:       models.DeliverySuccess,
		AttemptCount: 1,
	}

	mockDeliveries.EXPECT().
		GetByID(mock.Anything, "dlv-1").
		Return(succeeded, nil).
		Once()

	delivery, err := dispatcher.Redeliver(context.Background(), "dlv-1")

	require.NoError(t, err)
	assert.Equal(t, models.DeliverySuccess, delivery.Status)
	assert.Equal(t, 1, delivery.AttemptCount)
	mockClients.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRedeliver_UnknownDelivery(t *testing.T) {
	mockDeliveries := mocks.NewMockDeliveryRepo(t)
	mockClients := mocks.NewMockClientRepo(t)
	dispatcher := webhook.NewDispatcher(mockDeliveries, mockClients, 5*time.Second)

	mockDeliveries.EXPECT().
		GetByID(mock.Anything, "missing").
		Return(nil, webhook.ErrDeliveryNotFound).
		Once()

	_, err := dispatcher.Redeliver(context.Background(), "missing")

	assert.ErrorIs(t, err, webhook.ErrDeliveryNotFound)
}
