package acquirer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/acquirer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixiumCreateCharge(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pix/charges", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"px-123","qr_code_copy_paste":"00020126...","status":"AGUARDANDO_PAGAMENTO"}`))
	}))
	defer server.Close()

	adapter := acquirer.NewPixiumAdapter(server.URL, "tok-abc", 5*time.Second)

	result, err := adapter.CreateCharge(context.Background(), acquirer.ChargeRequest{
		Amount:      49.90,
		Description: "Pedido ORD-1",
		CallbackID:  "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8",
	})

	require.NoError(t, err)
	assert.Equal(t, "px-123", result.ProviderRef)
	assert.Equal(t, "00020126...", result.PaymentCode)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "49.90", gotPayload["value"])
	assert.Equal(t, "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8", gotPayload["reference"])
}

func TestPixiumCreateCharge_ServerErrorWrapsChargeFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := acquirer.NewPixiumAdapter(server.URL, "tok-abc", 5*time.Second)

	result, err := adapter.CreateCharge(context.Background(), acquirer.ChargeRequest{
		Amount:      10,
		Description: "Cobranca",
		CallbackID:  "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, acquirer.ErrChargeFailed)
}

func TestPixiumCreateCharge_IncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"px-123"}`))
	}))
	defer server.Close()

	adapter := acquirer.NewPixiumAdapter(server.URL, "tok-abc", 5*time.Second)

	_, err := adapter.CreateCharge(context.Background(), acquirer.ChargeRequest{
		Amount:      10,
		Description: "Cobranca",
		CallbackID:  "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8",
	})

	assert.ErrorIs(t, err, acquirer.ErrChargeFailed)
}

func TestPixiumCheckStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/pix/charges/px-123", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"px-123","status":"CONCLUIDO","paid_at":"2026-08-30T14:22:05Z"}`))
	}))
	defer server.Close()

	adapter := acquirer.NewPixiumAdapter(server.URL, "tok-abc", 5*time.Second)

	result, err := adapter.CheckStatus(context.Background(), "px-123")

	require.NoError(t, err)
	assert.Equal(t, acquirer.StatusPaid, result.Status)
	require.NotNil(t, result.PaidAt)
}
