package acquirer_test

import (
	"testing"
	"time"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/acquirer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhook_PixiumJSON(t *testing.T) {
	body := []byte(`{"reference":"k2JdPq7Xn4mVb9Ty1ZwQe5R0s8","status":"CONCLUIDO","paid_at":"2026-08-30T14:22:05Z"}`)

	notification, err := acquirer.ParseWebhook(acquirer.Pixium, "application/json", body)

	require.NoError(t, err)
	assert.Equal(t, "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8", notification.CorrelationID)
	assert.Equal(t, acquirer.StatusPaid, notification.Status)
	require.NotNil(t, notification.PaidAt)
	assert.Equal(t, time.Date(2026, 8, 30, 14, 22, 5, 0, time.UTC), notification.PaidAt.UTC())
}

func TestParseWebhook_ZendryFormEncoded(t *testing.T) {
	body := []byte("external_reference=k2JdPq7Xn4mVb9Ty1ZwQe5R0s8&status=PAID_OUT&value_cents=1000")

	notification, err := acquirer.ParseWebhook(acquirer.Zendry, "application/x-www-form-urlencoded", body)

	require.NoError(t, err)
	assert.Equal(t, "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8", notification.CorrelationID)
	assert.Equal(t, "PAID_OUT", notification.RawStatus)
	assert.Equal(t, acquirer.StatusPaid, notification.Status)
}

func TestParseWebhook_ZendryFallsBackToSecondaryIDKey(t *testing.T) {
	body := []byte(`{"reference_code":"k2JdPq7Xn4mVb9Ty1ZwQe5R0s8","state":"WAITING"}`)

	notification, err := acquirer.ParseWebhook(acquirer.Zendry, "application/json", body)

	require.NoError(t, err)
	assert.Equal(t, "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8", notification.CorrelationID)
	assert.Equal(t, acquirer.StatusAwaitingPayment, notification.Status)
}

func TestParseWebhook_EfipayNestedPixArray(t *testing.T) {
	body := []byte(`{"pix":[{"txid":"k2JdPq7Xn4mVb9Ty1ZwQe5R0s8","status":"CONCLUIDA","horario":"2026-08-30T14:22:05-03:00"}]}`)

	notification, err := acquirer.ParseWebhook(acquirer.Efipay, "application/json", body)

	require.NoError(t, err)
	assert.Equal(t, "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8", notification.CorrelationID)
	assert.Equal(t, acquirer.StatusPaid, notification.Status)
	assert.NotNil(t, notification.PaidAt)
}

func TestParseWebhook_BravapayNestedObject(t *testing.T) {
	body := []byte(`{"event":"transaction.updated","data":{"merchant_reference":"k2JdPq7Xn4mVb9Ty1ZwQe5R0s8","payment_status":"REFUSED"}}`)

	notification, err := acquirer.ParseWebhook(acquirer.Bravapay, "application/json", body)

	require.NoError(t, err)
	assert.Equal(t, "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8", notification.CorrelationID)
	assert.Equal(t, acquirer.StatusExpired, notification.Status)
}

func TestParseWebhook_MissingCorrelationID(t *testing.T) {
	body := []byte(`{"status":"CONCLUIDO"}`)

	notification, err := acquirer.ParseWebhook(acquirer.Pixium, "application/json", body)

	require.NoError(t, err)
	assert.Empty(t, notification.CorrelationID)
}

func TestParseWebhook_UnknownStatusStaysPending(t *testing.T) {
	body := []byte(`{"reference":"k2JdPq7Xn4mVb9Ty1ZwQe5R0s8","status":"SOMETHING_NEW"}`)

	notification, err := acquirer.ParseWebhook(acquirer.Pixium, "application/json", body)

	require.NoError(t, err)
	assert.Equal(t, acquirer.StatusPending, notification.Status)
}

func TestParseWebhook_UnknownAcquirer(t *testing.T) {
	_, err := acquirer.ParseWebhook("stripe", "application/json", []byte(`{}`))

	assert.ErrorIs(t, err, acquirer.ErrUnknownAcquirer)
}

func TestParseWebhook_MalformedBody(t *testing.T) {
	_, err := acquirer.ParseWebhook(acquirer.Pixium, "application/json", []byte("not json"))

	assert.Error(t, err)
}
