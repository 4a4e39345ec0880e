package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/handlers"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/handlers/mocks"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func webhookRouter(settler *mocks.MockSettler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/webhooks/:acquirer", handlers.NewWebhookHandler(settler).HandleCallback)
	return router
}

func postWebhook(router *gin.Engine, path, contentType, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)
	return w
}

func TestHandleCallback_PaidWebhookSettles(t *testing.T) {
	mockSettler := mocks.NewMockSettler(t)
	router := webhookRouter(mockSettler)

	mockSettler.EXPECT().
		MarkPaid(mock.Anything, "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8", mock.AnythingOfType("*time.Time")).
		Return(nil).
		Once()

	w := postWebhook(router, "/webhooks/pixium", "application/json",
		`{"reference":"k2JdPq7Xn4mVb9Ty1ZwQe5R0s8","status":"CONCLUIDO","paid_at":"2026-08-30T14:22:05Z"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleCallback_ExpiredWebhook(t *testing.T) {
	mockSettler := mocks.NewMockSettler(t)
	router := webhookRouter(mockSettler)

	mockSettler.EXPECT().
		MarkExpired(mock.Anything, "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8").
		Return(nil).
		Once()

	w := postWebhook(router, "/webhooks/zendry", "application/x-www-form-urlencoded",
		"external_reference=k2JdPq7Xn4mVb9Ty1ZwQe5R0s8&status=EXPIRED")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleCallback_NonTerminalStatusIgnored(t *testing.T) {
	mockSettler := mocks.NewMockSettler(t)
	router := webhookRouter(mockSettler)

	w := postWebhook(router, "/webhooks/pixium", "application/json",
		`{"reference":"k2JdPq7Xn4mVb9Ty1ZwQe5R0s8","status":"AGUARDANDO_PAGAMENTO"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSettler.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	mockSettler.AssertNotCalled(t, "MarkExpired", mock.Anything, mock.Anything)
}

func TestHandleCallback_MissingCorrelationIDIgnored(t *testing.T) {
	mockSettler := mocks.NewMockSettler(t)
	router := webhookRouter(mockSettler)

	w := postWebhook(router, "/webhooks/pixium", "application/json", `{"status":"CONCLUIDO"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSettler.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleCallback_UnknownAcquirerIs404(t *testing.T) {
	mockSettler := mocks.NewMockSettler(t)
	router := webhookRouter(mockSettler)

	w := postWebhook(router, "/webhooks/stripe", "application/json", `{"id":"x","status":"paid"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCallback_MalformedBodyIs400(t *testing.T) {
	mockSettler := mocks.NewMockSettler(t)
	router := webhookRouter(mockSettler)

	w := postWebhook(router, "/webhooks/pixium", "application/json", "not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCallback_UnknownTxidStill200(t *testing.T) {
	mockSettler := mocks.NewMockSettler(t)
	router := webhookRouter(mockSettler)

	mockSettler.EXPECT().
		MarkPaid(mock.Anything, "k2JdPq7Xn4mVb9Ty1ZwQe5R0s8", mock.Anything).
		Return(service.ErrTransactionNotFound).
		Once()

	w := postWebhook(router, "/webhooks/pixium", "application/json",
		`{"reference":"k2JdPq7Xn4mVb9Ty1ZwQe5R0s8","status":"CONCLUIDO"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}
