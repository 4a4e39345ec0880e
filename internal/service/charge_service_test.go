package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/acquirer"
	acquirermocks "github.com/soudiegorodrigues/furionpay-sub006/internal/acquirer/mocks"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models/dto"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/service"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newChargeService(t *testing.T) (*service.ChargeService, *mocks.MockTransactionRepo, *mocks.MockAcquirerConfigRepo, *mocks.MockAcquirerRegistry, *mocks.MockPublisher) {
	mockTxs := mocks.NewMockTransactionRepo(t)
	mockConfigs := mocks.NewMockAcquirerConfigRepo(t)
	mockRegistry := mocks.NewMockAcquirerRegistry(t)
	mockPublisher := mocks.NewMockPublisher(t)

	svc := service.NewChargeService(mockTxs, mockConfigs, mockRegistry, mockPublisher, 1_000_000, 5*time.Second)

	return svc, mockTxs, mockConfigs, mockRegistry, mockPublisher
}

func TestCreateCharge_Success(t *testing.T) {
	svc, mockTxs, mockConfigs, mockRegistry, _ := newChargeService(t)
	ctx := context.Background()

	req := &dto.ChargeRequest{
		Amount:    10.00,
		AccountID: "acc-123",
		Metadata:  map[string]string{"utm_source": "instagram"},
	}

	mockConfigs.EXPECT().
		GetCandidates(ctx, "acc-123").
		Return([]models.AcquirerConfig{
			{Name: acquirer.Pixium, Enabled: true, Priority: 1},
		}, nil).
		Once()

	mockAdapter := acquirermocks.NewMockAcquirer(t)
	mockRegistry.EXPECT().
		Get(acquirer.Pixium).
		Return(mockAdapter, nil).
		Once()

	mockAdapter.EXPECT().
		CreateCharge(mock.Anything, mock.MatchedBy(func(r acquirer.ChargeRequest) bool {
			return r.Amount == 10.00 && len(r.CallbackID) == models.TxIDLength
		})).
		Return(&acquirer.ChargeResult{PaymentCode: "00020126pixcode", ProviderRef: "ref-1"}, nil).
		Once()

	mockTxs.EXPECT().
		Create(ctx, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.Status == models.StatusGenerated &&
				tx.Acquirer == acquirer.Pixium &&
				tx.Amount == 10.00 &&
				len(tx.TxID) == models.TxIDLength &&
				tx.Metadata["utm_source"] == "instagram"
		})).
		Return(nil).
		Once()

	resp, err := svc.CreateCharge(ctx, req)

	assert.NoError(t, err)
	assert.Len(t, resp.TxID, models.TxIDLength)
	assert.Equal(t, "00020126pixcode", resp.PaymentCode)
	assert.Equal(t, acquirer.Pixium, resp.Acquirer)
}

func TestCreateCharge_FailoverToSecondAcquirer(t *testing.T) {
	svc, mockTxs, mockConfigs, mockRegistry, mockPublisher := newChargeService(t)
	ctx := context.Background()

	req := &dto.ChargeRequest{Amount: 50.00, AccountID: "acc-123"}

	// First candidate fault-injected, so failover must land on zendry
	// and a monitoring event must be recorded for pixium.
	mockConfigs.EXPECT().
		GetCandidates(ctx, "acc-123").
		Return([]models.AcquirerConfig{
			{Name: acquirer.Pixium, Enabled: true, Priority: 1, ForceFailure: true},
			{Name: acquirer.Zendry, Enabled: true, Priority: 2},
		}, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.AcquirerFailureTopic, mock.MatchedBy(func(evt models.AcquirerFailureEvent) bool {
			return evt.Acquirer == acquirer.Pixium && evt.AccountID == "acc-123"
		})).
		Return(nil).
		Once()

	mockAdapter := acquirermocks.NewMockAcquirer(t)
	mockRegistry.EXPECT().
		Get(acquirer.Zendry).
		Return(mockAdapter, nil).
		Once()

	mockAdapter.EXPECT().
		CreateCharge(mock.Anything, mock.AnythingOfType("acquirer.ChargeRequest")).
		Return(&acquirer.ChargeResult{PaymentCode: "qrcode-content", ProviderRef: "zdr-9"}, nil).
		Once()

	mockTxs.EXPECT().
		Create(ctx, mock.MatchedBy(func(tx *models.Transaction) bool {
			return tx.Acquirer == acquirer.Zendry
		})).
		Return(nil).
		Once()

	resp, err := svc.CreateCharge(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, acquirer.Zendry, resp.Acquirer)
}

func TestCreateCharge_AllAcquirersFail(t *testing.T) {
	svc, mockTxs, mockConfigs, mockRegistry, mockPublisher := newChargeService(t)
	ctx := context.Background()

	req := &dto.ChargeRequest{Amount: 25.00, AccountID: "acc-456"}

	mockConfigs.EXPECT().
		GetCandidates(ctx, "acc-456").
		Return([]models.AcquirerConfig{
			{Name: acquirer.Pixium, Enabled: true, Priority: 1},
			{Name: acquirer.Bravapay, Enabled: true, Priority: 2},
		}, nil).
		Once()

	mockAdapter := acquirermocks.NewMockAcquirer(t)
	mockRegistry.EXPECT().Get(acquirer.Pixium).Return(mockAdapter, nil).Once()
	mockRegistry.EXPECT().Get(acquirer.Bravapay).Return(mockAdapter, nil).Once()

	mockAdapter.EXPECT().
		CreateCharge(mock.Anything, mock.AnythingOfType("acquirer.ChargeRequest")).
		Return(nil, acquirer.ErrChargeFailed).
		Times(2)

	mockPublisher.EXPECT().
		Publish(ctx, models.AcquirerFailureTopic, mock.AnythingOfType("models.AcquirerFailureEvent")).
		Return(nil).
		Times(2)

	resp, err := svc.CreateCharge(ctx, req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, service.ErrAllAcquirersFailed)
	mockTxs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCharge_NoAcquirerConfigured(t *testing.T) {
	svc, mockTxs, mockConfigs, _, _ := newChargeService(t)
	ctx := context.Background()

	mockConfigs.EXPECT().
		GetCandidates(ctx, "acc-empty").
		Return([]models.AcquirerConfig{}, nil).
		Once()

	resp, err := svc.CreateCharge(ctx, &dto.ChargeRequest{Amount: 10.00, AccountID: "acc-empty"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, service.ErrNoAcquirerAvailable)
	mockTxs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCharge_InvalidAmount(t *testing.T) {
	svc, _, mockConfigs, _, _ := newChargeService(t)
	ctx := context.Background()

	_, err := svc.CreateCharge(ctx, &dto.ChargeRequest{Amount: 0, AccountID: "acc-123"})
	assert.Error(t, err)

	_, err = svc.CreateCharge(ctx, &dto.ChargeRequest{Amount: 2_000_000, AccountID: "acc-123"})
	assert.Error(t, err)

	mockConfigs.AssertNotCalled(t, "GetCandidates", mock.Anything, mock.Anything)
}
