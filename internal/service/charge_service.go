package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/acquirer"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models/dto"
)

// ErrNoAcquirerAvailable is the configuration error for accounts with
// zero enabled acquirers; it is never the result of provider failures.
var ErrNoAcquirerAvailable = errors.New("no acquirer enabled for account")

// ErrAllAcquirersFailed is returned when every failover candidate was
// attempted and none produced a charge.
var ErrAllAcquirersFailed = errors.New("all acquirers failed to create charge")

// TransactionRepo defines the persistence operations the orchestrator
// needs for transaction rows.
type TransactionRepo interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByTxID(ctx context.Context, txid string) (*models.Transaction, error)
	MarkPaid(ctx context.Context, txid string, paidAt time.Time) (bool, error)
	MarkExpired(ctx context.Context, txid string, expiredAt time.Time) (bool, error)
}

// AcquirerConfigRepo resolves the ordered failover sequence per account.
type AcquirerConfigRepo interface {
	GetCandidates(ctx context.Context, accountID string) ([]models.AcquirerConfig, error)
}

// AcquirerRegistry resolves adapters by acquirer name.
type AcquirerRegistry interface {
	Get(name string) (acquirer.Acquirer, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// ChargeService orchestrates charge creation: it builds the candidate
// acquirer sequence, generates the correlation id and walks the sequence
// until one provider accepts the charge.
type ChargeService struct {
	Txs       TransactionRepo
	Configs   AcquirerConfigRepo
	Acquirers AcquirerRegistry
	Publisher Publisher

	MaxAmount   float64
	CallTimeout time.Duration
}

func NewChargeService(txs TransactionRepo, configs AcquirerConfigRepo, registry AcquirerRegistry, publisher Publisher, maxAmount float64, callTimeout time.Duration) *ChargeService {
	if maxAmount <= 0 {
		maxAmount = 1_000_000
	}
	if callTimeout <= 0 {
		callTimeout = 15 * time.Second
	}
	return &ChargeService{
		Txs:         txs,
		Configs:     configs,
		Acquirers:   registry,
		Publisher:   publisher,
		MaxAmount:   maxAmount,
		CallTimeout: callTimeout,
	}
}

// CreateCharge validates the request, resolves the failover sequence and
// tries each candidate strictly in order. Exactly one Transaction row is
// created, and only on success; a total failure leaves no partial state.
func (s *ChargeService) CreateCharge(ctx context.Context, req *dto.ChargeRequest) (*dto.ChargeResponse, error) {
	req.Sanitize()
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	candidates, err := s.Configs.GetCandidates(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("resolving acquirer candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoAcquirerAvailable
	}

	txid, err := GenerateTxID()
	if err != nil {
		return nil, err
	}

	chargeReq := acquirer.ChargeRequest{
		Amount:      req.Amount,
		Description: chargeDescription(req, txid),
		CallbackID:  txid,
	}
	if req.Payer != nil {
		chargeReq.PayerName = req.Payer.Name
	}

	for _, candidate := range candidates {
		// Test-mode fault injection: the candidate stays in the sequence
		// and fails at execution time, so failover is exercised the same
		// way a real provider outage would exercise it.
		if candidate.ForceFailure {
			s.recordFailure(ctx, candidate.Name, txid, req.AccountID, "forced failure (test mode)")
			continue
		}

		adapter, err := s.Acquirers.Get(candidate.Name)
		if err != nil {
			s.recordFailure(ctx, candidate.Name, txid, req.AccountID, err.Error())
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, s.CallTimeout)
		result, err := adapter.CreateCharge(callCtx, chargeReq)
		cancel()
		if err != nil {
			s.recordFailure(ctx, candidate.Name, txid, req.AccountID, err.Error())
			continue
		}

		tx := req.ToEntity()
		tx.TxID = txid
		tx.Acquirer = candidate.Name
		tx.PaymentCode = result.PaymentCode
		tx.ProviderRef = result.ProviderRef
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		if err := s.Txs.Create(ctx, tx); err != nil {
			return nil, fmt.Errorf("persisting transaction: %w", err)
		}

		return &dto.ChargeResponse{
			TxID:        txid,
			PaymentCode: result.PaymentCode,
			ProviderRef: result.ProviderRef,
			Acquirer:    candidate.Name,
		}, nil
	}

	return nil, ErrAllAcquirersFailed
}

func (s *ChargeService) validateRequest(req *dto.ChargeRequest) error {
	if req.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if req.Amount > s.MaxAmount {
		return fmt.Errorf("amount exceeds the maximum of %.2f", s.MaxAmount)
	}
	if req.AccountID == "" {
		return fmt.Errorf("account ID is required")
	}
	return nil
}

// recordFailure emits the monitoring event for one failed candidate.
// Publishing problems are logged, never allowed to abort failover.
func (s *ChargeService) recordFailure(ctx context.Context, acquirerName, txid, accountID, reason string) {
	logrus.Warnf("acquirer %s failed for txid %s: %s", acquirerName, txid, reason)
	event := models.AcquirerFailureEvent{
		Acquirer:  acquirerName,
		TxID:      txid,
		AccountID: accountID,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, models.AcquirerFailureTopic, event); err != nil {
		logrus.Errorf("failed to publish acquirer failure event: %s", err.Error())
	}
}

func chargeDescription(req *dto.ChargeRequest, txid string) string {
	if req.ExternalReference != "" {
		return "Pedido " + req.ExternalReference
	}
	return "Cobranca " + txid
}
