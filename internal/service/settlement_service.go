package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/acquirer"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models/dto"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/repository/posgrest"
)

// ErrTransactionNotFound covers both unknown txids and txids owned by a
// different account, so existence never leaks across accounts.
var ErrTransactionNotFound = errors.New("transaction not found")

const (
	EventTransactionPaid    = "transaction.paid"
	EventTransactionExpired = "transaction.expired"
)

// Dispatcher sends the signed outbound notification for a settled
// transaction. Implementations record the attempt; failures stay inside
// the dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, tx *models.Transaction, event string) error
}

// SettlementService owns the terminal transitions. Every signal source
// (inbound webhooks, reconciliation polls, recovery tooling) funnels
// through MarkPaid/MarkExpired, whose idempotency rests on the
// repository's conditional update.
type SettlementService struct {
	Txs        TransactionRepo
	Acquirers  AcquirerRegistry
	Publisher  Publisher
	Dispatcher Dispatcher

	CallTimeout time.Duration

	// Async controls whether post-settlement side effects run in a
	// detached goroutine. Disabled in tests to keep assertions
	// deterministic.
	Async bool
}

func NewSettlementService(txs TransactionRepo, registry AcquirerRegistry, publisher Publisher, dispatcher Dispatcher, callTimeout time.Duration) *SettlementService {
	if callTimeout <= 0 {
		callTimeout = 15 * time.Second
	}
	return &SettlementService{
		Txs:         txs,
		Acquirers:   registry,
		Publisher:   publisher,
		Dispatcher:  dispatcher,
		CallTimeout: callTimeout,
		Async:       true,
	}
}

// MarkPaid applies the idempotent settlement transition. A transaction
// that is already paid is a normal no-op, never an error. Side effects
// (attribution forwarding, outbound dispatch, settlement event) run only
// for the call that wins the transition, after it commits.
func (s *SettlementService) MarkPaid(ctx context.Context, txid string, paidAtHint *time.Time) error {
	tx, err := s.Txs.GetByTxID(ctx, txid)
	if err != nil {
		if errors.Is(err, posgrest.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}

	paidAt := time.Now().UTC()
	if paidAtHint != nil {
		paidAt = paidAtHint.UTC()
	}

	won, err := s.Txs.MarkPaid(ctx, txid, paidAt)
	if err != nil {
		return err
	}
	if !won {
		logrus.Infof("transaction %s already paid, ignoring duplicate settlement signal", txid)
		return nil
	}

	tx.Status = models.StatusPaid
	tx.PaidAt = &paidAt
	s.afterSettlement(tx, EventTransactionPaid)

	return nil
}

// MarkExpired follows the same guard and never overrides a paid row.
func (s *SettlementService) MarkExpired(ctx context.Context, txid string) error {
	tx, err := s.Txs.GetByTxID(ctx, txid)
	if err != nil {
		if errors.Is(err, posgrest.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}

	expiredAt := time.Now().UTC()
	won, err := s.Txs.MarkExpired(ctx, txid, expiredAt)
	if err != nil {
		return err
	}
	if !won {
		logrus.Infof("transaction %s already terminal, ignoring expiry signal", txid)
		return nil
	}

	tx.Status = models.StatusExpired
	tx.ExpiredAt = &expiredAt
	s.afterSettlement(tx, EventTransactionExpired)

	return nil
}

// Reconcile is the fallback for transactions whose webhook never
// arrived: it pulls the status from the originating acquirer and applies
// the same idempotent transitions. Terminal rows short-circuit without a
// network call. A failed provider check degrades to returning the stored
// row; it never fails the caller.
func (s *SettlementService) Reconcile(ctx context.Context, txid string) (*models.Transaction, error) {
	tx, err := s.Txs.GetByTxID(ctx, txid)
	if err != nil {
		if errors.Is(err, posgrest.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	if tx.IsTerminal() {
		return tx, nil
	}

	adapter, err := s.Acquirers.Get(tx.Acquirer)
	if err != nil {
		logrus.Errorf("reconcile %s: %s", txid, err.Error())
		return tx, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.CallTimeout)
	result, err := adapter.CheckStatus(callCtx, tx.ProviderRef)
	cancel()
	if err != nil {
		logrus.Warnf("reconcile %s: status check failed: %s", txid, err.Error())
		return tx, nil
	}

	switch result.Status {
	case acquirer.StatusPaid:
		if err := s.MarkPaid(ctx, txid, result.PaidAt); err != nil {
			return nil, err
		}
	case acquirer.StatusExpired:
		if err := s.MarkExpired(ctx, txid); err != nil {
			return nil, err
		}
	default:
		return tx, nil
	}

	return s.Txs.GetByTxID(ctx, txid)
}

// GetStatus serves the public status query. An unknown txid and a txid
// owned by another account return the same generic not-found. Pending
// rows are reconciled on demand before answering.
func (s *SettlementService) GetStatus(ctx context.Context, txid, accountID string) (*dto.TransactionStatusResponse, error) {
	tx, err := s.Reconcile(ctx, txid)
	if err != nil {
		return nil, err
	}
	if tx.AccountID != accountID {
		return nil, ErrTransactionNotFound
	}

	return dto.NewTransactionStatusResponse(tx), nil
}

// afterSettlement runs the fire-and-forget side effects of a terminal
// transition. Failures are logged and never roll back or block the
// settlement path, so detachment from the caller's context is
// intentional.
func (s *SettlementService) afterSettlement(tx *models.Transaction, event string) {
	snapshot := *tx

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if event == EventTransactionPaid && snapshot.PaidAt != nil {
			settled := models.PaymentSettledEvent{
				TxID:      snapshot.TxID,
				AccountID: snapshot.AccountID,
				Acquirer:  snapshot.Acquirer,
				Amount:    snapshot.Amount,
				Status:    snapshot.PublicStatus(),
				PaidAt:    *snapshot.PaidAt,
			}
			if err := s.Publisher.Publish(ctx, models.PaymentSettledTopic, settled); err != nil {
				logrus.Errorf("failed to publish settlement event for %s: %s", snapshot.TxID, err.Error())
			}

			attribution := models.AttributionEvent{
				TxID:      snapshot.TxID,
				AccountID: snapshot.AccountID,
				Amount:    snapshot.Amount,
				Metadata:  map[string]string(snapshot.Metadata),
				PaidAt:    *snapshot.PaidAt,
			}
			if err := s.Publisher.Publish(ctx, models.AttributionTopic, attribution); err != nil {
				logrus.Errorf("failed to forward attribution for %s: %s", snapshot.TxID, err.Error())
			}
		}

		if snapshot.APIClientID != "" && s.Dispatcher != nil {
			if err := s.Dispatcher.Dispatch(ctx, &snapshot, event); err != nil {
				logrus.Errorf("outbound dispatch failed for %s: %s", snapshot.TxID, err.Error())
			}
		}
	}

	if s.Async {
		go run()
		return
	}
	run()
}
