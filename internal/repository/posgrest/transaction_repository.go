package posgrest

import (
	"context"
	"errors"
	"time"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository extends the generic repository with the
// correlation-id lookup and the two terminal transitions. The
// transitions are single conditional UPDATE statements so concurrent
// webhooks and polls race safely at the database, not in application
// memory.
type TransactionRepository struct {
	*repository[models.Transaction]
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{
		repository: New[models.Transaction](db),
		db:         db,
	}
}

func (r *TransactionRepository) GetByTxID(ctx context.Context, txid string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).Where("txid = ?", txid).First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// MarkPaid sets status = PAID and paid_at atomically, guarded on the row
// not already being paid. The bool result reports whether this call won
// the transition; false means some earlier signal already settled the
// transaction and the caller should treat the outcome as a no-op.
func (r *TransactionRepository) MarkPaid(ctx context.Context, txid string, paidAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("txid = ? AND status <> ?", txid, models.StatusPaid).
		Updates(map[string]interface{}{
			"status":  models.StatusPaid,
			"paid_at": paidAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkExpired follows the same guard as MarkPaid and additionally never
// overrides a settled transaction.
func (r *TransactionRepository) MarkExpired(ctx context.Context, txid string, expiredAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("txid = ? AND status NOT IN ?", txid, []models.TransactionStatus{models.StatusPaid, models.StatusExpired}).
		Updates(map[string]interface{}{
			"status":     models.StatusExpired,
			"expired_at": expiredAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
