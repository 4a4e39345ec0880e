package posgrest

import (
	"context"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
	"gorm.io/gorm"
)

// AcquirerConfigRepository resolves the failover sequence for an
// account. Resolution is an ordered chain: account-scoped rows first,
// falling back to the global defaults (empty account id) when the
// account has no rows of its own.
type AcquirerConfigRepository struct {
	*repository[models.AcquirerConfig]
	db *gorm.DB
}

func NewAcquirerConfigRepository(db *gorm.DB) *AcquirerConfigRepository {
	return &AcquirerConfigRepository{
		repository: New[models.AcquirerConfig](db),
		db:         db,
	}
}

// GetCandidates returns the enabled acquirer rows for the account in
// priority order. An empty result is a configuration condition the
// orchestrator reports distinctly from provider failures.
func (r *AcquirerConfigRepository) GetCandidates(ctx context.Context, accountID string) ([]models.AcquirerConfig, error) {
	var configs []models.AcquirerConfig
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND enabled = ?", accountID, true).
		Order("priority asc").
		Find(&configs).Error
	if err != nil {
		return nil, err
	}
	if len(configs) > 0 {
		return configs, nil
	}

	err = r.db.WithContext(ctx).
		Where("account_id = ? AND enabled = ?", "", true).
		Order("priority asc").
		Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}
