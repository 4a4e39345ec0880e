package posgrest

import (
	"context"
	"errors"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
	"gorm.io/gorm"
)

var ErrApiClientNotFound = errors.New("api client not found")

type ApiClientRepository struct {
	*repository[models.ApiClient]
	db *gorm.DB
}

func NewApiClientRepository(db *gorm.DB) *ApiClientRepository {
	return &ApiClientRepository{
		repository: New[models.ApiClient](db),
		db:         db,
	}
}

// GetByKeyHash looks up an active client by the digest of its API key.
func (r *ApiClientRepository) GetByKeyHash(ctx context.Context, keyHash string) (*models.ApiClient, error) {
	var client models.ApiClient
	err := r.db.WithContext(ctx).
		Where("api_key_hash = ? AND active = ?", keyHash, true).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApiClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// IncrementUsage bumps the client's request counter in place.
func (r *ApiClientRepository) IncrementUsage(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.ApiClient{}).
		Where("id = ?", id).
		UpdateColumn("request_count", gorm.Expr("request_count + 1")).Error
}
