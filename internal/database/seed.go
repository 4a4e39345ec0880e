package database

import (
	"log"
	"time"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/acquirer"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
	"gorm.io/gorm"
)

// SeedAcquirerConfigs installs the global default failover sequence used
// in development environments.
func SeedAcquirerConfigs(db *gorm.DB) error {
	configs := []models.AcquirerConfig{
		{
			ID:        "acq-pixium",
			Name:      acquirer.Pixium,
			Enabled:   true,
			Priority:  1,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			ID:        "acq-zendry",
			Name:      acquirer.Zendry,
			Enabled:   true,
			Priority:  2,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			ID:        "acq-efipay",
			Name:      acquirer.Efipay,
			Enabled:   false,
			Priority:  3,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			ID:        "acq-bravapay",
			Name:      acquirer.Bravapay,
			Enabled:   true,
			Priority:  4,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	for _, cfg := range configs {
		result := db.Where(models.AcquirerConfig{ID: cfg.ID}).FirstOrCreate(&cfg)
		if result.Error != nil {
			return result.Error
		}
	}

	log.Println("✅ Acquirer configs seeded successfully")
	return nil
}
