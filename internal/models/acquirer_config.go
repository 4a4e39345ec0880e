package models

import (
	"time"
)

// AcquirerConfig is one row per provider per owning account scope.
// AccountID empty means the row is a global default; account-scoped rows
// take precedence when building the failover sequence.
type AcquirerConfig struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"index"`
	AccountID string `json:"account_id" gorm:"index"`

	Enabled  bool `json:"enabled"`
	Priority int  `json:"priority"`

	// ForceFailure makes the orchestrator fail this acquirer at execution
	// time without any network call, so failover can be exercised
	// deterministically in test mode.
	ForceFailure bool `json:"force_failure"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
