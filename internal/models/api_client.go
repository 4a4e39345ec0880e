package models

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApiClient is an external consumer of the public status/webhook surface.
// API keys are stored as SHA-256 digests, never in plaintext.
type ApiClient struct {
	ID        string `json:"id" gorm:"primaryKey"`
	AccountID string `json:"account_id" gorm:"index"`
	Name      string `json:"name"`

	APIKeyHash string `json:"-" gorm:"index"`

	WebhookURL    string `json:"webhook_url"`
	WebhookSecret string `json:"-"`

	Active       bool  `json:"active"`
	RequestCount int64 `json:"request_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *ApiClient) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	return
}

// HashAPIKey returns the hex digest under which a raw key is stored.
func HashAPIKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// MatchesKey compares a presented raw key against the stored digest in
// constant time.
func (c *ApiClient) MatchesKey(raw string) bool {
	digest := HashAPIKey(raw)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(c.APIKeyHash)) == 1
}
