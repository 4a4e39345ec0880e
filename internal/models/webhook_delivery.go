package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "PENDING"
	DeliverySuccess DeliveryStatus = "SUCCESS"
	DeliveryFailed  DeliveryStatus = "FAILED"

	// ResponseBodyLimit caps how much of the receiver's response body is
	// persisted on each delivery record.
	ResponseBodyLimit = 512
)

// WebhookDelivery records one outbound notification and the outcome of
// every attempt against it. AttemptCount only grows; Status moves from
// PENDING to SUCCESS or FAILED and is never reversed.
type WebhookDelivery struct {
	ID            string `json:"id" gorm:"primaryKey"`
	TransactionID string `json:"transaction_id" gorm:"index"`
	APIClientID   string `json:"api_client_id" gorm:"index"`

	TargetURL string `json:"target_url"`
	Event     string `json:"event"`
	Payload   string `json:"payload"`

	Status       DeliveryStatus `json:"status" gorm:"index"`
	AttemptCount int            `json:"attempt_count"`
	LastCode     int            `json:"last_code"`
	LastBody     string         `json:"last_body"`
	LastAttempt  *time.Time     `json:"last_attempt,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *WebhookDelivery) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	return
}
