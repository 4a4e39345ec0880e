package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionStatus string

const (
	StatusGenerated TransactionStatus = "GENERATED"
	StatusPaid      TransactionStatus = "PAID"
	StatusExpired   TransactionStatus = "EXPIRED"

	TxIDLength = 26
)

// JSONMap is a free-form attribution bag persisted verbatim as JSONB so
// the exact key/value pairs survive into outbound webhook payloads.
type JSONMap map[string]string

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata column type %T", value)
	}
	return json.Unmarshal(raw, m)
}

func (JSONMap) GormDataType() string {
	return "jsonb"
}

// Transaction is one instant-payment charge. TxID is the caller-generated
// correlation id shared with the acquirer; it is the key both webhook
// matching and polling use. Settlement is terminal: once Status is PAID
// neither Status nor PaidAt may change again.
type Transaction struct {
	ID          string            `json:"id" gorm:"primaryKey"`
	TxID        string            `json:"txid" gorm:"column:txid;uniqueIndex;size:26"`
	Amount      float64           `json:"amount"`
	Status      TransactionStatus `json:"status" gorm:"index"`
	Acquirer    string            `json:"acquirer"`
	PaymentCode string            `json:"payment_code"`
	ProviderRef string            `json:"provider_ref"`

	AccountID   string `json:"account_id" gorm:"index"`
	APIClientID string `json:"api_client_id,omitempty" gorm:"index"`

	PayerName     string  `json:"payer_name,omitempty"`
	PayerDocument string  `json:"payer_document,omitempty"`
	PayerEmail    string  `json:"payer_email,omitempty"`
	Metadata      JSONMap `json:"metadata" gorm:"type:jsonb"`

	ExternalReference string `json:"external_reference,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	ExpiredAt *time.Time `json:"expired_at,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	return
}

func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	if len(t.TxID) != TxIDLength {
		return fmt.Errorf("txid must be %d characters", TxIDLength)
	}
	if t.AccountID == "" {
		return fmt.Errorf("account ID is required")
	}
	if t.Acquirer == "" {
		return fmt.Errorf("acquirer is required")
	}

	return nil
}

// IsTerminal reports whether the transaction reached a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusPaid || t.Status == StatusExpired
}

// PublicStatus collapses the internal lifecycle into the three-value
// vocabulary exposed to API clients.
func (t *Transaction) PublicStatus() string {
	switch t.Status {
	case StatusPaid:
		return "paid"
	case StatusExpired:
		return "expired"
	default:
		return "pending"
	}
}

func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusGenerated, StatusPaid, StatusExpired:
		return true
	default:
		return false
	}
}
