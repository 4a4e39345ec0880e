package models

import "time"

const (
	AcquirerFailureTopic = "acquirers.failures"
	AttributionTopic     = "attribution.events"
	PaymentSettledTopic  = "payments.settled"
	PaymentsDLQTopic     = "payments.dlq"
)

// AcquirerFailureEvent is the monitoring record emitted each time a
// charge attempt against one acquirer fails and failover moves on.
type AcquirerFailureEvent struct {
	Acquirer  string    `json:"acquirer"`
	TxID      string    `json:"txid"`
	AccountID string    `json:"account_id"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// AttributionEvent forwards the transaction's attribution bag once
// settlement commits. Delivery is fire-and-forget.
type AttributionEvent struct {
	TxID      string            `json:"txid"`
	AccountID string            `json:"account_id"`
	Amount    float64           `json:"amount"`
	Metadata  map[string]string `json:"metadata"`
	PaidAt    time.Time         `json:"paid_at"`
}

type PaymentSettledEvent struct {
	TxID      string    `json:"txid"`
	AccountID string    `json:"account_id"`
	Acquirer  string    `json:"acquirer"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	PaidAt    time.Time `json:"paid_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
