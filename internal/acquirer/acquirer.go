package acquirer

import (
	"context"
	"errors"
	"time"
)

// Supported acquirer names. These are the keys of the registry, the
// AcquirerConfig rows and the inbound webhook routes.
const (
	Pixium   = "pixium"
	Zendry   = "zendry"
	Efipay   = "efipay"
	Bravapay = "bravapay"
)

// Status is the closed vocabulary every provider-specific status string
// normalizes into.
type Status string

const (
	StatusPending         Status = "pending"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusPaid            Status = "paid"
	StatusExpired         Status = "expired"
)

// ErrChargeFailed is the single error surfaced for any provider-side
// failure: network error, non-2xx response or unparsable body. The
// orchestrator treats them all the same for failover purposes.
var ErrChargeFailed = errors.New("acquirer charge/check failed")

// ChargeRequest is the provider-agnostic charge input. CallbackID is the
// txid the acquirer echoes back on webhooks and status checks.
type ChargeRequest struct {
	Amount      float64
	Description string
	CallbackID  string
	PayerName   string
}

// ChargeResult carries what the caller needs to present the charge and to
// correlate it later. ProviderRef is the key used for both polling and
// webhook matching.
type ChargeResult struct {
	PaymentCode string
	ProviderRef string
}

// StatusResult is the provider-agnostic status-check output.
type StatusResult struct {
	Status Status
	PaidAt *time.Time
}

// Acquirer is the uniform contract every provider adapter implements.
// Adapters perform the outbound HTTP call and nothing else; they never
// touch persistence and never partially apply state.
type Acquirer interface {
	Name() string
	CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	CheckStatus(ctx context.Context, providerRef string) (*StatusResult, error)
}

func (r ChargeRequest) validate() error {
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if r.Description == "" {
		return errors.New("description is required")
	}
	if r.CallbackID == "" {
		return errors.New("callback id is required")
	}
	return nil
}
