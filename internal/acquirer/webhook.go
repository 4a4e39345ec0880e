package acquirer

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// webhookShape lists, per acquirer, the field names its callbacks use
// for the correlation id, the raw status and the payment timestamp.
// Adding an acquirer means adding one entry here, not new branching.
type webhookShape struct {
	IDKeys     []string
	StatusKeys []string
	PaidAtKeys []string
}

var webhookShapes = map[string]webhookShape{
	Pixium: {
		IDKeys:     []string{"reference", "txid"},
		StatusKeys: []string{"status"},
		PaidAtKeys: []string{"paid_at"},
	},
	Zendry: {
		IDKeys:     []string{"external_reference", "reference_code"},
		StatusKeys: []string{"status", "state"},
		PaidAtKeys: []string{"payment_date"},
	},
	Efipay: {
		IDKeys:     []string{"txid"},
		StatusKeys: []string{"status"},
		PaidAtKeys: []string{"horario"},
	},
	Bravapay: {
		IDKeys:     []string{"merchant_reference", "transaction_id"},
		StatusKeys: []string{"status", "payment_status"},
		PaidAtKeys: []string{"approved_at"},
	},
}

// WebhookNotification is the provider-agnostic result of parsing one
// inbound callback. CorrelationID may be empty when the payload parsed
// but carried no recognizable id; that is the caller's edge case to log,
// not an error.
type WebhookNotification struct {
	CorrelationID string
	RawStatus     string
	Status        Status
	PaidAt        *time.Time
}

var ErrUnknownAcquirer = errors.New("unknown acquirer")

// ParseWebhook extracts and normalizes one callback body. JSON and
// form-encoded payloads are both accepted; JSON objects are flattened one
// level (nested objects and first elements of arrays) so shapes like
// Efí's pix array resolve without acquirer-specific code paths.
func ParseWebhook(acquirerName, contentType string, body []byte) (*WebhookNotification, error) {
	shape, ok := webhookShapes[acquirerName]
	if !ok {
		return nil, ErrUnknownAcquirer
	}

	fields, err := parseBody(contentType, body)
	if err != nil {
		return nil, err
	}

	notification := &WebhookNotification{
		CorrelationID: firstValue(fields, shape.IDKeys),
		RawStatus:     firstValue(fields, shape.StatusKeys),
	}
	notification.Status = NormalizeStatus(acquirerName, notification.RawStatus)

	if hint := firstValue(fields, shape.PaidAtKeys); hint != "" {
		if paidAt, err := time.Parse(time.RFC3339, hint); err == nil {
			notification.PaidAt = &paidAt
		}
	}

	return notification, nil
}

func parseBody(contentType string, body []byte) (map[string]string, error) {
	if strings.Contains(contentType, "application/x-www-form-urlencoded") {
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("parsing form body: %w", err)
		}
		fields := make(map[string]string, len(values))
		for key := range values {
			fields[key] = values.Get(key)
		}
		return fields, nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing json body: %w", err)
	}
	return flatten(raw), nil
}

// flatten collapses one level of nesting into dotless keys. Outer keys
// win over nested ones when names collide.
func flatten(raw map[string]interface{}) map[string]string {
	fields := make(map[string]string)
	var nested []map[string]interface{}

	for key, value := range raw {
		switch v := value.(type) {
		case map[string]interface{}:
			nested = append(nested, v)
		case []interface{}:
			if len(v) > 0 {
				if obj, ok := v[0].(map[string]interface{}); ok {
					nested = append(nested, obj)
				}
			}
		default:
			fields[key] = scalarString(v)
		}
	}

	for _, obj := range nested {
		for key, value := range obj {
			if _, exists := fields[key]; exists {
				continue
			}
			switch value.(type) {
			case map[string]interface{}, []interface{}:
			default:
				fields[key] = scalarString(value)
			}
		}
	}

	return fields
}

func scalarString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func firstValue(fields map[string]string, keys []string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(fields[key]); v != "" {
			return v
		}
	}
	return ""
}
