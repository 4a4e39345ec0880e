package acquirer

import "strings"

// statusTables enumerates every documented status string per acquirer.
// The tables are deliberately explicit: near-duplicate variants caused by
// accents or broken encodings ("CONCLUÍDA", "CONCLUÃDA") are listed one
// by one. Anything not listed normalizes to pending — an unseen value
// must never be assumed paid.
var statusTables = map[string]map[string]Status{
	Pixium: {
		"CONCLUIDO":            StatusPaid,
		"AGUARDANDO_PAGAMENTO": StatusAwaitingPayment,
		"EXPIRADO":             StatusExpired,
		"CANCELADO":            StatusExpired,
	},
	Zendry: {
		"PAID_OUT":             StatusPaid,
		"AGUARDANDO_PAGAMENTO": StatusAwaitingPayment,
		"WAITING":              StatusAwaitingPayment,
		"EXPIRED":              StatusExpired,
		"CANCELLED":            StatusExpired,
	},
	Efipay: {
		"CONCLUIDA": StatusPaid,
		"CONCLUÍDA": StatusPaid,
		"CONCLUÃDA": StatusPaid,
		"ATIVA":     StatusAwaitingPayment,
		"REMOVIDA_PELO_USUARIO_RECEBEDOR": StatusExpired,
		"REMOVIDA_PELO_PSP":               StatusExpired,
		"EXPIRADA":                        StatusExpired,
	},
	Bravapay: {
		"AUTHORIZED": StatusPaid,
		"PAID":       StatusPaid,
		"PENDING":    StatusAwaitingPayment,
		"CREATED":    StatusAwaitingPayment,
		"EXPIRED":    StatusExpired,
		"REFUSED":    StatusExpired,
	},
}

// NormalizeStatus maps one acquirer's raw status string into the closed
// vocabulary. Unknown acquirers and unknown strings both fail safe to
// pending.
func NormalizeStatus(acquirerName, raw string) Status {
	table, ok := statusTables[acquirerName]
	if !ok {
		return StatusPending
	}
	status, ok := table[strings.ToUpper(strings.TrimSpace(raw))]
	if !ok {
		return StatusPending
	}
	return status
}
