package acquirer_test

import (
	"testing"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/acquirer"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	testCases := []struct {
		name     string
		acquirer string
		raw      string
		expected acquirer.Status
	}{
		{"pixium paid", acquirer.Pixium, "CONCLUIDO", acquirer.StatusPaid},
		{"pixium awaiting", acquirer.Pixium, "AGUARDANDO_PAGAMENTO", acquirer.StatusAwaitingPayment},
		{"pixium expired", acquirer.Pixium, "EXPIRADO", acquirer.StatusExpired},
		{"pixium cancelled", acquirer.Pixium, "CANCELADO", acquirer.StatusExpired},
		{"zendry paid", acquirer.Zendry, "PAID_OUT", acquirer.StatusPaid},
		{"zendry awaiting", acquirer.Zendry, "AGUARDANDO_PAGAMENTO", acquirer.StatusAwaitingPayment},
		{"zendry waiting", acquirer.Zendry, "WAITING", acquirer.StatusAwaitingPayment},
		{"zendry cancelled", acquirer.Zendry, "CANCELLED", acquirer.StatusExpired},
		{"efipay paid plain", acquirer.Efipay, "CONCLUIDA", acquirer.StatusPaid},
		{"efipay paid accented", acquirer.Efipay, "CONCLUÍDA", acquirer.StatusPaid},
		{"efipay paid mojibake", acquirer.Efipay, "CONCLUÃDA", acquirer.StatusPaid},
		{"efipay active", acquirer.Efipay, "ATIVA", acquirer.StatusAwaitingPayment},
		{"efipay removed by payer", acquirer.Efipay, "REMOVIDA_PELO_USUARIO_RECEBEDOR", acquirer.StatusExpired},
		{"efipay removed by psp", acquirer.Efipay, "REMOVIDA_PELO_PSP", acquirer.StatusExpired},
		{"bravapay authorized", acquirer.Bravapay, "AUTHORIZED", acquirer.StatusPaid},
		{"bravapay paid", acquirer.Bravapay, "PAID", acquirer.StatusPaid},
		{"bravapay created", acquirer.Bravapay, "CREATED", acquirer.StatusAwaitingPayment},
		{"bravapay refused", acquirer.Bravapay, "REFUSED", acquirer.StatusExpired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, acquirer.NormalizeStatus(tc.acquirer, tc.raw))
		})
	}
}

func TestNormalizeStatus_IsCaseAndSpaceInsensitive(t *testing.T) {
	assert.Equal(t, acquirer.StatusPaid, acquirer.NormalizeStatus(acquirer.Pixium, " concluido "))
	assert.Equal(t, acquirer.StatusPaid, acquirer.NormalizeStatus(acquirer.Zendry, "paid_out"))
	assert.Equal(t, acquirer.StatusPaid, acquirer.NormalizeStatus(acquirer.Efipay, "concluída"))
}

func TestNormalizeStatus_UnknownValuesFailSafeToPending(t *testing.T) {
	assert.Equal(t, acquirer.StatusPending, acquirer.NormalizeStatus(acquirer.Pixium, "APPROVED"))
	assert.Equal(t, acquirer.StatusPending, acquirer.NormalizeStatus(acquirer.Zendry, ""))
	assert.Equal(t, acquirer.StatusPending, acquirer.NormalizeStatus("nonexistent", "PAID"))
}
