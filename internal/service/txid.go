package service

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
)

const txidCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// reservedTxidPrefixes are claimed by other correlation flows
// (withdrawals, subscription billing). A charge txid must never start
// with one of them so ids stay distinguishable across subsystems.
var reservedTxidPrefixes = []string{"WDR", "SUB", "REF"}

// GenerateTxID returns a fixed-length random alphanumeric correlation
// id, regenerating on the rare draw that collides with a reserved
// prefix.
func GenerateTxID() (string, error) {
	for {
		txid, err := randomAlphanumeric(models.TxIDLength)
		if err != nil {
			return "", err
		}
		if !hasReservedPrefix(txid) {
			return txid, nil
		}
	}
}

func randomAlphanumeric(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating txid: %w", err)
	}
	for i, b := range buf {
		buf[i] = txidCharset[int(b)%len(txidCharset)]
	}
	return string(buf), nil
}

func hasReservedPrefix(txid string) bool {
	upper := strings.ToUpper(txid)
	for _, prefix := range reservedTxidPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}
