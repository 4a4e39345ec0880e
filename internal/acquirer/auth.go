package acquirer

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"
)

// basicAuthToken builds the value for an Authorization: Basic header.
// Some tenants provision the combined credential already base64-encoded
// in the secret slot; that form is detected by a charset/length heuristic
// and used verbatim, because re-encoding it would break authentication.
func basicAuthToken(clientKey, clientSecret string) string {
	if clientKey == "" && looksBase64(clientSecret) {
		return clientSecret
	}
	return base64.StdEncoding.EncodeToString([]byte(clientKey + ":" + clientSecret))
}

// looksBase64 accepts standard-alphabet strings of a multiple-of-four
// length that round-trip through the decoder unchanged.
func looksBase64(s string) bool {
	if len(s) == 0 || len(s)%4 != 0 {
		return false
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return false
	}
	return base64.StdEncoding.EncodeToString(decoded) == s
}

// newMTLSClient builds an HTTP client presenting a client certificate,
// for acquirers that authenticate with mutual TLS.
func newMTLSClient(certPEM, keyPEM string, timeout time.Duration) (*http.Client, error) {
	cert, err := tls.X509KeyPair([]byte(certPEM), []byte(keyPEM))
	if err != nil {
		return nil, fmt.Errorf("loading client certificate: %w", err)
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				Certificates: []tls.Certificate{cert},
				MinVersion:   tls.VersionTLS12,
			},
		},
	}, nil
}
