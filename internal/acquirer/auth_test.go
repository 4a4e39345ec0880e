package acquirer

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicAuthToken_EncodesKeyAndSecret(t *testing.T) {
	token := basicAuthToken("client-id", "client-secret")

	decoded, err := base64.StdEncoding.DecodeString(token)
	assert.NoError(t, err)
	assert.Equal(t, "client-id:client-secret", string(decoded))
}

func TestBasicAuthToken_PreEncodedSecretUsedVerbatim(t *testing.T) {
	combined := base64.StdEncoding.EncodeToString([]byte("client-id:client-secret"))

	token := basicAuthToken("", combined)

	assert.Equal(t, combined, token)
}

func TestBasicAuthToken_KeyPresentAlwaysReEncodes(t *testing.T) {
	// A base64-looking secret must still be combined with the key when
	// the key slot is populated.
	secret := base64.StdEncoding.EncodeToString([]byte("raw-secret"))

	token := basicAuthToken("client-id", secret)

	decoded, err := base64.StdEncoding.DecodeString(token)
	assert.NoError(t, err)
	assert.Equal(t, "client-id:"+secret, string(decoded))
}

func TestLooksBase64(t *testing.T) {
	assert.True(t, looksBase64(base64.StdEncoding.EncodeToString([]byte("user:pass"))))
	assert.False(t, looksBase64(""))
	assert.False(t, looksBase64("abc"))
	assert.False(t, looksBase64("not base64!!"))
}

func TestNewMTLSClient_RejectsInvalidCertificate(t *testing.T) {
	_, err := newMTLSClient("not a cert", "not a key", 0)

	assert.Error(t, err)
}
