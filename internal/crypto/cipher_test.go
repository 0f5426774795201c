package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestNewCipher_InvalidKey(t *testing.T) {
	_, err := NewCipher("not-hex")
	assert.Error(t, err)

	_, err = NewCipher("aabbcc")
	assert.Error(t, err)
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher(testKeyHex)
	require.NoError(t, err)

	enc, err := c.Encrypt("merchant_secret_key")
	require.NoError(t, err)
	assert.NotEqual(t, "merchant_secret_key", enc)

	dec, err := c.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "merchant_secret_key", dec)
}

func TestCipher_EncryptIsNonDeterministic(t *testing.T) {
	c, err := NewCipher(testKeyHex)
	require.NoError(t, err)

	a, err := c.Encrypt("same input")
	require.NoError(t, err)
	b, err := c.Encrypt("same input")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCipher_DecryptRejectsTampered(t *testing.T) {
	c, err := NewCipher(testKeyHex)
	require.NoError(t, err)

	enc, err := c.Encrypt("payload")
	require.NoError(t, err)

	tampered := strings.ToUpper(enc[:4]) + enc[4:]
	if tampered == enc {
		tampered = enc[:len(enc)-4] + "AAA="
	}

	_, err = c.Decrypt(tampered)
	assert.Error(t, err)

	_, err = c.Decrypt("!!!not base64!!!")
	assert.Error(t, err)

	_, err = c.Decrypt("YWJj") // too short to hold a nonce
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}
