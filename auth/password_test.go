package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	encrypted, err := EncryptPassword("s3cret-pw", "server-key")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", encrypted)

	plain, err := DecryptPassword(encrypted, "server-key")
	require.NoError(t, err)
	assert.Equal(t, "s3cret-pw", plain)
}

func TestEncryptIsNotDeterministic(t *testing.T) {
	a, err := EncryptPassword("same", "key")
	require.NoError(t, err)
	b, err := EncryptPassword("same", "key")
	require.NoError(t, err)

	// Random nonce per encryption: identical passwords must not produce
	// identical ciphertexts.
	assert.NotEqual(t, a, b)
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	encrypted, err := EncryptPassword("s3cret-pw", "server-key")
	require.NoError(t, err)

	_, err = DecryptPassword(encrypted, "other-key")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestDecryptMalformedCiphertext(t *testing.T) {
	_, err := DecryptPassword("not-base64!!!", "key")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = DecryptPassword("c2hvcnQ=", "key") // valid base64, too short
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}
