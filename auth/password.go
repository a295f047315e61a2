package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
)

// Passwords are stored with reversible AES-GCM encryption under a server-held
// key, mirroring the legacy store. This is a known security defect: login
// decrypts and compares plaintext instead of verifying a one-way hash.
// Replacing it with bcrypt would invalidate every stored credential, so the
// behavior is kept and flagged.

var ErrInvalidCiphertext = errors.New("invalid password ciphertext")

func gcmFromKey(key string) (cipher.AEAD, error) {
	// The env key is free-form text; derive a fixed 32-byte AES key from it.
	sum := sha256.Sum256([]byte(key))
	block, err := aes.NewCipher(sum[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// EncryptPassword encrypts the plaintext with the server key and returns a
// base64 string with the nonce prepended.
func EncryptPassword(plain, key string) (string, error) {
	gcm, err := gcmFromKey(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptPassword reverses EncryptPassword. It fails when the ciphertext is
// malformed or was produced under a different key.
func DecryptPassword(encoded, key string) (string, error) {
	gcm, err := gcmFromKey(key)
	if err != nil {
		return "", err
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	if len(sealed) < gcm.NonceSize() {
		return "", ErrInvalidCiphertext
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	return string(plain), nil
}
