package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const cipherPrefix = "gcm."

// FieldCipher protects sensitive text columns at rest with AES-GCM. When no
// key is configured every operation is a passthrough, and Open tolerates
// legacy plaintext rows written before encryption was enabled.
type FieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher builds a cipher from a hex-encoded 32-byte key. An empty
// key yields a passthrough cipher.
func NewFieldCipher(hexKey string) (*FieldCipher, error) {
	if hexKey == "" {
		return &FieldCipher{}, nil
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid encryption key: want 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &FieldCipher{aead: aead}, nil
}

// Seal encrypts a field value. With no key configured the value passes
// through unchanged.
func (c *FieldCipher) Seal(value string) string {
	if c == nil || c.aead == nil || value == "" {
		return value
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		// rand.Reader failing means the process has no usable entropy source
		panic(err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(value), nil)
	return cipherPrefix + base64.StdEncoding.EncodeToString(sealed)
}

// Open decrypts a field value. Values without the cipher marker are returned
// as-is so rows stored before encryption was enabled stay readable.
func (c *FieldCipher) Open(value string) string {
	if c == nil || c.aead == nil || !strings.HasPrefix(value, cipherPrefix) {
		return value
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, cipherPrefix))
	if err != nil || len(raw) < c.aead.NonceSize() {
		return value
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return value
	}

	return string(plain)
}
