package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// SecretSize - размер секрета устройства в байтах
	SecretSize = 32
	// SigningKeyLen - длина ключа подписи токенов
	SigningKeyLen = 32
)

// signingKeyInfo separates token keys from any other key derived from the same secret.
var signingKeyInfo = []byte("tasktracker access token v1")

// GenerateSecret генерирует криптографически случайный секрет устройства
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}
	return secret, nil
}

// DeriveSigningKey derives the HMAC key for API tokens from the device secret.
func DeriveSigningKey(secret []byte) ([]byte, error) {
	if len(secret) < SecretSize {
		return nil, fmt.Errorf("secret must be at least %d bytes", SecretSize)
	}

	key := make([]byte, SigningKeyLen)
	r := hkdf.New(sha256.New, secret, nil, signingKeyInfo)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive signing key: %w", err)
	}

	return key, nil
}
