package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// HashPassword хеширует пароль с использованием SHA256 и возвращает hex строку
// в нижнем регистре. Хеш детерминированный: соли и итераций нет, поэтому схема
// годится только для локальных учетных записей на одном устройстве.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash := sha256.Sum256([]byte(password))

	return hex.EncodeToString(hash[:]), nil
}

// VerifyPassword проверяет, соответствует ли пароль сохраненному хешу
func VerifyPassword(password, passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}

	computedHash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to compute password hash: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(computedHash), []byte(passwordHash)) != 1 {
		return fmt.Errorf("invalid password")
	}

	return nil
}
