package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const tokenBytes = 32

// Generate возвращает криптостойкий непрозрачный токен (64 hex-символа).
// Используется для самообслуживания по ссылке: токен и есть право доступа.
func Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token: failed to read random bytes: %v", err)
	}
	return hex.EncodeToString(buf), nil
}
