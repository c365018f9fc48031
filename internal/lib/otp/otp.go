// Package otp генерирует одноразовые цифровые коды для сброса пароля.
package otp

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Length количество цифр в коде.
const Length = 6

// Generate возвращает криптографически случайный код из Length цифр (ведущие нули допустимы).
func Generate() (string, error) {
	return generate(rand.Reader)
}

func generate(r io.Reader) (string, error) {
	const op = "otp.Generate"
	digits := make([]byte, Length)
	ten := big.NewInt(10)
	for i := range digits {
		n, err := rand.Int(r, ten)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
