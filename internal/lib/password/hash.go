// Package password реализует хеширование и проверку паролей через bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch возвращается, когда пароль не соответствует хэшу.
var ErrMismatch = errors.New("password does not match")

// Hasher хеширует пароли с заданной стоимостью bcrypt.
type Hasher struct {
	cost int
}

// NewHasher создает Hasher. Стоимость вне допустимого диапазона bcrypt заменяется на DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает bcrypt-хэш пароля. Соль генерируется bcrypt.
func (h *Hasher) Hash(password string) (string, error) {
	const op = "password.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Compare сравнивает хэш с введённым паролем.
//
// Возвращает nil при совпадении, ErrMismatch при неверном пароле и обёрнутую ошибку bcrypt,
// если хэш повреждён.
func (h *Hasher) Compare(hash, password string) error {
	const op = "password.Compare"
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
