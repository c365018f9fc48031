// Package jwt реализует генерацию и парсинг JWT токенов сессии.
//
// Токен самодостаточен: содержит идентификатор пользователя, роль и срок действия,
// подписан HS256 секретом сервера и не хранится на стороне сервера.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создает токен для пользователя с указанной ролью.
	GenerateToken(userID, role string) (string, error)
	// ParseToken проверяет подпись и срок действия и возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует Maker с использованием секретного ключа и времени жизни токена.
type MakerImpl struct {
	secretKey []byte        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
	now       func() time.Time
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  ttl,
		now:       time.Now,
	}
}
