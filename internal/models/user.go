// Package models содержит доменные структуры, общие для хранилища, сервисов и HTTP-слоя:
// пользователей, заявки на финансирование, альтернативные программы финансирования,
// обучающие материалы и результаты кредитной оценки.
package models

import "time"

// Роли пользователей.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           string     // Уникальный идентификатор пользователя
	Name         string     // Имя
	Email        string     // Электронная почта в нижнем регистре (уникальная)
	PasswordHash string     // bcrypt-хэш пароля
	Role         string     // Роль пользователя, admin или user
	OTPCode      *string    // Одноразовый код сброса пароля, nil если сброс не запрошен
	OTPExpires   *time.Time // Срок действия одноразового кода
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser — данные пользователя, которые можно отдавать клиенту (без пароля и кода).
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public возвращает публичное представление пользователя.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// PasscodeMessage публикуется в очередь уведомлений при выдаче кода сброса пароля.
type PasscodeMessage struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
