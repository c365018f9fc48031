// Package access решает, может ли пользователь изменять или удалять ресурс.
//
// Проверка выполняется заново при каждом запросе: роль и владелец могут измениться
// между вызовами, поэтому результат нигде не кешируется.
package access

import (
	"github.com/magabrotheeeer/finher/internal/models"
)

// Actor описывает пользователя, выполняющего запрос, как он извлечён из токена.
type Actor struct {
	UserID string
	Role   string
}

// IsAdmin сообщает, обладает ли пользователь ролью администратора.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// Owned реализуется ресурсами, у которых есть владелец.
type Owned interface {
	OwnerID() string
}

// CanMutate возвращает true, если actor администратор или владелец ресурса.
// Ресурс без владельца может менять только администратор.
func CanMutate(ownerID string, actor Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	return ownerID != "" && actor.UserID == ownerID
}

// Authorize применяет CanMutate к ресурсу и возвращает models.ErrNotAuthorized при отказе.
func Authorize(res Owned, actor Actor) error {
	if !CanMutate(res.OwnerID(), actor) {
		return models.ErrNotAuthorized
	}
	return nil
}
