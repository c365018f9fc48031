package rabbitmq

// NotificationsExchange direct exchange для всех уведомлений.
const NotificationsExchange = "notifications"

// Очередь и ключ маршрутизации для кодов сброса пароля.
const (
	PasscodeQueue      = "notifications.passcode"
	PasscodeRoutingKey = "passcode"
)

// QueueConfig описывает очередь и ключ, с которым она привязана к exchange.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди, которые объявляются при старте API и sender.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: PasscodeQueue, RoutingKey: PasscodeRoutingKey},
	}
}
