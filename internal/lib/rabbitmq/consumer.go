package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/finher/internal/lib/sl"
)

// ErrDrop оборачивается обработчиком, если сообщение бессмысленно обрабатывать повторно
// (например, не разбирается JSON). Такое сообщение отклоняется без возврата в очередь.
var ErrDrop = errors.New("message dropped")

// Handler обрабатывает тело одного сообщения.
type Handler func(ctx context.Context, body []byte) error

const maxInFlight = 10

// ConsumerMessage подписывается на очередь и обрабатывает сообщения в фоне, пока не отменён ctx.
func ConsumerMessage(ctx context.Context, ch *amqp.Channel, queueName string, handler Handler, log *slog.Logger) error {
	const op = "rabbitmq.ConsumerMessage"
	deliveries, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	go consume(ctx, deliveries, handler, log.With(slog.String("queue", queueName)))
	return nil
}

// consume читает доставки, ограничивая число одновременно обрабатываемых сообщений.
// Возвращается после закрытия канала доставок или отмены ctx и дожидается активных обработчиков.
func consume(ctx context.Context, deliveries <-chan amqp.Delivery, handler Handler, log *slog.Logger) {
	var wg sync.WaitGroup
	defer wg.Wait()

	sem := make(chan struct{}, maxInFlight)
	for {
		select {
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			sem <- struct{}{}
			wg.Add(1)
			go func(d amqp.Delivery) {
				defer wg.Done()
				defer func() { <-sem }()
				handleDelivery(ctx, d, handler, log)
			}(d)
		case <-ctx.Done():
			return
		}
	}
}

func handleDelivery(ctx context.Context, d amqp.Delivery, handler Handler, log *slog.Logger) {
	err := handler(ctx, d.Body)
	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			log.Error("failed to ack message", sl.Err(ackErr))
		}
		return
	}

	requeue := !errors.Is(err, ErrDrop)
	log.Error("failed to handle message", sl.Err(err), slog.Bool("requeue", requeue))
	if nackErr := d.Nack(false, requeue); nackErr != nil {
		log.Error("failed to nack message", sl.Err(nackErr))
	}
}
