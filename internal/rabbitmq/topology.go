package rabbitmq

import (
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrTopology - объявление exchange/очередей не удалось; запуск невозможен.
var ErrTopology = errors.New("rabbitmq topology error")

const (
	defaultRetryShortDelay = 60 * time.Second
	defaultRetryLongDelay  = 300 * time.Second
)

// declarer - подмножество *amqp.Channel, нужное для объявления топологии.
type declarer interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
}

// Topology - имена exchange/очередей и задержки retry-очередей.
type Topology struct {
	Exchange        string
	Queue           string
	RouteKey        string
	DeadLetterQueue string
	RetryShortQueue string
	RetryLongQueue  string
	RetryShortDelay time.Duration
	RetryLongDelay  time.Duration
}

// DeclareTopology идемпотентно объявляет:
//   - durable direct exchange;
//   - DLQ, привязанную под собственным именем;
//   - основную очередь, которая по умолчанию dead-letter'ит в DLQ;
//   - short/long retry-очереди с TTL, по истечении которого сообщение
//     возвращается в exchange под основным ключом.
func DeclareTopology(ch declarer, t Topology) error {
	if err := t.validate(); err != nil {
		return err
	}

	if err := ch.ExchangeDeclare(t.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: exchange %q: %w", ErrTopology, t.Exchange, err)
	}

	if err := declareBound(ch, t.Exchange, t.DeadLetterQueue, t.DeadLetterQueue, nil); err != nil {
		return err
	}

	mainArgs := amqp.Table{
		"x-dead-letter-exchange":    t.Exchange,
		"x-dead-letter-routing-key": t.DeadLetterQueue,
	}
	if err := declareBound(ch, t.Exchange, t.Queue, t.RouteKey, mainArgs); err != nil {
		return err
	}

	if err := declareBound(ch, t.Exchange, t.RetryShortQueue, t.RetryShortQueue,
		retryArgs(t.Exchange, t.RouteKey, durationOr(t.RetryShortDelay, defaultRetryShortDelay))); err != nil {
		return err
	}

	return declareBound(ch, t.Exchange, t.RetryLongQueue, t.RetryLongQueue,
		retryArgs(t.Exchange, t.RouteKey, durationOr(t.RetryLongDelay, defaultRetryLongDelay)))
}

func declareBound(ch declarer, exchange, queue, key string, args amqp.Table) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, args); err != nil {
		return fmt.Errorf("%w: queue %q: %w", ErrTopology, queue, err)
	}
	if err := ch.QueueBind(queue, key, exchange, false, nil); err != nil {
		return fmt.Errorf("%w: bind %q -> %q: %w", ErrTopology, queue, key, err)
	}
	return nil
}

// retryArgs - TTL в миллисекундах и возврат в основной маршрут по истечении.
func retryArgs(exchange, routeKey string, ttl time.Duration) amqp.Table {
	return amqp.Table{
		"x-message-ttl":             int32(ttl / time.Millisecond),
		"x-dead-letter-exchange":    exchange,
		"x-dead-letter-routing-key": routeKey,
	}
}

func (t *Topology) validate() error {
	names := []struct{ field, value string }{
		{"exchange", t.Exchange},
		{"queue", t.Queue},
		{"route key", t.RouteKey},
		{"dead letter queue", t.DeadLetterQueue},
		{"retry short queue", t.RetryShortQueue},
		{"retry long queue", t.RetryLongQueue},
	}
	for _, n := range names {
		if n.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrTopology, n.field)
		}
	}
	return nil
}

func durationOr(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
