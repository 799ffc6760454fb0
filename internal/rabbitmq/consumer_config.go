package rabbitmq

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultPrefetch = 10

type ConsumerConfig struct {
	Exchange        string
	Queue           string
	RouteKey        string
	DeadLetterQueue string
	RetryShortQueue string
	RetryLongQueue  string
	RetryShortDelay time.Duration
	RetryLongDelay  time.Duration
	Prefetch        int
	ConsumerTag     string
}

// Topology - топология, которую потребитель ожидает увидеть у брокера.
func (c *ConsumerConfig) Topology() Topology {
	return Topology{
		Exchange:        c.Exchange,
		Queue:           c.Queue,
		RouteKey:        c.RouteKey,
		DeadLetterQueue: c.DeadLetterQueue,
		RetryShortQueue: c.RetryShortQueue,
		RetryLongQueue:  c.RetryLongQueue,
		RetryShortDelay: c.RetryShortDelay,
		RetryLongDelay:  c.RetryLongDelay,
	}
}

func (c *ConsumerConfig) prefetch() int {
	if c.Prefetch <= 0 {
		return defaultPrefetch
	}
	return c.Prefetch
}

// consumerTag - явный тег из конфига или уникальный "streets-consumer-<uuid>".
func (c *ConsumerConfig) consumerTag() string {
	if tag := strings.TrimSpace(c.ConsumerTag); tag != "" {
		return tag
	}
	return "streets-consumer-" + uuid.NewString()
}
