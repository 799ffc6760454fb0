package rabbitmq

import (
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connection - одно AMQP-соединение и один канал на процесс.
// Канал в режиме publisher confirms: на нём и потребление, и ack, и публикации.
type Connection struct {
	conn      *amqp.Connection
	ch        *amqp.Channel
	closeOnce sync.Once
}

// Dial открывает соединение, канал и включает confirm-режим.
func Dial(uri string) (*Connection, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq confirm mode: %w", err)
	}

	return &Connection{conn: conn, ch: ch}, nil
}

func (c *Connection) Channel() *amqp.Channel { return c.ch }

// Close закрывает канал, затем соединение. Повторный вызов - no-op.
func (c *Connection) Close() (retErr error) {
	c.closeOnce.Do(func() {
		var errs []error
		if err := c.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
		if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
		retErr = errors.Join(errs...)
	})
	return retErr
}
