package ports

import "context"

// MessagePublisher - публикация пачки JSON-сообщений с ожиданием подтверждений брокера.
type MessagePublisher interface {
	PublishBatch(ctx context.Context, routingKey string, bodies [][]byte) error
}
