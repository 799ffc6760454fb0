package ports

import "context"

// MessageConsumer - фоновый потребитель очереди.
// Run блокируется до отмены контекста или фатальной ошибки канала,
// Close прекращает приём новых доставок.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
