package ports

import "context"

// Logger - контракт логгера для всех слоёв.
// Метаданные из контекста (request_id, message_id, trace_id) реализация добавляет сама.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
