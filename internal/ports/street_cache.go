package ports

import (
	"context"

	"github.com/Gunvolt24/streets_etl/internal/domain"
)

// StreetCache - кэш улиц по натуральному ключу.
// Требования к реализации: потокобезопасность, возврат копий сущности.
type StreetCache interface {
	Get(ctx context.Context, key domain.StreetKey) (*domain.Street, bool)
	Set(ctx context.Context, street *domain.Street) error
	// Delete - инвалидация после записи в хранилище.
	Delete(ctx context.Context, key domain.StreetKey)
	WarmUp(ctx context.Context, streets []*domain.Street) error
}
