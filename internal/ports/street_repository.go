package ports

import (
	"context"

	"github.com/Gunvolt24/streets_etl/internal/domain"
)

// StreetRepository - хранилище улиц с идемпотентной записью по натуральному ключу.
// Upsert: при совпадении (cityCode, streetCode) перезаписывает все поля и updatedAt,
// createdAt выставляется только при вставке. Безопасен при конкурентных вызовах с одним ключом.
type StreetRepository interface {
	Upsert(ctx context.Context, street *domain.Street) error
	// GetByKey возвращает (nil, nil), если записи нет.
	GetByKey(ctx context.Context, key domain.StreetKey) (*domain.Street, error)
	// ListByCity: limit <= 0 означает domain.DefaultListLimit.
	ListByCity(ctx context.Context, cityCode int64, namePrefix string, limit, offset int) ([]*domain.Street, error)
	LastN(ctx context.Context, n int) ([]*domain.Street, error)
}
