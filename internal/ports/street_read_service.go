package ports

import (
	"context"

	"github.com/Gunvolt24/streets_etl/internal/domain"
)

// StreetReadService - сервис чтения улиц для HTTP-слоя.
type StreetReadService interface {
	GetStreet(ctx context.Context, key domain.StreetKey) (*domain.Street, error)
	StreetsByCity(ctx context.Context, cityCode int64, query string, limit, offset int) ([]*domain.Street, error)
}
