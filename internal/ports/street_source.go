package ports

import (
	"context"

	"github.com/Gunvolt24/streets_etl/internal/domain"
)

// StreetSource - внешний источник улиц (открытое API).
// cityName - значение фильтра city_name в источнике (название на иврите).
type StreetSource interface {
	StreetsInCity(ctx context.Context, cityName string) ([]domain.Street, error)
	StreetByID(ctx context.Context, id int64) (*domain.Street, error)
}
