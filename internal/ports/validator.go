package ports

import (
	"context"

	"github.com/Gunvolt24/streets_etl/internal/domain"
)

type StreetValidator interface {
	Validate(ctx context.Context, msg *domain.StreetMessage) error
}
