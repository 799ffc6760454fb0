package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/ports"
)

// Проверка, что StreetRepository удовлетворяет интерфейсу StreetRepository.
var _ ports.StreetRepository = (*StreetRepository)(nil)

// StreetRepository - реализация репозитория улиц на Postgres (pgxpool).
type StreetRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewStreetRepository - конструктор StreetRepository.
func NewStreetRepository(pool *pgxpool.Pool) *StreetRepository {
	return &StreetRepository{pool: pool, now: time.Now}
}

const selectStreet = `
	SELECT city_code, city_name, street_code, street_name, street_name_normalized,
	       region, district, additional_meta, created_at, updated_at
	FROM streets`

// Upsert - INSERT ... ON CONFLICT по (city_code, street_code).
// created_at в DO UPDATE не трогаем: он остаётся от первой вставки.
func (r *StreetRepository) Upsert(ctx context.Context, street *domain.Street) error {
	if street == nil {
		return fmt.Errorf("%w: street is nil", domain.ErrStorage)
	}

	updatedAt := street.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}
	createdAt := street.CreatedAt
	if createdAt.IsZero() {
		createdAt = updatedAt
	}
	meta := street.AdditionalMeta
	if meta == nil {
		meta = map[string]any{}
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO streets (
			city_code, city_name, street_code, street_name, street_name_normalized,
			region, district, additional_meta, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (city_code, street_code) DO UPDATE SET
			city_name = EXCLUDED.city_name,
			street_name = EXCLUDED.street_name,
			street_name_normalized = EXCLUDED.street_name_normalized,
			region = EXCLUDED.region,
			district = EXCLUDED.district,
			additional_meta = EXCLUDED.additional_meta,
			updated_at = EXCLUDED.updated_at
	`,
		street.CityCode, street.CityName, street.StreetCode, street.StreetName, street.StreetNameNormalized,
		street.Region, street.District, meta, createdAt.UTC(), updatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("%w: upsert city=%d street=%d: %w", domain.ErrStorage, street.CityCode, street.StreetCode, err)
	}
	return nil
}

// GetByKey - (nil, nil), если записи нет.
func (r *StreetRepository) GetByKey(ctx context.Context, key domain.StreetKey) (*domain.Street, error) {
	row := r.pool.QueryRow(ctx, selectStreet+` WHERE city_code = $1 AND street_code = $2`, key.CityCode, key.StreetCode)

	street, err := scanStreet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get city=%d street=%d: %w", domain.ErrStorage, key.CityCode, key.StreetCode, err)
	}
	return street, nil
}

// ListByCity - поиск по префиксу нормализованного имени (LIKE с экранированием).
func (r *StreetRepository) ListByCity(
	ctx context.Context,
	cityCode int64,
	namePrefix string,
	limit, offset int,
) ([]*domain.Street, error) {
	rows, err := r.pool.Query(ctx, selectStreet+`
		WHERE city_code = $1 AND street_name_normalized LIKE $2 ESCAPE '\'
		ORDER BY street_name_normalized, street_code
		LIMIT $3 OFFSET $4`,
		cityCode, likePrefix(namePrefix), domain.ListLimit(limit), max(offset, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list city=%d: %w", domain.ErrStorage, cityCode, err)
	}
	return collectStreets(rows)
}

// LastN - последние обновлённые записи (для прогрева кэша).
func (r *StreetRepository) LastN(ctx context.Context, n int) ([]*domain.Street, error) {
	if n <= 0 {
		return []*domain.Street{}, nil
	}
	rows, err := r.pool.Query(ctx, selectStreet+` ORDER BY updated_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("%w: last n: %w", domain.ErrStorage, err)
	}
	return collectStreets(rows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}

func scanStreet(row pgx.Row) (*domain.Street, error) {
	var s domain.Street
	if err := row.Scan(
		&s.CityCode, &s.CityName, &s.StreetCode, &s.StreetName, &s.StreetNameNormalized,
		&s.Region, &s.District, &s.AdditionalMeta, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func collectStreets(rows pgx.Rows) ([]*domain.Street, error) {
	defer rows.Close()

	out := make([]*domain.Street, 0)
	for rows.Next() {
		s, err := scanStreet(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan: %w", domain.ErrStorage, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %w", domain.ErrStorage, err)
	}
	return out, nil
}
