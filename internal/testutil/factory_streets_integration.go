//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/pkg/normalize"
)

// UniqCode - случайный положительный код, чтобы тесты не пересекались по ключу.
func UniqCode() int64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return int64(binary.BigEndian.Uint64(b[:])>>34) + 1
}

// Мини-генератор валидной улицы
func MakeStreet(opts ...func(*domain.Street)) domain.Street {
	now := time.Now().UTC().Truncate(time.Millisecond)

	s := domain.Street{
		CityCode:       UniqCode(),
		CityName:       "חיפה",
		StreetCode:     UniqCode(),
		StreetName:     " Ha-Carmel ",
		Region:         "חיפה",
		AdditionalMeta: map[string]any{"officialCode": int64(100)},
		UpdatedAt:      now,
		CreatedAt:      now,
	}
	s.StreetNameNormalized = normalize.Name(s.StreetName)

	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func WithKey(cityCode, streetCode int64) func(*domain.Street) {
	return func(s *domain.Street) {
		s.CityCode = cityCode
		s.StreetCode = streetCode
	}
}

func WithName(name string) func(*domain.Street) {
	return func(s *domain.Street) {
		s.StreetName = name
		s.StreetNameNormalized = normalize.Name(name)
	}
}
