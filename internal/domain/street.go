package domain

import (
	"time"

	"github.com/Gunvolt24/streets_etl/pkg/normalize"
)

// StreetKey - натуральный ключ улицы: (cityCode, streetCode), уникален в хранилище.
type StreetKey struct {
	CityCode   int64 `json:"cityCode"`
	StreetCode int64 `json:"streetCode"`
}

// StreetMessage - полезная нагрузка сообщения из очереди (как её шлёт паблишер).
// Поля createdAt/updatedAt/publishedAt приходят от продюсера и при сохранении игнорируются.
type StreetMessage struct {
	CityCode       int64          `json:"cityCode"`
	CityName       string         `json:"cityName,omitempty"`
	StreetCode     int64          `json:"streetCode"`
	StreetName     string         `json:"streetName"`
	Region         string         `json:"region,omitempty"`
	District       string         `json:"district,omitempty"`
	AdditionalMeta map[string]any `json:"additionalMeta,omitempty"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
	CreatedAt      *time.Time     `json:"createdAt,omitempty"`
	PublishedAt    *time.Time     `json:"publishedAt,omitempty"`
}

// Street - каноническая запись улицы в хранилище.
type Street struct {
	CityCode             int64          `json:"cityCode" bson:"cityCode"`
	CityName             string         `json:"cityName" bson:"cityName"`
	StreetCode           int64          `json:"streetCode" bson:"streetCode"`
	StreetName           string         `json:"streetName" bson:"streetName"`
	StreetNameNormalized string         `json:"streetNameNormalized" bson:"streetNameNormalized"`
	Region               string         `json:"region,omitempty" bson:"region,omitempty"`
	District             string         `json:"district,omitempty" bson:"district,omitempty"`
	AdditionalMeta       map[string]any `json:"additionalMeta,omitempty" bson:"additionalMeta"`
	UpdatedAt            time.Time      `json:"updatedAt" bson:"updatedAt"`
	CreatedAt            time.Time      `json:"createdAt" bson:"createdAt"`
}

// DefaultListLimit - размер выборки ListByCity, если limit не задан (<= 0).
const DefaultListLimit = 100

// ListLimit приводит limit выборки к единому правилу для всех хранилищ.
func ListLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

// Key возвращает натуральный ключ записи.
func (s *Street) Key() StreetKey {
	return StreetKey{CityCode: s.CityCode, StreetCode: s.StreetCode}
}

// NewStreetFromMessage строит каноническую запись из сообщения.
// createdAt и updatedAt выставляются в now; хранилище сохранит createdAt только при первой вставке.
func NewStreetFromMessage(msg *StreetMessage, now time.Time) Street {
	meta := msg.AdditionalMeta
	if meta == nil {
		meta = map[string]any{}
	}
	return Street{
		CityCode:             msg.CityCode,
		CityName:             msg.CityName,
		StreetCode:           msg.StreetCode,
		StreetName:           msg.StreetName,
		StreetNameNormalized: normalize.Name(msg.StreetName),
		Region:               msg.Region,
		District:             msg.District,
		AdditionalMeta:       meta,
		UpdatedAt:            now,
		CreatedAt:            now,
	}
}

// ToMessage - обратное преобразование для паблишера.
func (s *Street) ToMessage(publishedAt time.Time) StreetMessage {
	created, updated := s.CreatedAt, s.UpdatedAt
	return StreetMessage{
		CityCode:       s.CityCode,
		CityName:       s.CityName,
		StreetCode:     s.StreetCode,
		StreetName:     s.StreetName,
		Region:         s.Region,
		District:       s.District,
		AdditionalMeta: s.AdditionalMeta,
		UpdatedAt:      &updated,
		CreatedAt:      &created,
		PublishedAt:    &publishedAt,
	}
}
