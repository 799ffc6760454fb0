package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/ports"
)

// Проверка, что StreetRepository удовлетворяет интерфейсу StreetRepository.
var _ ports.StreetRepository = (*StreetRepository)(nil)

// StreetRepository - коллекция улиц в MongoDB.
type StreetRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewStreetRepository(db *mongo.Database, collection string) *StreetRepository {
	return &StreetRepository{coll: db.Collection(collection), now: time.Now}
}

// EnsureIndexes - уникальный (cityCode, streetCode), текстовый по streetNameNormalized, по cityName.
func (r *StreetRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "cityCode", Value: 1}, {Key: "streetCode", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_city_street"),
		},
		{
			Keys:    bson.D{{Key: "streetNameNormalized", Value: "text"}},
			Options: options.Index().SetName("text_street_name_normalized"),
		},
		{
			Keys:    bson.D{{Key: "cityName", Value: 1}},
			Options: options.Index().SetName("city_name"),
		},
		{
			Keys:    bson.D{{Key: "cityCode", Value: 1}, {Key: "streetNameNormalized", Value: 1}},
			Options: options.Index().SetName("city_street_name_normalized"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("%w: ensure indexes: %w", domain.ErrStorage, err)
	}
	return nil
}

// Upsert - UpdateOne по натуральному ключу: $set всех полей и updatedAt,
// $setOnInsert только createdAt. Атомарно на стороне сервера.
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

	set := bson.M{
		"cityCode":             street.CityCode,
		"cityName":             street.CityName,
		"streetCode":           street.StreetCode,
		"streetName":           street.StreetName,
		"streetNameNormalized": street.StreetNameNormalized,
		"additionalMeta":       meta,
		"updatedAt":            updatedAt.UTC(),
	}
	unset := bson.M{}
	setOptional(set, unset, "region", street.Region)
	setOptional(set, unset, "district", street.District)

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": createdAt.UTC()},
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	filter := bson.M{"cityCode": street.CityCode, "streetCode": street.StreetCode}
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("%w: upsert city=%d street=%d: %w", domain.ErrStorage, street.CityCode, street.StreetCode, err)
	}
	return nil
}

// setOptional - пустые region/district удаляются из документа, а не пишутся пустой строкой.
func setOptional(set, unset bson.M, field, value string) {
	if value == "" {
		unset[field] = ""
		return
	}
	set[field] = value
}

// GetByKey - (nil, nil), если записи нет.
func (r *StreetRepository) GetByKey(ctx context.Context, key domain.StreetKey) (*domain.Street, error) {
	var street domain.Street
	err := r.coll.FindOne(ctx, bson.M{"cityCode": key.CityCode, "streetCode": key.StreetCode}).Decode(&street)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get city=%d street=%d: %w", domain.ErrStorage, key.CityCode, key.StreetCode, err)
	}
	return &street, nil
}

// ListByCity - улицы города, у которых нормализованное имя начинается с namePrefix.
// Сортировка по имени, затем по коду улицы. limit <= 0 - domain.DefaultListLimit.
func (r *StreetRepository) ListByCity(
	ctx context.Context,
	cityCode int64,
	namePrefix string,
	limit, offset int,
) ([]*domain.Street, error) {
	filter := bson.M{"cityCode": cityCode}
	if namePrefix != "" {
		filter["streetNameNormalized"] = bson.M{"$regex": "^" + regexp.QuoteMeta(namePrefix)}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "streetNameNormalized", Value: 1}, {Key: "streetCode", Value: 1}}).
		SetSkip(int64(max(offset, 0))).
		SetLimit(int64(domain.ListLimit(limit)))

	return r.find(ctx, filter, opts)
}

// LastN - последние обновлённые записи (для прогрева кэша).
func (r *StreetRepository) LastN(ctx context.Context, n int) ([]*domain.Street, error) {
	if n <= 0 {
		return []*domain.Street{}, nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetLimit(int64(n))
	return r.find(ctx, bson.M{}, opts)
}

func (r *StreetRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Street, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find: %w", domain.ErrStorage, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*domain.Street, 0)
	for cur.Next(ctx) {
		var s domain.Street
		if err := cur.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: decode: %w", domain.ErrStorage, err)
		}
		out = append(out, &s)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor: %w", domain.ErrStorage, err)
	}
	return out, nil
}
