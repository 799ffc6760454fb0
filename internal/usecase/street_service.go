package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/ports"
	"github.com/Gunvolt24/streets_etl/pkg/normalize"
	"github.com/Gunvolt24/streets_etl/pkg/validate"
)

var _ ports.StreetReadService = (*StreetService)(nil)

// StreetService - прикладная логика работы с улицами (без знаний о транспорте).
type StreetService struct {
	repo      ports.StreetRepository // прямой доступ к хранилищу
	cache     ports.StreetCache      // прямой доступ к кэшу
	log       ports.Logger           // прямой доступ к логгеру
	validator ports.StreetValidator  // прямой доступ к валидатору
	now       func() time.Time
}

// NewStreetService - DI-конструктор.
func NewStreetService(
	repo ports.StreetRepository,
	cache ports.StreetCache,
	log ports.Logger,
	validator ports.StreetValidator,
) *StreetService {
	return &StreetService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
		now:       time.Now,
	}
}

// SaveFromMessage - сохранить улицу, пришедшую из очереди (raw JSON).
// Шаги:
//  1. разбор JSON (ошибка -> validate.ErrInvalidStreet);
//  2. проверка обязательных полей;
//  3. нормализация имени и идемпотентный upsert по (cityCode, streetCode);
//  4. инвалидация записи в кэше.
//
// Ошибки не логируются как фатальные: решение о повторе принимает потребитель.
func (s *StreetService) SaveFromMessage(ctx context.Context, raw []byte) error {
	msg, err := validate.DecodeStreetMessage(raw)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(ctx, msg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	street := domain.NewStreetFromMessage(msg, s.now().UTC())
	if err := s.repo.Upsert(ctx, &street); err != nil {
		return fmt.Errorf("failed to save street: %w", err)
	}

	s.cache.Delete(ctx, street.Key())

	s.log.Infof(ctx, "street saved city=%d street=%d normalized=%q",
		street.CityCode, street.StreetCode, street.StreetNameNormalized)
	return nil
}

// GetStreet - сначала из кэша, при промахе - из хранилища с записью в кэш.
// Возвращает (nil, nil), если записи нет.
func (s *StreetService) GetStreet(ctx context.Context, key domain.StreetKey) (*domain.Street, error) {
	if street, found := s.cache.Get(ctx, key); found {
		s.log.Debugf(ctx, "cache hit city=%d street=%d", key.CityCode, key.StreetCode)
		return street, nil
	}

	start := time.Now()
	street, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByKey failed city=%d street=%d err=%v", key.CityCode, key.StreetCode, err)
		return nil, err
	}

	if street != nil {
		if setErr := s.cache.Set(ctx, street); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed city=%d street=%d err=%v", key.CityCode, key.StreetCode, setErr)
		}
	}

	s.log.Debugf(ctx, "db fetch city=%d street=%d took=%s", key.CityCode, key.StreetCode, time.Since(start))
	return street, nil
}

// StreetsByCity - поиск по префиксу; запрос нормализуется так же, как имя при записи.
func (s *StreetService) StreetsByCity(
	ctx context.Context,
	cityCode int64,
	query string,
	limit, offset int,
) ([]*domain.Street, error) {
	return s.repo.ListByCity(ctx, cityCode, normalize.Name(query), limit, offset)
}

// WarmUpCache - прогрев кэша последними N обновлёнными улицами.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *StreetService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d streets in %s", len(list), time.Since(start))
	return nil
}
