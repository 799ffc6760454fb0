package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/ports"
)

const defaultBatchSize = 500

// PublishConfig - параметры пакетной публикации.
type PublishConfig struct {
	RoutingKey string
	BatchSize  int
	BatchDelay time.Duration
}

// PublishService - выгрузка улиц из внешнего API в очередь.
type PublishService struct {
	source ports.StreetSource
	pub    ports.MessagePublisher
	log    ports.Logger
	cfg    PublishConfig
	now    func() time.Time
}

func NewPublishService(
	source ports.StreetSource,
	pub ports.MessagePublisher,
	log ports.Logger,
	cfg PublishConfig,
) *PublishService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &PublishService{source: source, pub: pub, log: log, cfg: cfg, now: time.Now}
}

// PublishCity - все улицы города одним запросом к API, затем пачками по BatchSize:
// каждая пачка ждёт подтверждений брокера, между пачками пауза BatchDelay.
// Возвращает число опубликованных сообщений.
func (s *PublishService) PublishCity(ctx context.Context, cityName string) (int, error) {
	streets, err := s.source.StreetsInCity(ctx, cityName)
	if err != nil {
		return 0, fmt.Errorf("fetch streets city=%q: %w", cityName, err)
	}
	s.log.Infof(ctx, "fetched %d streets city=%q", len(streets), cityName)

	bodies, err := s.encode(streets)
	if err != nil {
		return 0, err
	}

	total := len(bodies)
	batches := (total + s.cfg.BatchSize - 1) / s.cfg.BatchSize
	published := 0
	for i := 0; i < batches; i++ {
		start := i * s.cfg.BatchSize
		end := min(start+s.cfg.BatchSize, total)

		if err := s.pub.PublishBatch(ctx, s.cfg.RoutingKey, bodies[start:end]); err != nil {
			return published, fmt.Errorf("publish batch %d/%d: %w", i+1, batches, err)
		}
		published = end
		s.log.Infof(ctx, "published batch %d/%d (%d/%d streets) city=%q", i+1, batches, published, total, cityName)

		if end < total {
			if err := sleepCtx(ctx, s.cfg.BatchDelay); err != nil {
				return published, err
			}
		}
	}

	return published, nil
}

// PublishByID - одна улица по _id записи в API.
func (s *PublishService) PublishByID(ctx context.Context, id int64) (*domain.Street, error) {
	street, err := s.source.StreetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch street id=%d: %w", id, err)
	}
	if street == nil {
		return nil, errors.New("source returned no street")
	}

	bodies, err := s.encode([]domain.Street{*street})
	if err != nil {
		return nil, err
	}
	if err := s.pub.PublishBatch(ctx, s.cfg.RoutingKey, bodies); err != nil {
		return nil, fmt.Errorf("publish street id=%d: %w", id, err)
	}
	s.log.Infof(ctx, "published street id=%d city=%d street=%d", id, street.CityCode, street.StreetCode)
	return street, nil
}

func (s *PublishService) encode(streets []domain.Street) ([][]byte, error) {
	publishedAt := s.now().UTC()
	bodies := make([][]byte, 0, len(streets))
	for i := range streets {
		body, err := json.Marshal(streets[i].ToMessage(publishedAt))
		if err != nil {
			return nil, fmt.Errorf("encode street city=%d street=%d: %w", streets[i].CityCode, streets[i].StreetCode, err)
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
