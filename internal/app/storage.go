package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/streets_etl/config"
	"github.com/Gunvolt24/streets_etl/internal/ports"
	mongorepo "github.com/Gunvolt24/streets_etl/internal/repo/mongo"
	"github.com/Gunvolt24/streets_etl/internal/repo/postgres"
)

const (
	driverMongo    = "mongo"
	driverPostgres = "postgres"
)

// openStorage - репозиторий улиц по STORAGE_DRIVER и функция закрытия соединения.
func openStorage(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.StreetRepository, func(), error) {
	switch driver := strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)); driver {
	case driverMongo, "":
		client, err := mongorepo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warnf(ctx, "mongo disconnect: %v", err)
			}
		}

		repo := mongorepo.NewStreetRepository(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection)
		if err := repo.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}
		log.Infof(ctx, "storage: mongo db=%s collection=%s", cfg.Mongo.Database, cfg.Mongo.Collection)
		return repo, closeFn, nil

	case driverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Postgres.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		log.Infof(ctx, "storage: postgres max_conns=%d", cfg.Postgres.MaxConns)
		return postgres.NewStreetRepository(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q (want %s|%s)", driver, driverMongo, driverPostgres)
	}
}
