//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

// Логи жизненного цикла контейнеров
var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

func shortID(c tc.Container) string {
	id := c.GetContainerID()
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func lifecycleLog(format string) tc.ContainerHook {
	return func(_ context.Context, c tc.Container) error {
		tcLogger.Printf(format, shortID(c))
		return nil
	}
}

func logHooks() tc.ContainerCustomizer {
	return tc.WithLifecycleHooks(tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{
			func(_ context.Context, req tc.ContainerRequest) error {
				tcLogger.Printf("🐳 creating container image=%s", req.Image)
				return nil
			},
		},
		PostStarts:    []tc.ContainerHook{lifecycleLog("✅ started id=%s")},
		PostReadies:   []tc.ContainerHook{lifecycleLog("🔔 ready id=%s")},
		PreTerminates: []tc.ContainerHook{lifecycleLog("🛑 terminating id=%s")},
	})
}

// ----------------------------------------------------------------------------
// Postgres (альтернативное хранилище)
// ----------------------------------------------------------------------------

type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

func StartPostgresTC(ctx context.Context) (*PGContainer, func(context.Context) error, error) {
	pg, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		logHooks(),
		postgres.WithDatabase("streets"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = tc.TerminateContainer(pg)
		return nil, nil, fmt.Errorf("conn string: %w", err)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		_ = tc.TerminateContainer(pg)
		return nil, nil, fmt.Errorf("parse cfg: %w", err)
	}
	cfg.MaxConns = 5

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		_ = tc.TerminateContainer(pg)
		return nil, nil, fmt.Errorf("new pool: %w", err)
	}

	stop := func(context.Context) error {
		pool.Close()
		return tc.TerminateContainer(pg)
	}
	return &PGContainer{Container: pg, DSN: dsn, Pool: pool}, stop, nil
}

// ----------------------------------------------------------------------------
// MongoDB
// ----------------------------------------------------------------------------

type MongoContainer struct {
	Container *mongodb.MongoDBContainer
	URI       string
}

func StartMongoTC(ctx context.Context) (*MongoContainer, func(context.Context) error, error) {
	mc, err := mongodb.Run(
		ctx,
		"mongo:7",
		logHooks(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run mongodb: %w", err)
	}

	uri, err := mc.ConnectionString(ctx)
	if err != nil {
		_ = tc.TerminateContainer(mc)
		return nil, nil, fmt.Errorf("mongo conn string: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(mc) }
	return &MongoContainer{Container: mc, URI: uri}, stop, nil
}

// ----------------------------------------------------------------------------
// RabbitMQ
// ----------------------------------------------------------------------------

type RabbitContainer struct {
	Container *rabbitmq.RabbitMQContainer
	URI       string
}

func StartRabbitTC(ctx context.Context) (*RabbitContainer, func(context.Context) error, error) {
	rc, err := rabbitmq.Run(
		ctx,
		"rabbitmq:3.13-management-alpine",
		logHooks(),
		rabbitmq.WithAdminUsername("guest"),
		rabbitmq.WithAdminPassword("guest"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run rabbitmq: %w", err)
	}

	uri, err := rc.AmqpURL(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rc)
		return nil, nil, fmt.Errorf("amqp url: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(rc) }
	return &RabbitContainer{Container: rc, URI: uri}, stop, nil
}
